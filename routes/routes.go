package routes

import (
	"net/http"

	"quizhub/handlers"
	"quizhub/middleware"
	"quizhub/models"
	"quizhub/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	submissionHandler *handlers.SubmissionHandler,
	authService *services.AuthService,
) {
	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/token", authHandler.Login)
		auth.POST("/logout", middleware.Auth(authService), authHandler.Logout)
		auth.GET("/profile", middleware.Auth(authService), authHandler.GetProfile)
	}

	// Admin routes: catalog mutation, owner-gated inside the services
	admin := router.Group("/admin")
	admin.Use(middleware.Auth(authService), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/quizzes", quizHandler.GetOwnedQuizzes)
		admin.POST("/quizzes", quizHandler.CreateQuiz)
		admin.GET("/quizzes/:id", quizHandler.GetQuizByID)
		admin.DELETE("/quizzes/:id", quizHandler.DeleteQuiz)
		admin.POST("/questions", quizHandler.CreateQuestion)
		admin.PUT("/questions/:id", quizHandler.UpdateQuestion)
		admin.DELETE("/questions/:id", quizHandler.DeleteQuestion)
	}

	// Participant routes: listing, submission, results
	participant := router.Group("/participant")
	participant.Use(middleware.Auth(authService), middleware.RequireRole(models.RoleParticipant))
	{
		participant.GET("/quizzes", submissionHandler.ListQuizzes)
		participant.POST("/submit", submissionHandler.Submit)
		participant.GET("/result/:quiz_id", submissionHandler.GetResult)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
