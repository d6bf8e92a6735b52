package main

import (
	"log/slog"
	"os"

	"quizhub/config"
	"quizhub/handlers"
	"quizhub/logger"
	"quizhub/middleware"
	"quizhub/models"
	"quizhub/routes"
	"quizhub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	log := logger.New(os.Stdout, slog.LevelInfo)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Submission{},
		&models.SubmissionAnswer{},
	)
	if err != nil {
		log.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	// Initialize Redis (token revocation list)
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, redisClient, cfg.JWTSecret, cfg.TokenTTL)
	quizService := services.NewQuizService(db)
	submissionService := services.NewSubmissionService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	submissionHandler := handlers.NewSubmissionHandler(quizService, submissionService)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(log))
	router.Use(cors.Default())

	// Setup routes
	routes.SetupRoutes(router, authHandler, quizHandler, submissionHandler, authService)

	// Start server
	log.Info("server starting", slog.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("failed to start server", slog.Any("error", err))
		os.Exit(1)
	}
}
