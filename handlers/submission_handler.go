package handlers

import (
	"net/http"

	"quizhub/middleware"
	"quizhub/services"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	quizService       *services.QuizService
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(quizService *services.QuizService, submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		quizService:       quizService,
		submissionService: submissionService,
	}
}

func (h *SubmissionHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListForParticipants()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req services.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.submissionService.Submit(identity.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SubmissionHandler) GetResult(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	quizID, ok := parseID(c, "quiz_id")
	if !ok {
		return
	}

	result, err := h.submissionService.GetResult(identity.ID, quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
