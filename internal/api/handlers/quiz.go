package handlers

import (
	"net/http"

	"quiz-platform-backend/internal/auth"
	"quiz-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// QuizHandler handles HTTP requests for quiz authoring and reading
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// CreateQuiz authors a quiz for the company
// @Summary Create a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param quiz body service.CreateQuizRequest true "Quiz with questions and answers"
// @Success 201 {object} service.QuizResponse
// @Failure 400 {object} map[string]interface{} "Invalid quiz"
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /companies/{id}/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	var req service.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(companyID, &req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// GetCompanyQuizzes lists the company's quizzes
// @Summary List company quizzes
// @Tags quizzes
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.QuizListResponse
// @Security BearerAuth
// @Router /companies/{id}/quizzes [get]
func (h *QuizHandler) GetCompanyQuizzes(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	limit, offset := pagination(c)
	actor, _ := auth.CurrentUser(c)

	quizzes, err := h.quizService.GetCompanyQuizzes(companyID, limit, offset, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuiz retrieves a quiz with its questions
// @Summary Get quiz by ID
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID (UUID)"
// @Success 200 {object} service.QuizResponse
// @Failure 404 {object} map[string]interface{} "Quiz not found"
// @Security BearerAuth
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	quiz, err := h.quizService.GetQuiz(id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// UpdateQuiz updates a quiz's title and description
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID (UUID)"
// @Param quiz body service.UpdateQuizRequest true "Fields to update"
// @Success 200 {object} service.QuizResponse
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	var req service.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.UpdateQuiz(id, &req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz deletes a quiz
// @Summary Delete a quiz
// @Tags quizzes
// @Param id path string true "Quiz ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	if err := h.quizService.DeleteQuiz(id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
