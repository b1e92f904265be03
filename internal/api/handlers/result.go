package handlers

import (
	"fmt"
	"net/http"

	"quiz-platform-backend/internal/auth"
	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResultHandler handles quiz submissions, average-score reads and exports
type ResultHandler struct {
	resultService *service.ResultService
	exportService *service.ExportService
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultService *service.ResultService, exportService *service.ExportService) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
		exportService: exportService,
	}
}

// SubmitQuiz grades a submission for the authenticated user
// @Summary Submit quiz answers
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID (UUID)"
// @Param submission body service.SubmitQuizRequest true "Answer selections"
// @Success 201 {object} service.ResultResponse
// @Failure 403 {object} map[string]interface{} "Member role required"
// @Failure 404 {object} map[string]interface{} "Quiz not found"
// @Security BearerAuth
// @Router /quizzes/{id}/submissions [post]
func (h *ResultHandler) SubmitQuiz(c *gin.Context) {
	quizID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	var req service.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resultService.SubmitQuiz(c.Request.Context(), quizID, &req, actor)
	if err != nil {
		// A lost cache blob does not fail the committed submission
		if result != nil && apperrors.IsCacheWrite(err) {
			c.JSON(http.StatusCreated, result)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetUserCompanyAverage returns a user's mean score in one company
// @Summary Get a user's average score in a company
// @Tags results
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} service.AverageScoreResponse
// @Failure 403 {object} map[string]interface{} "Self or owner/admin required"
// @Security BearerAuth
// @Router /companies/{id}/users/{user_id}/average [get]
func (h *ResultHandler) GetUserCompanyAverage(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	average, err := h.resultService.GetUserCompanyAverage(companyID, userID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, average)
}

// GetMyAverage returns the authenticated user's mean score across the platform
// @Summary Get own overall average score
// @Tags results
// @Produce json
// @Success 200 {object} service.AverageScoreResponse
// @Security BearerAuth
// @Router /me/average [get]
func (h *ResultHandler) GetMyAverage(c *gin.Context) {
	actor, _ := auth.CurrentUser(c)

	average, err := h.resultService.GetUserSystemAverage(actor.ID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, average)
}

// ExportMyResults downloads the authenticated user's recent submissions
// @Summary Export own recent results
// @Tags results
// @Produce json
// @Produce text/csv
// @Param format query string false "Export format: json or csv" default(json)
// @Success 200 {string} string "Export document"
// @Security BearerAuth
// @Router /me/results/export [get]
func (h *ResultHandler) ExportMyResults(c *gin.Context) {
	actor, _ := auth.CurrentUser(c)
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatJSON)))

	payload, contentType, err := h.exportService.ExportUserResults(c.Request.Context(), actor.ID, format, actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=results.%s", format))
	c.Data(http.StatusOK, contentType, payload)
}

// ExportCompanyResults downloads a company's recent submissions
// @Summary Export a company's recent results
// @Tags results
// @Produce json
// @Produce text/csv
// @Param id path string true "Company ID (UUID)"
// @Param format query string false "Export format: json or csv" default(json)
// @Success 200 {string} string "Export document"
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /companies/{id}/results/export [get]
func (h *ResultHandler) ExportCompanyResults(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatJSON)))

	payload, contentType, err := h.exportService.ExportCompanyResults(c.Request.Context(), companyID, format, actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=results.%s", format))
	c.Data(http.StatusOK, contentType, payload)
}
