package handlers

import (
	"net/http"
	"time"

	"quiz-platform-backend/internal/auth"
	"quiz-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles score-progression reads
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetMyProgress returns the authenticated user's progression across all quizzes
// @Summary Get own score progression
// @Tags analytics
// @Produce json
// @Success 200 {array} service.ProgressPoint
// @Security BearerAuth
// @Router /me/analytics [get]
func (h *AnalyticsHandler) GetMyProgress(c *gin.Context) {
	actor, _ := auth.CurrentUser(c)

	points, err := h.analyticsService.GetUserProgress(actor.ID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetMyQuizProgress returns the authenticated user's progression on one quiz
// @Summary Get own progression on a quiz
// @Tags analytics
// @Produce json
// @Param id path string true "Quiz ID (UUID)"
// @Success 200 {array} service.ProgressPoint
// @Security BearerAuth
// @Router /me/analytics/quizzes/{id} [get]
func (h *AnalyticsHandler) GetMyQuizProgress(c *gin.Context) {
	quizID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	points, err := h.analyticsService.GetUserQuizProgress(actor.ID, quizID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetMyCompanyProgress returns the authenticated user's progression over one
// company's quizzes
// @Summary Get own progression in a company
// @Tags analytics
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {array} service.ProgressPoint
// @Security BearerAuth
// @Router /me/analytics/companies/{id} [get]
func (h *AnalyticsHandler) GetMyCompanyProgress(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	points, err := h.analyticsService.GetUserCompanyProgress(actor.ID, companyID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetCompanyProgress returns the company-wide progression in a date range
// @Summary Get a company's score progression
// @Tags analytics
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param from query string false "Range start (RFC 3339)"
// @Param to query string false "Range end (RFC 3339)"
// @Success 200 {array} service.ProgressPoint
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /companies/{id}/analytics [get]
func (h *AnalyticsHandler) GetCompanyProgress(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	from, toTime, ok := dateRange(c)
	if !ok {
		return
	}

	points, err := h.analyticsService.GetCompanyProgress(companyID, from, toTime, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetMemberProgress returns one member's progression for the company
// @Summary Get a member's score progression
// @Tags analytics
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {array} service.ProgressPoint
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /companies/{id}/analytics/users/{user_id} [get]
func (h *AnalyticsHandler) GetMemberProgress(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	points, err := h.analyticsService.GetMemberProgress(companyID, userID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetQuizLastAttempts returns per-user last attempt times on one quiz
// @Summary Get last attempt times on a quiz
// @Tags analytics
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param quiz_id path string true "Quiz ID (UUID)"
// @Success 200 {array} service.LastAttemptResponse
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /companies/{id}/analytics/quizzes/{quiz_id}/last-attempts [get]
func (h *AnalyticsHandler) GetQuizLastAttempts(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	quizID, ok := uuidParam(c, "quiz_id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	attempts, err := h.analyticsService.GetQuizLastAttempts(companyID, quizID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// dateRange reads the from/to query parameters, defaulting to the last 30
// days, and responds 400 itself on a malformed timestamp
func dateRange(c *gin.Context) (from, to time.Time, ok bool) {
	now := time.Now()
	from = now.AddDate(0, 0, -30)
	to = now

	var err error
	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from timestamp"})
			return from, to, false
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to timestamp"})
			return from, to, false
		}
	}
	return from, to, true
}
