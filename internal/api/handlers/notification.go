package handlers

import (
	"net/http"

	"quiz-platform-backend/internal/auth"
	"quiz-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles a user's own notifications
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetNotifications lists the authenticated user's notifications
// @Summary List own notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Success 200 {array} service.NotificationResponse
// @Security BearerAuth
// @Router /me/notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	actor, _ := auth.CurrentUser(c)

	var (
		notifications []service.NotificationResponse
		err           error
	)
	if c.Query("unread") == "true" {
		notifications, err = h.notificationService.GetUnreadNotifications(actor)
	} else {
		notifications, err = h.notificationService.GetNotifications(actor)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkRead marks one of the authenticated user's notifications as read
// @Summary Mark a notification read
// @Tags notifications
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Marked read"
// @Failure 404 {object} map[string]interface{} "Notification not found"
// @Security BearerAuth
// @Router /me/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	if err := h.notificationService.MarkRead(id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
