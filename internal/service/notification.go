package service

import (
	"errors"
	"fmt"
	"time"

	"quiz-platform-backend/internal/database/models"
	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService handles a user's own notifications
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotificationResponse represents one notification
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	IsRead    bool      `json:"is_read"`
	CreatedAt string    `json:"created_at"`
}

func toNotificationResponses(notifications []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, notification := range notifications {
		responses[i] = NotificationResponse{
			ID:        notification.ID,
			UserID:    notification.UserID,
			Text:      notification.Text,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses
}

// GetNotifications lists all of the acting user's notifications
func (s *NotificationService) GetNotifications(user *models.User) ([]NotificationResponse, error) {
	notifications, err := s.repo.GetByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return toNotificationResponses(notifications), nil
}

// GetUnreadNotifications lists the acting user's unread notifications
func (s *NotificationService) GetUnreadNotifications(user *models.User) ([]NotificationResponse, error) {
	notifications, err := s.repo.GetUnreadByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return toNotificationResponses(notifications), nil
}

// MarkRead marks one of the acting user's notifications as read
func (s *NotificationService) MarkRead(id uuid.UUID, user *models.User) error {
	if _, err := s.repo.GetByIDAndUser(id, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if err := s.repo.MarkRead(id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
