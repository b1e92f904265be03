package models

import (
	"github.com/google/uuid"
)

// Notification is a message emitted to a user, e.g. by the reminder sweep.
type Notification struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Text   string    `json:"text" gorm:"type:text;not null" validate:"required"`
	IsRead bool      `json:"is_read" gorm:"default:false"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
