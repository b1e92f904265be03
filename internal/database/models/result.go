package models

import (
	"github.com/google/uuid"
)

// Result is one scored quiz submission. Rows are append-only: they are
// created by the scoring pipeline and never mutated or deleted.
type Result struct {
	BaseModel
	UserID          uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	QuizID          uuid.UUID `json:"quiz_id" gorm:"type:uuid;not null;index" validate:"required"`
	CorrectAnswers  int       `json:"correct_answers" gorm:"not null;default:0"`
	TotalQuestions  int       `json:"total_questions" gorm:"not null"`
	ScorePercentage int       `json:"score_percentage" gorm:"not null;default:0"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Quiz Quiz `json:"quiz,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Result
func (Result) TableName() string {
	return "results"
}
