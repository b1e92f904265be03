package models

import (
	"github.com/google/uuid"
)

// Quiz represents a quiz owned by a company. Frequency counts submissions.
type Quiz struct {
	BaseModel
	Title       string    `json:"title" gorm:"not null;size:250" validate:"required,max=250"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Frequency   int       `json:"frequency" gorm:"default:0"`
	CompanyID   uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Company   Company    `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Results   []Result   `json:"results,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Quiz
func (Quiz) TableName() string {
	return "quizzes"
}

// Question belongs to a quiz and carries an ordered set of answers.
type Question struct {
	BaseModel
	QuizID uuid.UUID `json:"quiz_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title  string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`

	// Relationships
	Quiz    Quiz     `json:"quiz,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Question
func (Question) TableName() string {
	return "questions"
}

// Answer is one option of a question.
type Answer struct {
	BaseModel
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title      string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	IsCorrect  bool      `json:"is_correct" gorm:"default:false"`

	// Relationships
	Question Question `json:"question,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Answer
func (Answer) TableName() string {
	return "answers"
}
