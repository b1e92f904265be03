package repository

import (
	"quiz-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionRepository handles database operations for questions
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// GetByQuizID retrieves all questions of a quiz in authoring order
func (r *QuestionRepository) GetByQuizID(quizID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Where("quiz_id = ?", quizID).Order("created_at ASC").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(id uuid.UUID) (*models.Question, error) {
	var question models.Question
	err := r.db.First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}
