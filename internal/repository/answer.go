package repository

import (
	"quiz-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerRepository handles database operations for answers
type AnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// GetCorrectByQuestionID retrieves the answers of a question flagged correct
func (r *AnswerRepository) GetCorrectByQuestionID(questionID uuid.UUID) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Where("question_id = ? AND is_correct = ?", questionID, true).Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// GetByIDs retrieves answers whose id is in the given set
func (r *AnswerRepository) GetByIDs(ids []uuid.UUID) ([]models.Answer, error) {
	var answers []models.Answer
	if len(ids) == 0 {
		return answers, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}
