package repository

import (
	"quiz-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizRepository handles database operations for quizzes
type QuizRepository struct {
	db *gorm.DB
}

// NewQuizRepository creates a new quiz repository
func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// Create creates a new quiz together with its nested questions and answers
func (r *QuizRepository) Create(quiz *models.Quiz) error {
	return r.db.Create(quiz).Error
}

// GetByID retrieves a quiz by ID
func (r *QuizRepository) GetByID(id uuid.UUID) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GetWithQuestions retrieves a quiz with its questions and answers preloaded
func (r *QuizRepository) GetWithQuestions(id uuid.UUID) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.Preload("Questions.Answers").First(&quiz, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GetByCompanyID retrieves all quizzes for a company with pagination
func (r *QuizRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Quiz, int64, error) {
	var quizzes []models.Quiz
	var total int64

	if err := r.db.Model(&models.Quiz{}).Where("company_id = ?", companyID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Where("company_id = ?", companyID).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&quizzes).Error; err != nil {
		return nil, 0, err
	}

	return quizzes, total, nil
}

// Update updates a quiz
func (r *QuizRepository) Update(quiz *models.Quiz) error {
	return r.db.Save(quiz).Error
}

// Delete deletes a quiz
func (r *QuizRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Quiz{}, "id = ?", id).Error
}
