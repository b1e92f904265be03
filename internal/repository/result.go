package repository

import (
	"time"

	"quiz-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LastAttempt is the most recent submission time of one user on one quiz
type LastAttempt struct {
	UserID      uuid.UUID `json:"user_id"`
	QuizID      uuid.UUID `json:"quiz_id"`
	LastAttempt time.Time `json:"last_attempt"`
}

// ResultRepository handles database operations for results
type ResultRepository struct {
	db *gorm.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// CreateWithQuizIncrement persists a result row and increments the quiz
// frequency counter atomically. Either both land or neither does.
func (r *ResultRepository) CreateWithQuizIncrement(result *models.Result) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return err
		}
		return tx.Model(&models.Quiz{}).
			Where("id = ?", result.QuizID).
			Update("frequency", gorm.Expr("frequency + 1")).Error
	})
}

// GetByUser retrieves a user's results in chronological order
func (r *ResultRepository) GetByUser(userID uuid.UUID) ([]models.Result, error) {
	var results []models.Result
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetByUserAndQuiz retrieves a user's results for one quiz in chronological order
func (r *ResultRepository) GetByUserAndQuiz(userID, quizID uuid.UUID) ([]models.Result, error) {
	var results []models.Result
	err := r.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetByUserAndCompany retrieves a user's results across a company's quizzes
// in chronological order
func (r *ResultRepository) GetByUserAndCompany(userID, companyID uuid.UUID) ([]models.Result, error) {
	var results []models.Result
	err := r.db.Joins("JOIN quizzes ON quizzes.id = results.quiz_id").
		Where("results.user_id = ? AND quizzes.company_id = ?", userID, companyID).
		Order("results.created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetByCompanyAndDateRange retrieves all results over a company's quizzes
// inside [from, to) in chronological order
func (r *ResultRepository) GetByCompanyAndDateRange(companyID uuid.UUID, from, to time.Time) ([]models.Result, error) {
	var results []models.Result
	err := r.db.Joins("JOIN quizzes ON quizzes.id = results.quiz_id").
		Where("quizzes.company_id = ? AND results.created_at >= ? AND results.created_at < ?", companyID, from, to).
		Order("results.created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetLastAttemptsByQuiz retrieves, per user, the latest submission time on
// one quiz of a company
func (r *ResultRepository) GetLastAttemptsByQuiz(companyID, quizID uuid.UUID) ([]LastAttempt, error) {
	var attempts []LastAttempt
	err := r.db.Model(&models.Result{}).
		Select("results.user_id, results.quiz_id, MAX(results.created_at) AS last_attempt").
		Joins("JOIN quizzes ON quizzes.id = results.quiz_id").
		Where("quizzes.company_id = ? AND results.quiz_id = ?", companyID, quizID).
		Group("results.user_id, results.quiz_id").
		Scan(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

// GetLatestPerQuizByUser retrieves, for one user, the most recent result row
// of every quiz the user has attempted
func (r *ResultRepository) GetLatestPerQuizByUser(userID uuid.UUID) ([]models.Result, error) {
	var results []models.Result
	sub := r.db.Model(&models.Result{}).
		Select("quiz_id, MAX(created_at) AS latest_attempt").
		Where("user_id = ?", userID).
		Group("quiz_id")
	err := r.db.Joins("JOIN (?) latest ON results.quiz_id = latest.quiz_id AND results.created_at = latest.latest_attempt", sub).
		Where("results.user_id = ?", userID).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
