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

// AnalyticsService computes read-only rollups over result rows. Per-user
// progressions are self only; company-wide views require owner or admin.
type AnalyticsService struct {
	resultRepo     repository.ResultRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	quizRepo       repository.QuizRepositoryInterface
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	resultRepo repository.ResultRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	quizRepo repository.QuizRepositoryInterface,
) *AnalyticsService {
	return &AnalyticsService{
		resultRepo:     resultRepo,
		membershipRepo: membershipRepo,
		quizRepo:       quizRepo,
	}
}

// ProgressPoint is one step of a score progression. AverageScore is the
// cumulative mean of all attempts up to and including this one.
type ProgressPoint struct {
	LastAttempt     string  `json:"last_attempt"`
	AverageScore    float64 `json:"average_score"`
	ScorePercentage int     `json:"score_percentage"`
}

// LastAttemptResponse is one user's most recent submission time on a quiz
type LastAttemptResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	QuizID      uuid.UUID `json:"quiz_id"`
	LastAttempt string    `json:"last_attempt"`
}

// calculationResult turns a chronologically ordered result sequence into a
// progression of running averages. Each point reflects the mean as of that
// attempt, so input order must be preserved, not re-sorted.
func calculationResult(results []models.Result) []ProgressPoint {
	points := make([]ProgressPoint, 0, len(results))
	sum := 0
	for i, result := range results {
		sum += result.ScorePercentage
		points = append(points, ProgressPoint{
			LastAttempt:     result.CreatedAt.Format(time.RFC3339),
			AverageScore:    round1(float64(sum) / float64(i+1)),
			ScorePercentage: result.ScorePercentage,
		})
	}
	return points
}

// GetUserProgress returns the acting user's progression across all quizzes
func (s *AnalyticsService) GetUserProgress(userID uuid.UUID, actor *models.User) ([]ProgressPoint, error) {
	if actor.ID != userID {
		return nil, apperrors.ErrNotSelf
	}
	results, err := s.resultRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	return calculationResult(results), nil
}

// GetUserQuizProgress returns the acting user's progression on one quiz
func (s *AnalyticsService) GetUserQuizProgress(userID, quizID uuid.UUID, actor *models.User) ([]ProgressPoint, error) {
	if actor.ID != userID {
		return nil, apperrors.ErrNotSelf
	}
	if _, err := s.quizRepo.GetByID(quizID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	results, err := s.resultRepo.GetByUserAndQuiz(userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	return calculationResult(results), nil
}

// GetUserCompanyProgress returns the acting user's progression over one
// company's quizzes
func (s *AnalyticsService) GetUserCompanyProgress(userID, companyID uuid.UUID, actor *models.User) ([]ProgressPoint, error) {
	if actor.ID != userID {
		return nil, apperrors.ErrNotSelf
	}
	results, err := s.resultRepo.GetByUserAndCompany(userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	return calculationResult(results), nil
}

// GetCompanyProgress returns the progression over all of a company's
// submissions inside [from, to). Owner or admin only.
func (s *AnalyticsService) GetCompanyProgress(companyID uuid.UUID, from, to time.Time, actor *models.User) ([]ProgressPoint, error) {
	if err := requireOwnerOrAdmin(s.membershipRepo, companyID, actor.ID); err != nil {
		return nil, err
	}
	results, err := s.resultRepo.GetByCompanyAndDateRange(companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	return calculationResult(results), nil
}

// GetMemberProgress returns one member's progression over a company's
// quizzes for the company's owner or admins
func (s *AnalyticsService) GetMemberProgress(companyID, userID uuid.UUID, actor *models.User) ([]ProgressPoint, error) {
	if err := requireOwnerOrAdmin(s.membershipRepo, companyID, actor.ID); err != nil {
		return nil, err
	}
	results, err := s.resultRepo.GetByUserAndCompany(userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	return calculationResult(results), nil
}

// GetQuizLastAttempts returns, per user, the most recent submission time on
// one of the company's quizzes. Owner or admin only.
func (s *AnalyticsService) GetQuizLastAttempts(companyID, quizID uuid.UUID, actor *models.User) ([]LastAttemptResponse, error) {
	if err := requireOwnerOrAdmin(s.membershipRepo, companyID, actor.ID); err != nil {
		return nil, err
	}
	attempts, err := s.resultRepo.GetLastAttemptsByQuiz(companyID, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get last attempts: %w", err)
	}
	responses := make([]LastAttemptResponse, len(attempts))
	for i, attempt := range attempts {
		responses[i] = LastAttemptResponse{
			UserID:      attempt.UserID,
			QuizID:      attempt.QuizID,
			LastAttempt: attempt.LastAttempt.Format(time.RFC3339),
		}
	}
	return responses, nil
}
