package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"quiz-platform-backend/internal/cache"
	"quiz-platform-backend/internal/database/models"
	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/logger"
	"quiz-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultService runs the scoring pipeline. A submission is graded against
// the quiz's correct-answer sets, persisted atomically together with the
// quiz frequency increment, and mirrored into the export cache afterwards.
// The cache write is best effort: its failure is reported but never undoes
// the committed result.
type ResultService struct {
	repo           repository.ResultRepositoryInterface
	quizRepo       repository.QuizRepositoryInterface
	companyRepo    repository.CompanyRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	cache          cache.ResultCacheInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// NewResultService creates a new result service
func NewResultService(
	repo repository.ResultRepositoryInterface,
	quizRepo repository.QuizRepositoryInterface,
	companyRepo repository.CompanyRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	resultCache cache.ResultCacheInterface,
	validator *validator.Validate,
) *ResultService {
	return &ResultService{
		repo:           repo,
		quizRepo:       quizRepo,
		companyRepo:    companyRepo,
		membershipRepo: membershipRepo,
		cache:          resultCache,
		validator:      validator,
		log:            logger.New(),
	}
}

// SubmittedAnswer is the answer selection for one question of a submission
type SubmittedAnswer struct {
	QuestionID uuid.UUID   `json:"question_id" validate:"required"`
	AnswerIDs  []uuid.UUID `json:"answer_ids" validate:"required,min=1"`
}

// SubmitQuizRequest represents one quiz submission
type SubmitQuizRequest struct {
	Answers []SubmittedAnswer `json:"answers" validate:"required,min=1,dive"`
}

// ResultResponse represents one scored submission
type ResultResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	QuizID          uuid.UUID `json:"quiz_id"`
	CorrectAnswers  int       `json:"correct_answers"`
	TotalQuestions  int       `json:"total_questions"`
	ScorePercentage int       `json:"score_percentage"`
	CreatedAt       string    `json:"created_at"`
}

// AverageScoreResponse represents a user's mean score over a result scope
type AverageScoreResponse struct {
	UserID       uuid.UUID  `json:"user_id"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	AverageScore float64    `json:"average_score"`
	Attempts     int        `json:"attempts"`
}

func toResultResponse(result *models.Result) *ResultResponse {
	return &ResultResponse{
		ID:              result.ID,
		UserID:          result.UserID,
		QuizID:          result.QuizID,
		CorrectAnswers:  result.CorrectAnswers,
		TotalQuestions:  result.TotalQuestions,
		ScorePercentage: result.ScorePercentage,
		CreatedAt:       result.CreatedAt.Format(time.RFC3339),
	}
}

func toIDSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func sameIDSet(a, b map[uuid.UUID]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SubmitQuiz grades a submission and persists the result. Correctness per
// question is exact set equality between the submitted answer ids and the
// question's correct-answer ids; there is no partial credit. A submission
// referencing a question outside the quiz is rejected before grading. Only
// members may submit; owners and admins who never became a member are
// rejected.
//
// A non-nil response together with a CacheWriteError means the result was
// committed but the export blob was lost; callers must treat the submission
// as successful.
func (s *ResultService) SubmitQuiz(ctx context.Context, quizID uuid.UUID, req *SubmitQuizRequest, user *models.User) (*ResultResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	quiz, err := s.quizRepo.GetWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if err := requireMember(s.membershipRepo, quiz.CompanyID, user.ID); err != nil {
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, apperrors.ErrQuizHasNoQuestions
	}

	questionIDs := make(map[uuid.UUID]struct{}, len(quiz.Questions))
	for _, question := range quiz.Questions {
		questionIDs[question.ID] = struct{}{}
	}

	submitted := make(map[uuid.UUID]map[uuid.UUID]struct{}, len(req.Answers))
	for _, answer := range req.Answers {
		if _, ok := questionIDs[answer.QuestionID]; !ok {
			return nil, apperrors.NewValidationError("answers",
				fmt.Sprintf("question %s is not part of this quiz", answer.QuestionID))
		}
		submitted[answer.QuestionID] = toIDSet(answer.AnswerIDs)
	}

	answerTitles := make(map[uuid.UUID]string)
	for _, question := range quiz.Questions {
		for _, answer := range question.Answers {
			answerTitles[answer.ID] = answer.Title
		}
	}

	details := make([]cache.AnswerDetail, 0, len(quiz.Questions))
	correct := 0
	for _, question := range quiz.Questions {
		expected := make(map[uuid.UUID]struct{})
		for _, answer := range question.Answers {
			if answer.IsCorrect {
				expected[answer.ID] = struct{}{}
			}
		}

		chosen := submitted[question.ID]
		isCorrect := chosen != nil && sameIDSet(chosen, expected)
		if isCorrect {
			correct++
		}

		detail := cache.AnswerDetail{Question: question.Title, IsCorrect: isCorrect}
		for id := range chosen {
			if title, ok := answerTitles[id]; ok {
				detail.Answers = append(detail.Answers, title)
			}
		}
		details = append(details, detail)
	}

	total := len(quiz.Questions)
	result := &models.Result{
		UserID:          user.ID,
		QuizID:          quiz.ID,
		CorrectAnswers:  correct,
		TotalQuestions:  total,
		ScorePercentage: int(math.Round(float64(correct) / float64(total) * 100)),
	}
	if err := s.repo.CreateWithQuizIncrement(result); err != nil {
		return nil, fmt.Errorf("failed to persist result: %w", err)
	}

	response := toResultResponse(result)

	companyName := ""
	if company, err := s.companyRepo.GetByID(quiz.CompanyID); err == nil {
		companyName = company.Name
	}
	detail := &cache.ResultDetail{
		UserID:      user.ID.String(),
		QuizName:    quiz.Title,
		CompanyName: companyName,
		Answers:     details,
	}
	if err := s.cache.SaveResultDetail(ctx, user.ID, quiz.ID, quiz.CompanyID, detail); err != nil {
		s.log.WithField("quiz_id", quiz.ID).WithField("user_id", user.ID).
			WithField("error", err.Error()).
			Warn("result detail cache write failed")
		return response, err
	}
	return response, nil
}

// GetUserCompanyAverage returns a user's mean score over one company's
// quizzes. Readable by the user themselves and by the company's owner or
// admins.
func (s *ResultService) GetUserCompanyAverage(companyID, userID uuid.UUID, actor *models.User) (*AverageScoreResponse, error) {
	if actor.ID != userID {
		if err := requireOwnerOrAdmin(s.membershipRepo, companyID, actor.ID); err != nil {
			return nil, err
		}
	}

	results, err := s.repo.GetByUserAndCompany(userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	return &AverageScoreResponse{
		UserID:       userID,
		CompanyID:    &companyID,
		AverageScore: averageScore(results),
		Attempts:     len(results),
	}, nil
}

// GetUserSystemAverage returns the acting user's mean score across all
// quizzes on the platform. Self only.
func (s *ResultService) GetUserSystemAverage(userID uuid.UUID, actor *models.User) (*AverageScoreResponse, error) {
	if actor.ID != userID {
		return nil, apperrors.ErrNotSelf
	}

	results, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	return &AverageScoreResponse{
		UserID:       userID,
		AverageScore: averageScore(results),
		Attempts:     len(results),
	}, nil
}

func averageScore(results []models.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, result := range results {
		sum += result.ScorePercentage
	}
	return round1(float64(sum) / float64(len(results)))
}
