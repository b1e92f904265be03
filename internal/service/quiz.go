package service

import (
	"errors"
	"fmt"
	"time"

	"quiz-platform-backend/internal/database/models"
	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizService handles business logic for quiz authoring and reading.
// Authoring is restricted to the company's owner and admins; reading is open
// to anyone associated with the company. Correct-answer flags never leave
// this package through the reading path.
type QuizService struct {
	repo           repository.QuizRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	companyRepo    repository.CompanyRepositoryInterface
	validator      *validator.Validate
}

// NewQuizService creates a new quiz service
func NewQuizService(
	repo repository.QuizRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	companyRepo repository.CompanyRepositoryInterface,
	validator *validator.Validate,
) *QuizService {
	return &QuizService{
		repo:           repo,
		membershipRepo: membershipRepo,
		companyRepo:    companyRepo,
		validator:      validator,
	}
}

// CreateAnswerRequest is one answer option of a new question
type CreateAnswerRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	IsCorrect bool   `json:"is_correct"`
}

// CreateQuestionRequest is one question of a new quiz
type CreateQuestionRequest struct {
	Title   string                `json:"title" validate:"required,max=200"`
	Answers []CreateAnswerRequest `json:"answers" validate:"required,min=2,dive"`
}

// CreateQuizRequest represents the data needed to author a quiz
type CreateQuizRequest struct {
	Title       string                  `json:"title" validate:"required,max=250"`
	Description string                  `json:"description"`
	Questions   []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

// UpdateQuizRequest represents the data needed to update quiz metadata
type UpdateQuizRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=250"`
	Description *string `json:"description"`
}

// AnswerOptionResponse is one selectable answer, without its correctness flag
type AnswerOptionResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// QuestionResponse is one question with its answer options
type QuestionResponse struct {
	ID      uuid.UUID              `json:"id"`
	Title   string                 `json:"title"`
	Answers []AnswerOptionResponse `json:"answers"`
}

// QuizResponse represents the response data for a quiz
type QuizResponse struct {
	ID          uuid.UUID          `json:"id"`
	CompanyID   uuid.UUID          `json:"company_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Frequency   int                `json:"frequency"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// QuizListResponse represents a paginated list of quizzes
type QuizListResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
	Total   int64          `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

func toQuizResponse(quiz *models.Quiz) *QuizResponse {
	resp := &QuizResponse{
		ID:          quiz.ID,
		CompanyID:   quiz.CompanyID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Frequency:   quiz.Frequency,
		CreatedAt:   quiz.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   quiz.UpdatedAt.Format(time.RFC3339),
	}
	for _, question := range quiz.Questions {
		q := QuestionResponse{ID: question.ID, Title: question.Title}
		for _, answer := range question.Answers {
			q.Answers = append(q.Answers, AnswerOptionResponse{ID: answer.ID, Title: answer.Title})
		}
		resp.Questions = append(resp.Questions, q)
	}
	return resp
}

// requireAssociated passes for members, admins and the owner of a company.
// A missing ledger row reads the same as an inactive one.
func (s *QuizService) requireAssociated(companyID, userID uuid.UUID) error {
	membership, err := s.membershipRepo.GetByUserAndCompany(userID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotOwnerOrAdmin
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !membership.IsActive() {
		return apperrors.ErrNotOwnerOrAdmin
	}
	return nil
}

// CreateQuiz authors a quiz with its questions and answers in one shot
func (s *QuizService) CreateQuiz(companyID uuid.UUID, req *CreateQuizRequest, actor *models.User) (*QuizResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	for i, question := range req.Questions {
		correct := 0
		for _, answer := range question.Answers {
			if answer.IsCorrect {
				correct++
			}
		}
		if correct == 0 {
			return nil, apperrors.NewValidationError("questions",
				fmt.Sprintf("question %d has no correct answer", i+1))
		}
	}

	if _, err := s.companyRepo.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if err := requireOwnerOrAdmin(s.membershipRepo, companyID, actor.ID); err != nil {
		return nil, err
	}

	quiz := &models.Quiz{
		Title:       req.Title,
		Description: req.Description,
		CompanyID:   companyID,
	}
	for _, question := range req.Questions {
		q := models.Question{Title: question.Title}
		for _, answer := range question.Answers {
			q.Answers = append(q.Answers, models.Answer{
				Title:     answer.Title,
				IsCorrect: answer.IsCorrect,
			})
		}
		quiz.Questions = append(quiz.Questions, q)
	}
	if err := s.repo.Create(quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}
	return toQuizResponse(quiz), nil
}

// GetQuiz retrieves a quiz with its questions for an associated user
func (s *QuizService) GetQuiz(id uuid.UUID, actor *models.User) (*QuizResponse, error) {
	quiz, err := s.repo.GetWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if err := s.requireAssociated(quiz.CompanyID, actor.ID); err != nil {
		return nil, err
	}
	return toQuizResponse(quiz), nil
}

// GetCompanyQuizzes lists a company's quizzes for an associated user
func (s *QuizService) GetCompanyQuizzes(companyID uuid.UUID, limit, offset int, actor *models.User) (*QuizListResponse, error) {
	if _, err := s.companyRepo.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if err := s.requireAssociated(companyID, actor.ID); err != nil {
		return nil, err
	}

	quizzes, total, err := s.repo.GetByCompanyID(companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get quizzes: %w", err)
	}
	responses := make([]QuizResponse, len(quizzes))
	for i := range quizzes {
		responses[i] = *toQuizResponse(&quizzes[i])
	}
	return &QuizListResponse{
		Quizzes: responses,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// UpdateQuiz updates a quiz's title and description
func (s *QuizService) UpdateQuiz(id uuid.UUID, req *UpdateQuizRequest, actor *models.User) (*QuizResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	quiz, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if err := requireOwnerOrAdmin(s.membershipRepo, quiz.CompanyID, actor.ID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if err := s.repo.Update(quiz); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}
	return toQuizResponse(quiz), nil
}

// DeleteQuiz deletes a quiz
func (s *QuizService) DeleteQuiz(id uuid.UUID, actor *models.User) error {
	quiz, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrQuizNotFound
		}
		return fmt.Errorf("failed to get quiz: %w", err)
	}
	if err := requireOwnerOrAdmin(s.membershipRepo, quiz.CompanyID, actor.ID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	return nil
}
