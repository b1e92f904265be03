package repository

import (
	"time"

	"quiz-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetVisible(limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for the membership
// ledger storage plus the authorization guard predicates derived from it
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	GetByID(id uuid.UUID) (*models.Membership, error)
	GetByUserAndCompany(userID, companyID uuid.UUID) (*models.Membership, error)
	GetByIDAndCompany(id, companyID uuid.UUID) (*models.Membership, error)
	GetByIDAndUser(id, userID uuid.UUID) (*models.Membership, error)
	UpdateStatusFrom(id uuid.UUID, from, to models.MembershipStatus) error
	IsOwnerOrAdmin(companyID, userID uuid.UUID) (bool, error)
	IsMember(companyID, userID uuid.UUID) (bool, error)
	GetByCompanyAndStatus(companyID uuid.UUID, status models.MembershipStatus) ([]models.Membership, error)
	GetByUserAndStatus(userID uuid.UUID, status models.MembershipStatus) ([]models.Membership, error)
	GetUsersByCompanyAndStatus(companyID uuid.UUID, status models.MembershipStatus, limit, offset int) ([]models.User, int64, error)
}

// QuizRepositoryInterface defines the interface for quiz repository operations
type QuizRepositoryInterface interface {
	Create(quiz *models.Quiz) error
	GetByID(id uuid.UUID) (*models.Quiz, error)
	GetWithQuestions(id uuid.UUID) (*models.Quiz, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Quiz, int64, error)
	Update(quiz *models.Quiz) error
	Delete(id uuid.UUID) error
}

// QuestionRepositoryInterface defines the interface for question repository operations
type QuestionRepositoryInterface interface {
	GetByQuizID(quizID uuid.UUID) ([]models.Question, error)
	GetByID(id uuid.UUID) (*models.Question, error)
}

// AnswerRepositoryInterface defines the interface for answer repository operations
type AnswerRepositoryInterface interface {
	GetCorrectByQuestionID(questionID uuid.UUID) ([]models.Answer, error)
	GetByIDs(ids []uuid.UUID) ([]models.Answer, error)
}

// ResultRepositoryInterface defines the interface for result repository
// operations. Result rows are append-only; CreateWithQuizIncrement persists
// the row and bumps the quiz frequency counter in one transaction.
type ResultRepositoryInterface interface {
	CreateWithQuizIncrement(result *models.Result) error
	GetByUser(userID uuid.UUID) ([]models.Result, error)
	GetByUserAndQuiz(userID, quizID uuid.UUID) ([]models.Result, error)
	GetByUserAndCompany(userID, companyID uuid.UUID) ([]models.Result, error)
	GetByCompanyAndDateRange(companyID uuid.UUID, from, to time.Time) ([]models.Result, error)
	GetLastAttemptsByQuiz(companyID, quizID uuid.UUID) ([]LastAttempt, error)
	GetLatestPerQuizByUser(userID uuid.UUID) ([]models.Result, error)
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByUser(userID uuid.UUID) ([]models.Notification, error)
	GetUnreadByUser(userID uuid.UUID) ([]models.Notification, error)
	GetByIDAndUser(id, userID uuid.UUID) (*models.Notification, error)
	MarkRead(id uuid.UUID) error
}
