package testutils

import (
	"fmt"
	"time"

	"quiz-platform-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenient access in test suites
type FactorySet struct {
	User       *UserFactory
	Company    *CompanyFactory
	Membership *MembershipFactory
	Quiz       *QuizFactory
	Result     *ResultFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Company:    NewCompanyFactory(),
		Membership: NewMembershipFactory(),
		Quiz:       NewQuizFactory(),
		Result:     NewResultFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username: "testuser",
		Email:    fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a visible test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Company",
		Description: "A test company",
		IsVisible:   true,
	}
}

// Hidden creates a company that is not publicly listed
func (f *CompanyFactory) Hidden() *models.Company {
	company := f.Create()
	company.IsVisible = false
	return company
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a membership edge with the given status
func (f *MembershipFactory) Create(userID, companyID uuid.UUID, status models.MembershipStatus) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:    userID,
		CompanyID: companyID,
		Status:    status,
	}
}

// QuizFactory provides methods to create test Quiz data
type QuizFactory struct{}

// NewQuizFactory creates a new QuizFactory
func NewQuizFactory() *QuizFactory {
	return &QuizFactory{}
}

// Create creates a quiz with two questions, each with one correct answer
func (f *QuizFactory) Create(companyID uuid.UUID) *models.Quiz {
	return &models.Quiz{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Quiz",
		Description: "A test quiz",
		CompanyID:   companyID,
		Questions: []models.Question{
			{
				Title: "First question?",
				Answers: []models.Answer{
					{Title: "Right", IsCorrect: true},
					{Title: "Wrong"},
				},
			},
			{
				Title: "Second question?",
				Answers: []models.Answer{
					{Title: "Also right", IsCorrect: true},
					{Title: "Also wrong"},
				},
			},
		},
	}
}

// ResultFactory provides methods to create test Result data
type ResultFactory struct{}

// NewResultFactory creates a new ResultFactory
func NewResultFactory() *ResultFactory {
	return &ResultFactory{}
}

// Create creates a result row with the given score
func (f *ResultFactory) Create(userID, quizID uuid.UUID, score int) *models.Result {
	return &models.Result{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:          userID,
		QuizID:          quizID,
		CorrectAnswers:  score / 50,
		TotalQuestions:  2,
		ScorePercentage: score,
	}
}
