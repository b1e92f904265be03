package scheduler_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"quiz-platform-backend/internal/database/models"
	"quiz-platform-backend/internal/mocks"
	"quiz-platform-backend/internal/scheduler"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ReminderJobTestSuite defines the test suite for ReminderJob
type ReminderJobTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockUserRepo         *mocks.MockUserRepositoryInterface
	mockResultRepo       *mocks.MockResultRepositoryInterface
	mockQuizRepo         *mocks.MockQuizRepositoryInterface
	mockNotificationRepo *mocks.MockNotificationRepositoryInterface
	job                  *scheduler.ReminderJob
}

// SetupTest sets up the test suite
func (suite *ReminderJobTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockResultRepo = mocks.NewMockResultRepositoryInterface(suite.ctrl)
	suite.mockQuizRepo = mocks.NewMockQuizRepositoryInterface(suite.ctrl)
	suite.mockNotificationRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)

	suite.job = scheduler.NewReminderJob(
		suite.mockUserRepo,
		suite.mockResultRepo,
		suite.mockQuizRepo,
		suite.mockNotificationRepo,
		"0 0 0 * * *",
	)
}

// TearDownTest cleans up after each test
func (suite *ReminderJobTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func staleResult(quizID uuid.UUID, age time.Duration) models.Result {
	return models.Result{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now().Add(-age),
		},
		QuizID: quizID,
	}
}

// TestRunRemindsStaleAttempts tests that quizzes last attempted more than
// a day ago produce a reminder notification
func (suite *ReminderJobTestSuite) TestRunRemindsStaleAttempts() {
	user := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice", Email: "alice@example.com"}
	quizID := uuid.New()
	quiz := &models.Quiz{BaseModel: models.BaseModel{ID: quizID}, Title: "Onboarding"}

	suite.mockUserRepo.EXPECT().
		GetAll(200, 0).
		Return([]models.User{user}, int64(1), nil).
		Times(1)
	suite.mockResultRepo.EXPECT().
		GetLatestPerQuizByUser(user.ID).
		Return([]models.Result{staleResult(quizID, 48 * time.Hour)}, nil).
		Times(1)
	suite.mockQuizRepo.EXPECT().
		GetByID(quizID).
		Return(quiz, nil).
		Times(1)
	suite.mockNotificationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			assert.Equal(suite.T(), user.ID, n.UserID)
			assert.Equal(suite.T(), fmt.Sprintf("It's time to take the quiz '%s'!", quiz.Title), n.Text)
			return nil
		}).
		Times(1)

	suite.job.Run()
}

// TestRunSkipsFreshAttempts tests that a quiz attempted within the last
// day is not reminded about
func (suite *ReminderJobTestSuite) TestRunSkipsFreshAttempts() {
	user := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice", Email: "alice@example.com"}

	suite.mockUserRepo.EXPECT().
		GetAll(200, 0).
		Return([]models.User{user}, int64(1), nil).
		Times(1)
	suite.mockResultRepo.EXPECT().
		GetLatestPerQuizByUser(user.ID).
		Return([]models.Result{staleResult(uuid.New(), time.Hour)}, nil).
		Times(1)

	suite.job.Run()
}

// TestRunSkipsDeletedQuizzes tests that attempts on since-deleted quizzes
// produce no notification
func (suite *ReminderJobTestSuite) TestRunSkipsDeletedQuizzes() {
	user := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice", Email: "alice@example.com"}
	quizID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetAll(200, 0).
		Return([]models.User{user}, int64(1), nil).
		Times(1)
	suite.mockResultRepo.EXPECT().
		GetLatestPerQuizByUser(user.ID).
		Return([]models.Result{staleResult(quizID, 48 * time.Hour)}, nil).
		Times(1)
	suite.mockQuizRepo.EXPECT().
		GetByID(quizID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.job.Run()
}

// TestRunContinuesPastFailingUser tests that one user's failure does not
// stop the sweep for the rest of the page
func (suite *ReminderJobTestSuite) TestRunContinuesPastFailingUser() {
	broken := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "broken", Email: "broken@example.com"}
	healthy := models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "healthy", Email: "healthy@example.com"}

	suite.mockUserRepo.EXPECT().
		GetAll(200, 0).
		Return([]models.User{broken, healthy}, int64(2), nil).
		Times(1)
	suite.mockResultRepo.EXPECT().
		GetLatestPerQuizByUser(broken.ID).
		Return(nil, errors.New("connection reset")).
		Times(1)
	suite.mockResultRepo.EXPECT().
		GetLatestPerQuizByUser(healthy.ID).
		Return(nil, nil).
		Times(1)

	suite.job.Run()
}

// TestRunPaginatesUsers tests that the sweep walks every user page
func (suite *ReminderJobTestSuite) TestRunPaginatesUsers() {
	page1 := make([]models.User, 200)
	for i := range page1 {
		page1[i] = models.User{BaseModel: models.BaseModel{ID: uuid.New()}}
	}
	page2 := []models.User{{BaseModel: models.BaseModel{ID: uuid.New()}}}
	total := int64(201)

	suite.mockUserRepo.EXPECT().
		GetAll(200, 0).
		Return(page1, total, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetAll(200, 200).
		Return(page2, total, nil).
		Times(1)
	suite.mockResultRepo.EXPECT().
		GetLatestPerQuizByUser(gomock.Any()).
		Return(nil, nil).
		Times(201)

	suite.job.Run()
}

// TestStartRejectsBadSchedule tests that an invalid cron spec fails fast
func (suite *ReminderJobTestSuite) TestStartRejectsBadSchedule() {
	job := scheduler.NewReminderJob(
		suite.mockUserRepo,
		suite.mockResultRepo,
		suite.mockQuizRepo,
		suite.mockNotificationRepo,
		"not a schedule",
	)

	err := job.Start()

	assert.Error(suite.T(), err)
}

// TestReminderJobTestSuite runs the test suite
func TestReminderJobTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderJobTestSuite))
}
