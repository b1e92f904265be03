package service_test

import (
	"testing"

	"quiz-platform-backend/internal/database/models"
	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/mocks"
	"quiz-platform-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// QuizServiceTestSuite defines the test suite for QuizService
type QuizServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockQuizRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockCompanyRepo    *mocks.MockCompanyRepositoryInterface
	quizService        *service.QuizService
}

// SetupTest sets up the test suite
func (suite *QuizServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockQuizRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)

	suite.quizService = service.NewQuizService(
		suite.mockRepo,
		suite.mockMembershipRepo,
		suite.mockCompanyRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *QuizServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validCreateQuizRequest() *service.CreateQuizRequest {
	return &service.CreateQuizRequest{
		Title:       "Security Basics",
		Description: "Phishing and password hygiene",
		Questions: []service.CreateQuestionRequest{
			{
				Title: "Which link is safe to click?",
				Answers: []service.CreateAnswerRequest{
					{Title: "A verified internal link", IsCorrect: true},
					{Title: "Any link in an urgent email"},
				},
			},
		},
	}
}

// TestCreateQuiz tests authoring a quiz as a company admin
func (suite *QuizServiceTestSuite) TestCreateQuiz() {
	companyID := uuid.New()
	actor := member()
	req := validCreateQuizRequest()

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(&models.Company{BaseModel: models.BaseModel{ID: companyID}}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(quiz *models.Quiz) error {
			assert.Equal(suite.T(), companyID, quiz.CompanyID)
			assert.Len(suite.T(), quiz.Questions, 1)
			assert.Len(suite.T(), quiz.Questions[0].Answers, 2)
			return nil
		}).
		Times(1)

	response, err := suite.quizService.CreateQuiz(companyID, req, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Security Basics", response.Title)
}

// TestCreateQuizNoCorrectAnswer tests that every question needs at least
// one correct answer
func (suite *QuizServiceTestSuite) TestCreateQuizNoCorrectAnswer() {
	companyID := uuid.New()
	actor := member()
	req := validCreateQuizRequest()
	req.Questions[0].Answers[0].IsCorrect = false

	response, err := suite.quizService.CreateQuiz(companyID, req, actor)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "question 1 has no correct answer")
}

// TestCreateQuizTooFewAnswers tests that a question needs at least two
// answer options
func (suite *QuizServiceTestSuite) TestCreateQuizTooFewAnswers() {
	companyID := uuid.New()
	actor := member()
	req := validCreateQuizRequest()
	req.Questions[0].Answers = req.Questions[0].Answers[:1]

	response, err := suite.quizService.CreateQuiz(companyID, req, actor)

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateQuizNoQuestions tests that a quiz needs at least one question
func (suite *QuizServiceTestSuite) TestCreateQuizNoQuestions() {
	companyID := uuid.New()
	actor := member()
	req := validCreateQuizRequest()
	req.Questions = nil

	response, err := suite.quizService.CreateQuiz(companyID, req, actor)

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateQuizNotAuthorized tests that plain members cannot author
// quizzes
func (suite *QuizServiceTestSuite) TestCreateQuizNotAuthorized() {
	companyID := uuid.New()
	actor := member()

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(&models.Company{BaseModel: models.BaseModel{ID: companyID}}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(false, nil).
		Times(1)

	response, err := suite.quizService.CreateQuiz(companyID, validCreateQuizRequest(), actor)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwnerOrAdmin)
}

// TestGetQuizHidesCorrectness tests that the reading path never exposes
// which answers are correct
func (suite *QuizServiceTestSuite) TestGetQuizHidesCorrectness() {
	companyID := uuid.New()
	actor := member()
	quiz, _ := twoQuestionQuiz(companyID)

	suite.mockRepo.EXPECT().
		GetWithQuestions(quiz.ID).
		Return(quiz, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByUserAndCompany(actor.ID, companyID).
		Return(membershipRow(actor.ID, companyID, models.StatusMember), nil).
		Times(1)

	response, err := suite.quizService.GetQuiz(quiz.ID, actor)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Questions, 2)
	assert.Len(suite.T(), response.Questions[0].Answers, 2)
	assert.Equal(suite.T(), "Paris", response.Questions[0].Answers[0].Title)
}

// TestGetQuizAsAdmin tests that owners and admins can read quizzes even
// though they are not members
func (suite *QuizServiceTestSuite) TestGetQuizAsAdmin() {
	companyID := uuid.New()
	actor := member()
	quiz, _ := twoQuestionQuiz(companyID)

	suite.mockRepo.EXPECT().
		GetWithQuestions(quiz.ID).
		Return(quiz, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByUserAndCompany(actor.ID, companyID).
		Return(membershipRow(actor.ID, companyID, models.StatusAdmin), nil).
		Times(1)

	response, err := suite.quizService.GetQuiz(quiz.ID, actor)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestGetQuizUnassociated tests that unrelated users cannot read a quiz
func (suite *QuizServiceTestSuite) TestGetQuizUnassociated() {
	companyID := uuid.New()
	actor := member()
	quiz, _ := twoQuestionQuiz(companyID)

	suite.mockRepo.EXPECT().
		GetWithQuestions(quiz.ID).
		Return(quiz, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByUserAndCompany(actor.ID, companyID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.quizService.GetQuiz(quiz.ID, actor)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwnerOrAdmin)
}

// TestGetQuizInvitedNotActive tests that a pending invitation does not yet
// grant read access to the company's quizzes
func (suite *QuizServiceTestSuite) TestGetQuizInvitedNotActive() {
	companyID := uuid.New()
	actor := member()
	quiz, _ := twoQuestionQuiz(companyID)

	suite.mockRepo.EXPECT().
		GetWithQuestions(quiz.ID).
		Return(quiz, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByUserAndCompany(actor.ID, companyID).
		Return(membershipRow(actor.ID, companyID, models.StatusInvited), nil).
		Times(1)

	response, err := suite.quizService.GetQuiz(quiz.ID, actor)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwnerOrAdmin)
}

// TestUpdateQuiz tests updating quiz metadata
func (suite *QuizServiceTestSuite) TestUpdateQuiz() {
	companyID := uuid.New()
	actor := member()
	quiz := &models.Quiz{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Old Title",
		CompanyID: companyID,
	}
	newTitle := "New Title"
	req := &service.UpdateQuizRequest{Title: &newTitle}

	suite.mockRepo.EXPECT().
		GetByID(quiz.ID).
		Return(quiz, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.quizService.UpdateQuiz(quiz.ID, req, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Title", response.Title)
}

// TestDeleteQuizUnknown tests deleting a quiz that does not exist
func (suite *QuizServiceTestSuite) TestDeleteQuizUnknown() {
	actor := member()
	quizID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(quizID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.quizService.DeleteQuiz(quizID, actor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrQuizNotFound)
}

// TestGetCompanyQuizzes tests listing a company's quizzes for a member
func (suite *QuizServiceTestSuite) TestGetCompanyQuizzes() {
	companyID := uuid.New()
	actor := member()
	quizzes := []models.Quiz{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Q1", CompanyID: companyID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "Q2", CompanyID: companyID},
	}

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(&models.Company{BaseModel: models.BaseModel{ID: companyID}}, nil).
		Times(1)
	suite.mockMembershipRepo.EXPECT().
		GetByUserAndCompany(actor.ID, companyID).
		Return(membershipRow(actor.ID, companyID, models.StatusMember), nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByCompanyID(companyID, 20, 0).
		Return(quizzes, int64(2), nil).
		Times(1)

	response, err := suite.quizService.GetCompanyQuizzes(companyID, 20, 0, actor)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Quizzes, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestQuizServiceTestSuite runs the test suite
func TestQuizServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuizServiceTestSuite))
}
