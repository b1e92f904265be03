//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"quiz-platform-backend/internal/database/models"
	"quiz-platform-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ResultRepositoryTestSuite tests the ResultRepository
type ResultRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ResultRepository
	userRepo      *UserRepository
	companyRepo   *CompanyRepository
	quizRepo      *QuizRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ResultRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewResultRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.companyRepo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.quizRepo = NewQuizRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ResultRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ResultRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ResultRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedQuiz persists a user, a company and one of its quizzes
func (suite *ResultRepositoryTestSuite) seedQuiz() (*models.User, *models.Company, *models.Quiz) {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))

	quiz := suite.factories.Quiz.Create(company.ID)
	suite.NoError(suite.quizRepo.Create(quiz))

	return user, company, quiz
}

// resultAt builds a result row with a fixed submission time
func (suite *ResultRepositoryTestSuite) resultAt(user *models.User, quiz *models.Quiz, score int, at time.Time) *models.Result {
	result := suite.factories.Result.Create(user.ID, quiz.ID, score)
	result.CreatedAt = at
	result.UpdatedAt = at
	return result
}

// TestCreateWithQuizIncrement tests that the result row and the quiz
// submission counter are written together
func (suite *ResultRepositoryTestSuite) TestCreateWithQuizIncrement() {
	user, _, quiz := suite.seedQuiz()
	suite.Equal(0, quiz.Frequency)

	result := suite.factories.Result.Create(user.ID, quiz.ID, 100)
	err := suite.repo.CreateWithQuizIncrement(result)
	suite.NoError(err)

	rows, err := suite.repo.GetByUserAndQuiz(user.ID, quiz.ID)
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(100, rows[0].ScorePercentage)

	reloaded, err := suite.quizRepo.GetByID(quiz.ID)
	suite.NoError(err)
	suite.Equal(1, reloaded.Frequency)

	// A second submission bumps the counter again
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.factories.Result.Create(user.ID, quiz.ID, 50)))
	reloaded, err = suite.quizRepo.GetByID(quiz.ID)
	suite.NoError(err)
	suite.Equal(2, reloaded.Frequency)
}

// TestGetByUserAndQuizOrder tests that attempts come back oldest first
func (suite *ResultRepositoryTestSuite) TestGetByUserAndQuizOrder() {
	user, _, quiz := suite.seedQuiz()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, quiz, 50, base.Add(2*time.Hour))))
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, quiz, 100, base)))

	rows, err := suite.repo.GetByUserAndQuiz(user.ID, quiz.ID)
	suite.NoError(err)
	suite.Len(rows, 2)
	suite.Equal(100, rows[0].ScorePercentage)
	suite.Equal(50, rows[1].ScorePercentage)
}

// TestGetByUserAndCompany tests that only results for the company's
// quizzes are returned
func (suite *ResultRepositoryTestSuite) TestGetByUserAndCompany() {
	user, company, quiz := suite.seedQuiz()

	// Same user, quiz of a different company
	otherCompany := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(otherCompany))
	otherQuiz := suite.factories.Quiz.Create(otherCompany.ID)
	suite.NoError(suite.quizRepo.Create(otherQuiz))

	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.factories.Result.Create(user.ID, quiz.ID, 100)))
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.factories.Result.Create(user.ID, otherQuiz.ID, 50)))

	rows, err := suite.repo.GetByUserAndCompany(user.ID, company.ID)
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(quiz.ID, rows[0].QuizID)
}

// TestGetByCompanyAndDateRange tests the half-open date window
func (suite *ResultRepositoryTestSuite) TestGetByCompanyAndDateRange() {
	user, company, quiz := suite.seedQuiz()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, quiz, 100, from)))
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, quiz, 50, from.Add(-time.Hour))))
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, quiz, 0, to)))

	rows, err := suite.repo.GetByCompanyAndDateRange(company.ID, from, to)
	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(100, rows[0].ScorePercentage)
}

// TestGetLatestPerQuizByUser tests that only the newest attempt of each
// quiz survives
func (suite *ResultRepositoryTestSuite) TestGetLatestPerQuizByUser() {
	user, company, quiz := suite.seedQuiz()
	secondQuiz := suite.factories.Quiz.Create(company.ID)
	suite.NoError(suite.quizRepo.Create(secondQuiz))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, quiz, 50, base)))
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, quiz, 100, base.Add(time.Hour))))
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, secondQuiz, 0, base)))

	rows, err := suite.repo.GetLatestPerQuizByUser(user.ID)
	suite.NoError(err)
	suite.Len(rows, 2)

	byQuiz := make(map[string]models.Result, len(rows))
	for _, row := range rows {
		byQuiz[row.QuizID.String()] = row
	}
	suite.Equal(100, byQuiz[quiz.ID.String()].ScorePercentage)
	suite.Equal(0, byQuiz[secondQuiz.ID.String()].ScorePercentage)
}

// TestGetLastAttemptsByQuiz tests the per-user latest attempt timestamps
func (suite *ResultRepositoryTestSuite) TestGetLastAttemptsByQuiz() {
	user, company, quiz := suite.seedQuiz()
	secondUser := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(secondUser))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, quiz, 50, base)))
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(user, quiz, 100, base.Add(time.Hour))))
	suite.NoError(suite.repo.CreateWithQuizIncrement(suite.resultAt(secondUser, quiz, 0, base)))

	attempts, err := suite.repo.GetLastAttemptsByQuiz(company.ID, quiz.ID)
	suite.NoError(err)
	suite.Len(attempts, 2)

	byUser := make(map[string]LastAttempt, len(attempts))
	for _, attempt := range attempts {
		suite.Equal(quiz.ID, attempt.QuizID)
		byUser[attempt.UserID.String()] = attempt
	}
	suite.True(byUser[user.ID.String()].LastAttempt.Equal(base.Add(time.Hour)))
	suite.True(byUser[secondUser.ID.String()].LastAttempt.Equal(base))
}

// TestResultRepositoryTestSuite runs the test suite
func TestResultRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ResultRepositoryTestSuite))
}
