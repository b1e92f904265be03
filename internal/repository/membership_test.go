//go:build integration
// +build integration

package repository

import (
	"testing"

	"quiz-platform-backend/internal/database/models"
	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	userRepo      *UserRepository
	companyRepo   *CompanyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.companyRepo = NewCompanyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedPair persists a fresh user and company for membership rows to hang off
func (suite *MembershipRepositoryTestSuite) seedPair() (*models.User, *models.Company) {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))

	return user, company
}

// TestCreate tests creating a membership row
func (suite *MembershipRepositoryTestSuite) TestCreate() {
	user, company := suite.seedPair()

	membership := suite.factories.Membership.Create(user.ID, company.ID, models.StatusInvited)
	err := suite.repo.Create(membership)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, membership.ID)
	suite.NotZero(membership.CreatedAt)

	found, err := suite.repo.GetByID(membership.ID)
	suite.NoError(err)
	suite.Equal(models.StatusInvited, found.Status)
	suite.Equal(user.ID, found.UserID)
	suite.Equal(company.ID, found.CompanyID)
}

// TestCreateDuplicatePair tests that a second row for the same user and
// company pair is rejected by the unique index
func (suite *MembershipRepositoryTestSuite) TestCreateDuplicatePair() {
	user, company := suite.seedPair()

	first := suite.factories.Membership.Create(user.ID, company.ID, models.StatusInvited)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Membership.Create(user.ID, company.ID, models.StatusRequestedToJoin)
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByUserAndCompany tests looking up the single row for a pair
func (suite *MembershipRepositoryTestSuite) TestGetByUserAndCompany() {
	user, company := suite.seedPair()
	otherUser, _ := suite.seedPair()

	membership := suite.factories.Membership.Create(user.ID, company.ID, models.StatusMember)
	suite.NoError(suite.repo.Create(membership))

	found, err := suite.repo.GetByUserAndCompany(user.ID, company.ID)
	suite.NoError(err)
	suite.Equal(membership.ID, found.ID)

	_, err = suite.repo.GetByUserAndCompany(otherUser.ID, company.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDAndUser tests that rows addressed to another user read as missing
func (suite *MembershipRepositoryTestSuite) TestGetByIDAndUser() {
	user, company := suite.seedPair()
	stranger, _ := suite.seedPair()

	membership := suite.factories.Membership.Create(user.ID, company.ID, models.StatusInvited)
	suite.NoError(suite.repo.Create(membership))

	found, err := suite.repo.GetByIDAndUser(membership.ID, user.ID)
	suite.NoError(err)
	suite.Equal(membership.ID, found.ID)

	_, err = suite.repo.GetByIDAndUser(membership.ID, stranger.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDAndCompany tests that rows of another company read as missing
func (suite *MembershipRepositoryTestSuite) TestGetByIDAndCompany() {
	user, company := suite.seedPair()
	_, otherCompany := suite.seedPair()

	membership := suite.factories.Membership.Create(user.ID, company.ID, models.StatusRequestedToJoin)
	suite.NoError(suite.repo.Create(membership))

	found, err := suite.repo.GetByIDAndCompany(membership.ID, company.ID)
	suite.NoError(err)
	suite.Equal(membership.ID, found.ID)

	_, err = suite.repo.GetByIDAndCompany(membership.ID, otherCompany.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateStatusFrom tests the compare-and-set transition
func (suite *MembershipRepositoryTestSuite) TestUpdateStatusFrom() {
	user, company := suite.seedPair()

	membership := suite.factories.Membership.Create(user.ID, company.ID, models.StatusInvited)
	suite.NoError(suite.repo.Create(membership))

	err := suite.repo.UpdateStatusFrom(membership.ID, models.StatusInvited, models.StatusMember)
	suite.NoError(err)

	found, err := suite.repo.GetByID(membership.ID)
	suite.NoError(err)
	suite.Equal(models.StatusMember, found.Status)
}

// TestUpdateStatusFromStaleSnapshot tests that a transition based on an
// outdated status loses the race and reports a conflict
func (suite *MembershipRepositoryTestSuite) TestUpdateStatusFromStaleSnapshot() {
	user, company := suite.seedPair()

	membership := suite.factories.Membership.Create(user.ID, company.ID, models.StatusInvited)
	suite.NoError(suite.repo.Create(membership))

	// First caller accepts the invitation
	suite.NoError(suite.repo.UpdateStatusFrom(membership.ID, models.StatusInvited, models.StatusMember))

	// Second caller still believes the row is invited
	err := suite.repo.UpdateStatusFrom(membership.ID, models.StatusInvited, models.StatusInvitationCancelled)
	suite.ErrorIs(err, apperrors.ErrTransitionConflict)

	// The winning transition is the one that persisted
	found, err := suite.repo.GetByID(membership.ID)
	suite.NoError(err)
	suite.Equal(models.StatusMember, found.Status)
}

// TestIsMember tests that only the member status counts as membership
func (suite *MembershipRepositoryTestSuite) TestIsMember() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))

	statuses := map[models.MembershipStatus]bool{
		models.StatusMember:          true,
		models.StatusAdmin:           false,
		models.StatusOwner:           false,
		models.StatusInvited:         false,
		models.StatusRequestedToJoin: false,
		models.StatusLeft:            false,
	}

	for status, want := range statuses {
		user := suite.factories.User.Create()
		suite.NoError(suite.userRepo.Create(user))
		suite.NoError(suite.repo.Create(suite.factories.Membership.Create(user.ID, company.ID, status)))

		got, err := suite.repo.IsMember(company.ID, user.ID)
		suite.NoError(err)
		suite.Equal(want, got, "status %s", status)
	}
}

// TestIsOwnerOrAdmin tests the elevated-role check
func (suite *MembershipRepositoryTestSuite) TestIsOwnerOrAdmin() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))

	statuses := map[models.MembershipStatus]bool{
		models.StatusOwner:   true,
		models.StatusAdmin:   true,
		models.StatusMember:  false,
		models.StatusInvited: false,
		models.StatusRemoved: false,
	}

	for status, want := range statuses {
		user := suite.factories.User.Create()
		suite.NoError(suite.userRepo.Create(user))
		suite.NoError(suite.repo.Create(suite.factories.Membership.Create(user.ID, company.ID, status)))

		got, err := suite.repo.IsOwnerOrAdmin(company.ID, user.ID)
		suite.NoError(err)
		suite.Equal(want, got, "status %s", status)
	}
}

// TestIsOwnerOrAdminNoRow tests the check for a user with no ledger row
func (suite *MembershipRepositoryTestSuite) TestIsOwnerOrAdminNoRow() {
	user, company := suite.seedPair()

	got, err := suite.repo.IsOwnerOrAdmin(company.ID, user.ID)
	suite.NoError(err)
	suite.False(got)
}

// TestGetByCompanyAndStatus tests listing rows of one status for a company
func (suite *MembershipRepositoryTestSuite) TestGetByCompanyAndStatus() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))

	var invited []uuid.UUID
	for i := 0; i < 3; i++ {
		user := suite.factories.User.Create()
		suite.NoError(suite.userRepo.Create(user))
		status := models.StatusInvited
		if i == 2 {
			status = models.StatusMember
		}
		membership := suite.factories.Membership.Create(user.ID, company.ID, status)
		suite.NoError(suite.repo.Create(membership))
		if status == models.StatusInvited {
			invited = append(invited, membership.ID)
		}
	}

	rows, err := suite.repo.GetByCompanyAndStatus(company.ID, models.StatusInvited)
	suite.NoError(err)
	suite.Len(rows, 2)
	for i, row := range rows {
		suite.Equal(invited[i], row.ID)
		suite.Equal(models.StatusInvited, row.Status)
	}
}

// TestGetUsersByCompanyAndStatus tests the paginated member listing
func (suite *MembershipRepositoryTestSuite) TestGetUsersByCompanyAndStatus() {
	company := suite.factories.Company.Create()
	suite.NoError(suite.companyRepo.Create(company))

	for i := 0; i < 3; i++ {
		user := suite.factories.User.Create()
		suite.NoError(suite.userRepo.Create(user))
		suite.NoError(suite.repo.Create(suite.factories.Membership.Create(user.ID, company.ID, models.StatusMember)))
	}

	users, total, err := suite.repo.GetUsersByCompanyAndStatus(company.ID, models.StatusMember, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 2)

	users, total, err = suite.repo.GetUsersByCompanyAndStatus(company.ID, models.StatusMember, 2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 1)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
