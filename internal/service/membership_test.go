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

// MembershipServiceTestSuite defines the test suite for MembershipService
type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockMembershipRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockCompanyRepo   *mocks.MockCompanyRepositoryInterface
	membershipService *service.MembershipService
}

// SetupTest sets up the test suite
func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)

	suite.membershipService = service.NewMembershipService(
		suite.mockRepo,
		suite.mockUserRepo,
		suite.mockCompanyRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) admin() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "admin",
		Email:     "admin@example.com",
	}
}

func membershipRow(userID, companyID uuid.UUID, status models.MembershipStatus) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		CompanyID: companyID,
		Status:    status,
	}
}

// TestSendInvitation tests inviting a user with no prior membership edge
func (suite *MembershipServiceTestSuite) TestSendInvitation() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()
	req := &service.SendInvitationRequest{UserID: targetID}

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(&models.User{BaseModel: models.BaseModel{ID: targetID}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.SendInvitation(companyID, req, actor)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), targetID, response.UserID)
	assert.Equal(suite.T(), companyID, response.CompanyID)
	assert.Equal(suite.T(), string(models.StatusInvited), response.Status)
}

// TestSendInvitationNotAuthorized tests that a plain member cannot invite
func (suite *MembershipServiceTestSuite) TestSendInvitationNotAuthorized() {
	companyID := uuid.New()
	actor := suite.admin()
	req := &service.SendInvitationRequest{UserID: uuid.New()}

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(false, nil).
		Times(1)

	response, err := suite.membershipService.SendInvitation(companyID, req, actor)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwnerOrAdmin)
}

// TestSendInvitationUnknownUser tests inviting a user that does not exist
func (suite *MembershipServiceTestSuite) TestSendInvitationUnknownUser() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()
	req := &service.SendInvitationRequest{UserID: targetID}

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.membershipService.SendInvitation(companyID, req, actor)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestSendInvitationAlreadyInvited tests that a second invitation is
// rejected while the first one is still pending
func (suite *MembershipServiceTestSuite) TestSendInvitationAlreadyInvited() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()
	req := &service.SendInvitationRequest{UserID: targetID}

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(&models.User{BaseModel: models.BaseModel{ID: targetID}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(membershipRow(targetID, companyID, models.StatusInvited), nil).
		Times(1)

	response, err := suite.membershipService.SendInvitation(companyID, req, actor)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "user is already invited to this company")
}

// TestSendInvitationAfterUserLeft tests that a departed user cannot be
// re-invited; the ledger keeps the terminal row
func (suite *MembershipServiceTestSuite) TestSendInvitationAfterUserLeft() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()
	req := &service.SendInvitationRequest{UserID: targetID}

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(&models.User{BaseModel: models.BaseModel{ID: targetID}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(membershipRow(targetID, companyID, models.StatusLeft), nil).
		Times(1)

	response, err := suite.membershipService.SendInvitation(companyID, req, actor)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "user has left this company")
}

// TestSendInvitationDuplicateInsert tests that a concurrent insert on the
// same pair surfaces as a transition conflict
func (suite *MembershipServiceTestSuite) TestSendInvitationDuplicateInsert() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()
	req := &service.SendInvitationRequest{UserID: targetID}

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(targetID).
		Return(&models.User{BaseModel: models.BaseModel{ID: targetID}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.membershipService.SendInvitation(companyID, req, actor)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTransitionConflict)
}

// TestAcceptInvitation tests a user accepting their pending invitation
func (suite *MembershipServiceTestSuite) TestAcceptInvitation() {
	companyID := uuid.New()
	user := suite.admin()
	membership := membershipRow(user.ID, companyID, models.StatusInvited)

	suite.mockRepo.EXPECT().
		GetByIDAndUser(membership.ID, user.ID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusInvited, models.StatusMember).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.AcceptInvitation(membership.ID, user)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), string(models.StatusMember), response.Status)
}

// TestAcceptInvitationAlreadyDeclined tests that a declined invitation
// cannot be accepted afterwards
func (suite *MembershipServiceTestSuite) TestAcceptInvitationAlreadyDeclined() {
	companyID := uuid.New()
	user := suite.admin()
	membership := membershipRow(user.ID, companyID, models.StatusInvitationDeclined)

	suite.mockRepo.EXPECT().
		GetByIDAndUser(membership.ID, user.ID).
		Return(membership, nil).
		Times(1)

	response, err := suite.membershipService.AcceptInvitation(membership.ID, user)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "you already declined this invitation")
}

// TestAcceptInvitationNotAddressedToUser tests that an invitation belonging
// to someone else reads as not found for the acting user
func (suite *MembershipServiceTestSuite) TestAcceptInvitationNotAddressedToUser() {
	user := suite.admin()
	invitationID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByIDAndUser(invitationID, user.ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.membershipService.AcceptInvitation(invitationID, user)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

// TestAcceptInvitationConcurrentChange tests that a stale status read
// surfaces the conflict instead of applying the transition twice
func (suite *MembershipServiceTestSuite) TestAcceptInvitationConcurrentChange() {
	companyID := uuid.New()
	user := suite.admin()
	membership := membershipRow(user.ID, companyID, models.StatusInvited)

	suite.mockRepo.EXPECT().
		GetByIDAndUser(membership.ID, user.ID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusInvited, models.StatusMember).
		Return(apperrors.ErrTransitionConflict).
		Times(1)

	response, err := suite.membershipService.AcceptInvitation(membership.ID, user)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTransitionConflict)
}

// TestCancelInvitation tests the company cancelling a pending invitation
func (suite *MembershipServiceTestSuite) TestCancelInvitation() {
	companyID := uuid.New()
	actor := suite.admin()
	membership := membershipRow(uuid.New(), companyID, models.StatusInvited)

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByIDAndCompany(membership.ID, companyID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusInvited, models.StatusInvitationCancelled).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.CancelInvitation(companyID, membership.ID, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusInvitationCancelled), response.Status)
}

// TestRequestToJoin tests a user filing a join request
func (suite *MembershipServiceTestSuite) TestRequestToJoin() {
	companyID := uuid.New()
	user := suite.admin()

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(&models.Company{BaseModel: models.BaseModel{ID: companyID}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(user.ID, companyID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.RequestToJoin(companyID, user)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusRequestedToJoin), response.Status)
}

// TestRequestToJoinUnknownCompany tests requesting to join a company that
// does not exist
func (suite *MembershipServiceTestSuite) TestRequestToJoinUnknownCompany() {
	companyID := uuid.New()
	user := suite.admin()

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.membershipService.RequestToJoin(companyID, user)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyNotFound)
}

// TestRequestToJoinWhileInvited tests that a pending invitation blocks a
// join request on the same pair
func (suite *MembershipServiceTestSuite) TestRequestToJoinWhileInvited() {
	companyID := uuid.New()
	user := suite.admin()

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(&models.Company{BaseModel: models.BaseModel{ID: companyID}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(user.ID, companyID).
		Return(membershipRow(user.ID, companyID, models.StatusInvited), nil).
		Times(1)

	response, err := suite.membershipService.RequestToJoin(companyID, user)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "you are already invited to this company")
}

// TestAcceptRequest tests the company accepting a pending join request
func (suite *MembershipServiceTestSuite) TestAcceptRequest() {
	companyID := uuid.New()
	actor := suite.admin()
	membership := membershipRow(uuid.New(), companyID, models.StatusRequestedToJoin)

	suite.mockRepo.EXPECT().
		GetByID(membership.ID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusRequestedToJoin, models.StatusMember).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.AcceptRequest(membership.ID, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusMember), response.Status)
}

// TestAcceptRequestUnknownID tests that a missing request reads as not
// found before any authorization check runs
func (suite *MembershipServiceTestSuite) TestAcceptRequestUnknownID() {
	actor := suite.admin()
	requestID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(requestID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.membershipService.AcceptRequest(requestID, actor)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrJoinRequestNotFound)
}

// TestAcceptRequestCancelledByUser tests accepting a request the user
// already cancelled
func (suite *MembershipServiceTestSuite) TestAcceptRequestCancelledByUser() {
	companyID := uuid.New()
	actor := suite.admin()
	membership := membershipRow(uuid.New(), companyID, models.StatusRequestCancelled)

	suite.mockRepo.EXPECT().
		GetByID(membership.ID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)

	response, err := suite.membershipService.AcceptRequest(membership.ID, actor)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "user cancelled this join request")
}

// TestDeclineRequest tests the company declining a pending join request
func (suite *MembershipServiceTestSuite) TestDeclineRequest() {
	companyID := uuid.New()
	actor := suite.admin()
	membership := membershipRow(uuid.New(), companyID, models.StatusRequestedToJoin)

	suite.mockRepo.EXPECT().
		GetByID(membership.ID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusRequestedToJoin, models.StatusRequestDeclined).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.DeclineRequest(membership.ID, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusRequestDeclined), response.Status)
}

// TestRemoveUser tests removing a member from a company
func (suite *MembershipServiceTestSuite) TestRemoveUser() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()
	membership := membershipRow(targetID, companyID, models.StatusMember)

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusMember, models.StatusRemoved).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.RemoveUser(companyID, targetID, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusRemoved), response.Status)
}

// TestRemoveUserWhoIsAdmin tests that an admin must be demoted before
// removal
func (suite *MembershipServiceTestSuite) TestRemoveUserWhoIsAdmin() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(membershipRow(targetID, companyID, models.StatusAdmin), nil).
		Times(1)

	response, err := suite.membershipService.RemoveUser(companyID, targetID, actor)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "demote them first")
}

// TestCreateAdmin tests promoting a member to admin
func (suite *MembershipServiceTestSuite) TestCreateAdmin() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()
	membership := membershipRow(targetID, companyID, models.StatusMember)

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusMember, models.StatusAdmin).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.CreateAdmin(companyID, targetID, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusAdmin), response.Status)
}

// TestCreateAdminOnPendingRequest tests promoting a user whose edge is
// still a pending join request; promotion only accepts members
func (suite *MembershipServiceTestSuite) TestCreateAdminOnPendingRequest() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(membershipRow(targetID, companyID, models.StatusRequestedToJoin), nil).
		Times(1)

	response, err := suite.membershipService.CreateAdmin(companyID, targetID, actor)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "user is not a member of this company")
}

// TestCreateAdminOnOwner tests that the owner cannot be promoted
func (suite *MembershipServiceTestSuite) TestCreateAdminOnOwner() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(membershipRow(targetID, companyID, models.StatusOwner), nil).
		Times(1)

	response, err := suite.membershipService.CreateAdmin(companyID, targetID, actor)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "user is the owner of this company")
}

// TestRemoveAdmin tests demoting an admin back to member
func (suite *MembershipServiceTestSuite) TestRemoveAdmin() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()
	membership := membershipRow(targetID, companyID, models.StatusAdmin)

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusAdmin, models.StatusMember).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.RemoveAdmin(companyID, targetID, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusMember), response.Status)
}

// TestRemoveAdminOnMember tests demoting a user who is not an admin
func (suite *MembershipServiceTestSuite) TestRemoveAdminOnMember() {
	companyID := uuid.New()
	targetID := uuid.New()
	actor := suite.admin()

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByUserAndCompany(targetID, companyID).
		Return(membershipRow(targetID, companyID, models.StatusMember), nil).
		Times(1)

	response, err := suite.membershipService.RemoveAdmin(companyID, targetID, actor)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "user is not an admin of this company")
}

// TestLeaveCompany tests a member leaving on their own
func (suite *MembershipServiceTestSuite) TestLeaveCompany() {
	companyID := uuid.New()
	user := suite.admin()
	membership := membershipRow(user.ID, companyID, models.StatusMember)

	suite.mockRepo.EXPECT().
		GetByUserAndCompany(user.ID, companyID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusMember, models.StatusLeft).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.LeaveCompany(companyID, user)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusLeft), response.Status)
}

// TestLeaveCompanyAsOwner tests that the owner cannot leave their company
func (suite *MembershipServiceTestSuite) TestLeaveCompanyAsOwner() {
	companyID := uuid.New()
	user := suite.admin()

	suite.mockRepo.EXPECT().
		GetByUserAndCompany(user.ID, companyID).
		Return(membershipRow(user.ID, companyID, models.StatusOwner), nil).
		Times(1)

	response, err := suite.membershipService.LeaveCompany(companyID, user)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "you are the owner of this company")
}

// TestLeaveCompanyAsAdmin tests that an admin must be demoted before
// leaving
func (suite *MembershipServiceTestSuite) TestLeaveCompanyAsAdmin() {
	companyID := uuid.New()
	user := suite.admin()

	suite.mockRepo.EXPECT().
		GetByUserAndCompany(user.ID, companyID).
		Return(membershipRow(user.ID, companyID, models.StatusAdmin), nil).
		Times(1)

	response, err := suite.membershipService.LeaveCompany(companyID, user)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "admins cannot leave")
}

// TestCancelRequest tests the user cancelling their own join request
func (suite *MembershipServiceTestSuite) TestCancelRequest() {
	companyID := uuid.New()
	user := suite.admin()
	membership := membershipRow(user.ID, companyID, models.StatusRequestedToJoin)

	suite.mockRepo.EXPECT().
		GetByIDAndUser(membership.ID, user.ID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusRequestedToJoin, models.StatusRequestCancelled).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.CancelRequest(membership.ID, user)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusRequestCancelled), response.Status)
}

// TestDeclineInvitationTwice tests that declining is not idempotent; the
// second attempt is rejected with the already-declined reason
func (suite *MembershipServiceTestSuite) TestDeclineInvitationTwice() {
	companyID := uuid.New()
	user := suite.admin()
	membership := membershipRow(user.ID, companyID, models.StatusInvited)

	suite.mockRepo.EXPECT().
		GetByIDAndUser(membership.ID, user.ID).
		Return(membership, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		UpdateStatusFrom(membership.ID, models.StatusInvited, models.StatusInvitationDeclined).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.DeclineInvitation(membership.ID, user)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusInvitationDeclined), response.Status)

	suite.mockRepo.EXPECT().
		GetByIDAndUser(membership.ID, user.ID).
		Return(membership, nil).
		Times(1)

	response, err = suite.membershipService.DeclineInvitation(membership.ID, user)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidTransition(err))
	assert.Contains(suite.T(), err.Error(), "you already declined this invitation")
}

// TestCreateOwner tests seeding the owner edge for a new company
func (suite *MembershipServiceTestSuite) TestCreateOwner() {
	companyID := uuid.New()
	userID := uuid.New()

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.Membership) error {
			assert.Equal(suite.T(), models.StatusOwner, m.Status)
			return nil
		}).
		Times(1)

	response, err := suite.membershipService.CreateOwner(companyID, userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(models.StatusOwner), response.Status)
}

// TestGetCompanyInvitations tests listing pending invitations for admins
func (suite *MembershipServiceTestSuite) TestGetCompanyInvitations() {
	companyID := uuid.New()
	actor := suite.admin()
	rows := []models.Membership{
		*membershipRow(uuid.New(), companyID, models.StatusInvited),
		*membershipRow(uuid.New(), companyID, models.StatusInvited),
	}

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(true, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetByCompanyAndStatus(companyID, models.StatusInvited).
		Return(rows, nil).
		Times(1)

	responses, err := suite.membershipService.GetCompanyInvitations(companyID, actor)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), string(models.StatusInvited), responses[0].Status)
}

// TestGetCompanyInvitationsNotAuthorized tests that plain members cannot
// list a company's invitations
func (suite *MembershipServiceTestSuite) TestGetCompanyInvitationsNotAuthorized() {
	companyID := uuid.New()
	actor := suite.admin()

	suite.mockRepo.EXPECT().
		IsOwnerOrAdmin(companyID, actor.ID).
		Return(false, nil).
		Times(1)

	responses, err := suite.membershipService.GetCompanyInvitations(companyID, actor)

	assert.Nil(suite.T(), responses)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOwnerOrAdmin)
}

// TestGetCompanyMembers tests listing a company's members with pagination
func (suite *MembershipServiceTestSuite) TestGetCompanyMembers() {
	companyID := uuid.New()
	users := []models.User{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "alice", Email: "alice@example.com"},
	}

	suite.mockCompanyRepo.EXPECT().
		GetByID(companyID).
		Return(&models.Company{BaseModel: models.BaseModel{ID: companyID}}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		GetUsersByCompanyAndStatus(companyID, models.StatusMember, 20, 0).
		Return(users, int64(1), nil).
		Times(1)

	response, err := suite.membershipService.GetCompanyMembers(companyID, 20, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Users, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestMembershipServiceTestSuite runs the test suite
func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
