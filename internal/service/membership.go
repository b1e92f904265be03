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

// MembershipService owns the membership ledger: every invitation, join
// request, role change and departure goes through one of its operations,
// each of which validates the edge's current status against the transition
// table before touching storage.
type MembershipService struct {
	repo        repository.MembershipRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	validator   *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	repo repository.MembershipRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	companyRepo repository.CompanyRepositoryInterface,
	validator *validator.Validate,
) *MembershipService {
	return &MembershipService{
		repo:        repo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		validator:   validator,
	}
}

// SendInvitationRequest represents the data needed to invite a user
type SendInvitationRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// MembershipResponse represents the response data for a membership edge
type MembershipResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CompanyID uuid.UUID `json:"company_id"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

func toMembershipResponse(m *models.Membership) *MembershipResponse {
	return &MembershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

func toMembershipResponses(memberships []models.Membership) []MembershipResponse {
	responses := make([]MembershipResponse, len(memberships))
	for i := range memberships {
		responses[i] = *toMembershipResponse(&memberships[i])
	}
	return responses
}

// applyTransition validates the operation against the edge's loaded status
// and advances the edge with a compare-and-swap. A concurrent writer that
// moved the edge between load and update surfaces as ErrTransitionConflict.
func (s *MembershipService) applyTransition(m *models.Membership, op Operation) (*MembershipResponse, error) {
	target, err := checkTransition(op, m.Status)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatusFrom(m.ID, m.Status, target); err != nil {
		return nil, err
	}
	m.Status = target
	return toMembershipResponse(m), nil
}

// SendInvitation invites a user to a company. Only the company's owner or
// admins may invite, and the pair must have no prior membership edge.
func (s *MembershipService) SendInvitation(companyID uuid.UUID, req *SendInvitationRequest, actor *models.User) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := requireOwnerOrAdmin(s.repo, companyID, actor.ID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	existing, err := s.repo.GetByUserAndCompany(req.UserID, companyID)
	if err == nil {
		return nil, checkCreation(OpSendInvitation, existing.Status)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	membership := &models.Membership{
		UserID:    req.UserID,
		CompanyID: companyID,
		Status:    models.StatusInvited,
	}
	if err := s.repo.Create(membership); err != nil {
		// The unique index closes the window between lookup and insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTransitionConflict
		}
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}
	return toMembershipResponse(membership), nil
}

// CancelInvitation cancels a pending invitation on behalf of the company
func (s *MembershipService) CancelInvitation(companyID, invitationID uuid.UUID, actor *models.User) (*MembershipResponse, error) {
	if err := requireOwnerOrAdmin(s.repo, companyID, actor.ID); err != nil {
		return nil, err
	}
	membership, err := s.repo.GetByIDAndCompany(invitationID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return s.applyTransition(membership, OpCancelInvitation)
}

// AcceptRequest accepts a pending join request. The edge is addressed by its
// own id, so it is loaded first and the actor is authorized against the
// company it points at.
func (s *MembershipService) AcceptRequest(requestID uuid.UUID, actor *models.User) (*MembershipResponse, error) {
	membership, err := s.repo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJoinRequestNotFound
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	if err := requireOwnerOrAdmin(s.repo, membership.CompanyID, actor.ID); err != nil {
		return nil, err
	}
	return s.applyTransition(membership, OpAcceptRequest)
}

// DeclineRequest declines a pending join request
func (s *MembershipService) DeclineRequest(requestID uuid.UUID, actor *models.User) (*MembershipResponse, error) {
	membership, err := s.repo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJoinRequestNotFound
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	if err := requireOwnerOrAdmin(s.repo, membership.CompanyID, actor.ID); err != nil {
		return nil, err
	}
	return s.applyTransition(membership, OpDeclineRequest)
}

// RemoveUser removes a user from a company. Admins must be demoted before
// they can be removed; the owner never can be.
func (s *MembershipService) RemoveUser(companyID, userID uuid.UUID, actor *models.User) (*MembershipResponse, error) {
	if err := requireOwnerOrAdmin(s.repo, companyID, actor.ID); err != nil {
		return nil, err
	}
	membership, err := s.repo.GetByUserAndCompany(userID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return s.applyTransition(membership, OpRemoveUser)
}

// CreateAdmin promotes a member to admin
func (s *MembershipService) CreateAdmin(companyID, userID uuid.UUID, actor *models.User) (*MembershipResponse, error) {
	if err := requireOwnerOrAdmin(s.repo, companyID, actor.ID); err != nil {
		return nil, err
	}
	membership, err := s.repo.GetByUserAndCompany(userID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return s.applyTransition(membership, OpCreateAdmin)
}

// RemoveAdmin demotes an admin back to member
func (s *MembershipService) RemoveAdmin(companyID, userID uuid.UUID, actor *models.User) (*MembershipResponse, error) {
	if err := requireOwnerOrAdmin(s.repo, companyID, actor.ID); err != nil {
		return nil, err
	}
	membership, err := s.repo.GetByUserAndCompany(userID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return s.applyTransition(membership, OpRemoveAdmin)
}

// RequestToJoin files a join request from the acting user to a company
func (s *MembershipService) RequestToJoin(companyID uuid.UUID, user *models.User) (*MembershipResponse, error) {
	if _, err := s.companyRepo.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	existing, err := s.repo.GetByUserAndCompany(user.ID, companyID)
	if err == nil {
		return nil, checkCreation(OpRequestToJoin, existing.Status)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	membership := &models.Membership{
		UserID:    user.ID,
		CompanyID: companyID,
		Status:    models.StatusRequestedToJoin,
	}
	if err := s.repo.Create(membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTransitionConflict
		}
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}
	return toMembershipResponse(membership), nil
}

// CancelRequest cancels the acting user's own pending join request
func (s *MembershipService) CancelRequest(requestID uuid.UUID, user *models.User) (*MembershipResponse, error) {
	membership, err := s.repo.GetByIDAndUser(requestID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJoinRequestNotFound
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	return s.applyTransition(membership, OpCancelRequest)
}

// AcceptInvitation accepts an invitation addressed to the acting user
func (s *MembershipService) AcceptInvitation(invitationID uuid.UUID, user *models.User) (*MembershipResponse, error) {
	membership, err := s.repo.GetByIDAndUser(invitationID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return s.applyTransition(membership, OpAcceptInvitation)
}

// DeclineInvitation declines an invitation addressed to the acting user
func (s *MembershipService) DeclineInvitation(invitationID uuid.UUID, user *models.User) (*MembershipResponse, error) {
	membership, err := s.repo.GetByIDAndUser(invitationID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return s.applyTransition(membership, OpDeclineInvitation)
}

// LeaveCompany ends the acting user's own association with a company
func (s *MembershipService) LeaveCompany(companyID uuid.UUID, user *models.User) (*MembershipResponse, error) {
	membership, err := s.repo.GetByUserAndCompany(user.ID, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return s.applyTransition(membership, OpLeaveCompany)
}

// CreateOwner seeds the owner edge for a freshly created company. The owner
// status is immutable afterwards; no operation accepts it as a predecessor.
func (s *MembershipService) CreateOwner(companyID, userID uuid.UUID) (*MembershipResponse, error) {
	membership := &models.Membership{
		UserID:    userID,
		CompanyID: companyID,
		Status:    models.StatusOwner,
	}
	if err := s.repo.Create(membership); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}
	return toMembershipResponse(membership), nil
}

// GetCompanyInvitations lists a company's pending invitations for its owner
// or admins
func (s *MembershipService) GetCompanyInvitations(companyID uuid.UUID, actor *models.User) ([]MembershipResponse, error) {
	if err := requireOwnerOrAdmin(s.repo, companyID, actor.ID); err != nil {
		return nil, err
	}
	memberships, err := s.repo.GetByCompanyAndStatus(companyID, models.StatusInvited)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations: %w", err)
	}
	return toMembershipResponses(memberships), nil
}

// GetCompanyRequests lists a company's pending join requests for its owner
// or admins
func (s *MembershipService) GetCompanyRequests(companyID uuid.UUID, actor *models.User) ([]MembershipResponse, error) {
	if err := requireOwnerOrAdmin(s.repo, companyID, actor.ID); err != nil {
		return nil, err
	}
	memberships, err := s.repo.GetByCompanyAndStatus(companyID, models.StatusRequestedToJoin)
	if err != nil {
		return nil, fmt.Errorf("failed to get join requests: %w", err)
	}
	return toMembershipResponses(memberships), nil
}

// GetUserInvitations lists the acting user's pending invitations
func (s *MembershipService) GetUserInvitations(user *models.User) ([]MembershipResponse, error) {
	memberships, err := s.repo.GetByUserAndStatus(user.ID, models.StatusInvited)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations: %w", err)
	}
	return toMembershipResponses(memberships), nil
}

// GetUserRequests lists the acting user's pending join requests
func (s *MembershipService) GetUserRequests(user *models.User) ([]MembershipResponse, error) {
	memberships, err := s.repo.GetByUserAndStatus(user.ID, models.StatusRequestedToJoin)
	if err != nil {
		return nil, fmt.Errorf("failed to get join requests: %w", err)
	}
	return toMembershipResponses(memberships), nil
}

// GetCompanyMembers lists a company's members with pagination
func (s *MembershipService) GetCompanyMembers(companyID uuid.UUID, limit, offset int) (*UserListResponse, error) {
	if _, err := s.companyRepo.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	users, total, err := s.repo.GetUsersByCompanyAndStatus(companyID, models.StatusMember, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	return toUserListResponse(users, total, limit, offset), nil
}

// GetCompanyAdmins lists a company's admins with pagination
func (s *MembershipService) GetCompanyAdmins(companyID uuid.UUID, limit, offset int) (*UserListResponse, error) {
	if _, err := s.companyRepo.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	users, total, err := s.repo.GetUsersByCompanyAndStatus(companyID, models.StatusAdmin, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get admins: %w", err)
	}
	return toUserListResponse(users, total, limit, offset), nil
}
