package service

import (
	"fmt"

	apperrors "quiz-platform-backend/internal/errors"
	"quiz-platform-backend/internal/repository"

	"github.com/google/uuid"
)

// requireOwnerOrAdmin gates management operations on a company. It passes
// only for the owner and admin statuses.
func requireOwnerOrAdmin(repo repository.MembershipRepositoryInterface, companyID, userID uuid.UUID) error {
	ok, err := repo.IsOwnerOrAdmin(companyID, userID)
	if err != nil {
		return fmt.Errorf("failed to check owner or admin: %w", err)
	}
	if !ok {
		return apperrors.ErrNotOwnerOrAdmin
	}
	return nil
}

// requireMember gates quiz taking. It passes for the member status only;
// owners and admins manage quizzes but do not take them, so they fail this
// check even though they pass requireOwnerOrAdmin.
func requireMember(repo repository.MembershipRepositoryInterface, companyID, userID uuid.UUID) error {
	ok, err := repo.IsMember(companyID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !ok {
		return apperrors.ErrNotMember
	}
	return nil
}
