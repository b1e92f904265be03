package repository

import (
	"quiz-platform-backend/internal/database/models"
	apperrors "quiz-platform-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for the membership ledger.
// The (user_id, company_id) unique index guarantees at most one edge per
// pair; UpdateStatusFrom makes transitions linearizable per edge.
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership edge
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(id uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByUserAndCompany retrieves the single edge for a (user, company) pair
func (r *MembershipRepository) GetByUserAndCompany(userID, companyID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "user_id = ? AND company_id = ?", userID, companyID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByIDAndCompany retrieves a membership by ID scoped to a company
func (r *MembershipRepository) GetByIDAndCompany(id, companyID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByIDAndUser retrieves a membership by ID scoped to its subject user
func (r *MembershipRepository) GetByIDAndUser(id, userID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// UpdateStatusFrom applies a status transition with compare-and-swap
// semantics: the update only lands if the row still holds the expected
// predecessor status. A concurrent transition on the same edge loses with
// ErrTransitionConflict instead of silently overwriting.
func (r *MembershipRepository) UpdateStatusFrom(id uuid.UUID, from, to models.MembershipStatus) error {
	res := r.db.Model(&models.Membership{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransitionConflict
	}
	return nil
}

// IsOwnerOrAdmin reports whether an edge with status owner or admin exists
func (r *MembershipRepository) IsOwnerOrAdmin(companyID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("company_id = ? AND user_id = ? AND status IN ?",
			companyID, userID, []models.MembershipStatus{models.StatusOwner, models.StatusAdmin}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsMember reports whether the edge holds exactly the member status. Admins
// and owners are intentionally excluded; the scoring gate relies on that.
func (r *MembershipRepository) IsMember(companyID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("company_id = ? AND user_id = ? AND status = ?",
			companyID, userID, models.StatusMember).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByCompanyAndStatus retrieves all edges of a company in a given status
func (r *MembershipRepository) GetByCompanyAndStatus(companyID uuid.UUID, status models.MembershipStatus) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("company_id = ? AND status = ?", companyID, status).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetByUserAndStatus retrieves all edges of a user in a given status
func (r *MembershipRepository) GetByUserAndStatus(userID uuid.UUID, status models.MembershipStatus) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Where("user_id = ? AND status = ?", userID, status).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetUsersByCompanyAndStatus retrieves the users behind a company's edges in
// a given status, with pagination
func (r *MembershipRepository) GetUsersByCompanyAndStatus(companyID uuid.UUID, status models.MembershipStatus, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	base := r.db.Model(&models.User{}).
		Joins("JOIN memberships ON memberships.user_id = users.id").
		Where("memberships.company_id = ? AND memberships.status = ?", companyID, status)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("memberships.created_at ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
