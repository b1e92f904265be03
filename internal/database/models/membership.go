package models

import (
	"github.com/google/uuid"
)

// Membership is the single stateful edge between one user and one company.
// The composite unique index enforces the one-row-per-pair invariant at the
// storage layer; rows are never deleted, terminal statuses are final.
type Membership struct {
	BaseModel
	UserID    uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_company" validate:"required"`
	CompanyID uuid.UUID        `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_company" validate:"required"`
	Status    MembershipStatus `json:"status" gorm:"type:varchar(50);not null;index" validate:"required"`

	// Relationships
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}

// IsActive reports whether the edge currently grants any association
// with the company (member, admin or owner).
func (m *Membership) IsActive() bool {
	return m.Status == StatusMember || m.Status == StatusAdmin || m.Status == StatusOwner
}
