package models

// Company represents a tenant that authors quizzes and holds memberships
type Company struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"type:text;not null"`
	IsVisible   bool   `json:"is_visible" gorm:"default:true"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Quizzes     []Quiz       `json:"quizzes,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
