package models

// User represents a platform account
type User struct {
	BaseModel
	Username string `json:"username" gorm:"not null;size:50" validate:"required,max=50"`
	Email    string `json:"email" gorm:"uniqueIndex;not null;size:100" validate:"required,email,max=100"`
	Password string `json:"-" gorm:"not null;size:255"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Results     []Result     `json:"results,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
