package repository

import (
	"quiz-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetVisible retrieves all visible companies with pagination
func (r *CompanyRepository) GetVisible(limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	query := r.db.Model(&models.Company{}).Where("is_visible = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := r.db.Where("is_visible = ?", true).Order("created_at ASC")
	if limit > 0 {
		listQuery = listQuery.Limit(limit).Offset(offset)
	}
	if err := listQuery.Find(&companies).Error; err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Update updates a company
func (r *CompanyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

// Delete deletes a company
func (r *CompanyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Company{}, "id = ?", id).Error
}
