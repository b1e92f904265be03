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

// CompanyService handles business logic for companies. Creating a company
// seeds its owner edge in the membership ledger; ownership never moves
// afterwards.
type CompanyService struct {
	repo           repository.CompanyRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(
	repo repository.CompanyRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *CompanyService {
	return &CompanyService{
		repo:           repo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// CreateCompanyRequest represents the data needed to create a company
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	IsVisible   *bool  `json:"is_visible"` // defaults to true
}

// UpdateCompanyRequest represents the data needed to update a company
type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	IsVisible   *bool   `json:"is_visible"`
}

// CompanyResponse represents the response data for a company
type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsVisible   bool      `json:"is_visible"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

func toCompanyResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		IsVisible:   company.IsVisible,
		CreatedAt:   company.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   company.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateCompany creates a company and records the acting user as its owner
func (s *CompanyService) CreateCompany(req *CreateCompanyRequest, actor *models.User) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}
	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
		IsVisible:   visible,
	}
	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	owner := &models.Membership{
		UserID:    actor.ID,
		CompanyID: company.ID,
		Status:    models.StatusOwner,
	}
	if err := s.membershipRepo.Create(owner); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}
	return toCompanyResponse(company), nil
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return toCompanyResponse(company), nil
}

// GetCompanies lists visible companies with pagination
func (s *CompanyService) GetCompanies(limit, offset int) (*CompanyListResponse, error) {
	companies, total, err := s.repo.GetVisible(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}
	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = *toCompanyResponse(&companies[i])
	}
	return &CompanyListResponse{
		Companies: responses,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// UpdateCompany updates a company's profile. Owner and admins may update.
func (s *CompanyService) UpdateCompany(id uuid.UUID, req *UpdateCompanyRequest, actor *models.User) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	if err := requireOwnerOrAdmin(s.membershipRepo, id, actor.ID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.IsVisible != nil {
		company.IsVisible = *req.IsVisible
	}
	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return toCompanyResponse(company), nil
}

// DeleteCompany deletes a company on behalf of its owner or an admin
func (s *CompanyService) DeleteCompany(id uuid.UUID, actor *models.User) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}
	if err := requireOwnerOrAdmin(s.membershipRepo, id, actor.ID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
