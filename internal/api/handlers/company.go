package handlers

import (
	"net/http"

	"quiz-platform-backend/internal/auth"
	"quiz-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany creates a company owned by the authenticated user
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} service.CompanyResponse
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	actor, _ := auth.CurrentUser(c)

	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.CreateCompany(&req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// GetCompanies lists visible companies
// @Summary List visible companies
// @Tags companies
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.CompanyListResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	limit, offset := pagination(c)
	companies, err := h.companyService.GetCompanies(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany retrieves a company by ID
// @Summary Get company by ID
// @Tags companies
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} service.CompanyResponse
// @Failure 404 {object} map[string]interface{} "Company not found"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	company, err := h.companyService.GetCompany(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// UpdateCompany updates a company's profile
// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param company body service.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} service.CompanyResponse
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	var req service.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.UpdateCompany(id, &req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// DeleteCompany deletes a company
// @Summary Delete a company
// @Tags companies
// @Param id path string true "Company ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	if err := h.companyService.DeleteCompany(id, actor); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
