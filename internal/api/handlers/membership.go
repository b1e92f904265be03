package handlers

import (
	"net/http"

	"quiz-platform-backend/internal/auth"
	"quiz-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles HTTP requests against the membership ledger.
// Company-scoped routes act on behalf of the company; me-scoped routes act
// on behalf of the authenticated user.
type MembershipHandler struct {
	membershipService *service.MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// SendInvitation invites a user to the company
// @Summary Invite a user
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param invitation body service.SendInvitationRequest true "User to invite"
// @Success 201 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Failure 403 {object} map[string]interface{} "Owner or admin required"
// @Security BearerAuth
// @Router /companies/{id}/invitations [post]
func (h *MembershipHandler) SendInvitation(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	var req service.SendInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.membershipService.SendInvitation(companyID, &req, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, membership)
}

// CancelInvitation cancels a pending invitation
// @Summary Cancel an invitation
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param invitation_id path string true "Invitation ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /companies/{id}/invitations/{invitation_id}/cancel [patch]
func (h *MembershipHandler) CancelInvitation(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	invitationID, ok := uuidParam(c, "invitation_id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.CancelInvitation(companyID, invitationID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// GetCompanyInvitations lists the company's pending invitations
// @Summary List company invitations
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {array} service.MembershipResponse
// @Security BearerAuth
// @Router /companies/{id}/invitations [get]
func (h *MembershipHandler) GetCompanyInvitations(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	invitations, err := h.membershipService.GetCompanyInvitations(companyID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// RequestToJoin files a join request to the company
// @Summary Request to join a company
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 201 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /companies/{id}/requests [post]
func (h *MembershipHandler) RequestToJoin(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.RequestToJoin(companyID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, membership)
}

// GetCompanyRequests lists the company's pending join requests
// @Summary List company join requests
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {array} service.MembershipResponse
// @Security BearerAuth
// @Router /companies/{id}/requests [get]
func (h *MembershipHandler) GetCompanyRequests(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	requests, err := h.membershipService.GetCompanyRequests(companyID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// AcceptRequest accepts a join request on behalf of its company
// @Summary Accept a join request
// @Tags memberships
// @Produce json
// @Param id path string true "Join request ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /requests/{id}/accept [patch]
func (h *MembershipHandler) AcceptRequest(c *gin.Context) {
	requestID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.AcceptRequest(requestID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// DeclineRequest declines a join request on behalf of its company
// @Summary Decline a join request
// @Tags memberships
// @Produce json
// @Param id path string true "Join request ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /requests/{id}/decline [patch]
func (h *MembershipHandler) DeclineRequest(c *gin.Context) {
	requestID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.DeclineRequest(requestID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// RemoveUser removes a user from the company
// @Summary Remove a user from a company
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /companies/{id}/users/{user_id} [delete]
func (h *MembershipHandler) RemoveUser(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.RemoveUser(companyID, userID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// CreateAdmin promotes a member to admin
// @Summary Promote a member to admin
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /companies/{id}/admins/{user_id} [post]
func (h *MembershipHandler) CreateAdmin(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.CreateAdmin(companyID, userID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// RemoveAdmin demotes an admin back to member
// @Summary Demote an admin
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /companies/{id}/admins/{user_id} [delete]
func (h *MembershipHandler) RemoveAdmin(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.RemoveAdmin(companyID, userID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// LeaveCompany ends the authenticated user's association with the company
// @Summary Leave a company
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /companies/{id}/leave [patch]
func (h *MembershipHandler) LeaveCompany(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.LeaveCompany(companyID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// GetMyInvitations lists the authenticated user's pending invitations
// @Summary List own invitations
// @Tags memberships
// @Produce json
// @Success 200 {array} service.MembershipResponse
// @Security BearerAuth
// @Router /me/invitations [get]
func (h *MembershipHandler) GetMyInvitations(c *gin.Context) {
	actor, _ := auth.CurrentUser(c)

	invitations, err := h.membershipService.GetUserInvitations(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// GetMyRequests lists the authenticated user's pending join requests
// @Summary List own join requests
// @Tags memberships
// @Produce json
// @Success 200 {array} service.MembershipResponse
// @Security BearerAuth
// @Router /me/requests [get]
func (h *MembershipHandler) GetMyRequests(c *gin.Context) {
	actor, _ := auth.CurrentUser(c)

	requests, err := h.membershipService.GetUserRequests(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// AcceptInvitation accepts an invitation addressed to the authenticated user
// @Summary Accept an invitation
// @Tags memberships
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /me/invitations/{id}/accept [patch]
func (h *MembershipHandler) AcceptInvitation(c *gin.Context) {
	invitationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.AcceptInvitation(invitationID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// DeclineInvitation declines an invitation addressed to the authenticated user
// @Summary Decline an invitation
// @Tags memberships
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /me/invitations/{id}/decline [patch]
func (h *MembershipHandler) DeclineInvitation(c *gin.Context) {
	invitationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.DeclineInvitation(invitationID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// CancelRequest cancels the authenticated user's own join request
// @Summary Cancel own join request
// @Tags memberships
// @Produce json
// @Param id path string true "Join request ID (UUID)"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} map[string]interface{} "Transition rejected"
// @Security BearerAuth
// @Router /me/requests/{id}/cancel [patch]
func (h *MembershipHandler) CancelRequest(c *gin.Context) {
	requestID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := auth.CurrentUser(c)

	membership, err := h.membershipService.CancelRequest(requestID, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

// GetCompanyMembers lists the company's members
// @Summary List company members
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.UserListResponse
// @Security BearerAuth
// @Router /companies/{id}/members [get]
func (h *MembershipHandler) GetCompanyMembers(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	members, err := h.membershipService.GetCompanyMembers(companyID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetCompanyAdmins lists the company's admins
// @Summary List company admins
// @Tags memberships
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.UserListResponse
// @Security BearerAuth
// @Router /companies/{id}/admins [get]
func (h *MembershipHandler) GetCompanyAdmins(c *gin.Context) {
	companyID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	admins, err := h.membershipService.GetCompanyAdmins(companyID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}
