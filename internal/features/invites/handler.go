package invites

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/homehub-app/homehub/internal/config"
	"github.com/homehub-app/homehub/internal/pkg/lang"
	"github.com/homehub-app/homehub/internal/pkg/response"
	"github.com/homehub-app/homehub/internal/pkg/token"
	"github.com/homehub-app/homehub/internal/pkg/validator"
)

// HouseholdDirectory resolves household display data for invite screens.
type HouseholdDirectory interface {
	HouseholdInfo(ctx context.Context, householdID string) (name string, ownerID string, err error)
}

type Handler struct {
	repo       *Repository
	households HouseholdDirectory
	cfg        *config.Config
}

func NewHandler(repo *Repository, households HouseholdDirectory, cfg *config.Config) *Handler {
	return &Handler{repo: repo, households: households, cfg: cfg}
}

func (h *Handler) inviteLink(householdID, userID, inviteToken string) string {
	base := strings.TrimRight(h.cfg.FrontendURL, "/")
	query := url.Values{}
	query.Set("hid", householdID)
	query.Set("uid", userID)
	query.Set("tok", inviteToken)
	return fmt.Sprintf("%s/invite?%s", base, query.Encode())
}

// Issue godoc
// @Summary Invite a member to the household
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InviteRequest true "Invite data"
// @Success 201 {object} InviteResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /invite [post]
func (h *Handler) Issue(c *gin.Context) {
	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !validator.IsValidName(req.Name) {
		response.ValidationFailed(c, "name is required")
		return
	}
	if !validator.IsValidEmail(req.Email) {
		response.ValidationFailed(c, "invalid email address")
		return
	}
	if !isInvitableRole(req.Role) {
		response.ValidationFailed(c, "role must be spouse, helper or child")
		return
	}

	householdID := c.GetString("householdID")
	ttl := time.Duration(h.cfg.InviteTTLHours) * time.Hour

	invitee := &Invitee{
		HouseholdID:     householdID,
		Name:            req.Name,
		Email:           req.Email,
		Role:            req.Role,
		InviteExpiresAt: time.Now().Add(ttl),
	}

	if err := h.repo.CreatePending(c.Request.Context(), invitee); err != nil {
		response.FromError(c, err)
		return
	}

	inviteToken, err := token.GenerateInvite(invitee.ID.Hex(), householdID, ttl)
	if err != nil {
		response.InternalServerError(c, "Failed to generate invite token")
		return
	}

	response.Created(c, InviteResponse{
		User:       invitee,
		InviteLink: h.inviteLink(householdID, invitee.ID.Hex(), inviteToken),
	})
}

// Resend godoc
// @Summary Re-issue an invite with a fresh expiry
// @Tags invites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ResendRequest true "Pending member"
// @Success 200 {object} InviteResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /invite/resend [post]
func (h *Handler) Resend(c *gin.Context) {
	var req ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	householdID := c.GetString("householdID")
	ttl := time.Duration(h.cfg.InviteTTLHours) * time.Hour
	expiresAt := time.Now().Add(ttl)

	if err := h.repo.ExtendInvite(c.Request.Context(), householdID, req.UserID, expiresAt); err != nil {
		response.FromError(c, err)
		return
	}

	invitee, err := h.repo.FindByID(c.Request.Context(), householdID, req.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	inviteToken, err := token.GenerateInvite(req.UserID, householdID, ttl)
	if err != nil {
		response.InternalServerError(c, "Failed to generate invite token")
		return
	}

	response.Success(c, InviteResponse{
		User:       invitee,
		InviteLink: h.inviteLink(householdID, req.UserID, inviteToken),
	})
}

// Info godoc
// @Summary Describe a pending invite for the landing page
// @Tags invites
// @Produce json
// @Param hid query string true "Household id"
// @Param uid query string true "Invited user id"
// @Success 200 {object} InviteInfo
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 410 {object} response.ErrorResponse
// @Router /get-invite-info [get]
func (h *Handler) Info(c *gin.Context) {
	householdID := c.Query("hid")
	userID := c.Query("uid")
	if householdID == "" || userID == "" {
		response.BadRequest(c, "hid and uid are required")
		return
	}

	invitee, err := h.repo.FindPending(c.Request.Context(), householdID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	householdName, ownerID, err := h.households.HouseholdInfo(c.Request.Context(), householdID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	invitedBy := ""
	if owner, err := h.repo.FindByID(c.Request.Context(), householdID, ownerID); err == nil {
		invitedBy = owner.Name
	}

	response.Success(c, InviteInfo{
		HouseholdName: householdName,
		InviteeName:   invitee.Name,
		InviteeRole:   invitee.Role,
		InvitedBy:     invitedBy,
		Greeting:      lang.Greeting(c.GetString("locale")),
	})
}

// Accept godoc
// @Summary Accept an invite and activate the member
// @Tags invites
// @Accept json
// @Produce json
// @Param request body AcceptRequest true "Invite acceptance"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 410 {object} response.ErrorResponse
// @Router /invite/accept [post]
func (h *Handler) Accept(c *gin.Context) {
	var req AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	claims, err := token.ValidateInvite(req.Token)
	if err != nil || claims.UserID != req.UserID || claims.HouseholdID != req.HouseholdID {
		response.Unauthorized(c, "Invalid or expired invite token")
		return
	}

	if !validator.IsStrongPassword(req.Password) {
		response.ValidationFailed(c, "password must be at least 8 characters")
		return
	}

	invitee, err := h.repo.FindPending(c.Request.Context(), req.HouseholdID, req.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	if err := h.repo.Activate(c.Request.Context(), req.HouseholdID, req.UserID, string(hashedPassword)); err != nil {
		response.FromError(c, err)
		return
	}

	sessionToken, err := token.GenerateSession(req.UserID, req.HouseholdID, invitee.Email, invitee.Role)
	if err != nil {
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, gin.H{"token": sessionToken})
}

func isInvitableRole(role string) bool {
	switch role {
	case "spouse", "helper", "child":
		return true
	}
	return false
}
