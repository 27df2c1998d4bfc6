package users

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/homehub-app/homehub/internal/pkg/response"
	"github.com/homehub-app/homehub/internal/pkg/validator"
	apperrors "github.com/homehub-app/homehub/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List household members
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /users/ [get]
func (h *Handler) List(c *gin.Context) {
	members, err := h.repo.List(c.Request.Context(), c.GetString("householdID"))
	if err != nil {
		response.InternalServerError(c, "Failed to get members")
		return
	}

	response.Success(c, members)
}

// Get godoc
// @Summary Get a household member
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	member, err := h.repo.GetByID(c.Request.Context(), c.Param("id"), c.GetString("householdID"))
	if err != nil {
		response.BadRequest(c, "Invalid member ID")
		return
	}
	if member == nil {
		response.NotFound(c, "Member not found")
		return
	}

	response.Success(c, member)
}

// Update godoc
// @Summary Update a member profile
// @Description Role changes require an admin session
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param request body UpdateMemberRequest true "Profile update data"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	householdID := c.GetString("householdID")
	memberID := c.Param("id")

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	update := bson.M{}
	if req.Name != "" {
		if !validator.IsValidName(req.Name) {
			response.ValidationFailed(c, "Invalid name")
			return
		}
		update["name"] = req.Name
	}
	if req.Role != "" {
		if !IsValidRole(req.Role) {
			response.ValidationFailed(c, "Invalid role")
			return
		}
		if c.GetString("role") != RoleAdmin {
			response.Forbidden(c, "Only admins can change roles")
			return
		}
		update["role"] = req.Role
	}
	if req.Allergies != nil {
		update["allergies"] = *req.Allergies
	}
	if req.Preferences != nil {
		update["preferences"] = *req.Preferences
	}

	if len(update) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.Update(c.Request.Context(), memberID, householdID, update); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Member not found")
			return
		}
		response.FromError(c, err)
		return
	}

	member, err := h.repo.GetByID(c.Request.Context(), memberID, householdID)
	if err != nil || member == nil {
		response.InternalServerError(c, "Failed to retrieve updated member")
		return
	}

	response.Success(c, member)
}

// Delete godoc
// @Summary Remove a member from the household
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if c.Param("id") == c.GetString("userID") {
		response.BadRequest(c, "You cannot remove yourself")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), c.Param("id"), c.GetString("householdID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Member not found")
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, map[string]string{"message": "Member removed"})
}

// RegisterDevice godoc
// @Summary Register a push notification device token
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterDeviceRequest true "Device token"
// @Success 200 {object} response.SuccessResponse
// @Router /users/me/devices [post]
func (h *Handler) RegisterDevice(c *gin.Context) {
	var req RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := h.repo.AddDeviceToken(c.Request.Context(), c.GetString("userID"), req.DeviceToken); err != nil {
		response.DatabaseError(c, "Failed to register device")
		return
	}

	response.Success(c, map[string]string{"message": "Device registered"})
}
