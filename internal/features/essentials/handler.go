package essentials

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/homehub-app/homehub/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Add a household contact or place
// @Tags essentials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEssentialRequest true "Essential data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /essentials [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateEssentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if !IsValidKind(req.Kind) {
		response.ValidationFailed(c, "kind must be contact or place")
		return
	}

	essential := &Essential{
		HouseholdID: c.GetString("householdID"),
		Kind:        req.Kind,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Notes:       req.Notes,
	}

	if err := h.repo.Create(c.Request.Context(), essential); err != nil {
		response.DatabaseError(c, "Failed to create essential")
		return
	}

	response.Created(c, essential)
}

// List godoc
// @Summary List household contacts and places
// @Tags essentials
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Filter by kind (contact or place)"
// @Success 200 {object} response.SuccessResponse
// @Router /essentials [get]
func (h *Handler) List(c *gin.Context) {
	kind := c.Query("kind")
	if kind != "" && !IsValidKind(kind) {
		response.ValidationFailed(c, "kind must be contact or place")
		return
	}

	essentials, err := h.repo.List(c.Request.Context(), c.GetString("householdID"), kind)
	if err != nil {
		response.DatabaseError(c, "Failed to list essentials")
		return
	}

	response.Success(c, essentials)
}

// Update godoc
// @Summary Update a contact or place
// @Tags essentials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Essential id"
// @Param request body UpdateEssentialRequest true "Fields to change"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /essentials/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateEssentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	essential, err := h.repo.Update(c.Request.Context(), c.GetString("householdID"), c.Param("id"), updates)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, essential)
}

// Delete godoc
// @Summary Delete a contact or place
// @Tags essentials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Essential id"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /essentials/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.GetString("householdID"), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
