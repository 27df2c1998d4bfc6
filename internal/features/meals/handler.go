package meals

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/homehub-app/homehub/internal/pkg/response"
	"github.com/homehub-app/homehub/internal/pkg/validator"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Add a meal plan entry
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMealRequest true "Meal data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /meals [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if !validator.IsValidDate(req.Date) {
		response.ValidationFailed(c, "date must be YYYY-MM-DD")
		return
	}
	if !IsValidSlot(req.Slot) {
		response.ValidationFailed(c, "slot must be breakfast, lunch, dinner or snack")
		return
	}

	meal := &Meal{
		HouseholdID: c.GetString("householdID"),
		Date:        req.Date,
		Slot:        req.Slot,
		Title:       req.Title,
		Notes:       req.Notes,
		AssigneeID:  req.AssigneeID,
	}

	if err := h.repo.Create(c.Request.Context(), meal); err != nil {
		response.DatabaseError(c, "Failed to create meal")
		return
	}

	response.Created(c, meal)
}

// List godoc
// @Summary List meal plan entries
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {object} response.SuccessResponse
// @Router /meals [get]
func (h *Handler) List(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from != "" && !validator.IsValidDate(from) {
		response.ValidationFailed(c, "from must be YYYY-MM-DD")
		return
	}
	if to != "" && !validator.IsValidDate(to) {
		response.ValidationFailed(c, "to must be YYYY-MM-DD")
		return
	}

	meals, err := h.repo.List(c.Request.Context(), c.GetString("householdID"), from, to)
	if err != nil {
		response.DatabaseError(c, "Failed to list meals")
		return
	}

	response.Success(c, meals)
}

// Update godoc
// @Summary Update a meal plan entry
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal id"
// @Param request body UpdateMealRequest true "Fields to change"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /meals/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	updates := bson.M{}
	if req.Date != nil {
		if !validator.IsValidDate(*req.Date) {
			response.ValidationFailed(c, "date must be YYYY-MM-DD")
			return
		}
		updates["date"] = *req.Date
	}
	if req.Slot != nil {
		if !IsValidSlot(*req.Slot) {
			response.ValidationFailed(c, "slot must be breakfast, lunch, dinner or snack")
			return
		}
		updates["slot"] = *req.Slot
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.AssigneeID != nil {
		updates["assigneeId"] = *req.AssigneeID
	}
	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	householdID := c.GetString("householdID")
	id := c.Param("id")
	if err := h.repo.Update(c.Request.Context(), householdID, id, updates); err != nil {
		response.FromError(c, err)
		return
	}

	meal, err := h.repo.GetByID(c.Request.Context(), householdID, id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, meal)
}

// Delete godoc
// @Summary Delete a meal plan entry
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Meal id"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /meals/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.GetString("householdID"), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
