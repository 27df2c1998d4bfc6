package shopping

import (
	"context"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/homehub-app/homehub/internal/pkg/response"
	"github.com/homehub-app/homehub/internal/pkg/stream"
	apperrors "github.com/homehub-app/homehub/pkg/errors"
)

type Handler struct {
	repo *Repository
	hub  *stream.Hub
}

func NewHandler(repo *Repository, hub *stream.Hub) *Handler {
	return &Handler{repo: repo, hub: hub}
}

// Create godoc
// @Summary Add a shopping item
// @Tags shopping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateItemRequest true "Item data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /shopping/ [post]
func (h *Handler) Create(c *gin.Context) {
	householdID := c.GetString("householdID")

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateItem(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	item := &Item{
		HouseholdID: householdID,
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		AssigneeID:  req.AssigneeID,
	}

	if item.Category == "" {
		item.Category = "other"
	}

	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		response.DatabaseError(c, "Failed to create item")
		return
	}

	h.publish(c.Request.Context(), householdID)

	response.Created(c, item)
}

// List godoc
// @Summary List shopping items
// @Tags shopping
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /shopping/ [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context(), c.GetString("householdID"))
	if err != nil {
		response.InternalServerError(c, "Failed to get items")
		return
	}

	response.Success(c, items)
}

// Update godoc
// @Summary Update a shopping item
// @Tags shopping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body UpdateItemRequest true "Item update data"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /shopping/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	householdID := c.GetString("householdID")
	itemID := c.Param("id")

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateItem(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	update := bson.M{}
	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Category != "" {
		update["category"] = req.Category
	}
	if req.Quantity != nil {
		update["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		update["unit"] = *req.Unit
	}
	if req.Completed != nil {
		update["completed"] = *req.Completed
	}
	if req.AssigneeID != nil {
		update["assigneeId"] = *req.AssigneeID
	}

	if len(update) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.Update(c.Request.Context(), itemID, householdID, update); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Item not found")
			return
		}
		response.FromError(c, err)
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), itemID, householdID)
	if err != nil || item == nil {
		response.InternalServerError(c, "Failed to retrieve updated item")
		return
	}

	h.publish(c.Request.Context(), householdID)

	response.Success(c, item)
}

// Delete godoc
// @Summary Delete a shopping item
// @Tags shopping
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /shopping/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	householdID := c.GetString("householdID")

	if err := h.repo.Delete(c.Request.Context(), c.Param("id"), householdID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Item not found")
			return
		}
		response.FromError(c, err)
		return
	}

	h.publish(c.Request.Context(), householdID)

	response.Success(c, map[string]string{"message": "Item deleted successfully"})
}

// ClearCompleted godoc
// @Summary Delete all checked-off items
// @Tags shopping
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /shopping/completed [delete]
func (h *Handler) ClearCompleted(c *gin.Context) {
	householdID := c.GetString("householdID")

	deleted, err := h.repo.ClearCompleted(c.Request.Context(), householdID)
	if err != nil {
		response.DatabaseError(c, "Failed to clear completed items")
		return
	}

	h.publish(c.Request.Context(), householdID)

	response.Success(c, map[string]int64{"deleted": deleted})
}

// Stream godoc
// @Summary Subscribe to shopping list snapshots
// @Tags shopping
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "SSE stream"
// @Router /shopping/stream [get]
func (h *Handler) Stream(c *gin.Context) {
	householdID := c.GetString("householdID")

	ch, cancel := h.hub.Subscribe(stream.Key(householdID, "shopping"))
	defer cancel()

	if current, err := h.repo.List(c.Request.Context(), householdID); err == nil {
		c.SSEvent("snapshot", stream.Snapshot{Collection: "shopping", Items: current})
		c.Writer.Flush()
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case snap, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", snap)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *Handler) publish(ctx context.Context, householdID string) {
	items, err := h.repo.List(ctx, householdID)
	if err != nil {
		log.Warn().Err(err).Str("householdId", householdID).Msg("shopping snapshot publish failed")
		return
	}
	h.hub.Publish(stream.Key(householdID, "shopping"), stream.Snapshot{Collection: "shopping", Items: items})
}
