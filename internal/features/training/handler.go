package training

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

// CreateModule godoc
// @Summary Create a training module
// @Tags training
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateModuleRequest true "Module data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /training [post]
func (h *Handler) CreateModule(c *gin.Context) {
	var req CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if len(req.Steps) == 0 {
		response.ValidationFailed(c, "at least one step is required")
		return
	}

	module := &Module{
		HouseholdID: c.GetString("householdID"),
		Title:       req.Title,
		Category:    req.Category,
		Steps:       req.Steps,
	}

	if err := h.repo.CreateModule(c.Request.Context(), module); err != nil {
		response.DatabaseError(c, "Failed to create module")
		return
	}

	response.Created(c, module)
}

// ListModules godoc
// @Summary List training modules
// @Tags training
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /training [get]
func (h *Handler) ListModules(c *gin.Context) {
	modules, err := h.repo.ListModules(c.Request.Context(), c.GetString("householdID"))
	if err != nil {
		response.DatabaseError(c, "Failed to list modules")
		return
	}

	response.Success(c, modules)
}

// GetModule godoc
// @Summary Get a training module
// @Tags training
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module id"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /training/{id} [get]
func (h *Handler) GetModule(c *gin.Context) {
	module, err := h.repo.GetModule(c.Request.Context(), c.GetString("householdID"), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, module)
}

// UpdateModule godoc
// @Summary Update a training module
// @Tags training
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module id"
// @Param request body UpdateModuleRequest true "Fields to change"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /training/{id} [put]
func (h *Handler) UpdateModule(c *gin.Context) {
	var req UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	updates := bson.M{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Steps != nil {
		if len(*req.Steps) == 0 {
			response.ValidationFailed(c, "at least one step is required")
			return
		}
		updates["steps"] = *req.Steps
	}
	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	householdID := c.GetString("householdID")
	id := c.Param("id")
	if err := h.repo.UpdateModule(c.Request.Context(), householdID, id, updates); err != nil {
		response.FromError(c, err)
		return
	}

	module, err := h.repo.GetModule(c.Request.Context(), householdID, id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, module)
}

// DeleteModule godoc
// @Summary Delete a training module
// @Tags training
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module id"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /training/{id} [delete]
func (h *Handler) DeleteModule(c *gin.Context) {
	if err := h.repo.DeleteModule(c.Request.Context(), c.GetString("householdID"), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// ToggleProgress godoc
// @Summary Set the caller's completion state for a module
// @Tags training
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Module id"
// @Param request body ToggleProgressRequest true "Completion state"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /training/{id}/progress [put]
func (h *Handler) ToggleProgress(c *gin.Context) {
	var req ToggleProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	householdID := c.GetString("householdID")
	moduleID := c.Param("id")

	// Toggling progress on a module that does not exist is a 404, not an upsert.
	if _, err := h.repo.GetModule(c.Request.Context(), householdID, moduleID); err != nil {
		response.FromError(c, err)
		return
	}

	progress, err := h.repo.SetProgress(c.Request.Context(), householdID, moduleID, c.GetString("userID"), req.Completed)
	if err != nil {
		response.DatabaseError(c, "Failed to update progress")
		return
	}

	response.Success(c, progress)
}

// ListProgress godoc
// @Summary List the caller's module progress
// @Tags training
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /training/progress [get]
func (h *Handler) ListProgress(c *gin.Context) {
	rows, err := h.repo.ListProgress(c.Request.Context(), c.GetString("householdID"), c.GetString("userID"))
	if err != nil {
		response.DatabaseError(c, "Failed to list progress")
		return
	}

	response.Success(c, rows)
}
