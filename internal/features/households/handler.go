package households

import (
	"github.com/gin-gonic/gin"

	"github.com/homehub-app/homehub/internal/pkg/response"
	apperrors "github.com/homehub-app/homehub/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Get godoc
// @Summary Get the caller's household
// @Tags households
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /household [get]
func (h *Handler) Get(c *gin.Context) {
	household, err := h.repo.GetByID(c.Request.Context(), c.GetString("householdID"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if household == nil {
		response.FromError(c, apperrors.ErrNotFound)
		return
	}

	response.Success(c, household)
}

type UpdateHouseholdRequest struct {
	Name string `json:"name" binding:"required"`
}

// Update godoc
// @Summary Rename the household
// @Tags households
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateHouseholdRequest true "New name"
// @Success 200 {object} response.SuccessResponse
// @Router /household [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateHouseholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	householdID := c.GetString("householdID")
	if err := h.repo.SetName(c.Request.Context(), householdID, req.Name); err != nil {
		response.FromError(c, err)
		return
	}

	household, err := h.repo.GetByID(c.Request.Context(), householdID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, household)
}
