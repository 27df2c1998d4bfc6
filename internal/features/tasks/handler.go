package tasks

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/homehub-app/homehub/internal/pkg/push"
	"github.com/homehub-app/homehub/internal/pkg/response"
	"github.com/homehub-app/homehub/internal/pkg/stream"
	apperrors "github.com/homehub-app/homehub/pkg/errors"
)

// MemberDirectory resolves a member's registered device tokens, implemented
// by the users feature and injected at route registration.
type MemberDirectory interface {
	DeviceTokens(ctx context.Context, userID string) ([]string, error)
}

type Handler struct {
	repo     *Repository
	hub      *stream.Hub
	notifier *push.Notifier
	members  MemberDirectory
}

func NewHandler(repo *Repository, hub *stream.Hub, notifier *push.Notifier, members MemberDirectory) *Handler {
	return &Handler{repo: repo, hub: hub, notifier: notifier, members: members}
}

// Create godoc
// @Summary Create a new task
// @Description Create a task for the household, optionally recurring
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task creation data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /tasks/ [post]
func (h *Handler) Create(c *gin.Context) {
	householdID := c.GetString("householdID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateTask(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	task := &Task{
		HouseholdID: householdID,
		Title:       req.Title,
		Notes:       req.Notes,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
		AssigneeID:  req.AssigneeID,
		Recurrence:  req.Recurrence,
	}

	if err := h.repo.Create(c.Request.Context(), task); err != nil {
		response.DatabaseError(c, "Failed to create task")
		return
	}

	h.publish(c.Request.Context(), householdID)
	h.notifyAssignee(c.Request.Context(), task)

	response.Created(c, task)
}

// Get godoc
// @Summary Get a task by ID
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	householdID := c.GetString("householdID")

	task, err := h.repo.GetByID(c.Request.Context(), c.Param("id"), householdID)
	if err != nil {
		response.BadRequest(c, "Invalid task ID")
		return
	}
	if task == nil {
		response.NotFound(c, "Task not found")
		return
	}

	response.Success(c, task)
}

// Update godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body UpdateTaskRequest true "Task update data"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	householdID := c.GetString("householdID")
	taskID := c.Param("id")

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateTask(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	update := bson.M{}
	if req.Title != "" {
		update["title"] = req.Title
	}
	if req.Notes != nil {
		update["notes"] = *req.Notes
	}
	if req.DueDate != "" {
		update["dueDate"] = req.DueDate
	}
	if req.DueTime != nil {
		update["dueTime"] = *req.DueTime
	}
	if req.Completed != nil {
		update["completed"] = *req.Completed
	}
	if req.AssigneeID != nil {
		update["assigneeId"] = *req.AssigneeID
	}
	if req.Recurrence != nil {
		update["recurrence"] = req.Recurrence
	}

	if len(update) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.Update(c.Request.Context(), taskID, householdID, update); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Task not found")
			return
		}
		response.FromError(c, err)
		return
	}

	task, err := h.repo.GetByID(c.Request.Context(), taskID, householdID)
	if err != nil || task == nil {
		response.InternalServerError(c, "Failed to retrieve updated task")
		return
	}

	h.publish(c.Request.Context(), householdID)

	response.Success(c, task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	householdID := c.GetString("householdID")

	if err := h.repo.Delete(c.Request.Context(), c.Param("id"), householdID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Task not found")
			return
		}
		response.FromError(c, err)
		return
	}

	h.publish(c.Request.Context(), householdID)

	response.Success(c, map[string]string{"message": "Task deleted successfully"})
}

// List godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param completed query bool false "Filter by completion status"
// @Success 200 {object} response.PaginatedResponse
// @Router /tasks/ [get]
func (h *Handler) List(c *gin.Context) {
	householdID := c.GetString("householdID")

	var completed *bool
	if completedStr := c.Query("completed"); completedStr != "" {
		if val, err := strconv.ParseBool(completedStr); err == nil {
			completed = &val
		}
	}

	result, err := h.repo.List(c.Request.Context(), householdID, completed)
	if err != nil {
		response.InternalServerError(c, "Failed to get tasks")
		return
	}

	total, err := h.repo.CountByHousehold(c.Request.Context(), householdID)
	if err != nil {
		response.InternalServerError(c, "Failed to count tasks")
		return
	}

	response.Paginated(c, result, total, len(result))
}

// Agenda godoc
// @Summary List tasks occurring on a date
// @Description Evaluates each task's recurrence rule against the given calendar date
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks/agenda [get]
func (h *Handler) Agenda(c *gin.Context) {
	householdID := c.GetString("householdID")

	target, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		response.BadRequest(c, "date query parameter must be in YYYY-MM-DD format")
		return
	}

	all, err := h.repo.List(c.Request.Context(), householdID, nil)
	if err != nil {
		response.InternalServerError(c, "Failed to get tasks")
		return
	}

	occurring := []Task{}
	for i := range all {
		if OccursOn(&all[i], target) {
			occurring = append(occurring, all[i])
		}
	}

	response.Success(c, occurring)
}

// ClearCompleted godoc
// @Summary Delete all completed tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Router /tasks/completed [delete]
func (h *Handler) ClearCompleted(c *gin.Context) {
	householdID := c.GetString("householdID")

	deleted, err := h.repo.ClearCompleted(c.Request.Context(), householdID)
	if err != nil {
		response.DatabaseError(c, "Failed to clear completed tasks")
		return
	}

	h.publish(c.Request.Context(), householdID)

	response.Success(c, map[string]int64{"deleted": deleted})
}

// Stream godoc
// @Summary Subscribe to task collection snapshots
// @Description Server-sent events stream; every mutation pushes the full task collection
// @Tags tasks
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "SSE stream"
// @Router /tasks/stream [get]
func (h *Handler) Stream(c *gin.Context) {
	householdID := c.GetString("householdID")

	ch, cancel := h.hub.Subscribe(stream.Key(householdID, "tasks"))
	defer cancel()

	// Send the current state up front so subscribers don't wait for the
	// first mutation.
	if current, err := h.repo.List(c.Request.Context(), householdID, nil); err == nil {
		c.SSEvent("snapshot", stream.Snapshot{Collection: "tasks", Items: current})
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
	items, err := h.repo.List(ctx, householdID, nil)
	if err != nil {
		log.Warn().Err(err).Str("householdId", householdID).Msg("task snapshot publish failed")
		return
	}
	h.hub.Publish(stream.Key(householdID, "tasks"), stream.Snapshot{Collection: "tasks", Items: items})
}

func (h *Handler) notifyAssignee(ctx context.Context, task *Task) {
	if task.AssigneeID == "" || h.members == nil || !h.notifier.Enabled() {
		return
	}

	tokens, err := h.members.DeviceTokens(ctx, task.AssigneeID)
	if err != nil {
		log.Warn().Err(err).Msg("assignee lookup failed")
		return
	}
	h.notifier.SendAll(ctx, tokens, "New task assigned", task.Title)
}
