package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"taskman/internal/errors"
	"taskman/internal/model"
	"taskman/internal/service"
)

// TaskHandler bundles task HTTP handlers.
type TaskHandler struct {
	svc service.TaskService
}

// NewTaskHandler creates the task handler layer.
func NewTaskHandler(svc service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	UserID      int64  `json:"userId" validate:"required,gt=0"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest is the payload for a partial task update. Nil fields keep
// their current value; supplied fields follow the same rules as creation.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitnil,oneof=pending in-progress completed"`
	Priority    *string `json:"priority" validate:"omitnil,oneof=low medium high"`
}

// ListTasks godoc
// @Summary List tasks with optional filters
// @Tags tasks
// @Produce json
// @Param userId query int false "Filter by owning user id"
// @Param status query string false "Filter by status" Enums(pending, in-progress, completed)
// @Param priority query string false "Filter by priority" Enums(low, medium, high)
// @Success 200 {object} handler.Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	filter, err := parseTaskFilter(c)
	if err != nil {
		return respondError(c, err)
	}
	tasks, err := h.svc.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, tasks, len(tasks))
}

// parseTaskFilter reads the query string into a TaskFilter. Filter values are
// parsed and validated explicitly, never coerced.
func parseTaskFilter(c echo.Context) (model.TaskFilter, error) {
	var filter model.TaskFilter

	if raw := c.QueryParam("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.ErrInvalidUserID
		}
		filter.UserID = &userID
	}
	if status := c.QueryParam("status"); status != "" {
		if !model.IsValidStatus(status) {
			return filter, errors.NewValidationError(
				fmt.Sprintf("invalid status, must be one of: %s", strings.Join(model.Statuses(), ", ")))
		}
		filter.Status = status
	}
	if priority := c.QueryParam("priority"); priority != "" {
		if !model.IsValidPriority(priority) {
			return filter, errors.NewValidationError(
				fmt.Sprintf("invalid priority, must be one of: %s", strings.Join(model.Priorities(), ", ")))
		}
		filter.Priority = priority
	}
	return filter, nil
}

// GetTask godoc
// @Summary Get task by id
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} handler.Envelope
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, errors.ErrTaskNotFound)
	}
	task, err := h.svc.GetTask(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, task, "")
}

// CreateTask godoc
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body handler.CreateTaskRequest true "Task payload"
// @Success 201 {object} handler.Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	task, err := h.svc.CreateTask(c.Request().Context(), &model.Task{
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, task, "Task created successfully")
}

// UpdateTask godoc
// @Summary Partially update task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param task body handler.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} handler.Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, errors.ErrTaskNotFound)
	}
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	task, err := h.svc.UpdateTask(c.Request().Context(), id, model.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, task, "Task updated successfully")
}

// DeleteTask godoc
// @Summary Delete task
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} handler.Envelope
// @Failure 404 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return respondError(c, errors.ErrTaskNotFound)
	}
	if err := h.svc.DeleteTask(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, nil, "Task deleted successfully")
}
