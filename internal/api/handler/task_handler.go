package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agencyhub/agency-api/internal/core/domain"
	"github.com/agencyhub/agency-api/internal/core/ports"
)

// TaskHandler exposes the task board endpoints. Visibility scoping and
// workflow rules live in the service; the handler only shapes requests.
type TaskHandler struct {
	tasks ports.TaskService
}

func NewTaskHandler(tasks ports.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create handles POST /v1/tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		ActorID:          actor,
		ClientID:         req.ClientID,
		ProjectID:        req.ProjectID,
		Title:            req.Title,
		Priority:         req.Priority,
		Type:             req.Type,
		AssignedToUserID: req.AssignedToUserID,
		DueDate:          req.DueDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

// List handles GET /v1/tasks.
func (h *TaskHandler) List(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	tasks, err := h.tasks.ListTasks(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// Get handles GET /v1/tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	task, err := h.tasks.GetTask(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// ChangeStatus handles PATCH /v1/tasks/:id/status.
func (h *TaskHandler) ChangeStatus(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.tasks.ChangeStatus(c.Request().Context(), ports.ChangeStatusInput{
		ActorID:   actor,
		TaskID:    c.Param("id"),
		NewStatus: domain.TaskStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Reassign handles PATCH /v1/tasks/:id/assignee.
func (h *TaskHandler) Reassign(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req reassignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	task, err := h.tasks.Reassign(c.Request().Context(), ports.ReassignTaskInput{
		ActorID:          actor,
		TaskID:           c.Param("id"),
		AssignedToUserID: req.AssignedToUserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Activity handles GET /v1/tasks/:id/activity.
func (h *TaskHandler) Activity(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	entries, err := h.tasks.ListActivity(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []*domain.ActivityEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
