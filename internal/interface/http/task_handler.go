package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/uxelf/tasksapp/internal/application"
	"github.com/uxelf/tasksapp/internal/domain/entity"
	"github.com/uxelf/tasksapp/internal/interface/middleware"
	"github.com/uxelf/tasksapp/pkg/helpers"
	"github.com/uxelf/tasksapp/pkg/response"
	"github.com/uxelf/tasksapp/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title       string       `json:"title" binding:"required,min=1,max=255"`
	Description *string      `json:"description" binding:"omitempty,max=5000"`
	Start       helpers.Date `json:"start"`
	End         helpers.Date `json:"end"`
}

type updateTaskRequest struct {
	Title       *string            `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string            `json:"description" binding:"omitempty,max=5000"`
	Status      *entity.TaskStatus `json:"status" binding:"omitempty,taskstatus"`
	Start       *helpers.Date      `json:"start"`
	End         *helpers.Date      `json:"end"`
}

func callerID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserIDKey)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	view, err := h.Svc.Create(c.Request.Context(), callerID(c), application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
	})
	if err != nil {
		h.writeTaskError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, "task created")
}

// List GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	views, err := h.Svc.ListByUser(c.Request.Context(), callerID(c))
	if err != nil {
		h.writeTaskError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views, "tasks")
}

// ListForDay GET /api/tasks/day?date=yyyy-MM-dd
func (h *TaskHandler) ListForDay(c *gin.Context) {
	date, err := helpers.ParseDate(c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	views, err := h.Svc.ListForDay(c.Request.Context(), callerID(c), date)
	if err != nil {
		h.writeTaskError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views, "tasks for day")
}

// ListForMonth GET /api/tasks/month?date=yyyy-MM
func (h *TaskHandler) ListForMonth(c *gin.Context) {
	ym, err := time.Parse("2006-01", c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid month: expected yyyy-MM", nil)
		return
	}
	views, err := h.Svc.ListForMonth(c.Request.Context(), callerID(c), ym.Year(), ym.Month())
	if err != nil {
		h.writeTaskError(c, err)
		return
	}
	response.Success(c, http.StatusOK, views, "tasks for month")
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	view, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"), callerID(c))
	if err != nil {
		h.writeTaskError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, "task")
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	view, err := h.Svc.Update(c.Request.Context(), c.Param("id"), callerID(c), application.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Start:       req.Start,
		End:         req.End,
	})
	if err != nil {
		h.writeTaskError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view, "task updated")
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		h.writeTaskError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "task deleted")
}

// Statuses GET /api/tasks/status
func (h *TaskHandler) Statuses(c *gin.Context) {
	response.Success(c, http.StatusOK, entity.TaskStatuses(), "task statuses")
}

// writeTaskError maps service failures to the HTTP taxonomy: validation 400,
// missing task/user 404, ownership mismatch 403, everything else 500.
func (h *TaskHandler) writeTaskError(c *gin.Context, err error) {
	switch {
	case application.IsValidation(err):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrTaskNotFound), errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error(c, http.StatusForbidden, err.Error(), nil)
	default:
		h.Logger.WithError(err).Error("task operation failed")
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
