package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"planner/internal/middleware"
	"planner/internal/model"
	"planner/internal/schedule"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskServiceInterface interface {
	QuickAdd(ctx context.Context, in service.QuickAddInput) (*model.Task, error)
	Get(ctx context.Context, id string) (*model.Task, error)
	Update(ctx context.Context, id string, p service.TaskPatch) (*model.Task, error)
	ToggleStatus(ctx context.Context, id string) (*model.Task, error)
	Archive(ctx context.Context, id string) (*model.Task, error)
	Delete(ctx context.Context, id string) error
	Sections(ctx context.Context, today model.Date) ([]schedule.Group, error)
	Archived(ctx context.Context) ([]model.Task, error)
}

type SchedulerInterface interface {
	ReorderTask(ctx context.Context, in service.ReorderInput) (*model.Task, error)
	SnoozeTask(ctx context.Context, id string, clientToday model.Date) (*model.Task, error)
}

var (
	_ TaskServiceInterface = (*service.TaskService)(nil)
	_ SchedulerInterface   = (*service.Scheduler)(nil)
)

type TaskHandler struct {
	tasks     TaskServiceInterface
	scheduler SchedulerInterface
}

func NewTaskHandler(tasks TaskServiceInterface, scheduler SchedulerInterface) *TaskHandler {
	return &TaskHandler{tasks: tasks, scheduler: scheduler}
}

// CreateTaskRequest is the quick-add payload. Section and ClientToday are
// optional; together they drop the new task straight into a section.
type CreateTaskRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Group       model.Group    `json:"group" binding:"omitempty,oneof=personal work"`
	TaskType    model.TaskType `json:"taskType" binding:"omitempty,oneof=regular work-focus to-read"`
	ProjectID   string         `json:"projectId"`
	Priority    *int           `json:"priority"`
	DueDate     *model.Date    `json:"dueDate"`
	Section     string         `json:"section" binding:"omitempty,section"`
	ClientToday model.Date     `json:"clientToday"`
}

// UpdateTaskRequest is a partial update. Absent fields are untouched;
// "dueDate": "" clears the date.
type UpdateTaskRequest struct {
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Status        *model.Status   `json:"status" binding:"omitempty,oneof=open done"`
	Group         *model.Group    `json:"group" binding:"omitempty,oneof=personal work"`
	TaskType      *model.TaskType `json:"taskType" binding:"omitempty,oneof=regular work-focus to-read"`
	ProjectID     *string         `json:"projectId"`
	DueDate       *string         `json:"dueDate"`
	Priority      *int            `json:"priority"`
	ClearPriority bool            `json:"clearPriority"`
	OrderRank     *float64        `json:"orderRank"`
}

type ReorderTaskRequest struct {
	TargetSection string     `json:"targetSection" binding:"required,section"`
	BeforeTaskID  string     `json:"beforeTaskId"`
	AfterTaskID   string     `json:"afterTaskId"`
	ClientToday   model.Date `json:"clientToday"`
}

type SnoozeTaskRequest struct {
	ClientToday model.Date `json:"clientToday"`
}

type SectionsResponse struct {
	Today    string           `json:"today"`
	Sections []schedule.Group `json:"sections"`
}

// Sections returns every active task grouped for the board. The UI polls it.
func (h *TaskHandler) Sections(c *gin.Context) {
	today, ok := middleware.GetClientToday(c)
	if q := c.Query("today"); q != "" {
		d, err := model.ParseDate(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid today parameter, expected YYYY-MM-DD"})
			return
		}
		today, ok = d, true
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "today is required"})
		return
	}

	groups, err := h.tasks.Sections(c.Request.Context(), today)
	if err != nil {
		respondError(c, err, "Failed to retrieve tasks")
		return
	}

	c.JSON(http.StatusOK, SectionsResponse{Today: today.String(), Sections: groups})
}

func (h *TaskHandler) Archived(c *gin.Context) {
	tasks, err := h.tasks.Archived(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve archived tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.QuickAdd(c.Request.Context(), service.QuickAddInput{
		Title:       req.Title,
		Description: req.Description,
		Group:       req.Group,
		Type:        req.TaskType,
		ProjectID:   req.ProjectID,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Section:     schedule.Section(req.Section),
		ClientToday: clientToday(c, req.ClientToday),
	})
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), c.Param("id"), service.TaskPatch{
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		Group:         req.Group,
		Type:          req.TaskType,
		ProjectID:     req.ProjectID,
		DueDate:       req.DueDate,
		Priority:      req.Priority,
		ClearPriority: req.ClearPriority,
		OrderRank:     req.OrderRank,
	})
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func (h *TaskHandler) Toggle(c *gin.Context) {
	task, err := h.tasks.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to toggle task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Archive(c *gin.Context) {
	task, err := h.tasks.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to archive task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Snooze pushes a task one day out. The body is optional when the
// X-Client-Today header is sent.
func (h *TaskHandler) Snooze(c *gin.Context) {
	var req SnoozeTaskRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.scheduler.SnoozeTask(c.Request.Context(), c.Param("id"), clientToday(c, req.ClientToday))
	if err != nil {
		respondError(c, err, "Failed to snooze task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Reorder handles a drag and drop: the task lands in targetSection between
// beforeTaskId and afterTaskId.
func (h *TaskHandler) Reorder(c *gin.Context) {
	var req ReorderTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.scheduler.ReorderTask(c.Request.Context(), service.ReorderInput{
		TaskID:        c.Param("id"),
		TargetSection: schedule.Section(req.TargetSection),
		BeforeTaskID:  req.BeforeTaskID,
		AfterTaskID:   req.AfterTaskID,
		ClientToday:   clientToday(c, req.ClientToday),
	})
	if err != nil {
		respondError(c, err, "Failed to reorder task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// clientToday prefers the date sent in the body over the header.
func clientToday(c *gin.Context, body model.Date) model.Date {
	if !body.IsZero() {
		return body
	}
	today, _ := middleware.GetClientToday(c)
	return today
}

func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
