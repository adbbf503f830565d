package handler

import (
	"context"
	"net/http"

	"planner/internal/model"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
)

type ActionServiceInterface interface {
	Stage(ctx context.Context, candidates []service.ActionCandidate) ([]model.MeetingAction, error)
	List(ctx context.Context, status model.ActionStatus) ([]model.MeetingAction, error)
	Approve(ctx context.Context, id string, o service.ApprovalOverrides) (*model.Task, *model.MeetingAction, error)
	Reject(ctx context.Context, id string) (*model.MeetingAction, error)
}

var _ ActionServiceInterface = (*service.ActionService)(nil)

type ActionHandler struct {
	actions ActionServiceInterface
}

func NewActionHandler(actions ActionServiceInterface) *ActionHandler {
	return &ActionHandler{actions: actions}
}

type StageActionsRequest struct {
	Actions []service.ActionCandidate `json:"actions" binding:"required,min=1"`
}

// ApproveActionRequest overrides staged fields; every field is optional.
type ApproveActionRequest struct {
	Title     *string      `json:"title"`
	DueDate   *string      `json:"dueDate"`
	Group     *model.Group `json:"group" binding:"omitempty,oneof=personal work"`
	ProjectID *string      `json:"projectId"`
}

type ApproveActionResponse struct {
	Task   *model.Task          `json:"task"`
	Action *model.MeetingAction `json:"action"`
}

func (h *ActionHandler) Stage(c *gin.Context) {
	var req StageActionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	staged, err := h.actions.Stage(c.Request.Context(), req.Actions)
	if err != nil {
		respondError(c, err, "Failed to stage actions")
		return
	}
	c.JSON(http.StatusCreated, staged)
}

func (h *ActionHandler) GetAll(c *gin.Context) {
	actions, err := h.actions.List(c.Request.Context(), model.ActionStatus(c.Query("status")))
	if err != nil {
		respondError(c, err, "Failed to retrieve actions")
		return
	}
	c.JSON(http.StatusOK, actions)
}

func (h *ActionHandler) Approve(c *gin.Context) {
	var req ApproveActionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, action, err := h.actions.Approve(c.Request.Context(), c.Param("id"), service.ApprovalOverrides{
		Title:     req.Title,
		DueDate:   req.DueDate,
		Group:     req.Group,
		ProjectID: req.ProjectID,
	})
	if err != nil {
		respondError(c, err, "Failed to approve action")
		return
	}
	c.JSON(http.StatusOK, ApproveActionResponse{Task: task, Action: action})
}

func (h *ActionHandler) Reject(c *gin.Context) {
	action, err := h.actions.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to reject action")
		return
	}
	c.JSON(http.StatusOK, action)
}
