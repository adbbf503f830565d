package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"planner/internal/handler"
	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock action service
type MockActionService struct {
	mock.Mock
}

func (m *MockActionService) Stage(ctx context.Context, candidates []service.ActionCandidate) ([]model.MeetingAction, error) {
	args := m.Called(ctx, candidates)
	staged := args.Get(0)
	if staged == nil {
		return nil, args.Error(1)
	}
	return staged.([]model.MeetingAction), args.Error(1)
}

func (m *MockActionService) List(ctx context.Context, status model.ActionStatus) ([]model.MeetingAction, error) {
	args := m.Called(ctx, status)
	list := args.Get(0)
	if list == nil {
		return nil, args.Error(1)
	}
	return list.([]model.MeetingAction), args.Error(1)
}

func (m *MockActionService) Approve(ctx context.Context, id string, o service.ApprovalOverrides) (*model.Task, *model.MeetingAction, error) {
	args := m.Called(ctx, id, o)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.Task), args.Get(1).(*model.MeetingAction), args.Error(2)
}

func (m *MockActionService) Reject(ctx context.Context, id string) (*model.MeetingAction, error) {
	args := m.Called(ctx, id)
	a := args.Get(0)
	if a == nil {
		return nil, args.Error(1)
	}
	return a.(*model.MeetingAction), args.Error(1)
}

func setupActionTest(t *testing.T) (*gin.Engine, *MockActionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, handler.RegisterValidators())

	r := gin.New()
	actions := new(MockActionService)
	h := handler.NewActionHandler(actions)
	r.POST("/actions", h.Stage)
	r.GET("/actions", h.GetAll)
	r.POST("/actions/:id/approve", h.Approve)
	r.POST("/actions/:id/reject", h.Reject)
	return r, actions
}

func TestStageActions_Success(t *testing.T) {
	// Arrange
	router, actions := setupActionTest(t)
	actions.On("Stage", mock.Anything, mock.MatchedBy(func(c []service.ActionCandidate) bool {
		return len(c) == 1 && c[0].Title == "Send notes" && c[0].SuggestedDueDate.String() == "2026-03-13"
	})).Return([]model.MeetingAction{{ID: "a1", Title: "Send notes", Status: model.ActionPending}}, nil)

	// Act
	resp := doJSON(router, "POST", "/actions", gin.H{"actions": []gin.H{{
		"meetingTitle":     "Sync",
		"title":            "Send notes",
		"suggestedDueDate": "2026-03-13",
	}}}, nil)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"a1"`)
	actions.AssertExpectations(t)
}

func TestStageActions_EmptyBatch(t *testing.T) {
	// Arrange
	router, actions := setupActionTest(t)

	// Act
	resp := doJSON(router, "POST", "/actions", gin.H{"actions": []gin.H{}}, nil)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	actions.AssertNotCalled(t, "Stage", mock.Anything, mock.Anything)
}

func TestApproveAction_NoBody(t *testing.T) {
	// Arrange
	router, actions := setupActionTest(t)
	task := datedTask("t1", "2026-03-13")
	action := &model.MeetingAction{ID: "a1", Status: model.ActionApproved, TaskID: "t1"}
	actions.On("Approve", mock.Anything, "a1", service.ApprovalOverrides{}).Return(task, action, nil)

	// Act
	resp := doJSON(router, "POST", "/actions/a1/approve", nil, nil)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"taskId":"t1"`)
	actions.AssertExpectations(t)
}

func TestApproveAction_AlreadyReviewed(t *testing.T) {
	// Arrange
	router, actions := setupActionTest(t)
	actions.On("Approve", mock.Anything, "a1", mock.Anything).
		Return(nil, nil, fmt.Errorf("%w: action a1 was already rejected", service.ErrValidation))

	// Act
	resp := doJSON(router, "POST", "/actions/a1/approve", nil, nil)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRejectAction_NotFound(t *testing.T) {
	// Arrange
	router, actions := setupActionTest(t)
	actions.On("Reject", mock.Anything, "nope").Return(nil, repository.ErrActionNotFound)

	// Act
	resp := doJSON(router, "POST", "/actions/nope/reject", nil, nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListActions_ByStatus(t *testing.T) {
	// Arrange
	router, actions := setupActionTest(t)
	actions.On("List", mock.Anything, model.ActionPending).Return([]model.MeetingAction{}, nil)

	// Act
	resp := doJSON(router, "GET", "/actions?status=pending", nil, nil)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	actions.AssertExpectations(t)
}
