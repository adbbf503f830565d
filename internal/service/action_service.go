package service

import (
	"context"
	"log"
	"strings"

	"planner/internal/model"
	"planner/internal/rank"
	"planner/internal/repository"

	"github.com/google/uuid"
)

// ActionCandidate is one action item as produced by the transcript
// extraction pipeline.
type ActionCandidate struct {
	MeetingTitle     string      `json:"meetingTitle" yaml:"meeting_title"`
	MeetingDate      *model.Date `json:"meetingDate" yaml:"meeting_date"`
	Title            string      `json:"title" yaml:"title"`
	Description      string      `json:"description" yaml:"description"`
	Owner            string      `json:"owner" yaml:"owner"`
	SuggestedDueDate *model.Date `json:"suggestedDueDate" yaml:"due_date"`
	Group            model.Group `json:"group" yaml:"group"`
	ProjectID        string      `json:"projectId" yaml:"project_id"`
}

// ApprovalOverrides replace staged fields when an action is promoted.
type ApprovalOverrides struct {
	Title     *string
	DueDate   *string
	Group     *model.Group
	ProjectID *string
}

// ActionService stages extracted meeting actions and promotes the approved
// ones into tasks.
type ActionService struct {
	actions repository.ActionRepositoryInterface
	tasks   repository.TaskRepositoryInterface
	now     Clock
}

func NewActionService(actions repository.ActionRepositoryInterface, tasks repository.TaskRepositoryInterface) *ActionService {
	return &ActionService{actions: actions, tasks: tasks, now: systemClock}
}

// Stage validates every candidate first, then stores them as pending.
func (s *ActionService) Stage(ctx context.Context, candidates []ActionCandidate) ([]model.MeetingAction, error) {
	if len(candidates) == 0 {
		return nil, invalid("no candidates to stage")
	}
	for i, c := range candidates {
		if strings.TrimSpace(c.Title) == "" {
			return nil, invalid("candidate %d has no title", i)
		}
		if c.Group != "" && !c.Group.Valid() {
			return nil, invalid("candidate %d has unknown group %q", i, c.Group)
		}
	}

	now := s.now()
	staged := make([]model.MeetingAction, 0, len(candidates))
	for _, c := range candidates {
		group := c.Group
		if group == "" {
			group = model.GroupWork
		}
		action := model.MeetingAction{
			ID:               uuid.NewString(),
			MeetingTitle:     c.MeetingTitle,
			MeetingDate:      c.MeetingDate,
			Title:            strings.TrimSpace(c.Title),
			Description:      c.Description,
			Owner:            c.Owner,
			SuggestedDueDate: c.SuggestedDueDate,
			Group:            group,
			ProjectID:        c.ProjectID,
			Status:           model.ActionPending,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.actions.Save(ctx, &action); err != nil {
			return staged, err
		}
		staged = append(staged, action)
	}
	return staged, nil
}

// List returns staged actions; an empty status returns all of them.
func (s *ActionService) List(ctx context.Context, status model.ActionStatus) ([]model.MeetingAction, error) {
	if status != "" && !status.Valid() {
		return nil, invalid("unknown status %q", status)
	}
	actions, err := s.actions.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return actions, nil
	}

	filtered := []model.MeetingAction{}
	for _, a := range actions {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// Approve turns a pending action into a task.
func (s *ActionService) Approve(ctx context.Context, id string, o ApprovalOverrides) (*model.Task, *model.MeetingAction, error) {
	action, err := s.pending(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	title := action.Title
	if o.Title != nil {
		title = strings.TrimSpace(*o.Title)
		if title == "" {
			return nil, nil, invalid("title cannot be empty")
		}
	}

	task := model.NewTask(uuid.NewString(), title, now)
	task.Description = describe(action)
	task.Group = action.Group
	task.ProjectID = action.ProjectID
	task.SetDueDate(action.SuggestedDueDate)

	if o.Group != nil {
		if !o.Group.Valid() {
			return nil, nil, invalid("unknown group %q", *o.Group)
		}
		task.Group = *o.Group
	}
	if o.ProjectID != nil {
		task.ProjectID = *o.ProjectID
	}
	if o.DueDate != nil {
		if *o.DueDate == "" {
			task.SetDueDate(nil)
		} else {
			d, err := model.ParseDate(*o.DueDate)
			if err != nil {
				return nil, nil, invalid("%v", err)
			}
			task.SetDueDate(&d)
		}
	}
	task.OrderRank = rank.Allocate(nil, nil, now)

	// A pending action never has a task behind it: mark it approved first,
	// reopen it if the task write fails.
	reviewed := *action
	reviewed.Status = model.ActionApproved
	reviewed.TaskID = task.ID
	reviewed.ReviewedAt = &now
	reviewed.UpdatedAt = now
	if err := s.actions.Save(ctx, &reviewed); err != nil {
		return nil, nil, err
	}

	if err := s.tasks.Save(ctx, &task); err != nil {
		if rerr := s.actions.Save(ctx, action); rerr != nil {
			log.Printf("❌ failed to reopen action %s after task save error: %v", action.ID, rerr)
		}
		return nil, nil, err
	}
	return &task, &reviewed, nil
}

// Reject closes a pending action without creating a task.
func (s *ActionService) Reject(ctx context.Context, id string) (*model.MeetingAction, error) {
	action, err := s.pending(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	action.Status = model.ActionRejected
	action.ReviewedAt = &now
	action.UpdatedAt = now
	if err := s.actions.Save(ctx, action); err != nil {
		return nil, err
	}
	return action, nil
}

func (s *ActionService) pending(ctx context.Context, id string) (*model.MeetingAction, error) {
	action, err := s.actions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if action.Status != model.ActionPending {
		return nil, invalid("action %s was already %s", id, action.Status)
	}
	return action, nil
}

func describe(a *model.MeetingAction) string {
	var parts []string
	if a.Description != "" {
		parts = append(parts, a.Description)
	}
	if a.MeetingTitle != "" {
		source := "From meeting: " + a.MeetingTitle
		if a.MeetingDate != nil {
			source += " (" + a.MeetingDate.String() + ")"
		}
		parts = append(parts, source)
	}
	if a.Owner != "" {
		parts = append(parts, "Owner: "+a.Owner)
	}
	return strings.Join(parts, "\n\n")
}
