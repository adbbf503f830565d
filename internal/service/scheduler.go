package service

import (
	"context"
	"errors"
	"fmt"

	"planner/internal/model"
	"planner/internal/rank"
	"planner/internal/repository"
	"planner/internal/schedule"
)

// Scheduler moves tasks between sections: it decides the new due date and
// order rank of a dropped task and persists both in one write.
type Scheduler struct {
	tasks repository.TaskRepositoryInterface
	now   Clock
}

func NewScheduler(tasks repository.TaskRepositoryInterface) *Scheduler {
	return &Scheduler{tasks: tasks, now: systemClock}
}

// ReorderInput describes one drop: the task lands in TargetSection right
// after BeforeTaskID and right before AfterTaskID.
type ReorderInput struct {
	TaskID        string
	TargetSection schedule.Section
	BeforeTaskID  string
	AfterTaskID   string
	ClientToday   model.Date
}

// ReorderTask places a task into a section at a position.
func (s *Scheduler) ReorderTask(ctx context.Context, in ReorderInput) (*model.Task, error) {
	if in.ClientToday.IsZero() {
		return nil, invalid("clientToday is required")
	}
	if !in.TargetSection.Valid() {
		return nil, invalid("unknown section %q", in.TargetSection)
	}

	task, err := s.tasks.GetByID(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}

	before, err := s.neighbor(ctx, in.BeforeTaskID, task.ID)
	if err != nil {
		return nil, err
	}
	after, err := s.neighbor(ctx, in.AfterTaskID, task.ID)
	if err != nil {
		return nil, err
	}

	task.SetDueDate(schedule.PlaceDueDate(in.TargetSection, task.DueDate, before, in.ClientToday))
	schedule.Assign(task, in.TargetSection)

	now := s.now()
	task.OrderRank = rank.Allocate(rankOf(before), rankOf(after), now)
	task.Touch(now)

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SnoozeTask pushes a task one day past the later of its due date and
// clientToday. A snoozed task is always dated.
func (s *Scheduler) SnoozeTask(ctx context.Context, id string, clientToday model.Date) (*model.Task, error) {
	if clientToday.IsZero() {
		return nil, invalid("clientToday is required")
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	base := clientToday
	if task.DueDate != nil && task.DueDate.After(clientToday) {
		base = *task.DueDate
	}
	task.SetDueDate(base.AddDays(1).Ptr())
	task.Touch(s.now())

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// neighbor loads a reference task fresh. Missing, deleted or self
// references count as absent; any other failure aborts the move.
func (s *Scheduler) neighbor(ctx context.Context, id, self string) (*model.Task, error) {
	if id == "" || id == self {
		return nil, nil
	}
	t, err := s.tasks.GetByID(ctx, id)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load neighbor %s: %w", id, err)
	}
	return t, nil
}

func rankOf(t *model.Task) *float64 {
	if t == nil {
		return nil
	}
	r := t.OrderRank
	return &r
}
