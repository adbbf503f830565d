package service

import (
	"context"
	"sort"
	"strings"

	"planner/internal/model"
	"planner/internal/rank"
	"planner/internal/repository"
	"planner/internal/schedule"

	"github.com/google/uuid"
)

// renormalizeStep spaces ranks rewritten by Renormalize.
const renormalizeStep = 1000

// TaskService covers the task lifecycle outside of drag and drop.
type TaskService struct {
	tasks repository.TaskRepositoryInterface
	now   Clock
}

func NewTaskService(tasks repository.TaskRepositoryInterface) *TaskService {
	return &TaskService{tasks: tasks, now: systemClock}
}

// QuickAddInput carries the minimal fields of a new task. When Section is
// set the task is placed there; ClientToday is then needed to date it.
type QuickAddInput struct {
	Title       string
	Description string
	Group       model.Group
	Type        model.TaskType
	ProjectID   string
	Priority    *int
	DueDate     *model.Date
	Section     schedule.Section
	ClientToday model.Date
}

func (s *TaskService) QuickAdd(ctx context.Context, in QuickAddInput) (*model.Task, error) {
	if in.DueDate != nil && in.DueDate.IsZero() {
		in.DueDate = nil
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("title is required")
	}
	if in.Group != "" && !in.Group.Valid() {
		return nil, invalid("unknown group %q", in.Group)
	}
	if in.Type != "" && !in.Type.Valid() {
		return nil, invalid("unknown task type %q", in.Type)
	}
	if in.Section != "" {
		if !in.Section.Valid() {
			return nil, invalid("unknown section %q", in.Section)
		}
		if in.Section.Dated() && in.DueDate == nil && in.ClientToday.IsZero() {
			return nil, invalid("clientToday is required to add into %s", in.Section)
		}
	}

	now := s.now()
	task := model.NewTask(uuid.NewString(), title, now)
	task.Description = in.Description
	task.ProjectID = in.ProjectID
	task.Priority = in.Priority
	if in.Group != "" {
		task.Group = in.Group
	}
	if in.Type != "" {
		task.Type = in.Type
	}

	if in.Section != "" {
		schedule.Assign(&task, in.Section)
		if in.Section.Dated() && in.DueDate == nil {
			task.SetDueDate(schedule.DefaultDueDate(in.Section, in.ClientToday))
		}
	}
	if in.DueDate != nil {
		task.SetDueDate(in.DueDate)
	}
	task.OrderRank = rank.Allocate(nil, nil, now)

	if err := s.tasks.Save(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// TaskPatch is a field-level partial update. Nil fields are left alone;
// an empty DueDate clears the date, ClearPriority drops the priority.
type TaskPatch struct {
	Title         *string
	Description   *string
	Status        *model.Status
	Group         *model.Group
	Type          *model.TaskType
	ProjectID     *string
	DueDate       *string
	Priority      *int
	ClearPriority bool
	OrderRank     *float64
}

func (s *TaskService) Update(ctx context.Context, id string, p TaskPatch) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return nil, invalid("title cannot be empty")
		}
		task.Title = title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, invalid("unknown status %q", *p.Status)
		}
		task.SetStatus(*p.Status, now)
	}
	if p.Group != nil {
		if !p.Group.Valid() {
			return nil, invalid("unknown group %q", *p.Group)
		}
		task.Group = *p.Group
	}
	if p.Type != nil {
		if !p.Type.Valid() {
			return nil, invalid("unknown task type %q", *p.Type)
		}
		task.Type = *p.Type
	}
	if p.ProjectID != nil {
		task.ProjectID = *p.ProjectID
	}
	if p.DueDate != nil {
		if *p.DueDate == "" {
			task.SetDueDate(nil)
		} else {
			d, err := model.ParseDate(*p.DueDate)
			if err != nil {
				return nil, invalid("%v", err)
			}
			task.SetDueDate(&d)
		}
	}
	if p.ClearPriority {
		task.Priority = nil
	} else if p.Priority != nil {
		v := *p.Priority
		task.Priority = &v
	}
	if p.OrderRank != nil {
		task.OrderRank = *p.OrderRank
	}

	task.Touch(now)
	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ToggleStatus flips a task between open and done.
func (s *TaskService) ToggleStatus(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if task.IsDone() {
		task.SetStatus(model.StatusOpen, now)
	} else {
		task.SetStatus(model.StatusDone, now)
	}
	task.Touch(now)

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Archive hides a completed task from the active sections.
func (s *TaskService) Archive(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !task.IsDone() {
		return nil, invalid("only completed tasks can be archived")
	}

	now := s.now()
	task.ArchivedAt = &now
	task.Touch(now)

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete soft-deletes a task; the document stays in the store.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	now := s.now()
	task.DeletedAt = &now
	task.Touch(now)
	return s.tasks.Save(ctx, task)
}

// Sections groups every active task for display relative to today.
func (s *TaskService) Sections(ctx context.Context, today model.Date) ([]schedule.Group, error) {
	if today.IsZero() {
		return nil, invalid("today is required")
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Populate(tasks, today), nil
}

// Archived lists archived tasks, most recently archived first.
func (s *TaskService) Archived(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	archived := []model.Task{}
	for _, t := range tasks {
		if t.IsArchived() {
			archived = append(archived, t)
		}
	}
	sort.SliceStable(archived, func(i, j int) bool {
		return archived[i].ArchivedAt.After(*archived[j].ArchivedAt)
	})
	return archived, nil
}

// Renormalize rewrites the ranks of one section to evenly spaced values,
// keeping the current order. Nothing calls it automatically.
func (s *TaskService) Renormalize(ctx context.Context, section schedule.Section, today model.Date) ([]model.Task, error) {
	if !section.Valid() {
		return nil, invalid("unknown section %q", section)
	}
	groups, err := s.Sections(ctx, today)
	if err != nil {
		return nil, err
	}

	tasks := schedule.Find(groups, section)
	ranks := rank.Spread(len(tasks), renormalizeStep)
	now := s.now()
	for i := range tasks {
		if tasks[i].OrderRank == ranks[i] {
			continue
		}
		tasks[i].OrderRank = ranks[i]
		tasks[i].Touch(now)
		if err := s.tasks.Save(ctx, &tasks[i]); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}
