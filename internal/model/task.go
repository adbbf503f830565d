package model

import (
	"encoding/json"
	"time"
)

type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

func (s Status) Valid() bool { return s == StatusOpen || s == StatusDone }

type Group string

const (
	GroupPersonal Group = "personal"
	GroupWork     Group = "work"
)

func (g Group) Valid() bool { return g == GroupPersonal || g == GroupWork }

type TaskType string

const (
	TypeRegular   TaskType = "regular"
	TypeWorkFocus TaskType = "work-focus"
	TypeToRead    TaskType = "to-read"
)

func (t TaskType) Valid() bool {
	switch t {
	case TypeRegular, TypeWorkFocus, TypeToRead:
		return true
	}
	return false
}

// Task is the stored task document.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Group       Group      `json:"group"`
	Type        TaskType   `json:"taskType"`
	ProjectID   string     `json:"projectId,omitempty"`
	DueDate     *Date      `json:"dueDate"`
	Priority    *int       `json:"priority,omitempty"`
	OrderRank   float64    `json:"orderRank"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	ArchivedAt  *time.Time `json:"archivedAt,omitempty"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTask creates an open, regular work task.
func NewTask(id, title string, now time.Time) Task {
	return Task{
		ID:        id,
		Title:     title,
		Status:    StatusOpen,
		Group:     GroupWork,
		Type:      TypeRegular,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsLongerTerm reports whether the task is unscheduled.
func (t *Task) IsLongerTerm() bool { return t.DueDate == nil || t.DueDate.IsZero() }

func (t *Task) IsDone() bool { return t.Status == StatusDone }

func (t *Task) IsDeleted() bool { return t.DeletedAt != nil }

func (t *Task) IsArchived() bool { return t.ArchivedAt != nil }

// SetDueDate replaces the due date; a nil or zero date unschedules the task.
func (t *Task) SetDueDate(d *Date) {
	if d == nil || d.IsZero() {
		t.DueDate = nil
		return
	}
	t.DueDate = d.Ptr()
}

// SetStatus moves the task to s, stamping or clearing the completion time.
func (t *Task) SetStatus(s Status, now time.Time) {
	if t.Status == s {
		return
	}
	t.Status = s
	if s == StatusDone {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}

func (t *Task) Touch(now time.Time) { t.UpdatedAt = now }

// MarshalJSON writes isLongerTerm alongside the stored fields.
func (t Task) MarshalJSON() ([]byte, error) {
	type task Task
	return json.Marshal(struct {
		task
		IsLongerTerm bool `json:"isLongerTerm"`
	}{task(t), t.IsLongerTerm()})
}

// UnmarshalJSON drops the stored isLongerTerm and reads an empty dueDate
// as no date.
func (t *Task) UnmarshalJSON(data []byte) error {
	type task Task
	var decoded task
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = Task(decoded)
	if t.DueDate != nil && t.DueDate.IsZero() {
		t.DueDate = nil
	}
	return nil
}
