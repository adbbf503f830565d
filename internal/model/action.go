package model

import "time"

type ActionStatus string

const (
	ActionPending  ActionStatus = "pending"
	ActionApproved ActionStatus = "approved"
	ActionRejected ActionStatus = "rejected"
)

func (s ActionStatus) Valid() bool {
	switch s {
	case ActionPending, ActionApproved, ActionRejected:
		return true
	}
	return false
}

// MeetingAction is a candidate action item extracted from a meeting
// transcript, waiting for review before it becomes a task.
type MeetingAction struct {
	ID               string       `json:"id"`
	MeetingTitle     string       `json:"meetingTitle"`
	MeetingDate      *Date        `json:"meetingDate,omitempty"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Owner            string       `json:"owner,omitempty"`
	SuggestedDueDate *Date        `json:"suggestedDueDate,omitempty"`
	Group            Group        `json:"group"`
	ProjectID        string       `json:"projectId,omitempty"`
	Status           ActionStatus `json:"status"`
	TaskID           string       `json:"taskId,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
	ReviewedAt       *time.Time   `json:"reviewedAt,omitempty"`
}
