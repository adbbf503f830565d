package schedule

import (
	"time"

	"planner/internal/model"
)

// DefaultDueDate is the date a task gets when dropped into a dated section
// without a usable neighbor. LongerTerm yields nil.
func DefaultDueDate(s Section, today model.Date) *model.Date {
	switch s {
	case Today:
		return today.Ptr()
	case ThisWeek:
		return today.AddDays(1).Ptr()
	case NextWeek:
		return NextWeekday(today, time.Sunday).Ptr()
	case AfterNextWeek:
		return NextWeekday(today, time.Sunday).AddDays(7).Ptr()
	}
	return nil
}

// PlaceDueDate resolves the due date of a task dropped into target.
//
// Pinned sections keep current. Otherwise the task snaps to the date of
// before, the task it now follows, as long as that date still buckets into
// target. Today and LongerTerm always use their default.
func PlaceDueDate(target Section, current *model.Date, before *model.Task, today model.Date) *model.Date {
	if !target.Dated() {
		if current == nil {
			return nil
		}
		return current.Ptr()
	}

	if before != nil && before.DueDate != nil && target != Today && target != LongerTerm {
		if Bucket(before.DueDate, today) == target {
			return before.DueDate.Ptr()
		}
	}

	return DefaultDueDate(target, today)
}

// Assign makes the task a member of s: dated sections hold regular work
// tasks, PersonalFocus regular personal tasks, the others pin a task type.
// A task that already belongs to s is left untouched.
func Assign(t *model.Task, s Section) {
	switch s {
	case PersonalFocus:
		if t.Group == model.GroupPersonal && t.Type == model.TypeRegular {
			return
		}
		t.Group = model.GroupPersonal
		t.Type = model.TypeRegular
	case WorkFocus:
		t.Type = model.TypeWorkFocus
	case ToRead:
		t.Type = model.TypeToRead
	default:
		t.Group = model.GroupWork
		t.Type = model.TypeRegular
	}
}
