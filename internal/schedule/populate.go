package schedule

import (
	"sort"

	"planner/internal/model"
)

// Group is one rendered section with its tasks in display order.
type Group struct {
	Section Section      `json:"section"`
	Tasks   []model.Task `json:"tasks"`
}

// SectionOf returns the section a task is displayed in.
func SectionOf(t *model.Task, today model.Date) Section {
	switch t.Type {
	case model.TypeWorkFocus:
		return WorkFocus
	case model.TypeToRead:
		return ToRead
	}
	if t.Group == model.GroupPersonal {
		return PersonalFocus
	}
	return Bucket(t.DueDate, today)
}

// Populate splits tasks into every section, in display order. Deleted and
// archived tasks are dropped.
func Populate(tasks []model.Task, today model.Date) []Group {
	bySection := make(map[Section][]model.Task, len(Sections))
	for _, t := range tasks {
		if t.IsDeleted() || t.IsArchived() {
			continue
		}
		s := SectionOf(&t, today)
		bySection[s] = append(bySection[s], t)
	}

	groups := make([]Group, 0, len(Sections))
	for _, s := range Sections {
		list := bySection[s]
		if list == nil {
			list = []model.Task{}
		}
		if s == PersonalFocus {
			sortByDueThenRank(list)
		} else {
			sortByRank(list)
		}
		groups = append(groups, Group{Section: s, Tasks: list})
	}
	return groups
}

// Find returns the tasks of one section from a populated board.
func Find(groups []Group, s Section) []model.Task {
	for _, g := range groups {
		if g.Section == s {
			return g.Tasks
		}
	}
	return nil
}

func sortByRank(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].OrderRank < tasks[j].OrderRank
	})
}

func sortByDueThenRank(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case a == nil && b != nil:
			return false
		case a != nil && b == nil:
			return true
		case a != nil && b != nil && !a.Equal(*b):
			return a.Before(*b)
		}
		return tasks[i].OrderRank < tasks[j].OrderRank
	})
}
