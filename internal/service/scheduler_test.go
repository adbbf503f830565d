package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"planner/internal/model"
	"planner/internal/repository"
	"planner/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestScheduler(t *testing.T) (*Scheduler, *repository.TaskRepository) {
	t.Helper()
	repo := repository.NewTaskRepository(repository.NewMemoryStore())
	s := NewScheduler(repo)
	s.now = fixedClock
	return s, repo
}

func seedTask(t *testing.T, repo *repository.TaskRepository, id string, due string, rank float64) *model.Task {
	t.Helper()
	task := model.NewTask(id, id, fixedNow.Add(-24*time.Hour))
	task.OrderRank = rank
	if due != "" {
		task.SetDueDate(model.MustParseDate(due).Ptr())
	}
	require.NoError(t, repo.Save(context.Background(), &task))
	return &task
}

func day(s string) model.Date { return model.MustParseDate(s) }

func TestReorderTask_BacklogToTodayWithoutNeighbors(t *testing.T) {
	s, repo := newTestScheduler(t)
	seedTask(t, repo, "A", "", 5)

	got, err := s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "A",
		TargetSection: schedule.Today,
		ClientToday:   day("2026-03-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", got.DueDate.String())
	assert.False(t, got.IsLongerTerm())
	assert.Equal(t, float64(fixedNow.UnixMilli()), got.OrderRank)

	stored, err := repo.GetByID(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", stored.DueDate.String())
	assert.False(t, stored.IsLongerTerm())
	assert.True(t, stored.UpdatedAt.Equal(fixedNow))
}

func TestReorderTask_InheritsNeighborDateInThisWeek(t *testing.T) {
	s, repo := newTestScheduler(t)
	seedTask(t, repo, "B", "2026-03-12", 10)
	seedTask(t, repo, "C", "", 99)

	got, err := s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "C",
		TargetSection: schedule.ThisWeek,
		BeforeTaskID:  "B",
		ClientToday:   day("2026-03-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-12", got.DueDate.String())
	assert.Equal(t, 11.0, got.OrderRank)
	assert.Equal(t, schedule.ThisWeek, schedule.Bucket(got.DueDate, day("2026-03-10")))
}

func TestReorderTask_OverdueNeighborFallsBackToDefault(t *testing.T) {
	s, repo := newTestScheduler(t)
	seedTask(t, repo, "B", "2026-03-09", 10)
	seedTask(t, repo, "C", "", 99)

	got, err := s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "C",
		TargetSection: schedule.ThisWeek,
		BeforeTaskID:  "B",
		ClientToday:   day("2026-03-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-11", got.DueDate.String())
}

func TestReorderTask_SectionDefaults(t *testing.T) {
	cases := []struct {
		section schedule.Section
		want    string
	}{
		{schedule.Today, "2026-03-10"},
		{schedule.ThisWeek, "2026-03-11"},
		{schedule.NextWeek, "2026-03-15"},
		{schedule.AfterNextWeek, "2026-03-22"},
		{schedule.LongerTerm, ""},
	}

	for _, tc := range cases {
		t.Run(string(tc.section), func(t *testing.T) {
			s, repo := newTestScheduler(t)
			seedTask(t, repo, "X", "2026-02-01", 1)

			got, err := s.ReorderTask(context.Background(), ReorderInput{
				TaskID:        "X",
				TargetSection: tc.section,
				ClientToday:   day("2026-03-10"),
			})

			require.NoError(t, err)
			if tc.want == "" {
				assert.Nil(t, got.DueDate)
			} else {
				assert.Equal(t, tc.want, got.DueDate.String())
			}

			stored, err := repo.GetByID(context.Background(), "X")
			require.NoError(t, err)
			assert.Equal(t, stored.DueDate == nil, stored.IsLongerTerm())
			assert.Equal(t, tc.section, schedule.SectionOf(stored, day("2026-03-10")))
		})
	}
}

func TestReorderTask_PersonalFocusKeepsDueDate(t *testing.T) {
	s, repo := newTestScheduler(t)
	task := model.NewTask("P", "Dentist", fixedNow)
	task.Group = model.GroupPersonal
	task.Description = "Bring insurance card"
	task.ProjectID = "health"
	task.Priority = ptr(2)
	task.SetDueDate(model.MustParseDate("2026-01-01").Ptr())
	task.OrderRank = 3
	require.NoError(t, repo.Save(context.Background(), &task))
	seedTask(t, repo, "N", "2026-03-12", 7)

	got, err := s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "P",
		TargetSection: schedule.PersonalFocus,
		BeforeTaskID:  "N",
		ClientToday:   day("2026-03-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", got.DueDate.String())
	assert.Equal(t, 8.0, got.OrderRank)

	stored, err := repo.GetByID(context.Background(), "P")
	require.NoError(t, err)
	assert.Equal(t, 8.0, stored.OrderRank)
	assert.Equal(t, "2026-01-01", stored.DueDate.String())
	assert.Equal(t, "Dentist", stored.Title)
	assert.Equal(t, "Bring insurance card", stored.Description)
	assert.Equal(t, model.StatusOpen, stored.Status)
	assert.Equal(t, model.GroupPersonal, stored.Group)
	assert.Equal(t, model.TypeRegular, stored.Type)
	assert.Equal(t, "health", stored.ProjectID)
	require.NotNil(t, stored.Priority)
	assert.Equal(t, 2, *stored.Priority)
	assert.Nil(t, stored.CompletedAt)
	assert.Nil(t, stored.ArchivedAt)
}

func TestReorderTask_RankBetweenNeighbors(t *testing.T) {
	s, repo := newTestScheduler(t)
	seedTask(t, repo, "lo", "2026-03-10", 1)
	seedTask(t, repo, "hi", "2026-03-10", 2)
	seedTask(t, repo, "m", "2026-03-10", 50)

	got, err := s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "m",
		TargetSection: schedule.Today,
		BeforeTaskID:  "lo",
		AfterTaskID:   "hi",
		ClientToday:   day("2026-03-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1.5, got.OrderRank)

	got, err = s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "m",
		TargetSection: schedule.Today,
		AfterTaskID:   "lo",
		ClientToday:   day("2026-03-10"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.OrderRank)
}

func TestReorderTask_MissingNeighborsFailOpen(t *testing.T) {
	s, repo := newTestScheduler(t)
	seedTask(t, repo, "A", "", 5)
	gone := seedTask(t, repo, "gone", "2026-03-12", 1)
	deletedAt := fixedNow
	gone.DeletedAt = &deletedAt
	require.NoError(t, repo.Save(context.Background(), gone))

	got, err := s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "A",
		TargetSection: schedule.ThisWeek,
		BeforeTaskID:  "gone",
		AfterTaskID:   "never-existed",
		ClientToday:   day("2026-03-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-11", got.DueDate.String())
	assert.Equal(t, float64(fixedNow.UnixMilli()), got.OrderRank)
}

func TestReorderTask_SelfReferenceIsIgnored(t *testing.T) {
	s, repo := newTestScheduler(t)
	seedTask(t, repo, "A", "2026-03-12", 5)

	got, err := s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "A",
		TargetSection: schedule.NextWeek,
		BeforeTaskID:  "A",
		ClientToday:   day("2026-03-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", got.DueDate.String())
	assert.Equal(t, float64(fixedNow.UnixMilli()), got.OrderRank)
}

func TestReorderTask_IsIdempotentOnDate(t *testing.T) {
	s, repo := newTestScheduler(t)
	seedTask(t, repo, "B", "2026-03-13", 10)
	seedTask(t, repo, "D", "2026-03-13", 20)
	seedTask(t, repo, "C", "", 99)
	in := ReorderInput{
		TaskID:        "C",
		TargetSection: schedule.ThisWeek,
		BeforeTaskID:  "B",
		AfterTaskID:   "D",
		ClientToday:   day("2026-03-10"),
	}

	first, err := s.ReorderTask(context.Background(), in)
	require.NoError(t, err)
	second, err := s.ReorderTask(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first.DueDate.String(), second.DueDate.String())
	assert.Equal(t, first.OrderRank, second.OrderRank)
}

func TestReorderTask_MissingClientTodayWritesNothing(t *testing.T) {
	for _, section := range schedule.Sections {
		t.Run(string(section), func(t *testing.T) {
			s, repo := newTestScheduler(t)
			seedTask(t, repo, "A", "2026-03-12", 5)
			before, err := repo.GetByID(context.Background(), "A")
			require.NoError(t, err)

			_, err = s.ReorderTask(context.Background(), ReorderInput{
				TaskID:        "A",
				TargetSection: section,
			})

			assert.ErrorIs(t, err, ErrValidation)
			after, err := repo.GetByID(context.Background(), "A")
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestReorderTask_UnknownSection(t *testing.T) {
	s, repo := newTestScheduler(t)
	seedTask(t, repo, "A", "", 5)

	_, err := s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "A",
		TargetSection: "someday",
		ClientToday:   day("2026-03-10"),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestReorderTask_NotFound(t *testing.T) {
	s, _ := newTestScheduler(t)

	_, err := s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "missing",
		TargetSection: schedule.Today,
		ClientToday:   day("2026-03-10"),
	})

	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

// brokenNeighborRepo fails every lookup of one id with a store error.
type brokenNeighborRepo struct {
	*repository.TaskRepository
	broken string
}

func (r brokenNeighborRepo) GetByID(ctx context.Context, id string) (*model.Task, error) {
	if id == r.broken {
		return nil, errors.New("store unavailable")
	}
	return r.TaskRepository.GetByID(ctx, id)
}

func TestReorderTask_NeighborStoreErrorAborts(t *testing.T) {
	repo := repository.NewTaskRepository(repository.NewMemoryStore())
	s := NewScheduler(brokenNeighborRepo{TaskRepository: repo, broken: "B"})
	s.now = fixedClock
	seedTask(t, repo, "A", "", 5)
	before, err := repo.GetByID(context.Background(), "A")
	require.NoError(t, err)

	_, err = s.ReorderTask(context.Background(), ReorderInput{
		TaskID:        "A",
		TargetSection: schedule.ThisWeek,
		BeforeTaskID:  "B",
		ClientToday:   day("2026-03-10"),
	})

	assert.EqualError(t, err, "failed to load neighbor B: store unavailable")
	after, err := repo.GetByID(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSnoozeTask(t *testing.T) {
	cases := []struct {
		name string
		due  string
		want string
	}{
		{"undated", "", "2026-03-11"},
		{"overdue", "2026-03-01", "2026-03-11"},
		{"due today", "2026-03-10", "2026-03-11"},
		{"future", "2026-03-20", "2026-03-21"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, repo := newTestScheduler(t)
			seedTask(t, repo, "A", tc.due, 5)

			got, err := s.SnoozeTask(context.Background(), "A", day("2026-03-10"))

			require.NoError(t, err)
			assert.Equal(t, tc.want, got.DueDate.String())
			assert.False(t, got.IsLongerTerm())
			assert.Equal(t, 5.0, got.OrderRank)

			stored, err := repo.GetByID(context.Background(), "A")
			require.NoError(t, err)
			assert.Equal(t, tc.want, stored.DueDate.String())
		})
	}
}

func TestSnoozeTask_Errors(t *testing.T) {
	s, repo := newTestScheduler(t)
	seedTask(t, repo, "A", "", 5)

	_, err := s.SnoozeTask(context.Background(), "A", model.Date{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.SnoozeTask(context.Background(), "missing", day("2026-03-10"))
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}
