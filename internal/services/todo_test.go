package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow-app/taskflow/internal/common"
	"github.com/taskflow-app/taskflow/internal/models"
)

type memTodos struct {
	list []models.Todo
}

func (m *memTodos) ListByOwner(_ context.Context, owner string) ([]models.Todo, error) {
	mine := []models.Todo{}
	for _, t := range m.list {
		if t.UserID == owner {
			mine = append(mine, t)
		}
	}
	return mine, nil
}

func (m *memTodos) Append(_ context.Context, todo models.Todo) error {
	m.list = append(m.list, todo)
	return nil
}

func (m *memTodos) Toggle(_ context.Context, id string) (models.Todo, error) {
	for i, t := range m.list {
		if t.ID == id {
			m.list[i].Completed = !m.list[i].Completed
			return m.list[i], nil
		}
	}
	return models.Todo{}, common.ErrTodoNotFound
}

func withFixedNow(t *testing.T, now time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })
}

func TestAdd_RequiresOwner(t *testing.T) {
	svc := NewTodoService(&memTodos{})

	_, err := svc.Add(context.Background(), "", "buy milk", "", time.Now(), models.PriorityLow)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
}

func TestAdd_RequiresTitle(t *testing.T) {
	svc := NewTodoService(&memTodos{})

	_, err := svc.Add(context.Background(), "u@x.com", "   ", "", time.Now(), models.PriorityLow)
	require.Error(t, err)
}

func TestAdd_AssignsIDAndOwner(t *testing.T) {
	repo := &memTodos{}
	svc := NewTodoService(repo)

	due := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)
	created, err := svc.Add(context.Background(), "u@x.com", "buy milk", "2%", due, models.PriorityHigh)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u@x.com", created.UserID)
	assert.False(t, created.Completed)
	assert.Equal(t, models.PriorityHigh, created.Priority)
	require.Len(t, repo.list, 1)
	assert.Equal(t, created, repo.list[0])
}

func TestDueToday_MatchesCalendarDayOnly(t *testing.T) {
	// A Wednesday.
	now := time.Date(2024, time.May, 15, 13, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	repo := &memTodos{list: []models.Todo{
		{ID: "1", Title: "morning", DueDate: time.Date(2024, time.May, 15, 0, 1, 0, 0, time.UTC), UserID: "u@x.com"},
		{ID: "2", Title: "late night", DueDate: time.Date(2024, time.May, 15, 23, 59, 0, 0, time.UTC), UserID: "u@x.com"},
		{ID: "3", Title: "tomorrow", DueDate: time.Date(2024, time.May, 16, 0, 0, 0, 0, time.UTC), UserID: "u@x.com"},
		{ID: "4", Title: "not mine", DueDate: now, UserID: "b@x.com"},
	}}
	svc := NewTodoService(repo)

	due, err := svc.DueToday(context.Background(), "u@x.com")
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "morning", due[0].Title)
	assert.Equal(t, "late night", due[1].Title)
}

func TestDueThisWeek_SundayThroughSaturday(t *testing.T) {
	// Wednesday 2024-05-15; the week runs Sunday the 12th through
	// Saturday the 18th.
	withFixedNow(t, time.Date(2024, time.May, 15, 13, 0, 0, 0, time.UTC))

	repo := &memTodos{list: []models.Todo{
		{ID: "1", Title: "week start", DueDate: time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC), UserID: "u@x.com"},
		{ID: "2", Title: "week end", DueDate: time.Date(2024, time.May, 18, 23, 59, 0, 0, time.UTC), UserID: "u@x.com"},
		{ID: "3", Title: "last saturday", DueDate: time.Date(2024, time.May, 11, 23, 59, 0, 0, time.UTC), UserID: "u@x.com"},
		{ID: "4", Title: "next sunday", DueDate: time.Date(2024, time.May, 19, 0, 0, 0, 0, time.UTC), UserID: "u@x.com"},
	}}
	svc := NewTodoService(repo)

	due, err := svc.DueThisWeek(context.Background(), "u@x.com")
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "week start", due[0].Title)
	assert.Equal(t, "week end", due[1].Title)
}

func TestToggle_Delegates(t *testing.T) {
	repo := &memTodos{list: []models.Todo{{ID: "1", Title: "x", UserID: "u@x.com"}}}
	svc := NewTodoService(repo)

	got, err := svc.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, got.Completed)

	_, err = svc.Toggle(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrTodoNotFound)
}
