package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskflow-app/taskflow/internal/common"
	"github.com/taskflow-app/taskflow/internal/models"
	"github.com/taskflow-app/taskflow/internal/repositories/todos"
)

// timeNow is a test seam for the today/this-week windows.
var timeNow = time.Now

// TodoService defines todo creation, listing, the derived date views
// and completion toggling. All operations act on behalf of an owner
// email taken from the active session.
type TodoService interface {
	Add(ctx context.Context, owner, title, description string, dueDate time.Time, priority models.Priority) (models.Todo, error)
	List(ctx context.Context, owner string) ([]models.Todo, error)
	DueToday(ctx context.Context, owner string) ([]models.Todo, error)
	DueThisWeek(ctx context.Context, owner string) ([]models.Todo, error)
	Toggle(ctx context.Context, id string) (models.Todo, error)
}

type todoService struct {
	todos todos.Repository
}

func NewTodoService(todos todos.Repository) TodoService {
	return &todoService{todos: todos}
}

// Add creates a todo owned by owner. An empty owner means no active
// session; the title must be non-empty.
func (s *todoService) Add(ctx context.Context, owner, title, description string, dueDate time.Time, priority models.Priority) (models.Todo, error) {
	if owner == "" {
		return models.Todo{}, common.ErrNotLoggedIn
	}
	if strings.TrimSpace(title) == "" {
		return models.Todo{}, errors.New("title is required")
	}

	todo := models.Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Completed:   false,
		UserID:      owner,
	}
	if err := s.todos.Append(ctx, todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *todoService) List(ctx context.Context, owner string) ([]models.Todo, error) {
	return s.todos.ListByOwner(ctx, owner)
}

// DueToday returns the owner's todos due on the current calendar day.
func (s *todoService) DueToday(ctx context.Context, owner string) ([]models.Todo, error) {
	all, err := s.todos.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	due := make([]models.Todo, 0, len(all))
	for _, t := range all {
		if sameDay(t.DueDate, now) {
			due = append(due, t)
		}
	}
	return due, nil
}

// DueThisWeek returns the owner's todos due in the current week.
// Weeks run Sunday through Saturday, both ends inclusive.
func (s *todoService) DueThisWeek(ctx context.Context, owner string) ([]models.Todo, error) {
	all, err := s.todos.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	start, end := weekRange(timeNow())
	due := make([]models.Todo, 0, len(all))
	for _, t := range all {
		if !t.DueDate.Before(start) && t.DueDate.Before(end) {
			due = append(due, t)
		}
	}
	return due, nil
}

func (s *todoService) Toggle(ctx context.Context, id string) (models.Todo, error) {
	return s.todos.Toggle(ctx, id)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// weekRange returns the half-open window [Sunday 00:00, next Sunday
// 00:00) containing t, in t's location.
func weekRange(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	start := midnight.AddDate(0, 0, -int(midnight.Weekday()))
	return start, start.AddDate(0, 0, 7)
}
