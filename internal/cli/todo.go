package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/taskflow-app/taskflow/internal/common"
	"github.com/taskflow-app/taskflow/internal/models"
)

// AddTodo prompts for the todo fields and creates a task owned by the
// active session.
func (a *App) AddTodo(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Error:", common.ErrNotLoggedIn)
		return common.ErrNotLoggedIn
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	dueDate, err := GetDueDate(a.reader, os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	priorityText, err := getSimpleText(a.reader, "Enter priority (low/medium/high)", os.Stdout)
	if err != nil {
		return err
	}

	todo, err := a.todos.Add(ctx, a.userEmail, title, description, dueDate, models.ParsePriority(priorityText))
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Printf("Added %q due %s\n", todo.Title, todo.DueDate.Format("Jan 2 15:04"))
	return nil
}

// List prints all of the active user's todos.
func (a *App) List(ctx context.Context) error {
	return a.printTodos(ctx, "All tasks", a.todos.List)
}

// Today prints the todos due on the current calendar day.
func (a *App) Today(ctx context.Context) error {
	return a.printTodos(ctx, "Today", a.todos.DueToday)
}

// Week prints the todos due in the current week (Sunday to Saturday).
func (a *App) Week(ctx context.Context) error {
	return a.printTodos(ctx, "This Week", a.todos.DueThisWeek)
}

func (a *App) printTodos(ctx context.Context, header string, load func(context.Context, string) ([]models.Todo, error)) error {
	if !a.isLoggedIn() {
		fmt.Println("Error:", common.ErrNotLoggedIn)
		return common.ErrNotLoggedIn
	}

	list, err := load(ctx, a.userEmail)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println(header)
	if len(list) == 0 {
		fmt.Println("  no tasks")
		return nil
	}
	for _, t := range list {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("  [%s] %s (%s, due %s) id=%s\n", mark, t.Title, t.Priority, t.DueDate.Format("Jan 2 15:04"), t.ID)
	}
	return nil
}

// Done toggles the completion flag of the todo with the given id.
func (a *App) Done(ctx context.Context, id string) error {
	todo, err := a.todos.Toggle(ctx, id)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if todo.Completed {
		fmt.Printf("Completed %q\n", todo.Title)
	} else {
		fmt.Printf("Reopened %q\n", todo.Title)
	}
	return nil
}
