// Package todos owns the flat todo collection. The whole collection
// lives under a single key-value entry; ownership is a value field
// filtered at read time, never a storage partition.
package todos

import (
	"context"

	"github.com/taskflow-app/taskflow/internal/models"
)

// Repository is the todo persistence contract.
type Repository interface {
	ListByOwner(ctx context.Context, owner string) ([]models.Todo, error)
	Append(ctx context.Context, todo models.Todo) error
	Toggle(ctx context.Context, id string) (models.Todo, error)
}
