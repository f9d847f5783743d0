package todos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/taskflow-app/taskflow/internal/common"
	"github.com/taskflow-app/taskflow/internal/kvstore"
	"github.com/taskflow-app/taskflow/internal/logging"
	"github.com/taskflow-app/taskflow/internal/models"
)

// StorageKey is the key-value entry holding the whole todo collection.
const StorageKey = "todos"

// KVRepository implements Repository on the key-value store alone;
// todos are not replicated to the file store.
type KVRepository struct {
	kv  kvstore.Store
	log logging.Logger
}

func NewKVRepository(kv kvstore.Store, log logging.Logger) *KVRepository {
	return &KVRepository{kv: kv, log: log}
}

// ListByOwner returns the owner's todos in insertion order. Read
// failures degrade to an empty list, logged.
func (r *KVRepository) ListByOwner(ctx context.Context, owner string) ([]models.Todo, error) {
	all, err := r.readAll(ctx)
	if err != nil {
		r.log.Warn(ctx, "todo collection unreadable", "error", err)
		return []models.Todo{}, nil
	}

	mine := make([]models.Todo, 0, len(all))
	for _, t := range all {
		if t.UserID == owner {
			mine = append(mine, t)
		}
	}
	return mine, nil
}

// Append adds one todo and writes the whole collection back.
func (r *KVRepository) Append(ctx context.Context, todo models.Todo) error {
	all, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	return r.writeAll(ctx, append(all, todo))
}

// Toggle flips the completion flag of the todo with the given id. The
// pre-toggle value read here is ground truth: the persisted collection
// and the returned todo are both derived from it, so the caller's view
// and storage cannot disagree.
func (r *KVRepository) Toggle(ctx context.Context, id string) (models.Todo, error) {
	all, err := r.readAll(ctx)
	if err != nil {
		return models.Todo{}, err
	}

	idx := -1
	for i, t := range all {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Todo{}, common.ErrTodoNotFound
	}

	all[idx].Completed = !all[idx].Completed
	if err := r.writeAll(ctx, all); err != nil {
		return models.Todo{}, err
	}
	return all[idx], nil
}

func (r *KVRepository) readAll(ctx context.Context) ([]models.Todo, error) {
	raw, err := r.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []models.Todo{}, nil
	}

	var all []models.Todo
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		return nil, fmt.Errorf("parse todo collection: %w", err)
	}
	return all, nil
}

func (r *KVRepository) writeAll(ctx context.Context, all []models.Todo) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("marshal todo collection: %w", err)
	}
	if err := r.kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}
