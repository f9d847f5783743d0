package todos

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow-app/taskflow/internal/common"
	"github.com/taskflow-app/taskflow/internal/logging"
	"github.com/taskflow-app/taskflow/internal/models"
)

type fakeKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.data[key], nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) SetMany(_ context.Context, pairs map[string]string) error {
	for k, v := range pairs {
		f.data[k] = v
	}
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupRepo(t *testing.T) (*KVRepository, *fakeKV) {
	t.Helper()
	kv := newFakeKV()
	return NewKVRepository(kv, discardLogger()), kv
}

func todo(id, title, owner string) models.Todo {
	return models.Todo{
		ID:       id,
		Title:    title,
		DueDate:  time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC),
		Priority: models.PriorityMedium,
		UserID:   owner,
	}
}

func TestListByOwner_FiltersAndKeepsOrder(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, todo("1", "first", "a@x.com")))
	require.NoError(t, r.Append(ctx, todo("2", "other user", "b@x.com")))
	require.NoError(t, r.Append(ctx, todo("3", "second", "a@x.com")))

	mine, err := r.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "first", mine[0].Title)
	assert.Equal(t, "second", mine[1].Title)
}

func TestListByOwner_EmptyStore(t *testing.T) {
	r, _ := setupRepo(t)

	mine, err := r.ListByOwner(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestListByOwner_ReadErrorDegradesToEmpty(t *testing.T) {
	r, kv := setupRepo(t)
	kv.getErr = errors.New("kv down")

	mine, err := r.ListByOwner(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestToggle_FlipsAndPersists(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, todo("1", "x", "a@x.com")))

	got, err := r.Toggle(ctx, "1")
	require.NoError(t, err)
	assert.True(t, got.Completed)

	mine, err := r.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.True(t, mine[0].Completed)
}

func TestToggle_TwiceRestoresOriginal(t *testing.T) {
	r, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, todo("1", "x", "a@x.com")))

	_, err := r.Toggle(ctx, "1")
	require.NoError(t, err)
	got, err := r.Toggle(ctx, "1")
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestToggle_UnknownID(t *testing.T) {
	r, _ := setupRepo(t)

	_, err := r.Toggle(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrTodoNotFound)
}

func TestAppend_WriteErrorWrapped(t *testing.T) {
	r, kv := setupRepo(t)
	kv.setErr = errors.New("kv down")

	err := r.Append(context.Background(), todo("1", "x", "a@x.com"))
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
}
