// Package kvstore is the durable key-value collaborator: persisted,
// string-keyed storage of opaque string values. It backs the session
// state, the todo collection and the warm mirror of the account list.
package kvstore

import "context"

// Store is the key-value contract.
//
//   - Get returns ("", nil) when the key is absent.
//   - SetMany writes all pairs atomically.
//   - Delete of an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	SetMany(ctx context.Context, pairs map[string]string) error
	Delete(ctx context.Context, key string) error
}
