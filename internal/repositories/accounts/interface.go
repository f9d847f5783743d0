// Package accounts owns the canonical account collection: creation
// with uniqueness and member-ID allocation, lookup, update, deletion,
// and replication across the file store and the key-value store.
package accounts

import (
	"context"

	"github.com/taskflow-app/taskflow/internal/models"
)

// Repository is the account persistence contract.
//
//   - List never fails: read problems degrade to an empty collection.
//   - Create enforces case-insensitive uniqueness of email and
//     username and assigns memberSince/memberID.
//   - Update addresses the record by its current (old) email, so an
//     email change is well-defined; the new email and username must not
//     collide with any other account, and memberID and memberSince are
//     preserved from the stored record.
//   - Delete removes the record whose email matches exactly.
type Repository interface {
	List(ctx context.Context) []models.Account
	Create(ctx context.Context, candidate models.Account) (models.Account, error)
	Update(ctx context.Context, oldEmail string, updated models.Account) (models.Account, error)
	Delete(ctx context.Context, email string) error
	ExportJSON(ctx context.Context) ([]byte, error)
}
