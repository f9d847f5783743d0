package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/taskflow-app/taskflow/internal/common"
	"github.com/taskflow-app/taskflow/internal/filestore"
	"github.com/taskflow-app/taskflow/internal/kvstore"
	"github.com/taskflow-app/taskflow/internal/logging"
	"github.com/taskflow-app/taskflow/internal/models"
)

const (
	// StorageKey is the key-value entry mirroring the accounts file.
	StorageKey = "user_accounts"

	// AccountsFile is the authoritative store, relative to the
	// documents root. Existing installations already use this path.
	AccountsFile = "added-accounts/accounts.json"
)

// timeNow is a test seam for memberSince assignment.
var timeNow = time.Now

// Replicated implements Repository as a two-tier persistence strategy:
// the file store is authoritative and durable, the key-value store is a
// best-effort warm mirror consulted only when the file is absent (e.g.
// a fresh install on a device where the file path was cleared).
type Replicated struct {
	files filestore.Store
	kv    kvstore.Store
	log   logging.Logger
}

func NewReplicated(files filestore.Store, kv kvstore.Store, log logging.Logger) *Replicated {
	return &Replicated{files: files, kv: kv, log: log}
}

// List returns the reconciled account collection. The file store wins
// when it holds at least one record; otherwise the key-value mirror is
// read and, when non-empty, backfilled into the file store. Read
// failures are logged and treated as no data.
func (r *Replicated) List(ctx context.Context) []models.Account {
	accounts, err := r.readFile()
	if err != nil {
		r.log.Warn(ctx, "accounts file unreadable", "error", err)
	}
	if len(accounts) > 0 {
		return accounts
	}

	raw, err := r.kv.Get(ctx, StorageKey)
	if err != nil {
		r.log.Warn(ctx, "accounts mirror unreadable", "error", err)
		return []models.Account{}
	}
	if raw == "" {
		return []models.Account{}
	}
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		r.log.Warn(ctx, "accounts mirror corrupt", "error", err)
		return []models.Account{}
	}
	if len(accounts) == 0 {
		return []models.Account{}
	}

	// Restore the authoritative copy for future reads.
	if err := r.writeFile(accounts); err != nil {
		r.log.Warn(ctx, "accounts file backfill failed", "error", err)
	}
	return accounts
}

// Create validates uniqueness, assigns memberSince (unless the caller
// supplied one) and a gap-filling memberID, and persists the grown
// collection to both stores.
func (r *Replicated) Create(ctx context.Context, candidate models.Account) (models.Account, error) {
	accounts := r.List(ctx)

	for _, a := range accounts {
		if strings.EqualFold(a.Email, candidate.Email) {
			return models.Account{}, common.ErrDuplicateEmail
		}
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Username, candidate.Username) {
			return models.Account{}, common.ErrDuplicateUsername
		}
	}

	if candidate.MemberSince == "" {
		candidate.MemberSince = models.FormatDate(timeNow())
	}
	candidate.MemberID = nextMemberID(accounts)

	if err := r.commit(ctx, append(accounts, candidate)); err != nil {
		return models.Account{}, err
	}
	return candidate, nil
}

// Update replaces the record currently stored under oldEmail. All
// fields are overwritten except memberID and memberSince, which are
// forced back to the stored record's values whatever the caller sent.
func (r *Replicated) Update(ctx context.Context, oldEmail string, updated models.Account) (models.Account, error) {
	accounts := r.List(ctx)

	idx := -1
	for i, a := range accounts {
		if a.Email == oldEmail {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Account{}, common.ErrAccountNotFound
	}

	// Email and username are mutable here, so uniqueness must hold
	// against every other record.
	for i, a := range accounts {
		if i == idx {
			continue
		}
		if strings.EqualFold(a.Email, updated.Email) {
			return models.Account{}, common.ErrDuplicateEmail
		}
		if strings.EqualFold(a.Username, updated.Username) {
			return models.Account{}, common.ErrDuplicateUsername
		}
	}

	updated.MemberID = accounts[idx].MemberID
	updated.MemberSince = accounts[idx].MemberSince
	accounts[idx] = updated

	if err := r.commit(ctx, accounts); err != nil {
		return models.Account{}, err
	}
	return updated, nil
}

// Delete removes the record whose email matches exactly.
func (r *Replicated) Delete(ctx context.Context, email string) error {
	accounts := r.List(ctx)

	remaining := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Email != email {
			remaining = append(remaining, a)
		}
	}
	if len(remaining) == len(accounts) {
		return common.ErrAccountNotFound
	}

	return r.commit(ctx, remaining)
}

// ExportJSON renders the collection in the same pretty-printed schema
// as the accounts file, for hand-off to an export sink.
func (r *Replicated) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := json.MarshalIndent(r.List(ctx), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal accounts: %w", err)
	}
	return data, nil
}

// commit writes the whole collection to the file store first; that
// write failing fails the operation. The key-value mirror is then
// refreshed best-effort: its failure is logged and swallowed, since
// the file store is the durability source of truth.
func (r *Replicated) commit(ctx context.Context, accounts []models.Account) error {
	if err := r.writeFile(accounts); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	compact, err := json.Marshal(accounts)
	if err != nil {
		r.log.Error(ctx, "accounts mirror marshal failed", "error", err)
		return nil
	}
	if err := r.kv.Set(ctx, StorageKey, string(compact)); err != nil {
		r.log.Error(ctx, "accounts mirror write failed", "error", err)
	}
	return nil
}

func (r *Replicated) readFile() ([]models.Account, error) {
	ok, err := r.files.Exists(AccountsFile)
	if err != nil || !ok {
		return nil, err
	}

	data, err := r.files.Read(AccountsFile)
	if err != nil {
		return nil, err
	}

	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", AccountsFile, err)
	}
	return accounts, nil
}

func (r *Replicated) writeFile(accounts []models.Account) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal accounts: %w", err)
	}
	return r.files.Write(AccountsFile, data)
}

// nextMemberID returns the smallest positive integer not currently in
// use, filling gaps left by deleted accounts before growing past the
// maximum.
func nextMemberID(accounts []models.Account) int {
	used := make(map[int]struct{}, len(accounts))
	for _, a := range accounts {
		used[a.MemberID] = struct{}{}
	}
	for id := 1; ; id++ {
		if _, ok := used[id]; !ok {
			return id
		}
	}
}
