// Package session tracks which account is current for the running
// process. The state is a single optional email (plus the password the
// login screen verified, which earlier versions of the app also
// persisted — the key layout is a compatibility contract).
package session

import (
	"context"
	"fmt"

	"github.com/taskflow-app/taskflow/internal/kvstore"
)

// Key-value entries holding the active session.
const (
	EmailKey    = "userEmail"
	PasswordKey = "userPassword"
)

// Manager persists the active session in the key-value store.
type Manager struct {
	kv kvstore.Store
}

func NewManager(kv kvstore.Store) *Manager {
	return &Manager{kv: kv}
}

// Save records the given credentials as the active session. Both keys
// are written in one transaction.
func (m *Manager) Save(ctx context.Context, email, password string) error {
	err := m.kv.SetMany(ctx, map[string]string{
		EmailKey:    email,
		PasswordKey: password,
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// CurrentEmail returns the active account's email, or "" when nobody
// is logged in; callers route "" to the login entry point.
func (m *Manager) CurrentEmail(ctx context.Context) (string, error) {
	email, err := m.kv.Get(ctx, EmailKey)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return email, nil
}

// Clear removes the session keys. Stored accounts and todos are not
// touched.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.kv.Delete(ctx, EmailKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := m.kv.Delete(ctx, PasswordKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
