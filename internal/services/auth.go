// Package services contains the application services wiring the CLI
// to the repositories: authentication and session, todos and their
// derived views, and profile maintenance with change notification.
package services

import (
	"context"

	"github.com/taskflow-app/taskflow/internal/common"
	"github.com/taskflow-app/taskflow/internal/models"
	"github.com/taskflow-app/taskflow/internal/repositories/accounts"
	"github.com/taskflow-app/taskflow/internal/session"
)

// AuthService defines registration and session operations.
//
// Contract:
//   - Register: validate the candidate and create the account.
//   - Login: verify credentials and persist the session.
//   - Logout: clear the session, touching nothing else.
//   - CurrentEmail: "" means nobody is logged in.
type AuthService interface {
	Register(ctx context.Context, candidate models.Account) (models.Account, error)
	Login(ctx context.Context, email, password string) (models.Account, error)
	Logout(ctx context.Context) error
	CurrentEmail(ctx context.Context) (string, error)
}

type authService struct {
	accounts accounts.Repository
	session  *session.Manager
}

func NewAuthService(accounts accounts.Repository, session *session.Manager) AuthService {
	return &authService{accounts: accounts, session: session}
}

// Register applies the registration validation rules and creates the
// account. Uniqueness is enforced by the repository.
func (s *authService) Register(ctx context.Context, candidate models.Account) (models.Account, error) {
	if err := candidate.ValidateRegistration(); err != nil {
		return models.Account{}, err
	}
	return s.accounts.Create(ctx, candidate)
}

// Login looks for an account matching email and password exactly
// (case-sensitive, plain-text compare — hardening is explicitly out of
// scope) and persists the session on success.
func (s *authService) Login(ctx context.Context, email, password string) (models.Account, error) {
	for _, a := range s.accounts.List(ctx) {
		if a.Email == email && a.Password == password {
			if err := s.session.Save(ctx, email, password); err != nil {
				return models.Account{}, err
			}
			return a, nil
		}
	}
	return models.Account{}, common.ErrInvalidCredentials
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *authService) CurrentEmail(ctx context.Context) (string, error) {
	return s.session.CurrentEmail(ctx)
}
