package services

import (
	"context"

	"github.com/taskflow-app/taskflow/internal/common"
	"github.com/taskflow-app/taskflow/internal/export"
	"github.com/taskflow-app/taskflow/internal/logging"
	"github.com/taskflow-app/taskflow/internal/models"
	"github.com/taskflow-app/taskflow/internal/notify"
	"github.com/taskflow-app/taskflow/internal/repositories/accounts"
	"github.com/taskflow-app/taskflow/internal/session"
)

// ProfileService defines profile reading and maintenance.
//
// Contract:
//   - Update addresses the record by its current email (oldEmail); the
//     change confirmation is dispatched once, after the durable commit,
//     and its failure never fails the update.
//   - DeleteAccount clears the session when the deleted account was
//     active; the account's todos are left in place.
type ProfileService interface {
	Get(ctx context.Context, email string) (models.Account, error)
	Update(ctx context.Context, oldEmail string, updated models.Account) (models.Account, error)
	DeleteAccount(ctx context.Context, email string) error
	Export(ctx context.Context, exporter export.Exporter) (string, error)
}

type profileService struct {
	accounts accounts.Repository
	session  *session.Manager
	sink     notify.Sink
	log      logging.Logger
}

func NewProfileService(accounts accounts.Repository, session *session.Manager, sink notify.Sink, log logging.Logger) ProfileService {
	return &profileService{accounts: accounts, session: session, sink: sink, log: log}
}

// Get returns the account stored under email.
func (s *profileService) Get(ctx context.Context, email string) (models.Account, error) {
	for _, a := range s.accounts.List(ctx) {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Account{}, common.ErrAccountNotFound
}

// Update persists the edited record, keeps the active session in step
// when its email or password changed, and then hands the field diff to
// the notification sink, asynchronously, exactly once.
func (s *profileService) Update(ctx context.Context, oldEmail string, updated models.Account) (models.Account, error) {
	prior, err := s.Get(ctx, oldEmail)
	if err != nil {
		return models.Account{}, err
	}

	stored, err := s.accounts.Update(ctx, oldEmail, updated)
	if err != nil {
		return models.Account{}, err
	}

	current, err := s.session.CurrentEmail(ctx)
	if err != nil {
		s.log.Warn(ctx, "session read failed after profile update", "error", err)
	} else if current == oldEmail {
		if err := s.session.Save(ctx, stored.Email, stored.Password); err != nil {
			s.log.Warn(ctx, "session refresh failed after profile update", "error", err)
		}
	}

	s.dispatchConfirmation(prior, stored)
	return stored, nil
}

// dispatchConfirmation fires the change notification in the
// background. The update is already committed, so a sink failure is
// only logged, never propagated.
func (s *profileService) dispatchConfirmation(prior, stored models.Account) {
	changes := notify.Diff(prior, stored)
	to := notify.Recipient{Name: stored.Firstname, Email: stored.Email}

	go func() {
		ctx := context.Background()
		if err := s.sink.Send(ctx, to, changes); err != nil {
			s.log.Error(ctx, "change confirmation failed", "to", to.Email, "error", err)
		}
	}()
}

// DeleteAccount removes the account and, when it was the active one,
// clears the session. Todos referencing the email are deliberately
// left untouched.
func (s *profileService) DeleteAccount(ctx context.Context, email string) error {
	if err := s.accounts.Delete(ctx, email); err != nil {
		return err
	}

	current, err := s.session.CurrentEmail(ctx)
	if err != nil {
		s.log.Warn(ctx, "session read failed after account deletion", "error", err)
		return nil
	}
	if current == email {
		if err := s.session.Clear(ctx); err != nil {
			s.log.Warn(ctx, "session clear failed after account deletion", "error", err)
		}
	}
	return nil
}

// Export serializes all accounts and hands the blob to the exporter.
func (s *profileService) Export(ctx context.Context, exporter export.Exporter) (string, error) {
	data, err := s.accounts.ExportJSON(ctx)
	if err != nil {
		return "", err
	}
	return exporter.Export(ctx, "accounts.json", data)
}
