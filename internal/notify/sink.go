package notify

import (
	"context"

	"github.com/taskflow-app/taskflow/internal/logging"
)

// Recipient identifies who the confirmation is addressed to.
type Recipient struct {
	Name  string
	Email string
}

// Sink dispatches a change confirmation. Implementations must be safe
// to call from a goroutine; the caller does not retry.
type Sink interface {
	Send(ctx context.Context, to Recipient, changes []Change) error
}

// LogSink records the change-set in the log instead of sending mail.
// It serves when no mail service is configured.
type LogSink struct {
	log logging.Logger
}

func NewLogSink(log logging.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Send(ctx context.Context, to Recipient, changes []Change) error {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, c.String())
	}
	s.log.Info(ctx, "profile change confirmation", "to", to.Email, "changes", lines)
	return nil
}
