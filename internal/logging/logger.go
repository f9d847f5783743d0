// Package logging defines the context-aware structured logger used
// across TaskFlow. Repositories log swallowed secondary-store errors
// through it; the notification dispatcher logs sink failures.
package logging

import "context"

// Logger accepts variadic key-value pairs, e.g.:
//
//	log.Warn(ctx, "mirror write failed", "key", key, "error", err)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs.
	With(args ...any) Logger
}
