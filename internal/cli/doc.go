// Package cli implements the interactive TaskFlow command-line
// client: a small REPL over the auth, todo and profile services.
package cli
