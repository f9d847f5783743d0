// Package common holds the error taxonomy shared by repositories,
// services and the CLI. The messages double as the user-facing text,
// so every failure a caller can see maps to a distinct sentence.
package common

import "errors"

var (

	// registration / account creation
	ErrDuplicateEmail    = errors.New("an account with this email already exists")
	ErrDuplicateUsername = errors.New("this username is already taken")

	// update / delete targets
	ErrAccountNotFound = errors.New("account not found")
	ErrTodoNotFound    = errors.New("todo not found")

	// login
	ErrInvalidCredentials = errors.New("invalid email or password")

	// a storage collaborator failed on a mutating write
	ErrStorageUnavailable = errors.New("storage unavailable")

	// todo operations require an active session
	ErrNotLoggedIn = errors.New("you must be logged in")
)
