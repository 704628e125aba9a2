package storage

import "errors"

var (
	// ErrNotAuthenticated is returned by write operations when no owner
	// identity is available. The owner comes from settings, not a login.
	ErrNotAuthenticated = errors.New("no owner identity configured, run 'habitual init' first")

	// ErrNotFound is returned when a referenced habit, log, or session
	// does not exist.
	ErrNotFound = errors.New("not found")
)
