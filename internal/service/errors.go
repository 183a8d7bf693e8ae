package service

import "errors"

// Configuration and internal errors of the service layer. Validation rule
// sentinels live in the validators package.
var (
	// ErrDatabaseNotConfigured is returned when the registration flow is
	// invoked without a configured persistence backend.
	ErrDatabaseNotConfigured = errors.New("database is not configured")

	// ErrMusicNotConfigured is returned when the music flow is invoked
	// without a configured catalog API credential.
	ErrMusicNotConfigured = errors.New("music catalog credential is not configured")

	// ErrHashingFailed is returned when the password hashing primitive
	// fails. Not recoverable by the caller.
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrQueryRequired is returned when a track search is requested with
	// an empty query.
	ErrQueryRequired = errors.New("search query is required")

	// ErrInvalidAction is returned when the music endpoint receives an
	// unknown action value.
	ErrInvalidAction = errors.New("unknown action requested")
)
