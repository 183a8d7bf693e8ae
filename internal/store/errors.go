package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a row with the same username or email already exists.
	// It covers both the pre-insert existence check and a unique-constraint
	// violation raised by the insert itself, so a race between the two is
	// reported to the caller the same way.
	ErrUserAlreadyExists = errors.New("user with this username or email already exists")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned (wrapped) when executing a query against
	// the database fails for a reason other than a recognised constraint
	// violation.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
