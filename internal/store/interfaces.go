package store

import (
	"context"

	"github.com/mpolukarov/volna/models"
)

// UserRepository is the persistence contract of the registration flow.
// Exactly one read (the existence check) and at most one write (the insert)
// are performed per registration.
type UserRepository interface {
	// UserExists reports whether any user row matches the given username
	// OR email.
	UserExists(ctx context.Context, username, email string) (bool, error)

	// CreateUser persists a new user row and returns it with all
	// server-assigned fields populated. A unique-constraint violation is
	// reported as [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}
