package service

import (
	"context"

	"github.com/mpolukarov/volna/models"
)

// RegistrationService sequences the signup flow: validation, uniqueness
// check, password hashing and persistence.
type RegistrationService interface {
	// Register validates req and, when every rule passes and neither
	// username nor email is taken, persists a new account and returns it.
	Register(ctx context.Context, req models.SignupRequest) (models.User, error)
}

// MusicService answers the music proxy endpoint by delegating to the catalog
// client and returning the reshaped track list.
type MusicService interface {
	// Search returns tracks matching query. An empty query is rejected
	// with [ErrQueryRequired].
	Search(ctx context.Context, query string) ([]models.Track, error)

	// Popular returns the current popularity chart.
	Popular(ctx context.Context) ([]models.Track, error)
}
