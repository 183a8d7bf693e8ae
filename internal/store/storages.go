package store

import (
	"github.com/mpolukarov/volna/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
//
// UserRepository is nil when no database DSN was configured; the service
// layer translates that into a configuration error at request time instead
// of failing startup.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires all repositories to the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
