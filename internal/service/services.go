package service

import (
	"github.com/mpolukarov/volna/internal/adapter"
	"github.com/mpolukarov/volna/internal/config"
	"github.com/mpolukarov/volna/internal/logger"
	"github.com/mpolukarov/volna/internal/store"
)

// Services aggregates every service the handler layer depends on.
type Services struct {
	RegistrationService RegistrationService
	MusicService        MusicService
}

// NewServices wires all services to their dependencies. storages may carry a
// nil UserRepository and catalog may be nil; the affected flows then answer
// with configuration errors instead of failing startup.
func NewServices(storages *store.Storages, catalog adapter.CatalogClient, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		RegistrationService: NewRegistrationService(storages.UserRepository, cfg.App, logger),
		MusicService:        NewMusicService(catalog, logger),
	}
}
