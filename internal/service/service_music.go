package service

import (
	"context"
	"fmt"

	"github.com/mpolukarov/volna/internal/adapter"
	"github.com/mpolukarov/volna/internal/logger"
	"github.com/mpolukarov/volna/models"
)

// musicService is the concrete implementation of MusicService. It performs
// the parameter checks of the music proxy flow and delegates the actual
// catalog call to a [adapter.CatalogClient].
type musicService struct {
	// catalog is the outbound catalog API client. Nil when no credential
	// was configured.
	catalog adapter.CatalogClient

	logger *logger.Logger
}

// NewMusicService constructs a MusicService wired to the given catalog
// client. catalog may be nil; both operations then return
// [ErrMusicNotConfigured].
func NewMusicService(catalog adapter.CatalogClient, logger *logger.Logger) MusicService {
	return &musicService{
		catalog: catalog,
		logger:  logger,
	}
}

// Search returns catalog tracks matching query.
//
// Returns:
//   - ErrQueryRequired if query is empty.
//   - ErrMusicNotConfigured if no catalog credential is available.
//   - A *adapter.UpstreamError (wrapped) if the catalog answered non-2xx.
func (s *musicService) Search(ctx context.Context, query string) ([]models.Track, error) {
	log := logger.FromContext(ctx)

	if query == "" {
		log.Error().Msg("track search requested with empty query")
		return nil, ErrQueryRequired
	}

	if s.catalog == nil {
		log.Error().Msg("track search requested without configured catalog credential")
		return nil, ErrMusicNotConfigured
	}

	tracks, err := s.catalog.SearchTracks(ctx, query)
	if err != nil {
		log.Err(err).Str("query", query).Msg("track search failed")
		return nil, fmt.Errorf("track search failed: %w", err)
	}

	return tracks, nil
}

// Popular returns the catalog's current popularity chart.
//
// Returns:
//   - ErrMusicNotConfigured if no catalog credential is available.
//   - A *adapter.UpstreamError (wrapped) if the catalog answered non-2xx.
func (s *musicService) Popular(ctx context.Context) ([]models.Track, error) {
	log := logger.FromContext(ctx)

	if s.catalog == nil {
		log.Error().Msg("chart requested without configured catalog credential")
		return nil, ErrMusicNotConfigured
	}

	tracks, err := s.catalog.ChartTracks(ctx)
	if err != nil {
		log.Err(err).Msg("chart request failed")
		return nil, fmt.Errorf("chart request failed: %w", err)
	}

	return tracks, nil
}
