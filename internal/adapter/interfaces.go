package adapter

import (
	"context"

	"github.com/mpolukarov/volna/models"
)

// CatalogClient is the outbound contract to the external music catalog API.
// Implementations reshape upstream payloads into [models.Track] values and
// surface upstream HTTP failures as *[UpstreamError].
type CatalogClient interface {
	// SearchTracks runs a track search for the given query string.
	SearchTracks(ctx context.Context, query string) ([]models.Track, error)

	// ChartTracks returns the current popularity chart.
	ChartTracks(ctx context.Context) ([]models.Track, error)
}
