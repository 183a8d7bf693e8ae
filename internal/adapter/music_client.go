package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mpolukarov/volna/internal/logger"
	"github.com/mpolukarov/volna/models"
)

// MusicClientConfig holds the settings of the outbound music catalog client.
type MusicClientConfig struct {
	// BaseURL is the catalog API root, e.g. "https://api.music.yandex.net".
	BaseURL string

	// Token is the OAuth credential attached to every request.
	Token string

	// PageSize bounds the number of tracks requested or returned per call.
	PageSize int

	// CoverSize replaces the "%%" resolution placeholder in cover URL
	// templates, e.g. "400x400".
	CoverSize string

	// Timeout bounds a single outbound request.
	Timeout time.Duration
}

// musicCatalogClient is the resty-backed implementation of [CatalogClient].
type musicCatalogClient struct {
	client    *resty.Client
	pageSize  int
	coverSize string
	logger    *logger.Logger
}

// NewMusicCatalogClient constructs a [CatalogClient] for the given catalog
// API settings. The underlying resty client carries the base URL, the OAuth
// authorization header and the request timeout, so individual calls only
// supply path and query parameters.
func NewMusicCatalogClient(cfg MusicClientConfig, log *logger.Logger) CatalogClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", "OAuth "+cfg.Token)

	return &musicCatalogClient{
		client:    cli,
		pageSize:  cfg.PageSize,
		coverSize: cfg.CoverSize,
		logger:    log,
	}
}

// SearchTracks runs a track search against the catalog's /search endpoint and
// reshapes the result list.
func (m *musicCatalogClient) SearchTracks(ctx context.Context, query string) ([]models.Track, error) {
	log := logger.FromContext(ctx)

	var out searchResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"type":     "track",
			"text":     query,
			"page":     "0",
			"pageSize": strconv.Itoa(m.pageSize),
		}).
		SetResult(&out).
		Get("/search")
	if err != nil {
		log.Err(err).Str("query", query).Msg("music catalog search request failed")
		return nil, fmt.Errorf("music catalog search request: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("music catalog search answered with error status")
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	tracks := make([]models.Track, 0, len(out.Result.Tracks.Results))
	for _, payload := range out.Result.Tracks.Results {
		tracks = append(tracks, m.toTrack(payload))
	}

	return tracks, nil
}

// ChartTracks fetches the catalog's popularity chart and reshapes its first
// pageSize entries.
func (m *musicCatalogClient) ChartTracks(ctx context.Context) ([]models.Track, error) {
	log := logger.FromContext(ctx)

	var out chartResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/landing3/chart")
	if err != nil {
		log.Err(err).Msg("music catalog chart request failed")
		return nil, fmt.Errorf("music catalog chart request: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Msg("music catalog chart answered with error status")
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	entries := out.Result.Chart.Tracks
	if len(entries) > m.pageSize {
		entries = entries[:m.pageSize]
	}

	tracks := make([]models.Track, 0, len(entries))
	for _, entry := range entries {
		tracks = append(tracks, m.toTrack(entry.Track))
	}

	return tracks, nil
}

// toTrack reshapes an upstream track payload into the simplified [models.Track]:
// artist display names joined with ", ", milliseconds truncated to seconds and
// the cover URL template resolved to a concrete resolution.
func (m *musicCatalogClient) toTrack(payload trackPayload) models.Track {
	names := make([]string, 0, len(payload.Artists))
	for _, artist := range payload.Artists {
		names = append(names, artist.Name)
	}

	var cover string
	if payload.CoverURI != "" {
		cover = "https://" + strings.ReplaceAll(payload.CoverURI, "%%", m.coverSize)
	}

	return models.Track{
		ID:       payload.ID,
		Title:    payload.Title,
		Artist:   strings.Join(names, ", "),
		Duration: payload.DurationMs / 1000,
		Cover:    cover,
	}
}

// Upstream payload shapes. Only the fields the reshaping needs are declared.

type searchResponse struct {
	Result struct {
		Tracks struct {
			Results []trackPayload `json:"results"`
		} `json:"tracks"`
	} `json:"result"`
}

type chartResponse struct {
	Result struct {
		Chart struct {
			Tracks []chartEntry `json:"tracks"`
		} `json:"chart"`
	} `json:"result"`
}

type chartEntry struct {
	Track trackPayload `json:"track"`
}

type trackPayload struct {
	ID         int64           `json:"id"`
	Title      string          `json:"title"`
	Artists    []artistPayload `json:"artists"`
	DurationMs int64           `json:"durationMs"`
	CoverURI   string          `json:"coverUri"`
}

type artistPayload struct {
	Name string `json:"name"`
}
