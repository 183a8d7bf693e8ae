package http

import (
	"net/http"

	"github.com/mpolukarov/volna/internal/logger"
	"github.com/mpolukarov/volna/internal/utils"
	"github.com/mpolukarov/volna/models"
)

// Recognised values of the "action" query parameter.
const (
	actionSearch  = "search"
	actionPopular = "popular"
)

// musicTracks handles GET /api/music/tracks.
//
// Query parameters: action ("search" by default, or "popular") and query
// (required for search only). Success answers {"tracks": [...]}; an upstream
// catalog failure passes through with the upstream status code.
func (h *Handler) musicTracks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	params := r.URL.Query()
	action := params.Get("action")
	if action == "" {
		action = actionSearch
	}

	var tracks []models.Track
	var err error

	switch action {
	case actionSearch:
		tracks, err = h.services.MusicService.Search(ctx, params.Get("query"))
	case actionPopular:
		tracks, err = h.services.MusicService.Popular(ctx)
	default:
		log.Error().Str("action", action).Msg("unknown music action requested")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidAction}, http.StatusBadRequest)
		return
	}

	if err != nil {
		status, message := responseFromError(err)
		log.Err(err).Int("status", status).Str("action", action).Msg("music request failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
		return
	}

	utils.WriteJSON(w, models.NewTrackList(tracks), http.StatusOK)
}
