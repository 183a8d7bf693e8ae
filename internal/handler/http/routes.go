package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mpolukarov/volna/internal/utils"
	"github.com/mpolukarov/volna/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	router.Post("/api/user/register", h.register)
	router.Get("/api/music/tracks", h.musicTracks)

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgMethodNotAllowed}, http.StatusMethodNotAllowed)
	})

	return router
}
