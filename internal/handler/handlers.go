package handler

import (
	"github.com/mpolukarov/volna/internal/handler/http"
	"github.com/mpolukarov/volna/internal/logger"
	"github.com/mpolukarov/volna/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
