package handler

import (
	"github.com/avolkov/inkwell/internal/config"
	"github.com/avolkov/inkwell/internal/handler/http"
	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/service"
)

// Handlers bundles the transport-layer handlers handed to the server.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Auth, logger),
	}
}
