package handler

import (
	"github.com/devfriend/devfriend/internal/config"
	"github.com/devfriend/devfriend/internal/handler/http"
	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.OAuth, logger),
	}, nil
}
