package http

import (
	"github.com/devfriend/devfriend/internal/config"
	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/service"
	"github.com/devfriend/devfriend/internal/utils"
	"github.com/devfriend/devfriend/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// frontendURL is where the OAuth callback redirects the browser.
	frontendURL string

	// uuids mints trace ids for requests that arrive without one.
	uuids *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, oauthCfg config.OAuth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		validator:   validators.NewRequestValidator(),
		frontendURL: oauthCfg.FrontendURL,
		uuids:       utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
