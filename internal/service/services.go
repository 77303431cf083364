package service

import (
	"github.com/devfriend/devfriend/internal/config"
	"github.com/devfriend/devfriend/internal/crypto"
	"github.com/devfriend/devfriend/internal/gateway"
	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/oauth"
	"github.com/devfriend/devfriend/internal/store"
)

// Services aggregates the application services behind one injection point
// for the transport layer.
type Services struct {
	AuthService        AuthService
	SecretService      SecretService
	CredentialResolver CredentialResolver
	IntegrationService IntegrationService
}

func NewServices(
	storages *store.Storages,
	vault crypto.Vault,
	broker oauth.Broker,
	gw gateway.Gateway,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	resolver := NewCredentialResolver(storages.SecretRepository, vault, cfg.OAuth, logger)

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg.App, logger),
		SecretService:      NewSecretService(storages.SecretRepository, storages.IntegrationRepository, vault, logger),
		CredentialResolver: resolver,
		IntegrationService: NewIntegrationService(
			storages.IntegrationRepository,
			storages.SecretRepository,
			vault,
			broker,
			resolver,
			gw,
			logger,
		),
	}
}
