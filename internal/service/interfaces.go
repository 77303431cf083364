package service

import (
	"context"

	"github.com/devfriend/devfriend/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SecretService owns the encrypt-on-write / decrypt-on-read lifecycle of
// secret bundles. Plaintext bundles exist only in memory on either side of
// a vault call.
type SecretService interface {
	Create(ctx context.Context, userID int64, req models.SecretCreateRequest) (models.Secret, error)
	Get(ctx context.Context, userID, secretID int64) (models.Secret, error)
	List(ctx context.Context, userID int64) ([]models.Secret, error)
	// ListDecryptable returns the user's secrets with decrypted values.
	// Secrets whose blob no longer decrypts are skipped, not fatal.
	ListDecryptable(ctx context.Context, userID int64) ([]models.SecretResponse, error)
	Update(ctx context.Context, userID, secretID int64, req models.SecretUpdateRequest) (models.Secret, error)
	// Delete removes the secret and detaches it from any integration that
	// referenced it (those flip to the error status).
	Delete(ctx context.Context, userID, secretID int64) error
}

// CredentialResolver picks the OAuth application credential to use for a
// provider: the user's earliest stored credential secret when one exists,
// otherwise the process-environment defaults.
type CredentialResolver interface {
	Resolve(ctx context.Context, userID int64, provider models.Provider) (models.OAuthConfig, error)
	// RedirectURIs returns the callback URL per provider, for registering
	// OAuth applications at the providers.
	RedirectURIs() map[string]string
}

// IntegrationService drives the integration lifecycle: OAuth connect,
// token upkeep, provider sync and data listings.
type IntegrationService interface {
	// BeginConnect resolves credentials and builds the provider authorize
	// URL for the user.
	BeginConnect(ctx context.Context, userID int64, provider models.Provider) (string, error)

	// DecodeState verifies a signed OAuth state parameter and returns the
	// user and provider it was issued for.
	DecodeState(state string) (int64, models.Provider, error)

	// CompleteConnect finishes the OAuth callback: exchanges the code,
	// stores the token bundle as a secret and upserts the integration.
	// A non-nil warn with a nil err means the token is stored but a
	// follow-up step failed (integration write, identity fetch); callers
	// surface it without failing the flow.
	CompleteConnect(ctx context.Context, userID int64, provider models.Provider, code string) (integration models.Integration, warn error, err error)

	Create(ctx context.Context, userID int64, req models.IntegrationCreateRequest) (models.Integration, error)
	Get(ctx context.Context, userID, integrationID int64) (models.Integration, error)
	List(ctx context.Context, userID int64, serviceTypes []models.ServiceType) ([]models.Integration, error)
	Update(ctx context.Context, userID, integrationID int64, req models.IntegrationUpdateRequest) (models.Integration, error)
	// Delete removes the integration and its broker-issued token secret.
	// User-entered application credential secrets survive.
	Delete(ctx context.Context, userID, integrationID int64) error

	// Sync refreshes the cached provider summary in the integration config.
	Sync(ctx context.Context, userID, integrationID int64) (models.Integration, error)

	// FetchItems lists recent provider items (emails, repos, messages)
	// through a valid access token.
	FetchItems(ctx context.Context, userID, integrationID int64, opts models.ListOptions) ([]models.ProviderItem, error)
}

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
