package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/devfriend/devfriend/internal/config"
	"github.com/devfriend/devfriend/internal/crypto"
	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/oauth"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/models"
)

// credentialResolver implements [CredentialResolver].
//
// Resolution order:
//  1. the user's own stored application credential secrets for the
//     provider's service family, earliest created first;
//  2. the process-environment defaults.
//
// A stored secret only counts when it decrypts, is an application
// credential (not a broker-issued token bundle) and carries both halves of
// the client pair. Anything else is skipped silently so one broken secret
// never blocks the flow.
type credentialResolver struct {
	secretRepository store.SecretRepository
	vault            crypto.Vault
	oauthConfig      config.OAuth
	logger           *logger.Logger
}

// NewCredentialResolver constructs a CredentialResolver.
func NewCredentialResolver(
	secretRepository store.SecretRepository,
	vault crypto.Vault,
	oauthConfig config.OAuth,
	logger *logger.Logger,
) CredentialResolver {
	return &credentialResolver{
		secretRepository: secretRepository,
		vault:            vault,
		oauthConfig:      oauthConfig,
		logger:           logger,
	}
}

func (r *credentialResolver) Resolve(ctx context.Context, userID int64, provider models.Provider) (models.OAuthConfig, error) {
	log := logger.FromContext(ctx)

	if !provider.Valid() {
		return models.OAuthConfig{}, fmt.Errorf("%w: %q", oauth.ErrUnsupportedProvider, provider)
	}

	secrets, err := r.secretRepository.ListByService(ctx, userID, provider.SecretFamily())
	if err != nil {
		return models.OAuthConfig{}, fmt.Errorf("listing credential secrets failed: %w", err)
	}

	// rows come back oldest first, so the first usable one wins ties
	for _, secret := range secrets {
		bundle, err := r.vault.DecryptBundle(secret.EncryptedValue)
		if err != nil {
			log.Warn().
				Int64("user_id", userID).
				Int64("secret_id", secret.ID).
				Msg("skipping credential secret that no longer decrypts")
			continue
		}
		if bundle.Kind() != models.BundleKindAppCredential || !bundle.HasClientCredentials() {
			continue
		}

		cfg := models.OAuthConfig{
			Provider:       provider,
			ClientID:       bundle[models.BundleClientIDKey],
			ClientSecret:   bundle[models.BundleClientSecretKey],
			RedirectURI:    bundle[models.BundleRedirectURIKey],
			SourceSecretID: secret.ID,
		}
		if cfg.RedirectURI == "" {
			cfg.RedirectURI = r.defaultRedirectURI(provider)
		}
		return cfg, nil
	}

	return r.envCredentials(provider)
}

func (r *credentialResolver) envCredentials(provider models.Provider) (models.OAuthConfig, error) {
	var creds config.ProviderCredentials
	switch provider {
	case models.ProviderGoogle:
		creds = r.oauthConfig.Google
	case models.ProviderGitHub:
		creds = r.oauthConfig.GitHub
	case models.ProviderSlack:
		creds = r.oauthConfig.Slack
	}

	if !creds.Configured() {
		return models.OAuthConfig{}, fmt.Errorf("%w: provider %s", oauth.ErrNoOAuthConfig, provider)
	}

	return models.OAuthConfig{
		Provider:     provider,
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURI:  r.defaultRedirectURI(provider),
	}, nil
}

func (r *credentialResolver) defaultRedirectURI(provider models.Provider) string {
	return strings.TrimRight(r.oauthConfig.BackendURL, "/") + "/auth/" + string(provider) + "/callback"
}

func (r *credentialResolver) RedirectURIs() map[string]string {
	providers := []models.Provider{models.ProviderGoogle, models.ProviderGitHub, models.ProviderSlack}
	uris := make(map[string]string, len(providers))
	for _, provider := range providers {
		uris[string(provider)] = r.defaultRedirectURI(provider)
	}
	return uris
}
