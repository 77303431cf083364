package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/devfriend/devfriend/internal/crypto"
	"github.com/devfriend/devfriend/internal/gateway"
	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/oauth"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/models"
)

// expiryMargin is subtracted from the stored token expiry: a token within
// this margin of expiring is refreshed proactively so it cannot die mid-use.
const expiryMargin = 60 * time.Second

// keyedMutex hands out one mutex per integration id, serialising token
// refreshes so concurrent callers never race the provider with the same
// refresh token.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int64]*sync.Mutex)}
}

func (k *keyedMutex) get(id int64) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	lock, ok := k.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[id] = lock
	}
	return lock
}

// integrationService is the concrete implementation of IntegrationService.
type integrationService struct {
	integrationRepository store.IntegrationRepository
	secretRepository      store.SecretRepository
	vault                 crypto.Vault
	broker                oauth.Broker
	resolver              CredentialResolver
	gateway               gateway.Gateway

	refreshLocks *keyedMutex
	now          func() time.Time
	logger       *logger.Logger
}

// NewIntegrationService constructs an IntegrationService.
func NewIntegrationService(
	integrationRepository store.IntegrationRepository,
	secretRepository store.SecretRepository,
	vault crypto.Vault,
	broker oauth.Broker,
	resolver CredentialResolver,
	gw gateway.Gateway,
	logger *logger.Logger,
) IntegrationService {
	return &integrationService{
		integrationRepository: integrationRepository,
		secretRepository:      secretRepository,
		vault:                 vault,
		broker:                broker,
		resolver:              resolver,
		gateway:               gw,
		refreshLocks:          newKeyedMutex(),
		now:                   time.Now,
		logger:                logger,
	}
}

func (s *integrationService) BeginConnect(ctx context.Context, userID int64, provider models.Provider) (string, error) {
	cfg, err := s.resolver.Resolve(ctx, userID, provider)
	if err != nil {
		return "", err
	}
	return s.broker.AuthorizeURL(cfg, userID)
}

func (s *integrationService) DecodeState(state string) (int64, models.Provider, error) {
	return s.broker.DecodeState(state)
}

// CompleteConnect finishes the OAuth callback for one user+provider pair.
//
// The exchanged token set is stored as an oauth_token secret; the
// integration row is created, or updated in place when the user reconnects
// an existing one. Identity fetch failure is reported through warn: the
// connection itself stands, only the label is missing.
func (s *integrationService) CompleteConnect(ctx context.Context, userID int64, provider models.Provider, code string) (models.Integration, error, error) {
	log := logger.FromContext(ctx)

	cfg, err := s.resolver.Resolve(ctx, userID, provider)
	if err != nil {
		return models.Integration{}, nil, err
	}

	tokens, err := s.broker.ExchangeCode(ctx, cfg, code)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Str("provider", string(provider)).
			Msg("code exchange failed")
		return models.Integration{}, nil, err
	}

	secret, err := s.storeTokenSecret(ctx, userID, provider, tokens)
	if err != nil {
		return models.Integration{}, nil, err
	}

	// the token secret is safely stored from here on; a failed integration
	// write is reported as a warning so the callback flow still succeeds
	integration, err := s.upsertIntegration(ctx, userID, provider, secret.ID)
	if err != nil {
		log.Err(err).
			Int64("user_id", userID).
			Str("provider", string(provider)).
			Msg("integration upsert failed after token storage")
		return models.Integration{}, fmt.Errorf("%w: %w", ErrIntegrationNotConnected, err), nil
	}

	var warn error
	identity, err := s.broker.FetchIdentity(ctx, provider, tokens.AccessToken)
	if err != nil {
		log.Warn().
			Err(err).
			Int64("user_id", userID).
			Str("provider", string(provider)).
			Msg("identity fetch failed after connect")
		warn = err
	}

	status := models.StatusConnected
	config := integration.Config
	if config == nil {
		config = models.IntegrationConfig{}
	}
	if warn == nil {
		config[identityConfigKey(provider)] = identity.Label
	}
	config[models.ConfigStatusKey] = string(status)

	updated, err := s.integrationRepository.Update(ctx, store.IntegrationUpdate{
		ID:     integration.ID,
		UserID: userID,
		Status: &status,
		Config: config,
	})
	if err != nil {
		return integration, fmt.Errorf("%w: %w", ErrIntegrationNotConnected, err), nil
	}

	return updated, warn, nil
}

// storeTokenSecret encrypts the token set into an oauth_token bundle and
// persists it as a secret named after the provider.
func (s *integrationService) storeTokenSecret(ctx context.Context, userID int64, provider models.Provider, tokens models.TokenSet) (models.Secret, error) {
	bundle := models.SecretBundle{
		models.BundleKindKey:        models.BundleKindOAuthToken,
		models.BundleAccessTokenKey: tokens.AccessToken,
	}
	if tokens.RefreshToken != "" {
		bundle[models.BundleRefreshTokenKey] = tokens.RefreshToken
	}
	if tokens.Expiring() {
		bundle[models.BundleTokenExpiryKey] = tokens.Expiry.UTC().Format(time.RFC3339)
	}

	encrypted, err := s.vault.EncryptBundle(bundle)
	if err != nil {
		return models.Secret{}, fmt.Errorf("token bundle encryption failed: %w", err)
	}

	secret := models.Secret{
		UserID:         userID,
		Name:           string(provider) + " oauth token " + s.now().UTC().Format("20060102T150405"),
		ServiceType:    provider.ServiceType(),
		EncryptedValue: encrypted,
	}

	return s.secretRepository.Create(ctx, secret)
}

// upsertIntegration reuses the user's live integration for the service when
// one exists (reconnect), otherwise creates a fresh row in the connecting
// status.
func (s *integrationService) upsertIntegration(ctx context.Context, userID int64, provider models.Provider, secretID int64) (models.Integration, error) {
	serviceType := provider.ServiceType()

	existing, err := s.integrationRepository.ListByUser(ctx, userID, []models.ServiceType{serviceType})
	if err != nil {
		return models.Integration{}, err
	}

	for _, integration := range existing {
		if integration.Status == models.StatusError {
			continue
		}
		return s.integrationRepository.Update(ctx, store.IntegrationUpdate{
			ID:       integration.ID,
			UserID:   userID,
			SecretID: &secretID,
		})
	}

	return s.integrationRepository.Create(ctx, models.Integration{
		UserID:      userID,
		ServiceType: serviceType,
		SecretID:    &secretID,
		Status:      models.StatusConnecting,
	})
}

func (s *integrationService) Create(ctx context.Context, userID int64, req models.IntegrationCreateRequest) (models.Integration, error) {
	return s.integrationRepository.Create(ctx, models.Integration{
		UserID:      userID,
		ServiceType: req.ServiceType,
		SecretID:    req.SecretID,
		Config:      req.Config,
	})
}

func (s *integrationService) Get(ctx context.Context, userID, integrationID int64) (models.Integration, error) {
	return s.integrationRepository.GetByID(ctx, userID, integrationID)
}

func (s *integrationService) List(ctx context.Context, userID int64, serviceTypes []models.ServiceType) ([]models.Integration, error) {
	return s.integrationRepository.ListByUser(ctx, userID, serviceTypes)
}

func (s *integrationService) Update(ctx context.Context, userID, integrationID int64, req models.IntegrationUpdateRequest) (models.Integration, error) {
	return s.integrationRepository.Update(ctx, store.IntegrationUpdate{
		ID:       integrationID,
		UserID:   userID,
		SecretID: req.SecretID,
		Config:   req.Config,
	})
}

// Delete removes the integration together with its broker-issued token
// secret. User-entered application credential secrets are left alone: they
// outlive any number of connect/disconnect cycles.
func (s *integrationService) Delete(ctx context.Context, userID, integrationID int64) error {
	log := logger.FromContext(ctx)

	integration, err := s.integrationRepository.GetByID(ctx, userID, integrationID)
	if err != nil {
		return err
	}

	if integration.SecretID != nil {
		secret, err := s.secretRepository.GetByID(ctx, userID, *integration.SecretID)
		switch {
		case errors.Is(err, store.ErrSecretNotFound):
			// already gone, nothing to clean up
		case err != nil:
			return err
		default:
			bundle, decErr := s.vault.DecryptBundle(secret.EncryptedValue)
			if decErr != nil || bundle.Kind() == models.BundleKindOAuthToken {
				if delErr := s.secretRepository.Delete(ctx, userID, secret.ID); delErr != nil && !errors.Is(delErr, store.ErrSecretNotFound) {
					log.Err(delErr).
						Int64("user_id", userID).
						Int64("secret_id", secret.ID).
						Msg("failed to delete token secret with integration")
					return delErr
				}
			}
		}
	}

	return s.integrationRepository.Delete(ctx, userID, integrationID)
}

// Sync refreshes the cached provider summary held in the integration
// config. A token the provider rejects despite a fresh expiry triggers one
// forced refresh and retry before giving up.
func (s *integrationService) Sync(ctx context.Context, userID, integrationID int64) (models.Integration, error) {
	log := logger.FromContext(ctx)

	integration, err := s.integrationRepository.GetByID(ctx, userID, integrationID)
	if err != nil {
		return models.Integration{}, err
	}

	provider, ok := models.ProviderForService(integration.ServiceType)
	if !ok {
		return models.Integration{}, fmt.Errorf("%w: %q", oauth.ErrUnsupportedProvider, integration.ServiceType)
	}

	summary, err := withValidToken(ctx, s, integration, provider, func(accessToken string) (models.ProviderSummary, error) {
		return s.gateway.FetchSummary(ctx, provider, accessToken)
	})
	if err != nil {
		if syncErr := s.markSyncFailure(ctx, integration, err); syncErr != nil {
			log.Err(syncErr).Int64("integration_id", integration.ID).Msg("failed to persist sync failure state")
		}
		return models.Integration{}, err
	}

	status := models.StatusConnected
	config := integration.Config
	if config == nil {
		config = models.IntegrationConfig{}
	}
	config[identityConfigKey(provider)] = summary.Identity
	config[models.ConfigUnreadCountKey] = summary.UnreadCount
	if key := totalCountConfigKey(provider); key != "" {
		config[key] = summary.TotalCount
	}
	config[models.ConfigLastSyncKey] = summary.FetchedAt.UTC().Format(time.RFC3339)
	config[models.ConfigStatusKey] = string(status)

	return s.integrationRepository.Update(ctx, store.IntegrationUpdate{
		ID:     integration.ID,
		UserID: userID,
		Status: &status,
		Config: config,
	})
}

// FetchItems lists recent provider items through a valid access token,
// retrying once through a forced refresh when the provider rejects the
// token anyway.
func (s *integrationService) FetchItems(ctx context.Context, userID, integrationID int64, opts models.ListOptions) ([]models.ProviderItem, error) {
	integration, err := s.integrationRepository.GetByID(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	provider, ok := models.ProviderForService(integration.ServiceType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", oauth.ErrUnsupportedProvider, integration.ServiceType)
	}

	return withValidToken(ctx, s, integration, provider, func(accessToken string) ([]models.ProviderItem, error) {
		return s.gateway.FetchList(ctx, provider, accessToken, opts)
	})
}

// withValidToken runs fn with a valid access token, forcing one refresh and
// retry when the provider rejects the token despite a healthy expiry.
func withValidToken[T any](ctx context.Context, s *integrationService, integration models.Integration, provider models.Provider, fn func(accessToken string) (T, error)) (T, error) {
	var zero T

	accessToken, err := s.getValidAccessToken(ctx, integration, provider, false)
	if err != nil {
		return zero, err
	}

	result, err := fn(accessToken)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, gateway.ErrTokenRejected) {
		return zero, err
	}

	// expiry said fine, provider said no: force one refresh and retry
	accessToken, err = s.getValidAccessToken(ctx, integration, provider, true)
	if err != nil {
		return zero, err
	}

	result, err = fn(accessToken)
	if err != nil && errors.Is(err, gateway.ErrTokenRejected) {
		// the provider rejects even a freshly refreshed token: the grant
		// itself is dead, same as a revoked refresh token
		return zero, s.heal(ctx, integration, fmt.Errorf("%w: %w", ErrReauthRequired, err))
	}
	return result, err
}

// getValidAccessToken returns an access token with at least expiryMargin of
// life left, refreshing through the broker when needed.
//
// At most one refresh runs per integration at a time: the per-integration
// lock is taken, the bundle is re-read (another caller may have refreshed
// while this one waited), and the refreshed bundle is persisted before the
// lock is released. A refresh the provider refuses permanently flips the
// integration to needs_reauth and surfaces ErrReauthRequired.
func (s *integrationService) getValidAccessToken(ctx context.Context, integration models.Integration, provider models.Provider, force bool) (string, error) {
	log := logger.FromContext(ctx)

	// needs_reauth is terminal: only a user-driven reconnect leaves it.
	// Fail fast without touching the stored bundle or the broker.
	if integration.Status == models.StatusNeedsReauth {
		return "", ErrReauthRequired
	}

	if integration.SecretID == nil {
		return "", s.heal(ctx, integration, ErrReauthRequired)
	}

	bundle, err := s.loadTokenBundle(ctx, integration)
	if err != nil {
		return "", err
	}

	if !force {
		if token, ok := s.usableToken(bundle); ok {
			return token, nil
		}
	}

	lock := s.refreshLocks.get(integration.ID)
	lock.Lock()
	defer lock.Unlock()

	// another caller may have refreshed while this one waited on the lock
	bundle, err = s.loadTokenBundle(ctx, integration)
	if err != nil {
		return "", err
	}
	if !force {
		if token, ok := s.usableToken(bundle); ok {
			return token, nil
		}
	}

	refreshToken := bundle[models.BundleRefreshTokenKey]
	if refreshToken == "" {
		log.Warn().
			Int64("integration_id", integration.ID).
			Msg("token expired and no refresh token stored")
		return "", s.heal(ctx, integration, ErrReauthRequired)
	}

	cfg, err := s.resolver.Resolve(ctx, integration.UserID, provider)
	if err != nil {
		return "", err
	}

	tokens, err := s.broker.Refresh(ctx, cfg, refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, oauth.ErrRefreshRevoked),
			errors.Is(err, oauth.ErrInvalidGrant),
			errors.Is(err, oauth.ErrConfigMismatch):
			log.Warn().
				Err(err).
				Int64("integration_id", integration.ID).
				Msg("refresh permanently rejected, demanding reauthorization")
			return "", s.heal(ctx, integration, fmt.Errorf("%w: %w", ErrReauthRequired, err))
		default:
			// transient: mark expired, keep the refresh token for later
			s.setStatus(ctx, integration, models.StatusTokenExpired)
			return "", err
		}
	}

	bundle[models.BundleAccessTokenKey] = tokens.AccessToken
	if tokens.RefreshToken != "" {
		bundle[models.BundleRefreshTokenKey] = tokens.RefreshToken
	}
	if tokens.Expiring() {
		bundle[models.BundleTokenExpiryKey] = tokens.Expiry.UTC().Format(time.RFC3339)
	} else {
		delete(bundle, models.BundleTokenExpiryKey)
	}

	// persist while still holding the lock so a concurrent caller can only
	// ever observe the new bundle
	encrypted, err := s.vault.EncryptBundle(bundle)
	if err != nil {
		return "", fmt.Errorf("token bundle encryption failed: %w", err)
	}
	if _, err := s.secretRepository.Update(ctx, integration.UserID, *integration.SecretID, nil, &encrypted); err != nil {
		return "", fmt.Errorf("persisting refreshed token failed: %w", err)
	}

	if integration.Status != models.StatusConnected {
		s.setStatus(ctx, integration, models.StatusConnected)
	}

	return tokens.AccessToken, nil
}

// loadTokenBundle reads and decrypts the integration's token secret.
// A missing or undecryptable secret heals the integration to needs_reauth.
func (s *integrationService) loadTokenBundle(ctx context.Context, integration models.Integration) (models.SecretBundle, error) {
	secret, err := s.secretRepository.GetByID(ctx, integration.UserID, *integration.SecretID)
	if err != nil {
		if errors.Is(err, store.ErrSecretNotFound) {
			return nil, s.heal(ctx, integration, ErrReauthRequired)
		}
		return nil, err
	}

	bundle, err := s.vault.DecryptBundle(secret.EncryptedValue)
	if err != nil {
		return nil, s.heal(ctx, integration, fmt.Errorf("%w: %w", ErrReauthRequired, err))
	}

	if bundle[models.BundleAccessTokenKey] == "" {
		return nil, s.heal(ctx, integration, ErrReauthRequired)
	}

	return bundle, nil
}

// usableToken reports whether the bundle's access token still has at least
// expiryMargin of life. A missing expiry means the token never expires.
func (s *integrationService) usableToken(bundle models.SecretBundle) (string, bool) {
	token := bundle[models.BundleAccessTokenKey]
	if token == "" {
		return "", false
	}

	expiryRaw := bundle[models.BundleTokenExpiryKey]
	if expiryRaw == "" {
		return token, true
	}

	expiry, err := time.Parse(time.RFC3339, expiryRaw)
	if err != nil {
		// unreadable expiry: treat as expired so a refresh repairs it
		return "", false
	}

	if s.now().Add(expiryMargin).Before(expiry) {
		return token, true
	}
	return "", false
}

// heal flips the integration to needs_reauth and returns cause. The state
// write is best-effort: the caller's error matters more than ours.
func (s *integrationService) heal(ctx context.Context, integration models.Integration, cause error) error {
	s.setStatus(ctx, integration, models.StatusNeedsReauth)
	return cause
}

func (s *integrationService) setStatus(ctx context.Context, integration models.Integration, status models.IntegrationStatus) {
	if integration.Status == status {
		return
	}
	if _, err := s.integrationRepository.Update(ctx, store.IntegrationUpdate{
		ID:     integration.ID,
		UserID: integration.UserID,
		Status: &status,
	}); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("integration_id", integration.ID).
			Str("status", string(status)).
			Msg("failed to update integration status")
	}
}

// markSyncFailure records a failed sync in the integration state without
// clobbering the needs_reauth status the token path may have just set.
func (s *integrationService) markSyncFailure(ctx context.Context, integration models.Integration, cause error) error {
	if errors.Is(cause, ErrReauthRequired) {
		return nil // already healed to needs_reauth
	}

	status := models.StatusTokenExpired
	if !errors.Is(cause, gateway.ErrTokenRejected) &&
		!errors.Is(cause, gateway.ErrUpstreamUnavailable) &&
		!errors.Is(cause, oauth.ErrProviderUnavailable) {
		status = models.StatusError
	}

	_, err := s.integrationRepository.Update(ctx, store.IntegrationUpdate{
		ID:     integration.ID,
		UserID: integration.UserID,
		Status: &status,
	})
	return err
}

func identityConfigKey(provider models.Provider) string {
	switch provider {
	case models.ProviderGoogle:
		return models.ConfigEmailAddressKey
	case models.ProviderGitHub:
		return models.ConfigGitHubUsernameKey
	default:
		return models.ConfigWorkspaceNameKey
	}
}

// totalCountConfigKey picks the config key for the summary total, empty for
// providers whose total has no dedicated key.
func totalCountConfigKey(provider models.Provider) string {
	switch provider {
	case models.ProviderGitHub:
		return models.ConfigRepoCountKey
	case models.ProviderSlack:
		return models.ConfigChannelCountKey
	}
	return ""
}
