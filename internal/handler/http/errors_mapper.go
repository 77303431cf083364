package http

import (
	"errors"
	"net/http"

	"github.com/devfriend/devfriend/internal/gateway"
	"github.com/devfriend/devfriend/internal/oauth"
	"github.com/devfriend/devfriend/internal/service"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrReauthRequired:          http.StatusConflict,
	service.ErrIntegrationNotConnected: http.StatusConflict,

	validators.ErrInvalidEmail:      http.StatusBadRequest,
	validators.ErrWeakPassword:      http.StatusBadRequest,
	validators.ErrEmptyName:         http.StatusBadRequest,
	validators.ErrInvalidServiceType: http.StatusBadRequest,
	validators.ErrEmptyBundle:       http.StatusBadRequest,
	validators.ErrEmptyBundleKey:    http.StatusBadRequest,
	validators.ErrInvalidBundleKind: http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:  http.StatusBadRequest,

	oauth.ErrNoOAuthConfig:       http.StatusBadRequest,
	oauth.ErrInvalidGrant:        http.StatusBadRequest,
	oauth.ErrConfigMismatch:      http.StatusBadRequest,
	oauth.ErrStateInvalid:        http.StatusBadRequest,
	oauth.ErrStateExpired:        http.StatusBadRequest,
	oauth.ErrUnsupportedProvider: http.StatusNotFound,
	oauth.ErrProviderUnavailable: http.StatusBadGateway,
	oauth.ErrRefreshRevoked:      http.StatusConflict,

	gateway.ErrTokenRejected:       http.StatusUnauthorized,
	gateway.ErrUpstreamUnavailable: http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrSecretNotFound:     http.StatusNotFound,
	store.ErrSecretNameTaken:    http.StatusConflict,
	store.ErrIntegrationNotFound: http.StatusNotFound,
	store.ErrIntegrationExists:  http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// oauthErrorReason condenses an OAuth flow failure into the short reason
// string carried back to the frontend in the callback redirect.
func oauthErrorReason(err error) string {
	switch {
	case errors.Is(err, oauth.ErrStateExpired):
		return "state_expired"
	case errors.Is(err, oauth.ErrStateInvalid):
		return "invalid_state"
	case errors.Is(err, oauth.ErrNoOAuthConfig):
		return "no_oauth_config"
	case errors.Is(err, oauth.ErrInvalidGrant):
		return "invalid_grant"
	case errors.Is(err, oauth.ErrConfigMismatch):
		return "config_mismatch"
	case errors.Is(err, oauth.ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, oauth.ErrUnsupportedProvider):
		return "unsupported_provider"
	default:
		return "connect_failed"
	}
}
