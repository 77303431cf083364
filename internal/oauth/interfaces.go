package oauth

import (
	"context"

	"github.com/devfriend/devfriend/models"
)

// Broker drives the authorization-code flow against the supported providers.
// All failures surface as one of the package sentinel errors so the service
// layer can decide between "try again", "reconnect" and "fix your app".
type Broker interface {
	// AuthorizeURL builds the provider authorization URL for the given
	// resolved credential, embedding a fresh signed state for the user.
	AuthorizeURL(cfg models.OAuthConfig, userID int64) (string, error)

	// DecodeState verifies a callback state parameter and returns the user
	// id and provider it was issued for.
	DecodeState(state string) (int64, models.Provider, error)

	// ExchangeCode trades an authorization code for a token set.
	ExchangeCode(ctx context.Context, cfg models.OAuthConfig, code string) (models.TokenSet, error)

	// Refresh trades a refresh token for a fresh token set. Providers that
	// do not rotate refresh tokens return the set with RefreshToken empty;
	// callers keep the old one in that case.
	Refresh(ctx context.Context, cfg models.OAuthConfig, refreshToken string) (models.TokenSet, error)

	// FetchIdentity asks the provider who the access token belongs to,
	// for labelling the integration.
	FetchIdentity(ctx context.Context, provider models.Provider, accessToken string) (models.ProviderIdentity, error)
}

//go:generate mockgen -source=interfaces.go -destination=../mock/oauth_mock.go -package=mock
