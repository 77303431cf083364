package oauth

import "errors"

// Classification of provider-side failures. Callers branch on these with
// errors.Is; the wrapped detail carries the provider's own error code.
var (
	// ErrNoOAuthConfig means no application credential could be resolved for
	// the provider: the user stored none and the environment defaults are
	// not configured.
	ErrNoOAuthConfig = errors.New("no oauth client credentials configured")

	// ErrInvalidGrant means the authorization code was rejected: expired,
	// already used, or issued for a different client.
	ErrInvalidGrant = errors.New("authorization code rejected by provider")

	// ErrConfigMismatch means the client id/secret pair or redirect URI does
	// not match what the provider has registered.
	ErrConfigMismatch = errors.New("oauth client configuration rejected by provider")

	// ErrProviderUnavailable covers transport failures, 5xx responses and
	// unparseable bodies. Retrying later may succeed.
	ErrProviderUnavailable = errors.New("oauth provider unavailable")

	// ErrRefreshRevoked means the refresh token is no longer accepted; the
	// user must go through the authorization flow again.
	ErrRefreshRevoked = errors.New("refresh token revoked by provider")

	// ErrUnsupportedProvider means the provider name is not one of the
	// supported set.
	ErrUnsupportedProvider = errors.New("unsupported oauth provider")

	// ErrStateInvalid means the state parameter failed signature or shape
	// verification.
	ErrStateInvalid = errors.New("oauth state parameter is invalid")

	// ErrStateExpired means the state parameter was well-formed but older
	// than the freshness window.
	ErrStateExpired = errors.New("oauth state parameter has expired")
)
