package gateway

import "errors"

var (
	// ErrTokenRejected means the provider answered 401 (or its envelope
	// equivalent): the access token is expired or revoked. The integration
	// layer reacts by refreshing or demanding reauthorization.
	ErrTokenRejected = errors.New("access token rejected by provider")

	// ErrUpstreamUnavailable covers transport failures, 5xx responses and
	// unparseable bodies from the provider data APIs.
	ErrUpstreamUnavailable = errors.New("provider data api unavailable")

	// ErrUnsupportedProvider means the provider name is not one of the
	// supported set.
	ErrUnsupportedProvider = errors.New("unsupported data provider")
)
