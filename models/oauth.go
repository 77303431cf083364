package models

import "time"

// Provider is the OAuth provider identifier used in URLs and signed state.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGitHub Provider = "github"
	ProviderSlack  Provider = "slack"
)

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderGoogle, ProviderGitHub, ProviderSlack:
		return true
	}
	return false
}

// ServiceType maps a provider to the service type its integrations and
// token secrets are stored under.
func (p Provider) ServiceType() ServiceType {
	switch p {
	case ProviderGoogle:
		return ServiceTypeGmail
	case ProviderGitHub:
		return ServiceTypeGitHub
	case ProviderSlack:
		return ServiceTypeSlack
	}
	return ServiceTypeCustom
}

// ProviderForService maps a service type back to the OAuth provider that
// serves it. Legacy resource aliases (email, messages) resolve like their
// canonical names.
func ProviderForService(serviceType ServiceType) (Provider, bool) {
	switch serviceType {
	case ServiceTypeGmail, "email":
		return ProviderGoogle, true
	case ServiceTypeGitHub:
		return ProviderGitHub, true
	case ServiceTypeSlack, "messages":
		return ProviderSlack, true
	}
	return "", false
}

// SecretFamily lists the service_type values a user secret may carry to be
// considered an application credential for this provider. Legacy rows use
// the resource name (email, messages) instead of the provider name.
func (p Provider) SecretFamily() []ServiceType {
	switch p {
	case ProviderGoogle:
		return []ServiceType{ServiceTypeGmail, "email"}
	case ProviderGitHub:
		return []ServiceType{ServiceTypeGitHub}
	case ProviderSlack:
		return []ServiceType{ServiceTypeSlack, "messages"}
	}
	return nil
}

// OAuthConfig is a resolved OAuth application credential: either decrypted
// from a user secret or taken from process environment defaults.
type OAuthConfig struct {
	Provider     Provider
	ClientID     string
	ClientSecret string
	RedirectURI  string

	// SourceSecretID is set when the credential came from a user secret,
	// zero when it came from environment defaults.
	SourceSecretID int64
}

// FromSecret reports whether the credential was resolved from a user secret.
func (c OAuthConfig) FromSecret() bool {
	return c.SourceSecretID != 0
}

// TokenSet is the result of a code exchange or token refresh.
// RefreshToken may be empty (GitHub classic tokens); a zero Expiry means
// the access token does not expire.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// Expiring reports whether the access token has a known expiry.
func (t TokenSet) Expiring() bool {
	return !t.Expiry.IsZero()
}

// ProviderIdentity is the lightweight identity fetched right after a code
// exchange, used to label the integration in the UI.
type ProviderIdentity struct {
	// Label is the human-readable identity: email address for Google,
	// login for GitHub, workspace name for Slack.
	Label string

	// Extra carries provider-specific identity fields (team id, user id).
	Extra map[string]string
}
