package models

import "time"

// ServiceType identifies which external service a Secret or Integration
// belongs to. Stored as plain text in the database and exposed via JSON.
type ServiceType string

const (
	ServiceTypeGitHub ServiceType = "github"
	ServiceTypeGmail  ServiceType = "gmail"
	ServiceTypeSlack  ServiceType = "slack"
	ServiceTypeCustom ServiceType = "custom"
)

// Well-known keys inside a decrypted secret bundle.
//
// A bundle is a flat map of string key-value pairs. BundleKindKey partitions
// bundles into user-entered application credentials and broker-issued OAuth
// tokens; the two kinds have different lifecycles (app credentials survive
// integration deletion, token bundles do not).
const (
	BundleKindKey = "kind"

	BundleKindAppCredential = "app_credential"
	BundleKindOAuthToken    = "oauth_token"

	BundleClientIDKey     = "client_id"
	BundleClientSecretKey = "client_secret"
	BundleRedirectURIKey  = "redirect_uri"
	BundleAccessTokenKey  = "access_token"
	BundleRefreshTokenKey = "refresh_token"
	BundleTokenExpiryKey  = "token_expiry" // RFC 3339, empty for non-expiring tokens
)

// SecretBundle is the decrypted payload of a Secret: a flat map of
// string key-value pairs. Only ever held in memory.
type SecretBundle map[string]string

// Kind returns the bundle discriminator, defaulting to an application
// credential for bundles written before the discriminator existed.
func (b SecretBundle) Kind() string {
	if kind, ok := b[BundleKindKey]; ok && kind != "" {
		return kind
	}
	return BundleKindAppCredential
}

// HasClientCredentials reports whether the bundle carries a usable
// OAuth application credential pair.
func (b SecretBundle) HasClientCredentials() bool {
	return b[BundleClientIDKey] != "" && b[BundleClientSecretKey] != ""
}

// Secret is an encrypted bundle of key-value pairs owned by a single user.
// EncryptedValue is an opaque vault blob; plaintext never reaches the
// persistence layer.
type Secret struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"-"`
	Name           string      `json:"name"`
	ServiceType    ServiceType `json:"service_type"`
	EncryptedValue string      `json:"-"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Secret model.
func (s Secret) TableName() string {
	return "secrets"
}

// SecretCreateRequest is the inbound shape for creating a secret.
// Value arrives as plaintext key-value pairs and is encrypted before storage.
type SecretCreateRequest struct {
	Name        string       `json:"name"`
	ServiceType ServiceType  `json:"service_type"`
	Value       SecretBundle `json:"value"`
}

// SecretUpdateRequest is the inbound shape for updating a secret.
// Nil fields are left untouched.
type SecretUpdateRequest struct {
	Name  *string      `json:"name,omitempty"`
	Value SecretBundle `json:"value,omitempty"`
}

// SecretResponse is the outbound shape of a secret. The encrypted blob is
// never included; Value is only populated by the decryptable listing.
type SecretResponse struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	ServiceType ServiceType  `json:"service_type"`
	Value       SecretBundle `json:"value,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ToResponse converts a Secret into its masked API representation.
func (s Secret) ToResponse() SecretResponse {
	return SecretResponse{
		ID:          s.ID,
		Name:        s.Name,
		ServiceType: s.ServiceType,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
