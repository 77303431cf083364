package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// IntegrationStatus is the connection state of an Integration.
//
// Lifecycle: connecting -> connected <-> token_expired -> connected,
// with needs_reauth as the terminal self-heal state (user action required)
// and error for integrations whose backing secret disappeared.
type IntegrationStatus string

const (
	StatusConnecting   IntegrationStatus = "connecting"
	StatusConnected    IntegrationStatus = "connected"
	StatusTokenExpired IntegrationStatus = "token_expired"
	StatusNeedsReauth  IntegrationStatus = "needs_reauth"
	StatusError        IntegrationStatus = "error"
)

// IntegrationConfig is the provider-specific display state of an
// integration (identity, counters, last sync). Persisted as JSONB.
type IntegrationConfig map[string]any

// Well-known IntegrationConfig keys.
const (
	ConfigEmailAddressKey   = "email_address"
	ConfigGitHubUsernameKey = "github_username"
	ConfigWorkspaceNameKey  = "workspace_name"
	ConfigUnreadCountKey    = "unread_count"
	ConfigRepoCountKey      = "repo_count"
	ConfigChannelCountKey   = "channel_count"
	ConfigLastSyncKey       = "last_sync"
	ConfigStatusKey         = "status"
)

// Value implements driver.Valuer: marshals the config map to JSONB.
func (c IntegrationConfig) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner: unmarshals JSONB into the config map.
func (c *IntegrationConfig) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = IntegrationConfig{}
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported integration config source type %T", src)
	}
}

// Integration binds a user to an external service through an optional
// backing Secret. SecretID is a weak reference: deleting the secret leaves
// the integration in place with SecretID nil and status "error".
type Integration struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"-"`
	ServiceType ServiceType       `json:"service_type"`
	SecretID    *int64            `json:"secret_id,omitempty"`
	Status      IntegrationStatus `json:"status"`
	Config      IntegrationConfig `json:"config"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Integration model.
func (i Integration) TableName() string {
	return "integrations"
}

// IntegrationCreateRequest is the inbound shape for creating an integration
// manually (outside the OAuth callback path).
type IntegrationCreateRequest struct {
	ServiceType ServiceType       `json:"service_type"`
	SecretID    *int64            `json:"secret_id,omitempty"`
	Config      IntegrationConfig `json:"config,omitempty"`
}

// IntegrationUpdateRequest is the inbound shape for updating an integration.
// Nil fields are left untouched.
type IntegrationUpdateRequest struct {
	SecretID *int64            `json:"secret_id,omitempty"`
	Config   IntegrationConfig `json:"config,omitempty"`
}
