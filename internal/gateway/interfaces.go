package gateway

import (
	"context"

	"github.com/devfriend/devfriend/models"
)

// Gateway reads data out of the connected providers on the user's behalf.
// It never touches tokens or storage: the caller supplies a valid access
// token and reacts to [ErrTokenRejected] by refreshing it.
type Gateway interface {
	// FetchSummary returns the lightweight counters shown on the dashboard:
	// unread emails, repository count, channel count, plus the account label.
	FetchSummary(ctx context.Context, provider models.Provider, accessToken string) (models.ProviderSummary, error)

	// FetchList returns recent items for the provider's resource: email
	// message headers, repositories, channel messages.
	FetchList(ctx context.Context, provider models.Provider, accessToken string, opts models.ListOptions) ([]models.ProviderItem, error)
}

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock
