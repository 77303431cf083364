package models

import "time"

// ProviderSummary is the cached dashboard summary for one integration,
// fetched during sync and stored into IntegrationConfig.
type ProviderSummary struct {
	// Identity is the account label at the provider (email address,
	// login, workspace name).
	Identity string `json:"identity"`

	// UnreadCount is provider-specific: unread emails for Gmail,
	// unread channels for Slack. Zero for GitHub.
	UnreadCount int `json:"unread_count"`

	// TotalCount is provider-specific: total messages for Gmail,
	// repositories for GitHub, channels for Slack.
	TotalCount int `json:"total_count"`

	// FetchedAt is when the summary was produced.
	FetchedAt time.Time `json:"fetched_at"`
}

// ProviderItem is one element of a provider listing (an email, a repository,
// a channel message). Provider clients map wire responses onto a small
// stable set of keys (id, title, snippet, ts, url) plus provider extras;
// the map shape keeps the REST layer provider-agnostic.
type ProviderItem map[string]any

// ListOptions bounds a provider listing request.
type ListOptions struct {
	// Limit caps the number of items; providers clamp to their own maxima.
	Limit int

	// Query is an optional provider-side filter (Gmail search syntax,
	// Slack channel id). Empty means the provider default.
	Query string

	// Cursor resumes a previous listing (provider-opaque).
	Cursor string
}
