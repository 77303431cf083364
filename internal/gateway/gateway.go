package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/utils"
	"github.com/devfriend/devfriend/models"
	"github.com/go-resty/resty/v2"
)

const defaultListLimit = 10

// providerCallTimeout bounds every outbound call to a provider data API.
// A timeout surfaces as ErrUpstreamUnavailable, never as a hung handler.
const providerCallTimeout = 15 * time.Second

// baseURLs per provider; tests point these at httptest servers.
type baseURLs struct {
	Gmail  string
	GitHub string
	Slack  string
}

func defaultBaseURLs() baseURLs {
	return baseURLs{
		Gmail:  "https://gmail.googleapis.com",
		GitHub: "https://api.github.com",
		Slack:  "https://slack.com/api",
	}
}

type gateway struct {
	client *utils.HTTPClient
	urls   baseURLs
	logger *logger.Logger
	now    func() time.Time
}

// NewGateway constructs a [Gateway] talking to the real provider data APIs.
func NewGateway(log *logger.Logger) Gateway {
	log.Debug().Msg("creating provider data gateway")
	return &gateway{
		client: utils.NewHTTPClientWithTimeout(providerCallTimeout),
		urls:   defaultBaseURLs(),
		logger: log,
		now:    time.Now,
	}
}

func (g *gateway) FetchSummary(ctx context.Context, provider models.Provider, accessToken string) (models.ProviderSummary, error) {
	switch provider {
	case models.ProviderGoogle:
		return g.gmailSummary(ctx, accessToken)
	case models.ProviderGitHub:
		return g.githubSummary(ctx, accessToken)
	case models.ProviderSlack:
		return g.slackSummary(ctx, accessToken)
	}
	return models.ProviderSummary{}, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
}

func (g *gateway) FetchList(ctx context.Context, provider models.Provider, accessToken string, opts models.ListOptions) ([]models.ProviderItem, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultListLimit
	}

	switch provider {
	case models.ProviderGoogle:
		return g.gmailList(ctx, accessToken, opts)
	case models.ProviderGitHub:
		return g.githubList(ctx, accessToken, opts)
	case models.ProviderSlack:
		return g.slackList(ctx, accessToken, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
}

// getJSON performs an authenticated GET and decodes the body into out.
// 401 maps to [ErrTokenRejected]; transport errors, 5xx and unparseable
// bodies map to [ErrUpstreamUnavailable]; other non-2xx statuses come back
// as plain errors with the status attached.
func (g *gateway) getJSON(ctx context.Context, accessToken, url string, query map[string]string, out any) error {
	log := logger.FromContext(ctx)

	req := g.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Accept", "application/json")
	if len(query) > 0 {
		req = req.SetQueryParams(query)
	}

	resp, err := req.Get(url)
	if err != nil {
		log.Err(err).
			Str("func", "gateway.getJSON").
			Str("url", url).
			Msg("provider request failed")
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	return decodeResponse(resp, out)
}

func decodeResponse(resp *resty.Response, out any) error {
	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: http 401", ErrTokenRejected)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d", ErrUpstreamUnavailable, resp.StatusCode())
	case resp.StatusCode() >= http.StatusMultipleChoices:
		return fmt.Errorf("provider request failed: http %d", resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: unparseable response", ErrUpstreamUnavailable)
	}
	return nil
}
