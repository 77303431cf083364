package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/utils"
	"github.com/devfriend/devfriend/models"
)

// providerCallTimeout bounds every outbound call to a provider endpoint.
// A timeout surfaces as ErrProviderUnavailable, never as a hung handler.
const providerCallTimeout = 15 * time.Second

type broker struct {
	client    *utils.HTTPClient
	states    *StateCodec
	endpoints map[models.Provider]endpoints

	logger *logger.Logger
	now    func() time.Time
}

// NewBroker constructs a [Broker] that talks to the real provider endpoints.
// stateSignKey signs the OAuth state parameter; it is the same key used for
// session tokens so one secret rules all signed material.
func NewBroker(stateSignKey string, log *logger.Logger) Broker {
	log.Debug().Msg("creating oauth broker")
	return &broker{
		client:    utils.NewHTTPClientWithTimeout(providerCallTimeout),
		states:    NewStateCodec(stateSignKey),
		endpoints: defaultEndpoints(),
		logger:    log,
		now:       time.Now,
	}
}

func (b *broker) AuthorizeURL(cfg models.OAuthConfig, userID int64) (string, error) {
	ep, ok := b.endpoints[cfg.Provider]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}

	state, err := b.states.Encode(userID, cfg.Provider)
	if err != nil {
		return "", err
	}

	authURL, err := url.Parse(ep.AuthURL)
	if err != nil {
		return "", fmt.Errorf("error occurred during parsing authorize URL: %w", err)
	}

	query := authURL.Query()
	query.Set("client_id", cfg.ClientID)
	query.Set("redirect_uri", cfg.RedirectURI)
	query.Set("response_type", "code")
	query.Set("scope", ep.Scope)
	query.Set("state", state)
	for key, values := range ep.AuthParams {
		for _, value := range values {
			query.Set(key, value)
		}
	}
	authURL.RawQuery = query.Encode()

	return authURL.String(), nil
}

func (b *broker) DecodeState(state string) (int64, models.Provider, error) {
	return b.states.Decode(state)
}

func (b *broker) ExchangeCode(ctx context.Context, cfg models.OAuthConfig, code string) (models.TokenSet, error) {
	form := map[string]string{
		"grant_type":    "authorization_code",
		"code":          code,
		"redirect_uri":  cfg.RedirectURI,
		"client_id":     cfg.ClientID,
		"client_secret": cfg.ClientSecret,
	}
	return b.requestToken(ctx, cfg, form, false)
}

func (b *broker) Refresh(ctx context.Context, cfg models.OAuthConfig, refreshToken string) (models.TokenSet, error) {
	form := map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
		"client_id":     cfg.ClientID,
		"client_secret": cfg.ClientSecret,
	}
	return b.requestToken(ctx, cfg, form, true)
}

// requestToken posts the form to the provider token endpoint and normalises
// the three providers' response shapes into one [models.TokenSet].
//
// GitHub reports errors in a 200 body and Slack wraps everything in its
// ok/error envelope, so classification runs on the parsed body before the
// HTTP status is consulted.
func (b *broker) requestToken(ctx context.Context, cfg models.OAuthConfig, form map[string]string, refreshing bool) (models.TokenSet, error) {
	log := logger.FromContext(ctx)

	ep, ok := b.endpoints[cfg.Provider]
	if !ok {
		return models.TokenSet{}, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(form).
		Post(ep.TokenURL)
	if err != nil {
		log.Err(err).
			Str("func", "broker.requestToken").
			Str("provider", string(cfg.Provider)).
			Msg("token endpoint request failed")
		return models.TokenSet{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return models.TokenSet{}, fmt.Errorf("%w: http %d", ErrProviderUnavailable, resp.StatusCode())
	}

	var tr tokenResponse
	if err := json.Unmarshal(resp.Body(), &tr); err != nil {
		log.Err(err).
			Str("func", "broker.requestToken").
			Str("provider", string(cfg.Provider)).
			Int("status", resp.StatusCode()).
			Msg("unparseable token endpoint response")
		return models.TokenSet{}, fmt.Errorf("%w: unparseable response", ErrProviderUnavailable)
	}

	if tr.OK != nil && !*tr.OK {
		return models.TokenSet{}, b.classify(tr.Error, refreshing)
	}
	if tr.Error != "" {
		return models.TokenSet{}, b.classify(tr.Error, refreshing)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		switch resp.StatusCode() {
		case http.StatusUnauthorized, http.StatusForbidden:
			return models.TokenSet{}, fmt.Errorf("%w: http %d", ErrConfigMismatch, resp.StatusCode())
		default:
			if refreshing {
				return models.TokenSet{}, fmt.Errorf("%w: http %d", ErrRefreshRevoked, resp.StatusCode())
			}
			return models.TokenSet{}, fmt.Errorf("%w: http %d", ErrInvalidGrant, resp.StatusCode())
		}
	}

	accessToken := tr.AccessToken
	refreshToken := tr.RefreshToken
	expiresIn := tr.ExpiresIn
	if accessToken == "" && tr.AuthedUser != nil {
		// Slack user-token installs carry the token under authed_user
		accessToken = tr.AuthedUser.AccessToken
		refreshToken = tr.AuthedUser.RefreshToken
		expiresIn = tr.AuthedUser.ExpiresIn
	}
	if accessToken == "" {
		return models.TokenSet{}, fmt.Errorf("%w: empty access token in response", ErrProviderUnavailable)
	}

	set := models.TokenSet{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	if expiresIn > 0 {
		set.Expiry = b.now().Add(time.Duration(expiresIn) * time.Second)
	}
	return set, nil
}

// classify maps a provider error code to one of the sentinel errors. The
// grant family flips to [ErrRefreshRevoked] during refresh: the same code
// means "get a new code" on exchange but "reconnect" on refresh.
func (b *broker) classify(code string, refreshing bool) error {
	switch code {
	case "invalid_grant",
		"bad_verification_code",
		"invalid_code",
		"code_already_used",
		"token_revoked",
		"token_expired",
		"invalid_refresh_token":
		if refreshing {
			return fmt.Errorf("%w: %s", ErrRefreshRevoked, code)
		}
		return fmt.Errorf("%w: %s", ErrInvalidGrant, code)
	case "invalid_client",
		"unauthorized_client",
		"incorrect_client_credentials",
		"invalid_client_id",
		"bad_client_secret",
		"invalid_client_secret",
		"redirect_uri_mismatch",
		"bad_redirect_uri",
		"invalid_scope":
		return fmt.Errorf("%w: %s", ErrConfigMismatch, code)
	default:
		return fmt.Errorf("%w: %s", ErrProviderUnavailable, code)
	}
}

func (b *broker) FetchIdentity(ctx context.Context, provider models.Provider, accessToken string) (models.ProviderIdentity, error) {
	ep, ok := b.endpoints[provider]
	if !ok {
		return models.ProviderIdentity{}, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}

	req := b.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Accept", "application/json")

	switch provider {
	case models.ProviderGoogle:
		resp, err := req.Get(ep.IdentityURL)
		if err != nil {
			return models.ProviderIdentity{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return models.ProviderIdentity{}, fmt.Errorf("identity fetch failed: http %d", resp.StatusCode())
		}
		var identity googleIdentity
		if err := json.Unmarshal(resp.Body(), &identity); err != nil {
			return models.ProviderIdentity{}, fmt.Errorf("%w: unparseable identity response", ErrProviderUnavailable)
		}
		return models.ProviderIdentity{
			Label: identity.Email,
			Extra: map[string]string{"name": identity.Name},
		}, nil

	case models.ProviderGitHub:
		resp, err := req.SetHeader("Accept", "application/vnd.github+json").Get(ep.IdentityURL)
		if err != nil {
			return models.ProviderIdentity{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return models.ProviderIdentity{}, fmt.Errorf("identity fetch failed: http %d", resp.StatusCode())
		}
		var identity githubIdentity
		if err := json.Unmarshal(resp.Body(), &identity); err != nil {
			return models.ProviderIdentity{}, fmt.Errorf("%w: unparseable identity response", ErrProviderUnavailable)
		}
		return models.ProviderIdentity{
			Label: identity.Login,
			Extra: map[string]string{"name": identity.Name},
		}, nil

	case models.ProviderSlack:
		resp, err := req.Post(ep.IdentityURL)
		if err != nil {
			return models.ProviderIdentity{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
		}
		var identity slackIdentity
		if err := json.Unmarshal(resp.Body(), &identity); err != nil {
			return models.ProviderIdentity{}, fmt.Errorf("%w: unparseable identity response", ErrProviderUnavailable)
		}
		if !identity.OK {
			return models.ProviderIdentity{}, fmt.Errorf("identity fetch failed: %s", identity.Error)
		}
		return models.ProviderIdentity{
			Label: identity.Team,
			Extra: map[string]string{
				"team_id": identity.TeamID,
				"user_id": identity.UserID,
				"user":    identity.User,
			},
		}, nil
	}

	return models.ProviderIdentity{}, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
}
