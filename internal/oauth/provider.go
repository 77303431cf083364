package oauth

import (
	"net/url"

	"github.com/devfriend/devfriend/models"
)

// endpoints describes one provider's OAuth surface: where to send the user,
// where to exchange codes, where to ask "who is this token".
type endpoints struct {
	AuthURL     string
	TokenURL    string
	IdentityURL string

	// Scope is the pre-joined scope string requested at authorization time.
	Scope string

	// AuthParams are extra static query parameters appended to the
	// authorization URL (e.g. Google's offline access opt-in).
	AuthParams url.Values
}

func defaultEndpoints() map[models.Provider]endpoints {
	return map[models.Provider]endpoints{
		models.ProviderGoogle: {
			AuthURL:     "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL:    "https://oauth2.googleapis.com/token",
			IdentityURL: "https://www.googleapis.com/oauth2/v2/userinfo",
			Scope: "https://www.googleapis.com/auth/gmail.readonly " +
				"https://www.googleapis.com/auth/userinfo.email",
			// offline + consent is the only combination that reliably
			// returns a refresh token on repeat authorizations
			AuthParams: url.Values{
				"access_type": {"offline"},
				"prompt":      {"consent"},
			},
		},
		models.ProviderGitHub: {
			AuthURL:     "https://github.com/login/oauth/authorize",
			TokenURL:    "https://github.com/login/oauth/access_token",
			IdentityURL: "https://api.github.com/user",
			Scope:       "repo read:user notifications",
		},
		models.ProviderSlack: {
			AuthURL:     "https://slack.com/oauth/v2/authorize",
			TokenURL:    "https://slack.com/api/oauth.v2.access",
			IdentityURL: "https://slack.com/api/auth.test",
			Scope:       "channels:read,channels:history,users:read",
		},
	}
}

// tokenResponse is the union of the three providers' token endpoint bodies.
// Google and GitHub (with Accept: application/json) return flat OAuth JSON;
// Slack wraps everything in its ok/error envelope.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`

	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`

	// Slack envelope fields.
	OK         *bool            `json:"ok,omitempty"`
	AuthedUser *slackAuthedUser `json:"authed_user,omitempty"`
	Team       *slackTeam       `json:"team,omitempty"`
}

type slackAuthedUser struct {
	ID           string `json:"id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type slackTeam struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type googleIdentity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type githubIdentity struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

type slackIdentity struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Team   string `json:"team"`
	User   string `json:"user"`
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
}
