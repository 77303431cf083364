package http

import (
	"net/http"
	"net/url"

	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/utils"
	"github.com/devfriend/devfriend/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) oauthAuthorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	provider := models.Provider(chi.URLParam(r, "provider"))
	if !provider.Valid() {
		http.Error(w, "unknown provider", http.StatusNotFound)
		return
	}

	authURL, err := h.services.IntegrationService.BeginConnect(ctx, userID, provider)
	if err != nil {
		log.Err(err).Str("func", "*Handler.oauthAuthorize").Str("provider", string(provider)).Msg("error building authorize URL")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]string{"auth_url": authURL}, http.StatusOK)
}

// oauthCallback lands the browser after provider consent. Whatever happens,
// the response is a redirect back to the frontend; the outcome travels in
// query parameters, never as an HTTP error page.
func (h *Handler) oauthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	provider := models.Provider(chi.URLParam(r, "provider"))
	query := r.URL.Query()

	if providerError := query.Get("error"); providerError != "" {
		log.Warn().Str("provider", string(provider)).Str("error", providerError).Msg("provider reported authorization error")
		h.redirectToFrontend(w, r, url.Values{"oauth_error": {providerError}})
		return
	}

	state := query.Get("state")
	code := query.Get("code")
	if state == "" || code == "" {
		h.redirectToFrontend(w, r, url.Values{"oauth_error": {"invalid_state"}})
		return
	}

	userID, stateProvider, err := h.services.IntegrationService.DecodeState(state)
	if err != nil {
		log.Warn().Err(err).Str("provider", string(provider)).Msg("oauth state rejected")
		h.redirectToFrontend(w, r, url.Values{"oauth_error": {oauthErrorReason(err)}})
		return
	}
	if stateProvider != provider {
		log.Warn().
			Str("url_provider", string(provider)).
			Str("state_provider", string(stateProvider)).
			Msg("oauth state issued for a different provider")
		h.redirectToFrontend(w, r, url.Values{"oauth_error": {"invalid_state"}})
		return
	}

	_, warn, err := h.services.IntegrationService.CompleteConnect(ctx, userID, provider, code)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("provider", string(provider)).Msg("oauth connect failed")
		h.redirectToFrontend(w, r, url.Values{"oauth_error": {oauthErrorReason(err)}})
		return
	}

	params := url.Values{"oauth_success": {"true"}}
	if warn != nil {
		log.Warn().Err(warn).Int64("user_id", userID).Str("provider", string(provider)).Msg("oauth connect finished with warning")
		params.Set("warning", "integration_failed")
	}
	h.redirectToFrontend(w, r, params)
}

func (h *Handler) oauthRedirectURIs(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.CredentialResolver.RedirectURIs(), http.StatusOK)
}

// redirectToFrontend sends the browser to the configured frontend URL with
// params merged into its query string.
func (h *Handler) redirectToFrontend(w http.ResponseWriter, r *http.Request, params url.Values) {
	target, err := url.Parse(h.frontendURL)
	if err != nil || target.Scheme == "" {
		// misconfigured FRONTEND_URL; nothing sane to redirect to
		logger.FromRequest(r).Error().Str("frontend_url", h.frontendURL).Msg("invalid frontend URL configured")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	query := target.Query()
	for key, values := range params {
		for _, value := range values {
			query.Set(key, value)
		}
	}
	target.RawQuery = query.Encode()

	http.Redirect(w, r, target.String(), http.StatusFound)
}
