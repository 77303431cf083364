package http

import (
	"github.com/devfriend/devfriend/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// integrationResource binds one URL namespace to its OAuth provider. The
// frontend addresses integrations by resource name (email, github, messages)
// rather than by provider name.
type integrationResource struct {
	segment     string
	itemSegment string
	provider    models.Provider
}

var integrationResources = []integrationResource{
	{segment: "email", itemSegment: "emails", provider: models.ProviderGoogle},
	{segment: "github", itemSegment: "repos", provider: models.ProviderGitHub},
	{segment: "messages", itemSegment: "messages", provider: models.ProviderSlack},
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		// the browser arrives here straight from the provider; the user is
		// identified by the signed state parameter, not by a session token
		r.Get("/auth/{provider}/callback", h.oauthCallback)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/{provider}/authorize", h.oauthAuthorize)
		r.Get("/oauth/redirect-uris", h.oauthRedirectURIs)

		r.Route("/secrets", func(r chi.Router) {
			r.Get("/", h.listSecrets)
			r.Post("/", h.createSecret)
			r.Get("/get-decryptable", h.listDecryptableSecrets)
			r.Get("/{secretID}", h.getSecret)
			r.Put("/{secretID}", h.updateSecret)
			r.Delete("/{secretID}", h.deleteSecret)
		})

		for _, resource := range integrationResources {
			resource := resource
			r.Route("/"+resource.segment+"/integrations", func(r chi.Router) {
				r.Get("/", h.listIntegrations(resource))
				r.Post("/", h.createIntegration(resource))
				r.Get("/{integrationID}", h.getIntegration(resource))
				r.Put("/{integrationID}", h.updateIntegration(resource))
				r.Delete("/{integrationID}", h.deleteIntegration(resource))
				r.Post("/{integrationID}/sync", h.syncIntegration(resource))
				r.Get("/{integrationID}/"+resource.itemSegment, h.listIntegrationItems(resource))
			})
		}
	})

	return router
}
