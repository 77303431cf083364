package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/service"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/internal/utils"
	"github.com/devfriend/devfriend/models"
)

const maxItemLimit = 50

func (h *Handler) listIntegrations(resource integrationResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}

		integrations, err := h.services.IntegrationService.List(ctx, userID, resource.provider.SecretFamily())
		if err != nil {
			log.Err(err).Str("func", "*Handler.listIntegrations").Msg("error listing integrations")
			http.Error(w, "error listing integrations", statusFromError(err))
			return
		}

		utils.WriteJSON(w, integrations, http.StatusOK)
	}
}

func (h *Handler) createIntegration(resource integrationResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}

		var req models.IntegrationCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Str("func", "*Handler.createIntegration").Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		// the URL namespace decides the service; an explicit body value must
		// agree with it
		if req.ServiceType == "" {
			req.ServiceType = resource.provider.ServiceType()
		} else if p, ok := models.ProviderForService(req.ServiceType); !ok || p != resource.provider {
			http.Error(w, "service_type does not match resource", http.StatusBadRequest)
			return
		}

		if err := h.validator.Validate(ctx, req); err != nil {
			log.Err(err).Str("func", "*Handler.createIntegration").Msg("invalid integration payload")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		integration, err := h.services.IntegrationService.Create(ctx, userID, req)
		if err != nil {
			log.Err(err).Str("func", "*Handler.createIntegration").Msg("error creating integration")
			http.Error(w, "error creating integration", statusFromError(err))
			return
		}

		utils.WriteJSON(w, integration, http.StatusCreated)
	}
}

// resourceIntegration loads the integration and verifies it belongs to the
// resource namespace it was addressed through.
func (h *Handler) resourceIntegration(w http.ResponseWriter, r *http.Request, resource integrationResource) (models.Integration, int64, bool) {
	ctx := r.Context()

	userID, ok := requestUserID(w, r)
	if !ok {
		return models.Integration{}, 0, false
	}
	integrationID, ok := pathID(w, r, "integrationID")
	if !ok {
		return models.Integration{}, 0, false
	}

	integration, err := h.services.IntegrationService.Get(ctx, userID, integrationID)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("integration_id", integrationID).Msg("error getting integration")
		http.Error(w, "error getting integration", statusFromError(err))
		return models.Integration{}, 0, false
	}

	if p, ok := models.ProviderForService(integration.ServiceType); !ok || p != resource.provider {
		http.Error(w, "error getting integration", http.StatusNotFound)
		return models.Integration{}, 0, false
	}

	return integration, userID, true
}

func (h *Handler) getIntegration(resource integrationResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integration, _, ok := h.resourceIntegration(w, r, resource)
		if !ok {
			return
		}
		utils.WriteJSON(w, integration, http.StatusOK)
	}
}

func (h *Handler) updateIntegration(resource integrationResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		integration, userID, ok := h.resourceIntegration(w, r, resource)
		if !ok {
			return
		}

		var req models.IntegrationUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Err(err).Str("func", "*Handler.updateIntegration").Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		updated, err := h.services.IntegrationService.Update(ctx, userID, integration.ID, req)
		if err != nil {
			log.Err(err).Str("func", "*Handler.updateIntegration").Int64("integration_id", integration.ID).Msg("error updating integration")
			http.Error(w, "error updating integration", statusFromError(err))
			return
		}

		utils.WriteJSON(w, updated, http.StatusOK)
	}
}

func (h *Handler) deleteIntegration(resource integrationResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		integration, userID, ok := h.resourceIntegration(w, r, resource)
		if !ok {
			return
		}

		if err := h.services.IntegrationService.Delete(r.Context(), userID, integration.ID); err != nil {
			logger.FromRequest(r).Err(err).Int64("integration_id", integration.ID).Msg("error deleting integration")
			http.Error(w, "error deleting integration", statusFromError(err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) syncIntegration(resource integrationResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		integration, userID, ok := h.resourceIntegration(w, r, resource)
		if !ok {
			return
		}

		synced, err := h.services.IntegrationService.Sync(ctx, userID, integration.ID)
		if err != nil {
			log.Err(err).Int64("integration_id", integration.ID).Msg("integration sync failed")
			h.writeIntegrationError(w, err, resource)
			return
		}

		utils.WriteJSON(w, synced, http.StatusOK)
	}
}

func (h *Handler) listIntegrationItems(resource integrationResource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		integration, userID, ok := h.resourceIntegration(w, r, resource)
		if !ok {
			return
		}

		opts := listOptionsFromQuery(r)

		items, err := h.services.IntegrationService.FetchItems(ctx, userID, integration.ID, opts)
		if err != nil {
			log.Err(err).Int64("integration_id", integration.ID).Msg("error fetching provider items")
			h.writeIntegrationError(w, err, resource)
			return
		}

		utils.WriteJSON(w, map[string]any{
			"items": items,
			"count": len(items),
		}, http.StatusOK)
	}
}

// writeIntegrationError maps an integration failure to its HTTP response.
// ErrReauthRequired gets an actionable body pointing at the reconnect URL.
func (h *Handler) writeIntegrationError(w http.ResponseWriter, err error, resource integrationResource) {
	if errors.Is(err, service.ErrReauthRequired) || errors.Is(err, service.ErrIntegrationNotConnected) {
		utils.WriteJSON(w, map[string]string{
			"error":         "reauth_required",
			"reconnect_url": "/auth/" + string(resource.provider) + "/authorize",
		}, http.StatusConflict)
		return
	}
	if errors.Is(err, store.ErrIntegrationNotFound) {
		http.Error(w, "integration was not found", http.StatusNotFound)
		return
	}
	http.Error(w, "integration operation failed", statusFromError(err))
}

func listOptionsFromQuery(r *http.Request) models.ListOptions {
	query := r.URL.Query()

	opts := models.ListOptions{
		Query:  query.Get("q"),
		Cursor: query.Get("cursor"),
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		if limit > maxItemLimit {
			limit = maxItemLimit
		}
		opts.Limit = limit
	}
	return opts
}
