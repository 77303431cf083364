package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/utils"
	"github.com/devfriend/devfriend/models"
	"github.com/go-chi/chi/v5"
)

// requestUserID pulls the authenticated user id out of the request context.
// The auth middleware guarantees it for every route in the protected group,
// so a miss is a wiring bug and reported as 401.
func requestUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// pathID parses the named chi URL parameter as an int64 identifier.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) listSecrets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	secrets, err := h.services.SecretService.List(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSecrets").Msg("error listing secrets")
		http.Error(w, "error listing secrets", statusFromError(err))
		return
	}

	responses := make([]models.SecretResponse, 0, len(secrets))
	for _, secret := range secrets {
		responses = append(responses, secret.ToResponse())
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

func (h *Handler) listDecryptableSecrets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	responses, err := h.services.SecretService.ListDecryptable(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDecryptableSecrets").Msg("error listing decryptable secrets")
		http.Error(w, "error listing decryptable secrets", statusFromError(err))
		return
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

func (h *Handler) createSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req models.SecretCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createSecret").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.createSecret").Msg("invalid secret payload")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	secret, err := h.services.SecretService.Create(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createSecret").Msg("error creating secret")
		http.Error(w, "error creating secret", statusFromError(err))
		return
	}

	utils.WriteJSON(w, secret.ToResponse(), http.StatusCreated)
}

func (h *Handler) getSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	secretID, ok := pathID(w, r, "secretID")
	if !ok {
		return
	}

	secret, err := h.services.SecretService.Get(ctx, userID, secretID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSecret").Int64("secret_id", secretID).Msg("error getting secret")
		http.Error(w, "error getting secret", statusFromError(err))
		return
	}

	utils.WriteJSON(w, secret.ToResponse(), http.StatusOK)
}

func (h *Handler) updateSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	secretID, ok := pathID(w, r, "secretID")
	if !ok {
		return
	}

	var req models.SecretUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateSecret").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.updateSecret").Msg("invalid secret payload")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	secret, err := h.services.SecretService.Update(ctx, userID, secretID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateSecret").Int64("secret_id", secretID).Msg("error updating secret")
		http.Error(w, "error updating secret", statusFromError(err))
		return
	}

	utils.WriteJSON(w, secret.ToResponse(), http.StatusOK)
}

func (h *Handler) deleteSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	secretID, ok := pathID(w, r, "secretID")
	if !ok {
		return
	}

	if err := h.services.SecretService.Delete(ctx, userID, secretID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteSecret").Int64("secret_id", secretID).Msg("error deleting secret")
		http.Error(w, "error deleting secret", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
