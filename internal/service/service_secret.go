package service

import (
	"context"
	"fmt"

	"github.com/devfriend/devfriend/internal/crypto"
	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/models"
)

// secretService is the concrete implementation of SecretService. Bundles
// are encrypted before they reach the repository and decrypted only on the
// explicit decryptable listing; everything else moves opaque blobs around.
type secretService struct {
	secretRepository      store.SecretRepository
	integrationRepository store.IntegrationRepository
	vault                 crypto.Vault
	logger                *logger.Logger
}

// NewSecretService constructs a SecretService backed by the given
// repositories and vault.
func NewSecretService(
	secretRepository store.SecretRepository,
	integrationRepository store.IntegrationRepository,
	vault crypto.Vault,
	logger *logger.Logger,
) SecretService {
	return &secretService{
		secretRepository:      secretRepository,
		integrationRepository: integrationRepository,
		vault:                 vault,
		logger:                logger,
	}
}

func (s *secretService) Create(ctx context.Context, userID int64, req models.SecretCreateRequest) (models.Secret, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" || len(req.Value) == 0 {
		return models.Secret{}, ErrInvalidDataProvided
	}

	encrypted, err := s.vault.EncryptBundle(req.Value)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("bundle encryption failed")
		return models.Secret{}, fmt.Errorf("bundle encryption failed: %w", err)
	}

	secret := models.Secret{
		UserID:         userID,
		Name:           req.Name,
		ServiceType:    req.ServiceType,
		EncryptedValue: encrypted,
	}

	created, err := s.secretRepository.Create(ctx, secret)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("secret creation ended with error")
		return models.Secret{}, fmt.Errorf("secret creation ended with error: %w", err)
	}

	return created, nil
}

func (s *secretService) Get(ctx context.Context, userID, secretID int64) (models.Secret, error) {
	return s.secretRepository.GetByID(ctx, userID, secretID)
}

func (s *secretService) List(ctx context.Context, userID int64) ([]models.Secret, error) {
	return s.secretRepository.ListByUser(ctx, userID)
}

// ListDecryptable returns the user's secrets with plaintext values. A secret
// whose blob no longer decrypts (key rotation, corruption) is skipped rather
// than failing the whole listing; the skip is logged for the operator.
func (s *secretService) ListDecryptable(ctx context.Context, userID int64) ([]models.SecretResponse, error) {
	log := logger.FromContext(ctx)

	secrets, err := s.secretRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.SecretResponse, 0, len(secrets))
	for _, secret := range secrets {
		bundle, err := s.vault.DecryptBundle(secret.EncryptedValue)
		if err != nil {
			log.Warn().
				Int64("user_id", userID).
				Int64("secret_id", secret.ID).
				Msg("skipping secret that no longer decrypts")
			continue
		}
		response := secret.ToResponse()
		response.Value = bundle
		responses = append(responses, response)
	}

	return responses, nil
}

func (s *secretService) Update(ctx context.Context, userID, secretID int64, req models.SecretUpdateRequest) (models.Secret, error) {
	log := logger.FromContext(ctx)

	if req.Name == nil && req.Value == nil {
		return models.Secret{}, ErrInvalidDataProvided
	}

	var encryptedValue *string
	if req.Value != nil {
		encrypted, err := s.vault.EncryptBundle(req.Value)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Int64("secret_id", secretID).Msg("bundle encryption failed")
			return models.Secret{}, fmt.Errorf("bundle encryption failed: %w", err)
		}
		encryptedValue = &encrypted
	}

	return s.secretRepository.Update(ctx, userID, secretID, req.Name, encryptedValue)
}

// Delete removes the secret, first flipping every integration that
// referenced it into the error status with a cleared secret_id. The detach
// runs first so a crash between the two steps never leaves an integration
// pointing at a missing secret.
func (s *secretService) Delete(ctx context.Context, userID, secretID int64) error {
	log := logger.FromContext(ctx)

	if err := s.integrationRepository.DetachSecret(ctx, userID, secretID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("secret_id", secretID).Msg("detaching secret from integrations failed")
		return fmt.Errorf("detaching secret from integrations failed: %w", err)
	}

	return s.secretRepository.Delete(ctx, userID, secretID)
}
