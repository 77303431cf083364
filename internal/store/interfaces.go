package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/devfriend/devfriend/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SecretRepository persists encrypted secret bundles. All reads and writes
// are scoped by owner; a secret is never visible outside its user.
type SecretRepository interface {
	Create(ctx context.Context, secret models.Secret) (models.Secret, error)
	GetByID(ctx context.Context, userID, secretID int64) (models.Secret, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Secret, error)
	// ListByService returns the user's secrets whose service_type is one of
	// serviceTypes, ordered by created_at ascending (stable resolution order).
	ListByService(ctx context.Context, userID int64, serviceTypes []models.ServiceType) ([]models.Secret, error)
	Update(ctx context.Context, userID, secretID int64, name *string, encryptedValue *string) (models.Secret, error)
	Delete(ctx context.Context, userID, secretID int64) error
}

// IntegrationRepository persists integrations and their lifecycle state.
type IntegrationRepository interface {
	Create(ctx context.Context, integration models.Integration) (models.Integration, error)
	GetByID(ctx context.Context, userID, integrationID int64) (models.Integration, error)
	ListByUser(ctx context.Context, userID int64, serviceTypes []models.ServiceType) ([]models.Integration, error)
	// ListByStatus returns integrations across all users in the given status,
	// used by the background sync worker.
	ListByStatus(ctx context.Context, status models.IntegrationStatus) ([]models.Integration, error)
	Update(ctx context.Context, update IntegrationUpdate) (models.Integration, error)
	Delete(ctx context.Context, userID, integrationID int64) error
	// DetachSecret clears secret_id on every integration referencing the
	// given secret and marks those rows with the error status. Called when
	// a secret is deleted out from under its integrations.
	DetachSecret(ctx context.Context, userID, secretID int64) error
}

// IntegrationUpdate is a partial update of one integration row.
// Only non-nil fields are written; UpdatedAt is always refreshed.
type IntegrationUpdate struct {
	ID     int64
	UserID int64

	SecretID      *int64
	ClearSecretID bool
	Status        *models.IntegrationStatus
	Config        models.IntegrationConfig
}
