package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/models"
	"github.com/jackc/pgerrcode"
)

// integrationRepository is the PostgreSQL-backed implementation of
// [IntegrationRepository]. It executes all integration CRUD operations
// directly against the "integrations" table using the embedded [*DB]
// connection.
type integrationRepository struct {
	*DB
	logger *logger.Logger
}

// NewIntegrationRepository constructs an [IntegrationRepository] backed by
// the provided database connection and logger.
func NewIntegrationRepository(db *DB, logger *logger.Logger) IntegrationRepository {
	logger.Debug().Msg("creating integration repository")
	return &integrationRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new integration and returns the fully populated
// [models.Integration] with server-assigned fields (ID, timestamps).
//
// The partial unique index on (user_id, service_type) maps to
// [ErrIntegrationExists] when the user already has a live integration for
// the service.
func (i *integrationRepository) Create(ctx context.Context, integration models.Integration) (models.Integration, error) {
	log := logger.FromContext(ctx)

	if integration.Config == nil {
		integration.Config = models.IntegrationConfig{}
	}
	if integration.Status == "" {
		integration.Status = models.StatusConnecting
	}

	row := i.DB.QueryRowContext(ctx, createIntegration,
		integration.UserID, integration.ServiceType, integration.SecretID, integration.Status, integration.Config)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "integrationRepository.Create").
			Int64("user_id", integration.UserID).
			Str("service_type", string(integration.ServiceType)).
			Msg("failed to insert integration")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Integration{}, ErrIntegrationExists
		default:
			return models.Integration{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := scanIntegration(row, &integration); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Integration{}, ErrIntegrationExists
		}
		log.Err(err).
			Str("func", "integrationRepository.Create").
			Int64("user_id", integration.UserID).
			Msg("failed to scan inserted integration")
		return models.Integration{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return integration, nil
}

// GetByID retrieves one integration scoped by owner.
// Returns [ErrIntegrationNotFound] when no matching row exists.
func (i *integrationRepository) GetByID(ctx context.Context, userID, integrationID int64) (models.Integration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIntegrationQuery(userID, integrationID)
	if err != nil {
		log.Err(err).
			Str("func", "integrationRepository.GetByID").
			Int64("user_id", userID).
			Int64("integration_id", integrationID).
			Msg("failed to create query")
		return models.Integration{}, err
	}

	var integration models.Integration
	row := i.DB.QueryRowContext(ctx, query, args...)
	if err := scanIntegration(row, &integration); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Integration{}, ErrIntegrationNotFound
		}
		log.Err(err).
			Str("func", "integrationRepository.GetByID").
			Int64("user_id", userID).
			Int64("integration_id", integrationID).
			Msg("failed to scan integration row")
		return models.Integration{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return integration, nil
}

// ListByUser retrieves the user's integrations, optionally filtered to the
// given service types, ordered by creation time. Returns an empty slice
// when none exist.
func (i *integrationRepository) ListByUser(ctx context.Context, userID int64, serviceTypes []models.ServiceType) ([]models.Integration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIntegrationsQuery(userID, serviceTypes)
	if err != nil {
		log.Err(err).
			Str("func", "integrationRepository.ListByUser").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	return i.queryMany(ctx, query, args)
}

// ListByStatus retrieves integrations across all users in the given status.
// Used by the background sync worker to find connected integrations whose
// cached summaries are due for a refresh.
func (i *integrationRepository) ListByStatus(ctx context.Context, status models.IntegrationStatus) ([]models.Integration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIntegrationsByStatusQuery(status)
	if err != nil {
		log.Err(err).
			Str("func", "integrationRepository.ListByStatus").
			Str("status", string(status)).
			Msg("failed to create query")
		return nil, err
	}

	return i.queryMany(ctx, query, args)
}

func (i *integrationRepository) queryMany(ctx context.Context, query string, args []any) ([]models.Integration, error) {
	log := logger.FromContext(ctx)

	rows, err := i.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "integrationRepository.queryMany").
			Bool("retryable", i.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute query for listing integrations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Integration, 0, 10)

	for rows.Next() {
		var integration models.Integration
		if scanErr := scanIntegration(rows, &integration); scanErr != nil {
			log.Err(scanErr).
				Str("func", "integrationRepository.queryMany").
				Msg("failed to scan integration row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, integration)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "integrationRepository.queryMany").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Update applies a partial update to one integration scoped by owner and
// returns the canonical post-update row.
// Returns [ErrIntegrationNotFound] when no matching row exists.
func (i *integrationRepository) Update(ctx context.Context, update IntegrationUpdate) (models.Integration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateIntegrationQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "integrationRepository.Update").
			Int64("user_id", update.UserID).
			Int64("integration_id", update.ID).
			Msg("failed to create query")
		return models.Integration{}, err
	}

	var integration models.Integration
	row := i.DB.QueryRowContext(ctx, query, args...)
	if err := scanIntegration(row, &integration); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Integration{}, ErrIntegrationNotFound
		}
		log.Err(err).
			Str("func", "integrationRepository.Update").
			Int64("user_id", update.UserID).
			Int64("integration_id", update.ID).
			Msg("failed to scan updated integration")
		return models.Integration{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return integration, nil
}

// Delete removes one integration scoped by owner.
// Returns [ErrIntegrationNotFound] when no row was deleted.
func (i *integrationRepository) Delete(ctx context.Context, userID, integrationID int64) error {
	log := logger.FromContext(ctx)

	res, err := i.DB.ExecContext(ctx, deleteIntegration, integrationID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "integrationRepository.Delete").
			Int64("user_id", userID).
			Int64("integration_id", integrationID).
			Msg("failed to delete integration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrIntegrationNotFound
	}

	return nil
}

// DetachSecret clears secret_id on every integration of the user that
// references the given secret and flips those rows to the error status.
// Zero affected rows is not an error: most secrets back no integration.
func (i *integrationRepository) DetachSecret(ctx context.Context, userID, secretID int64) error {
	log := logger.FromContext(ctx)

	_, err := i.DB.ExecContext(ctx, detachSecretFromIntegrations, secretID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "integrationRepository.DetachSecret").
			Int64("user_id", userID).
			Int64("secret_id", secretID).
			Msg("failed to detach secret from integrations")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanIntegration(row rowScanner, integration *models.Integration) error {
	return row.Scan(
		&integration.ID,
		&integration.UserID,
		&integration.ServiceType,
		&integration.SecretID,
		&integration.Status,
		&integration.Config,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
}
