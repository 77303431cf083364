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

// secretRepository is the PostgreSQL-backed implementation of
// [SecretRepository]. It executes all secret CRUD operations directly
// against the "secrets" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, secret_id, service_type).
type secretRepository struct {
	*DB
	logger *logger.Logger
}

// NewSecretRepository constructs a [SecretRepository] backed by the provided
// database connection and logger.
func NewSecretRepository(db *DB, logger *logger.Logger) SecretRepository {
	logger.Debug().Msg("creating secret repository")
	return &secretRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new secret and returns the fully populated
// [models.Secret] with server-assigned fields (ID, timestamps).
//
// A per-user unique constraint on the name maps to [ErrSecretNameTaken].
func (s *secretRepository) Create(ctx context.Context, secret models.Secret) (models.Secret, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, createSecret, secret.UserID, secret.Name, secret.ServiceType, secret.EncryptedValue)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "secretRepository.Create").
			Int64("user_id", secret.UserID).
			Str("service_type", string(secret.ServiceType)).
			Msg("failed to insert secret")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Secret{}, ErrSecretNameTaken
		default:
			return models.Secret{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := scanSecret(row, &secret); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Secret{}, ErrSecretNameTaken
		}
		log.Err(err).
			Str("func", "secretRepository.Create").
			Int64("user_id", secret.UserID).
			Msg("failed to scan inserted secret")
		return models.Secret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return secret, nil
}

// GetByID retrieves one secret scoped by owner.
// Returns [ErrSecretNotFound] when no matching row exists.
func (s *secretRepository) GetByID(ctx context.Context, userID, secretID int64) (models.Secret, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSecretQuery(userID, secretID)
	if err != nil {
		log.Err(err).
			Str("func", "secretRepository.GetByID").
			Int64("user_id", userID).
			Int64("secret_id", secretID).
			Msg("failed to create query")
		return models.Secret{}, err
	}

	var secret models.Secret
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err := scanSecret(row, &secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Secret{}, ErrSecretNotFound
		}
		log.Err(err).
			Str("func", "secretRepository.GetByID").
			Int64("user_id", userID).
			Int64("secret_id", secretID).
			Msg("failed to scan secret row")
		return models.Secret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return secret, nil
}

// ListByUser retrieves every secret owned by the given user,
// ordered by creation time. Returns an empty slice when none exist.
func (s *secretRepository) ListByUser(ctx context.Context, userID int64) ([]models.Secret, error) {
	return s.list(ctx, userID, nil)
}

// ListByService retrieves the user's secrets filtered to the given service
// types, ordered by creation time ascending. The stable order is what makes
// credential resolution deterministic when several candidates exist.
func (s *secretRepository) ListByService(ctx context.Context, userID int64, serviceTypes []models.ServiceType) ([]models.Secret, error) {
	return s.list(ctx, userID, serviceTypes)
}

func (s *secretRepository) list(ctx context.Context, userID int64, serviceTypes []models.ServiceType) ([]models.Secret, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSecretsQuery(userID, serviceTypes)
	if err != nil {
		log.Err(err).
			Str("func", "secretRepository.list").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "secretRepository.list").
			Int64("user_id", userID).
			Int("service types count", len(serviceTypes)).
			Bool("retryable", s.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute query for listing secrets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Secret, 0, 10)

	for rows.Next() {
		var secret models.Secret
		if scanErr := scanSecret(rows, &secret); scanErr != nil {
			log.Err(scanErr).
				Str("func", "secretRepository.list").
				Int64("user_id", userID).
				Msg("failed to scan secret row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, secret)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "secretRepository.list").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Update applies a partial update (name and/or encrypted value) to one
// secret scoped by owner and returns the canonical post-update row.
// Returns [ErrSecretNotFound] when no matching row exists.
func (s *secretRepository) Update(ctx context.Context, userID, secretID int64, name *string, encryptedValue *string) (models.Secret, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSecretQuery(userID, secretID, name, encryptedValue)
	if err != nil {
		log.Err(err).
			Str("func", "secretRepository.Update").
			Int64("user_id", userID).
			Int64("secret_id", secretID).
			Msg("failed to create query")
		return models.Secret{}, err
	}

	var secret models.Secret
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err := scanSecret(row, &secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Secret{}, ErrSecretNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Secret{}, ErrSecretNameTaken
		}
		log.Err(err).
			Str("func", "secretRepository.Update").
			Int64("user_id", userID).
			Int64("secret_id", secretID).
			Msg("failed to scan updated secret")
		return models.Secret{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return secret, nil
}

// Delete removes one secret scoped by owner.
// Returns [ErrSecretNotFound] when no row was deleted.
func (s *secretRepository) Delete(ctx context.Context, userID, secretID int64) error {
	log := logger.FromContext(ctx)

	res, err := s.DB.ExecContext(ctx, deleteSecret, secretID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "secretRepository.Delete").
			Int64("user_id", userID).
			Int64("secret_id", secretID).
			Msg("failed to delete secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSecretNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSecret(row rowScanner, secret *models.Secret) error {
	return row.Scan(
		&secret.ID,
		&secret.UserID,
		&secret.Name,
		&secret.ServiceType,
		&secret.EncryptedValue,
		&secret.CreatedAt,
		&secret.UpdatedAt,
	)
}
