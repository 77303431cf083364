package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/devfriend/devfriend/models"
)

const (
	createUser = `INSERT INTO users (email, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, name, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createSecret = `INSERT INTO secrets (user_id, name, service_type, encrypted_value)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, name, service_type, encrypted_value, created_at, updated_at;`

	deleteSecret = `DELETE FROM secrets
    WHERE id = $1 AND user_id = $2;`

	createIntegration = `INSERT INTO integrations (user_id, service_type, secret_id, status, config)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, service_type, secret_id, status, config, created_at, updated_at;`

	deleteIntegration = `DELETE FROM integrations
    WHERE id = $1 AND user_id = $2;`

	detachSecretFromIntegrations = `UPDATE integrations
    SET secret_id = NULL, status = 'error', updated_at = NOW()
    WHERE secret_id = $1 AND user_id = $2;`
)

// psql is the shared statement builder configured for PostgreSQL
// ($N placeholders). All dynamic queries in this package go through it.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var secretColumns = []string{
	"id", "user_id", "name", "service_type", "encrypted_value", "created_at", "updated_at",
}

var integrationColumns = []string{
	"id", "user_id", "service_type", "secret_id", "status", "config", "created_at", "updated_at",
}

// buildSelectSecretsQuery builds the secret listing for one user. When
// serviceTypes is non-empty the result is filtered to those service types.
// Rows come back ordered by created_at ascending so that credential
// resolution is deterministic (earliest secret wins ties).
func buildSelectSecretsQuery(userID int64, serviceTypes []models.ServiceType) (string, []any, error) {
	builder := psql.
		Select(secretColumns...).
		From("secrets").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC")

	if len(serviceTypes) > 0 {
		builder = builder.Where(sq.Eq{"service_type": serviceTypes})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectSecretQuery builds the single-secret lookup scoped by owner.
func buildSelectSecretQuery(userID, secretID int64) (string, []any, error) {
	query, args, err := psql.
		Select(secretColumns...).
		From("secrets").
		Where(sq.Eq{"id": secretID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateSecretQuery builds a partial secret update. Only non-nil fields
// are written; updated_at is always refreshed. The RETURNING clause hands the
// caller the canonical post-update row.
func buildUpdateSecretQuery(userID, secretID int64, name *string, encryptedValue *string) (string, []any, error) {
	builder := psql.
		Update("secrets").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": secretID, "user_id": userID}).
		Suffix("RETURNING " + joinColumns(secretColumns))

	if name != nil {
		builder = builder.Set("name", *name)
	}
	if encryptedValue != nil {
		builder = builder.Set("encrypted_value", *encryptedValue)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectIntegrationsQuery builds the integration listing for one user,
// optionally filtered by service types.
func buildSelectIntegrationsQuery(userID int64, serviceTypes []models.ServiceType) (string, []any, error) {
	builder := psql.
		Select(integrationColumns...).
		From("integrations").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC")

	if len(serviceTypes) > 0 {
		builder = builder.Where(sq.Eq{"service_type": serviceTypes})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectIntegrationQuery builds the single-integration lookup scoped
// by owner.
func buildSelectIntegrationQuery(userID, integrationID int64) (string, []any, error) {
	query, args, err := psql.
		Select(integrationColumns...).
		From("integrations").
		Where(sq.Eq{"id": integrationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectIntegrationsByStatusQuery builds the cross-user listing used by
// the background sync worker.
func buildSelectIntegrationsByStatusQuery(status models.IntegrationStatus) (string, []any, error) {
	query, args, err := psql.
		Select(integrationColumns...).
		From("integrations").
		Where(sq.Eq{"status": status}).
		OrderBy("updated_at ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateIntegrationQuery builds a partial integration update from
// [IntegrationUpdate]. Only requested fields are written; updated_at is
// always refreshed.
func buildUpdateIntegrationQuery(update IntegrationUpdate) (string, []any, error) {
	builder := psql.
		Update("integrations").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix("RETURNING " + joinColumns(integrationColumns))

	switch {
	case update.ClearSecretID:
		builder = builder.Set("secret_id", nil)
	case update.SecretID != nil:
		builder = builder.Set("secret_id", *update.SecretID)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Config != nil {
		builder = builder.Set("config", update.Config)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func joinColumns(cols []string) string {
	out := ""
	for i, c := range cols {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
