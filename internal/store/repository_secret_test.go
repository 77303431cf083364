package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devfriend/devfriend/models"
	"github.com/jackc/pgerrcode"
)

func newTestSecretRepo(t *testing.T) (*secretRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	tdb, mock, db := newTestDB(t)
	repo := &secretRepository{
		DB:     tdb,
		logger: tdb.logger,
	}
	return repo, mock, db
}

func secretRows(secrets ...models.Secret) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "service_type", "encrypted_value", "created_at", "updated_at"})
	for _, s := range secrets {
		rows.AddRow(s.ID, s.UserID, s.Name, s.ServiceType, s.EncryptedValue, s.CreatedAt, s.UpdatedAt)
	}
	return rows
}

func TestSecretCreate_Success(t *testing.T) {
	repo, mock, db := newTestSecretRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	secret := models.Secret{
		UserID:         1,
		Name:           "gmail oauth app",
		ServiceType:    models.ServiceTypeGmail,
		EncryptedValue: "blob",
	}
	stored := secret
	stored.ID = 42
	stored.CreatedAt = now
	stored.UpdatedAt = now

	mock.ExpectQuery("INSERT INTO secrets").
		WithArgs(secret.UserID, secret.Name, secret.ServiceType, secret.EncryptedValue).
		WillReturnRows(secretRows(stored))

	created, err := repo.Create(ctx, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("expected ID=42, got %d", created.ID)
	}
	if created.Name != secret.Name {
		t.Errorf("expected name %q, got %q", secret.Name, created.Name)
	}
}

func TestSecretCreate_NameTaken(t *testing.T) {
	repo, mock, db := newTestSecretRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO secrets").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(ctx, models.Secret{UserID: 1, Name: "dup"})
	if !errors.Is(err, ErrSecretNameTaken) {
		t.Fatalf("expected ErrSecretNameTaken, got %v", err)
	}
}

func TestSecretGetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestSecretRepo(t)
	defer db.Close()

	ctx := context.Background()

	// squirrel sorts Eq keys, so "id" binds before "user_id"
	mock.ExpectQuery("SELECT (.+) FROM secrets").
		WithArgs(int64(404), int64(1)).
		WillReturnRows(secretRows())

	_, err := repo.GetByID(ctx, 1, 404)
	if !errors.Is(err, ErrSecretNotFound) {
		t.Fatalf("expected ErrSecretNotFound, got %v", err)
	}
}

func TestSecretListByService_OrderedOldestFirst(t *testing.T) {
	repo, mock, db := newTestSecretRepo(t)
	defer db.Close()

	ctx := context.Background()
	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	first := models.Secret{ID: 1, UserID: 5, Name: "old", ServiceType: models.ServiceTypeGmail, EncryptedValue: "a", CreatedAt: older, UpdatedAt: older}
	second := models.Secret{ID: 2, UserID: 5, Name: "new", ServiceType: models.ServiceTypeGmail, EncryptedValue: "b", CreatedAt: newer, UpdatedAt: newer}

	mock.ExpectQuery("SELECT (.+) FROM secrets").
		WithArgs(int64(5), models.ServiceTypeGmail, models.ServiceType("email")).
		WillReturnRows(secretRows(first, second))

	secrets, err := repo.ListByService(ctx, 5, []models.ServiceType{models.ServiceTypeGmail, "email"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(secrets) != 2 {
		t.Fatalf("expected 2 secrets, got %d", len(secrets))
	}
	if secrets[0].ID != 1 || secrets[1].ID != 2 {
		t.Errorf("expected creation order preserved, got IDs %d, %d", secrets[0].ID, secrets[1].ID)
	}
}

func TestSecretListByUser_Empty(t *testing.T) {
	repo, mock, db := newTestSecretRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM secrets").
		WithArgs(int64(9)).
		WillReturnRows(secretRows())

	secrets, err := repo.ListByUser(ctx, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(secrets) != 0 {
		t.Errorf("expected empty result, got %d secrets", len(secrets))
	}
}

func TestSecretUpdate_NotFound(t *testing.T) {
	repo, mock, db := newTestSecretRepo(t)
	defer db.Close()

	ctx := context.Background()
	name := "renamed"

	mock.ExpectQuery("UPDATE secrets").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(ctx, 1, 404, &name, nil)
	if !errors.Is(err, ErrSecretNotFound) {
		t.Fatalf("expected ErrSecretNotFound, got %v", err)
	}
}

func TestSecretDelete_Success(t *testing.T) {
	repo, mock, db := newTestSecretRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM secrets").
		WithArgs(int64(42), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(ctx, 1, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSecretDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestSecretRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM secrets").
		WithArgs(int64(404), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, 1, 404)
	if !errors.Is(err, ErrSecretNotFound) {
		t.Fatalf("expected ErrSecretNotFound, got %v", err)
	}
}
