package service

import (
	"context"
	"errors"
	"testing"

	"github.com/devfriend/devfriend/internal/logger"
	"github.com/devfriend/devfriend/internal/mock"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSecretSvc(t *testing.T, ctrl *gomock.Controller) (SecretService, *mock.MockSecretRepository, *mock.MockIntegrationRepository, *mock.MockVault) {
	t.Helper()
	mockSecrets := mock.NewMockSecretRepository(ctrl)
	mockIntegrations := mock.NewMockIntegrationRepository(ctrl)
	mockVault := mock.NewMockVault(ctrl)

	return NewSecretService(mockSecrets, mockIntegrations, mockVault, logger.Nop()), mockSecrets, mockIntegrations, mockVault
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestSecretService_Create_EncryptsBeforeStoring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSecrets, _, mockVault := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	bundle := models.SecretBundle{
		models.BundleKindKey:         models.BundleKindAppCredential,
		models.BundleClientIDKey:     "client-123",
		models.BundleClientSecretKey: "shhh",
	}

	gomock.InOrder(
		mockVault.EXPECT().EncryptBundle(bundle).Return("opaque-blob", nil),
		mockSecrets.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Secret) (models.Secret, error) {
				assert.Equal(t, int64(1), s.UserID)
				assert.Equal(t, "my google app", s.Name)
				assert.Equal(t, "opaque-blob", s.EncryptedValue)
				s.ID = 10
				return s, nil
			},
		),
	)

	created, err := svc.Create(ctx, 1, models.SecretCreateRequest{
		Name:        "my google app",
		ServiceType: models.ServiceTypeGmail,
		Value:       bundle,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestSecretService_Create_EmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestSecretSvc(t, ctrl)

	_, err := svc.Create(context.Background(), 1, models.SecretCreateRequest{Name: "no value"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Create(context.Background(), 1, models.SecretCreateRequest{
		Value: models.SecretBundle{"k": "v"},
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSecretService_Create_EncryptionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockVault := newTestSecretSvc(t, ctrl)

	mockVault.EXPECT().EncryptBundle(gomock.Any()).Return("", errors.New("rand source exhausted"))

	_, err := svc.Create(context.Background(), 1, models.SecretCreateRequest{
		Name:  "broken",
		Value: models.SecretBundle{"k": "v"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encryption failed")
}

// ── ListDecryptable ──────────────────────────────────────────────────────────

func TestSecretService_ListDecryptable_SkipsBrokenSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSecrets, _, mockVault := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	mockSecrets.EXPECT().ListByUser(ctx, int64(1)).Return([]models.Secret{
		{ID: 1, Name: "good", EncryptedValue: "blob-good"},
		{ID: 2, Name: "corrupted", EncryptedValue: "blob-bad"},
		{ID: 3, Name: "also good", EncryptedValue: "blob-good-2"},
	}, nil)
	mockVault.EXPECT().DecryptBundle("blob-good").Return(models.SecretBundle{"k": "v1"}, nil)
	mockVault.EXPECT().DecryptBundle("blob-bad").Return(nil, errors.New("cipher: message authentication failed"))
	mockVault.EXPECT().DecryptBundle("blob-good-2").Return(models.SecretBundle{"k": "v3"}, nil)

	responses, err := svc.ListDecryptable(ctx, 1)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, int64(1), responses[0].ID)
	assert.Equal(t, models.SecretBundle{"k": "v1"}, responses[0].Value)
	assert.Equal(t, int64(3), responses[1].ID)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestSecretService_Update_ReencryptsValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSecrets, _, mockVault := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	newName := "renamed"
	bundle := models.SecretBundle{"k": "v2"}

	mockVault.EXPECT().EncryptBundle(bundle).Return("blob-v2", nil)
	mockSecrets.EXPECT().Update(ctx, int64(1), int64(10), &newName, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ int64, name, encryptedValue *string) (models.Secret, error) {
			require.NotNil(t, encryptedValue)
			assert.Equal(t, "blob-v2", *encryptedValue)
			return models.Secret{ID: 10, Name: *name}, nil
		},
	)

	updated, err := svc.Update(ctx, 1, 10, models.SecretUpdateRequest{Name: &newName, Value: bundle})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
}

func TestSecretService_Update_NameOnlySkipsVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSecrets, _, _ := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	newName := "renamed"
	mockSecrets.EXPECT().Update(ctx, int64(1), int64(10), &newName, nil).Return(models.Secret{ID: 10}, nil)

	_, err := svc.Update(ctx, 1, 10, models.SecretUpdateRequest{Name: &newName})
	require.NoError(t, err)
}

func TestSecretService_Update_NothingToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestSecretSvc(t, ctrl)

	_, err := svc.Update(context.Background(), 1, 10, models.SecretUpdateRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestSecretService_Delete_DetachesIntegrationsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSecrets, mockIntegrations, _ := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockIntegrations.EXPECT().DetachSecret(ctx, int64(1), int64(10)).Return(nil),
		mockSecrets.EXPECT().Delete(ctx, int64(1), int64(10)).Return(nil),
	)

	require.NoError(t, svc.Delete(ctx, 1, 10))
}

func TestSecretService_Delete_DetachFailureStopsDeletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockIntegrations, _ := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	mockIntegrations.EXPECT().DetachSecret(ctx, int64(1), int64(10)).Return(errors.New("deadlock detected"))

	err := svc.Delete(ctx, 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detaching secret")
}

func TestSecretService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSecrets, mockIntegrations, _ := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	mockIntegrations.EXPECT().DetachSecret(ctx, int64(1), int64(404)).Return(nil)
	mockSecrets.EXPECT().Delete(ctx, int64(1), int64(404)).Return(store.ErrSecretNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 1, 404), store.ErrSecretNotFound)
}
