package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListSecrets_MasksEncryptedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.secrets.EXPECT().List(gomock.Any(), int64(1)).Return([]models.Secret{
		{ID: 10, Name: "my google app", ServiceType: models.ServiceTypeGmail, EncryptedValue: "opaque-blob", CreatedAt: time.Now()},
	}, nil)

	req := newAuthedRequest(http.MethodGet, "/secrets", nil, 1)
	rr := httptest.NewRecorder()
	h.listSecrets(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "my google app")
	assert.NotContains(t, rr.Body.String(), "opaque-blob")
}

func TestListDecryptableSecrets_IncludesValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.secrets.EXPECT().ListDecryptable(gomock.Any(), int64(1)).Return([]models.SecretResponse{
		{ID: 10, Name: "my google app", Value: models.SecretBundle{"client_id": "visible-id"}},
	}, nil)

	req := newAuthedRequest(http.MethodGet, "/secrets/get-decryptable", nil, 1)
	rr := httptest.NewRecorder()
	h.listDecryptableSecrets(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "visible-id")
}

func TestCreateSecret_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.secrets.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ interface{}, _ int64, req models.SecretCreateRequest) (models.Secret, error) {
			assert.Equal(t, "my google app", req.Name)
			assert.Equal(t, models.ServiceTypeGmail, req.ServiceType)
			return models.Secret{ID: 10, Name: req.Name, ServiceType: req.ServiceType}, nil
		},
	)

	body := `{"name":"my google app","service_type":"gmail","value":{"kind":"app_credential","client_id":"id","client_secret":"secret"}}`
	req := newAuthedRequest(http.MethodPost, "/secrets", strings.NewReader(body), 1)
	rr := httptest.NewRecorder()
	h.createSecret(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.SecretResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
}

func TestCreateSecret_UnknownServiceTypeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// validation fails before the service is reached
	h, _ := newMockedHandler(t, ctrl)

	body := `{"name":"x","service_type":"yahoo","value":{"k":"v"}}`
	req := newAuthedRequest(http.MethodPost, "/secrets", strings.NewReader(body), 1)
	rr := httptest.NewRecorder()
	h.createSecret(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateSecret_NameConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.secrets.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).Return(models.Secret{}, store.ErrSecretNameTaken)

	body := `{"name":"dup","service_type":"github","value":{"client_id":"id","client_secret":"s"}}`
	req := newAuthedRequest(http.MethodPost, "/secrets", strings.NewReader(body), 1)
	rr := httptest.NewRecorder()
	h.createSecret(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestGetSecret_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.secrets.EXPECT().Get(gomock.Any(), int64(1), int64(404)).Return(models.Secret{}, store.ErrSecretNotFound)

	req := newAuthedRequest(http.MethodGet, "/secrets/404", nil, 1)
	req = withChiParams(req, map[string]string{"secretID": "404"})
	rr := httptest.NewRecorder()
	h.getSecret(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetSecret_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newMockedHandler(t, ctrl)

	req := newAuthedRequest(http.MethodGet, "/secrets/abc", nil, 1)
	req = withChiParams(req, map[string]string{"secretID": "abc"})
	rr := httptest.NewRecorder()
	h.getSecret(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateSecret_NoFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newMockedHandler(t, ctrl)

	req := newAuthedRequest(http.MethodPut, "/secrets/10", strings.NewReader(`{}`), 1)
	req = withChiParams(req, map[string]string{"secretID": "10"})
	rr := httptest.NewRecorder()
	h.updateSecret(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteSecret_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.secrets.EXPECT().Delete(gomock.Any(), int64(1), int64(10)).Return(nil)

	req := newAuthedRequest(http.MethodDelete, "/secrets/10", nil, 1)
	req = withChiParams(req, map[string]string{"secretID": "10"})
	rr := httptest.NewRecorder()
	h.deleteSecret(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
