package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/devfriend/devfriend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Router-level tests: requests travel through h.Init() with the full
// middleware chain, so auth enforcement and path wiring are exercised
// together.

func TestRouter_ProtectedRouteRequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no ParseToken expectation: the middleware must reject before parsing
	h, _ := newMockedHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/secrets", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_AuthorizedRequestReachesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)
	router := h.Init()

	mocks.auth.EXPECT().ParseToken(gomock.Any(), "valid.jwt").Return(models.Token{UserID: 42}, nil)
	mocks.secrets.EXPECT().List(gomock.Any(), int64(42)).Return([]models.Secret{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/secrets", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_CallbackIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newMockedHandler(t, ctrl)
	router := h.Init()

	// no Authorization header, provider reported an error: still lands on
	// the frontend redirect, never a 401
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?error=access_denied", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusFound, rr.Code)
	location, err := url.Parse(rr.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "access_denied", location.Query().Get("oauth_error"))
}

func TestRouter_RegisterIsPublic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)
	router := h.Init()

	mocks.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: 7, Email: "dev@example.com"}, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
		Return(models.Token{SignedString: "signed.jwt"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"dev@example.com","password":"hunter22pass"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestRouter_IntegrationItemRouteIsWired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)
	router := h.Init()

	mocks.auth.EXPECT().ParseToken(gomock.Any(), "valid.jwt").Return(models.Token{UserID: 42}, nil)
	mocks.integrations.EXPECT().Get(gomock.Any(), int64(42), int64(9)).
		Return(models.Integration{ID: 9, ServiceType: models.ServiceTypeGitHub, Status: models.StatusConnected}, nil)
	mocks.integrations.EXPECT().FetchItems(gomock.Any(), int64(42), int64(9), gomock.Any()).
		Return([]models.ProviderItem{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/github/integrations/9/repos", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newMockedHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
