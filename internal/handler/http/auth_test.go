package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devfriend/devfriend/internal/service"
	"github.com/devfriend/devfriend/internal/store"
	"github.com/devfriend/devfriend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func executeJSON(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		Email:    "dev@example.com",
		Password: "hunter22pass",
		Name:     "Dev",
	}).Return(models.User{UserID: 7, Email: "dev@example.com", Name: "Dev"}, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "signed.jwt"}, nil)

	rr := executeJSON(h.register, http.MethodPost, "/auth/register",
		`{"email":"dev@example.com","password":"hunter22pass","name":"Dev"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer signed.jwt", rr.Header().Get("Authorization"))
	assert.Contains(t, rr.Body.String(), "dev@example.com")
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newMockedHandler(t, ctrl)

	rr := executeJSON(h.register, http.MethodPost, "/auth/register", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_WeakPasswordRejectedBeforeService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no Register expectation: validation must stop the request first
	h, _ := newMockedHandler(t, ctrl)

	rr := executeJSON(h.register, http.MethodPost, "/auth/register",
		`{"email":"dev@example.com","password":"short"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	rr := executeJSON(h.register, http.MethodPost, "/auth/register",
		`{"email":"dev@example.com","password":"hunter22pass"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{
		Email:    "dev@example.com",
		Password: "hunter22pass",
	}).Return(models.User{UserID: 7, Email: "dev@example.com"}, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "signed.jwt"}, nil)

	rr := executeJSON(h.login, http.MethodPost, "/auth/login",
		`{"email":"dev@example.com","password":"hunter22pass"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt", rr.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)

	rr := executeJSON(h.login, http.MethodPost, "/auth/login",
		`{"email":"dev@example.com","password":"not-the-password"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mocks := newMockedHandler(t, ctrl)

	mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 7}, nil)
	mocks.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)

	rr := executeJSON(h.login, http.MethodPost, "/auth/login",
		`{"email":"dev@example.com","password":"hunter22pass"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
