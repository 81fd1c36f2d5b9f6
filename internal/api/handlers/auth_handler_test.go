package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mogith007/skillswap/internal/services"
)

func TestRegisterCreatesAccount(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc)
	u := member("ada")

	svc.On("Register", mock.Anything, mock.MatchedBy(func(in services.RegisterInput) bool {
		return in.Name == "Ada" && in.Email == "ada@example.com" && in.Password == "secret1" && in.Location != nil && *in.Location == "London"
	})).Return(&services.AuthResult{User: u, Token: "jwt"}, nil).Once()

	rr, resp := call(t, nil, http.MethodPost, "/auth/register", "/auth/register",
		`{"name":"Ada","email":"ada@example.com","password":"secret1","location":"London"}`, h.Register)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.True(t, resp.Success)
	require.Equal(t, "User registered successfully", resp.Message)
	require.Equal(t, "jwt", dataMap(t, resp)["token"])
	svc.AssertExpectations(t)
}

func TestRegisterValidatesBeforeCallingService(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc)

	rr, resp := call(t, nil, http.MethodPost, "/auth/register", "/auth/register",
		`{"name":"","email":"not-an-email","password":"123","profilePhoto":"nope"}`, h.Register)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.False(t, resp.Success)
	require.Equal(t, "Validation failed", resp.Message)
	require.Len(t, resp.Errors, 4)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterRejectsMalformedJSON(t *testing.T) {
	svc := new(mockAuthService)
	rr, resp := call(t, nil, http.MethodPost, "/auth/register", "/auth/register", `{"name":`, NewAuthHandler(svc).Register)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Invalid JSON body", resp.Message)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, services.ErrEmailTaken)

	rr, resp := call(t, nil, http.MethodPost, "/auth/register", "/auth/register",
		`{"name":"Ada","email":"ada@example.com","password":"secret1"}`, NewAuthHandler(svc).Register)
	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, services.ErrEmailTaken.Message, resp.Message)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "ada@example.com", "wrong").Return(nil, services.ErrInvalidCredentials)

	rr, resp := call(t, nil, http.MethodPost, "/auth/login", "/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`, NewAuthHandler(svc).Login)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.False(t, resp.Success)
}

func TestMeAndLogoutUseRequestIdentity(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc)
	u := member("ada")

	svc.On("Me", mock.Anything, u.ID).Return(u, nil).Once()
	rr, resp := call(t, u, http.MethodGet, "/auth/me", "/auth/me", "", h.Me)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ada", dataMap(t, resp)["user"].(map[string]any)["name"])

	svc.On("Logout", mock.Anything, "test-token").Return(nil).Once()
	rr, _ = call(t, u, http.MethodPost, "/auth/logout", "/auth/logout", "", h.Logout)
	require.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestForgotPasswordAlwaysSucceeds(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("ForgotPassword", mock.Anything, "nobody@example.com").Return(nil)

	rr, resp := call(t, nil, http.MethodPost, "/auth/forgot-password", "/auth/forgot-password",
		`{"email":"nobody@example.com"}`, NewAuthHandler(svc).ForgotPassword)
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, resp.Success)
	require.Nil(t, resp.Data)
}

func TestResetPassword(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc)

	rr, _ := call(t, nil, http.MethodPost, "/auth/reset-password", "/auth/reset-password",
		`{"token":"t","newPassword":"123"}`, h.ResetPassword)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	svc.On("ResetPassword", mock.Anything, "t", "brand-new").Return(nil, services.ErrInvalidResetToken).Once()
	rr, _ = call(t, nil, http.MethodPost, "/auth/reset-password", "/auth/reset-password",
		`{"token":"t","newPassword":"brand-new"}`, h.ResetPassword)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}
