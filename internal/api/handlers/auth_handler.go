package handlers

import (
	"net/http"

	"github.com/mogith007/skillswap/internal/api/middleware"
	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/services"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type userPayload struct {
	User any `json:"user"`
}

// Register godoc
// @Summary Create a member account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body types.RegisterRequest true "New account"
// @Success 201 {object} types.APIResponse
// @Failure 400 {object} types.APIResponse
// @Failure 409 {object} types.APIResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.Register(r.Context(), services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Location:     req.Location,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, res, "User registered successfully")
}

// Login godoc
// @Summary Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body types.LoginRequest true "Credentials"
// @Success 200 {object} types.APIResponse
// @Failure 401 {object} types.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "Login successful")
}

// Me godoc
// @Summary Current member
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} types.APIResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Me(r.Context(), middleware.CurrentUserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, userPayload{User: u}, "")
}

// Logout godoc
// @Summary Revoke the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} types.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), middleware.TokenFrom(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, nil, "Logged out successfully")
}

// ForgotPassword godoc
// @Summary Request a password reset email
// @Tags auth
// @Accept json
// @Produce json
// @Param body body types.ForgotPasswordRequest true "Account email"
// @Success 200 {object} types.APIResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req types.ForgotPasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, nil, "If an account exists for that email, a reset link has been sent")
}

// ResetPassword godoc
// @Summary Set a new password with a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body types.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} types.APIResponse
// @Failure 401 {object} types.APIResponse
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req types.ResetPasswordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	u, err := h.svc.ResetPassword(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, userPayload{User: u}, "Password reset successfully")
}
