package handlers

import (
	"net/http"

	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/api/validators"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/services"
)

type AdminHandler struct {
	auth  services.AuthService
	admin services.AdminService
}

func NewAdminHandler(auth services.AuthService, admin services.AdminService) *AdminHandler {
	return &AdminHandler{auth: auth, admin: admin}
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param body body types.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} types.APIResponse
// @Failure 401 {object} types.APIResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.AdminLoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	token, err := h.auth.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, types.TokenResponse{Token: token}, "Admin login successful")
}

// Dashboard godoc
// @Summary Platform totals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} types.APIResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.admin.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, d, "")
}

// Users godoc
// @Summary List members
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or email substring"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} types.APIResponse
// @Router /admin/users [get]
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	q := types.AdminUsersQuery{Search: r.URL.Query().Get("search")}
	if err := validators.Check(q); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.admin.Users(r.Context(), q.Search, pageParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "")
}

// SwapRequests godoc
// @Summary List all swap requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, ACCEPTED, REJECTED or DELETED"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} types.APIResponse
// @Router /admin/swap-requests [get]
func (h *AdminHandler) SwapRequests(w http.ResponseWriter, r *http.Request) {
	q := types.SwapListQuery{Status: r.URL.Query().Get("status")}
	if err := validators.Check(q); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.admin.SwapRequests(r.Context(), models.SwapStatus(q.Status), pageParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "")
}
