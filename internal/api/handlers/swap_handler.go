package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/api/middleware"
	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/api/validators"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/services"
)

type SwapHandler struct {
	svc services.SwapService
}

func NewSwapHandler(svc services.SwapService) *SwapHandler {
	return &SwapHandler{svc: svc}
}

// Create godoc
// @Summary Send a swap request
// @Tags swap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body types.CreateSwapRequest true "Swap request"
// @Success 201 {object} types.APIResponse
// @Failure 400 {object} types.APIResponse
// @Failure 403 {object} types.APIResponse
// @Failure 404 {object} types.APIResponse
// @Failure 409 {object} types.APIResponse
// @Router /swap/request [post]
func (h *SwapHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSwapRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.svc.Create(r.Context(), middleware.CurrentUserID(r.Context()), services.CreateSwapInput{
		ToUserID:     uuid.MustParse(req.ToUserID),
		SkillOffered: req.SkillOffered,
		SkillWanted:  req.SkillWanted,
		Message:      req.Message,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, view, "Swap request created successfully")
}

// List godoc
// @Summary Swap requests sent or received by the caller
// @Tags swap
// @Produce json
// @Security BearerAuth
// @Param status query string false "PENDING, ACCEPTED, REJECTED or DELETED"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} types.APIResponse
// @Router /swap/requests [get]
func (h *SwapHandler) List(w http.ResponseWriter, r *http.Request) {
	q := types.SwapListQuery{Status: r.URL.Query().Get("status")}
	if err := validators.Check(q); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.List(r.Context(), middleware.CurrentUserID(r.Context()), models.SwapStatus(q.Status), pageParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "")
}

// Get godoc
// @Summary One swap request the caller takes part in
// @Tags swap
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap request ID"
// @Success 200 {object} types.APIResponse
// @Failure 403 {object} types.APIResponse
// @Failure 404 {object} types.APIResponse
// @Router /swap/request/{id} [get]
func (h *SwapHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.svc.Get(r.Context(), middleware.CurrentUserID(r.Context()), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, view, "")
}

// UpdateStatus godoc
// @Summary Accept, reject or withdraw a pending request
// @Tags swap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap request ID"
// @Param body body types.UpdateSwapStatusRequest true "Target status"
// @Success 200 {object} types.APIResponse
// @Failure 400 {object} types.APIResponse
// @Failure 403 {object} types.APIResponse
// @Failure 404 {object} types.APIResponse
// @Router /swap/request/{id} [put]
func (h *SwapHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.UpdateSwapStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.svc.UpdateStatus(r.Context(), middleware.CurrentUserID(r.Context()), id, models.SwapStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, view, "Swap request updated successfully")
}
