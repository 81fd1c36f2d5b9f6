package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/api/middleware"
	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/services"
)

type RatingHandler struct {
	svc services.RatingService
}

func NewRatingHandler(svc services.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// Create godoc
// @Summary Rate a member after an accepted swap
// @Tags rating
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body types.CreateRatingRequest true "Rating"
// @Success 201 {object} types.APIResponse
// @Failure 400 {object} types.APIResponse
// @Failure 409 {object} types.APIResponse
// @Router /rating [post]
func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateRatingRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.svc.Create(r.Context(), middleware.CurrentUserID(r.Context()), services.CreateRatingInput{
		ToUserID: uuid.MustParse(req.ToUserID),
		Score:    req.Score,
		Comment:  req.Comment,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, view, "Rating created successfully")
}

// ListForUser godoc
// @Summary Ratings a member received
// @Tags rating
// @Produce json
// @Param userId path string true "User ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} types.APIResponse
// @Router /rating/user/{userId} [get]
func (h *RatingHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.ListForUser(r.Context(), id, pageParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "")
}

// Mine godoc
// @Summary Ratings the caller gave and received
// @Tags rating
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} types.APIResponse
// @Router /rating/my-ratings [get]
func (h *RatingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Mine(r.Context(), middleware.CurrentUserID(r.Context()), pageParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "")
}
