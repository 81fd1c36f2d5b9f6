package handlers

import (
	"net/http"
	"strconv"

	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/api/validators"
	"github.com/mogith007/skillswap/internal/services"
)

type SkillHandler struct {
	svc services.SkillService
}

func NewSkillHandler(svc services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

// Search godoc
// @Summary Search skills by name
// @Tags skill
// @Produce json
// @Param search query string false "Name substring"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} types.APIResponse
// @Router /skill [get]
func (h *SkillHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := types.SearchSkillsQuery{Search: r.URL.Query().Get("search")}
	if err := validators.Check(q); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.Search(r.Context(), q.Search, pageParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "")
}

// Popular godoc
// @Summary Most offered skills
// @Tags skill
// @Produce json
// @Param limit query int false "How many (default 10, max 50)"
// @Success 200 {object} types.APIResponse
// @Router /skill/popular [get]
func (h *SkillHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	skills, err := h.svc.Popular(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, skills, "")
}
