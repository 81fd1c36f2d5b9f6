package handlers

import (
	"net/http"

	"github.com/mogith007/skillswap/internal/api/middleware"
	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/api/validators"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/internal/services"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Profile godoc
// @Summary Own profile with skills, availability and ratings
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} types.APIResponse
// @Router /user/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Profile(r.Context(), middleware.CurrentUserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, p, "")
}

// UpdateProfile godoc
// @Summary Partially update the own profile
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body types.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} types.APIResponse
// @Router /user/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateProfileRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	in := services.UpdateProfileInput{
		Name:         req.Name,
		Location:     req.Location,
		ProfilePhoto: req.ProfilePhoto,
	}
	if req.ProfileType != nil {
		pt := models.ProfileType(*req.ProfileType)
		in.ProfileType = &pt
	}
	u, err := h.svc.UpdateProfile(r.Context(), middleware.CurrentUserID(r.Context()), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, u, "Profile updated successfully")
}

// UpdateAvailability godoc
// @Summary Replace the own availability days
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body types.AvailabilityRequest true "Days"
// @Success 200 {object} types.APIResponse
// @Router /user/availability [put]
func (h *UserHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	var req types.AvailabilityRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	days, err := h.svc.UpdateAvailability(r.Context(), middleware.CurrentUserID(r.Context()), req.Availability)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, days, "Availability updated successfully")
}

// UpdateSkills godoc
// @Summary Replace offered and wanted skills
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body types.SkillsRequest true "Skill names"
// @Success 200 {object} types.APIResponse
// @Router /user/skills [put]
func (h *UserHandler) UpdateSkills(w http.ResponseWriter, r *http.Request) {
	var req types.SkillsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	u, err := h.svc.UpdateSkills(r.Context(), middleware.CurrentUserID(r.Context()), req.SkillsOffered, req.SkillsWanted)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, u, "Skills updated successfully")
}

// Search godoc
// @Summary Search public members by skill and location
// @Tags user
// @Produce json
// @Param skill query string false "Skill name substring"
// @Param location query string false "Location substring"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} types.APIResponse
// @Router /user/search [get]
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := types.SearchUsersQuery{
		Skill:    r.URL.Query().Get("skill"),
		Location: r.URL.Query().Get("location"),
	}
	if err := validators.Check(q); err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.Search(r.Context(), repository.UserFilter{Skill: q.Skill, Location: q.Location}, pageParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "")
}

// Get godoc
// @Summary Public profile of a member
// @Tags user
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} types.APIResponse
// @Failure 403 {object} types.APIResponse
// @Failure 404 {object} types.APIResponse
// @Router /user/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.PublicProfile(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, p, "")
}
