package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/api/middleware"
	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/services"
)

type ChatHandler struct {
	svc services.ChatService
}

func NewChatHandler(svc services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Start godoc
// @Summary Start or reopen the chat with a swap partner
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body types.StartChatRequest true "Other participant"
// @Success 200 {object} types.APIResponse
// @Failure 403 {object} types.APIResponse
// @Router /chat [post]
func (h *ChatHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req types.StartChatRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.svc.Start(r.Context(), middleware.CurrentUserID(r.Context()), uuid.MustParse(req.UserID))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, view, "")
}

// List godoc
// @Summary The caller's chats
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} types.APIResponse
// @Router /chat [get]
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.List(r.Context(), middleware.CurrentUserID(r.Context()), pageParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "")
}

// Messages godoc
// @Summary Messages in a chat, newest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} types.APIResponse
// @Failure 403 {object} types.APIResponse
// @Router /chat/{id}/messages [get]
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := h.svc.Messages(r.Context(), middleware.CurrentUserID(r.Context()), id, pageParams(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, res, "")
}

// Send godoc
// @Summary Post a message to a chat
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Param body body types.SendMessageRequest true "Message"
// @Success 201 {object} types.APIResponse
// @Failure 403 {object} types.APIResponse
// @Router /chat/{id}/messages [post]
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.SendMessageRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	msg, err := h.svc.Send(r.Context(), middleware.CurrentUserID(r.Context()), id, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, msg, "")
}
