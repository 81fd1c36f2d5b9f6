package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/services"
	"github.com/mogith007/skillswap/pkg/pagination"
)

func TestStartChat(t *testing.T) {
	svc := new(mockChatService)
	h := NewChatHandler(svc)
	me, other := member("alice"), member("bob")

	svc.On("Start", mock.Anything, me.ID, other.ID).Return(nil, services.ErrChatRequiresSwap).Once()
	rr, _ := call(t, me, http.MethodPost, "/chat", "/chat", `{"userId":"`+other.ID.String()+`"}`, h.Start)
	require.Equal(t, http.StatusForbidden, rr.Code)

	view := &services.ChatView{ID: uuid.New(), Participant: other.Summary()}
	svc.On("Start", mock.Anything, me.ID, other.ID).Return(view, nil).Once()
	rr, resp := call(t, me, http.MethodPost, "/chat", "/chat", `{"userId":"`+other.ID.String()+`"}`, h.Start)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "bob", dataMap(t, resp)["participant"].(map[string]any)["name"])
	svc.AssertExpectations(t)
}

func TestChatMessages(t *testing.T) {
	svc := new(mockChatService)
	h := NewChatHandler(svc)
	me := member("alice")
	chatID := uuid.New()

	rr, resp := call(t, me, http.MethodPost, "/chat/{id}/messages", "/chat/"+chatID.String()+"/messages", `{"text":""}`, h.Send)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, []string{"text: is required"}, resp.Errors)

	msg := &models.ChatMessage{ID: uuid.New(), ChatID: chatID, SenderID: me.ID, Text: "hi"}
	svc.On("Send", mock.Anything, me.ID, chatID, "hi").Return(msg, nil).Once()
	rr, _ = call(t, me, http.MethodPost, "/chat/{id}/messages", "/chat/"+chatID.String()+"/messages", `{"text":"hi"}`, h.Send)
	require.Equal(t, http.StatusCreated, rr.Code)

	svc.On("Messages", mock.Anything, me.ID, chatID, pagination.New(1, 10)).Return(nil, services.ErrChatForbidden).Once()
	rr, _ = call(t, me, http.MethodGet, "/chat/{id}/messages", "/chat/"+chatID.String()+"/messages", "", h.Messages)
	require.Equal(t, http.StatusForbidden, rr.Code)

	page := pagination.NewResult([]services.ChatView{}, 0, pagination.New(1, 10))
	svc.On("List", mock.Anything, me.ID, pagination.New(1, 10)).Return(page, nil).Once()
	rr, _ = call(t, me, http.MethodGet, "/chat", "/chat", "", h.List)
	require.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}
