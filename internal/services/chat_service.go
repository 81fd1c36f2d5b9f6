package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/pkg/logger"
	"github.com/mogith007/skillswap/pkg/pagination"
	"go.uber.org/zap"
)

// ChatService is request/response messaging between members who completed a swap.
type ChatService interface {
	Start(ctx context.Context, userID, otherID uuid.UUID) (*ChatView, error)
	List(ctx context.Context, userID uuid.UUID, p pagination.Params) (*pagination.Result[ChatView], error)
	Messages(ctx context.Context, userID, chatID uuid.UUID, p pagination.Params) (*pagination.Result[models.ChatMessage], error)
	Send(ctx context.Context, userID, chatID uuid.UUID, text string) (*models.ChatMessage, error)
}

type chatService struct {
	users repository.UserRepository
	swaps repository.SwapRepository
	chats repository.ChatRepository
}

func NewChatService(users repository.UserRepository, swaps repository.SwapRepository, chats repository.ChatRepository) ChatService {
	return &chatService{users: users, swaps: swaps, chats: chats}
}

var _ ChatService = (*chatService)(nil)

func (s *chatService) Start(ctx context.Context, userID, otherID uuid.UUID) (*ChatView, error) {
	if userID == otherID {
		return nil, ErrSelfChat
	}
	var other models.User
	if err := s.users.GetByID(ctx, otherID, &other); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	swapped, err := s.swaps.ExistsBetween(ctx, userID, otherID, models.SwapAccepted)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrChatRequiresSwap
	}

	c, err := s.chats.FindOrCreate(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	logger.L().Info("chat opened", zap.String("chat_id", c.ID.String()), zap.String("user_id", userID.String()))

	v := newChatView(*c, userID)
	return &v, nil
}

func (s *chatService) List(ctx context.Context, userID uuid.UUID, p pagination.Params) (*pagination.Result[ChatView], error) {
	rows, total, err := s.chats.ListForUser(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	return pagination.Map(pagination.NewResult(rows, total, p), func(c models.Chat) ChatView {
		return newChatView(c, userID)
	}), nil
}

func (s *chatService) participant(ctx context.Context, userID, chatID uuid.UUID) (*models.Chat, error) {
	var c models.Chat
	if err := s.chats.GetWithParticipants(ctx, chatID, &c); err != nil {
		return nil, notFoundAs(err, ErrChatNotFound)
	}
	if !c.Involves(userID) {
		return nil, ErrChatForbidden
	}
	return &c, nil
}

func (s *chatService) Messages(ctx context.Context, userID, chatID uuid.UUID, p pagination.Params) (*pagination.Result[models.ChatMessage], error) {
	if _, err := s.participant(ctx, userID, chatID); err != nil {
		return nil, err
	}
	rows, total, err := s.chats.ListMessages(ctx, chatID, p)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(rows, total, p), nil
}

func (s *chatService) Send(ctx context.Context, userID, chatID uuid.UUID, text string) (*models.ChatMessage, error) {
	if _, err := s.participant(ctx, userID, chatID); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	msg := &models.ChatMessage{ChatID: chatID, SenderID: userID, Text: text}
	if err := s.chats.AddMessage(ctx, msg); err != nil {
		return nil, notFoundAs(err, ErrChatNotFound)
	}
	logger.L().Info("chat message sent", zap.String("chat_id", chatID.String()), zap.String("user_id", userID.String()))
	return msg, nil
}
