package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/pagination"
	"gorm.io/gorm"
)

type ChatRepository interface {
	GetWithParticipants(ctx context.Context, id uuid.UUID, dest *models.Chat) error
	// FindOrCreate returns the chat between a and b, creating it on first use.
	FindOrCreate(ctx context.Context, a, b uuid.UUID) (*models.Chat, error)
	ListForUser(ctx context.Context, userID uuid.UUID, p pagination.Params) ([]models.Chat, int64, error)
	// AddMessage stores msg and bumps the chat's LastMessageAt atomically.
	AddMessage(ctx context.Context, msg *models.ChatMessage) error
	ListMessages(ctx context.Context, chatID uuid.UUID, p pagination.Params) ([]models.ChatMessage, int64, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func chatParticipants(db *gorm.DB) *gorm.DB {
	return db.Preload("UserA", summaryColumns).Preload("UserB", summaryColumns)
}

func (r *chatRepository) GetWithParticipants(ctx context.Context, id uuid.UUID, dest *models.Chat) error {
	err := r.db.WithContext(ctx).Scopes(chatParticipants).First(dest, "id = ?", id).Error
	return translate(err, "chat not found", "get chat")
}

func (r *chatRepository) findByPair(ctx context.Context, key string) (*models.Chat, error) {
	var c models.Chat
	if err := r.db.WithContext(ctx).Scopes(chatParticipants).Where("pair_key = ?", key).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *chatRepository) FindOrCreate(ctx context.Context, a, b uuid.UUID) (*models.Chat, error) {
	key := models.PairKey(a, b)
	c, err := r.findByPair(ctx, key)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get chat failed")
	}
	if err := r.db.WithContext(ctx).Create(&models.Chat{UserAID: a, UserBID: b}).Error; err != nil && !IsUniqueViolation(err) {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "create chat failed")
	}
	c, err = r.findByPair(ctx, key)
	if err != nil {
		return nil, translate(err, "chat not found", "reload chat")
	}
	return c, nil
}

func (r *chatRepository) ListForUser(ctx context.Context, userID uuid.UUID, p pagination.Params) ([]models.Chat, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB {
		return q.Where("(user_a_id = ? OR user_b_id = ?)", userID, userID)
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Chat{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count chats failed")
	}
	var out []models.Chat
	err := r.db.WithContext(ctx).
		Scopes(scope, chatParticipants, paginate(p)).
		Order("last_message_at DESC").Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "list chats failed")
	}
	return out, total, nil
}

func (r *chatRepository) AddMessage(ctx context.Context, msg *models.ChatMessage) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Chat{}).Where("id = ?", msg.ChatID).Update("last_message_at", msg.CreatedAt)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err, "chat not found", "add chat message")
}

func (r *chatRepository) ListMessages(ctx context.Context, chatID uuid.UUID, p pagination.Params) ([]models.ChatMessage, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ChatMessage{}).Where("chat_id = ?", chatID).Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count chat messages failed")
	}
	var out []models.ChatMessage
	err := r.db.WithContext(ctx).Where("chat_id = ?", chatID).
		Scopes(newestFirst, paginate(p)).
		Find(&out).Error
	if err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "list chat messages failed")
	}
	return out, total, nil
}
