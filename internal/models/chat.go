package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chat is the single conversation between two users.
type Chat struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserAID       uuid.UUID `gorm:"column:user_a_id;type:uuid;index;not null" json:"userAId"`
	UserBID       uuid.UUID `gorm:"column:user_b_id;type:uuid;index;not null" json:"userBId"`
	PairKey       string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"-"`
	LastMessageAt time.Time `gorm:"index" json:"lastMessageAt"`
	CreatedAt     time.Time `json:"createdAt"`

	UserA *User `gorm:"foreignKey:UserAID" json:"-"`
	UserB *User `gorm:"foreignKey:UserBID" json:"-"`
}

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	c.PairKey = PairKey(c.UserAID, c.UserBID)
	if c.LastMessageAt.IsZero() {
		c.LastMessageAt = time.Now().UTC()
	}
	return nil
}

// Involves reports whether userID participates in the chat.
func (c *Chat) Involves(userID uuid.UUID) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// Other returns the participant that is not userID.
func (c *Chat) Other(userID uuid.UUID) *User {
	if c.UserAID == userID {
		return c.UserB
	}
	return c.UserA
}

// ChatMessage is a single text message within a Chat.
type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChatID    uuid.UUID `gorm:"type:uuid;index;not null" json:"chatId"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null" json:"senderId"`
	Text      string    `gorm:"type:varchar(1000);not null" json:"text"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
