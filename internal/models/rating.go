package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinScore = 1
	MaxScore = 5
)

// Rating is one user's score of another after an accepted swap.
type Rating struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FromUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_pair" json:"fromUserId"`
	ToUserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_pair;index" json:"toUserId"`
	Score      int       `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`
	Comment    *string   `gorm:"type:varchar(1000)" json:"comment"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`

	FromUser *User `gorm:"foreignKey:FromUserID" json:"-"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"-"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
