package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SwapStatus is the lifecycle state of a SwapRequest.
type SwapStatus string

const (
	SwapPending  SwapStatus = "PENDING"
	SwapAccepted SwapStatus = "ACCEPTED"
	SwapRejected SwapStatus = "REJECTED"
	SwapDeleted  SwapStatus = "DELETED"
)

// SwapStatuses lists every status in display order.
var SwapStatuses = []SwapStatus{SwapPending, SwapAccepted, SwapRejected, SwapDeleted}

// Terminal reports whether no further transition is allowed from s.
func (s SwapStatus) Terminal() bool { return s != SwapPending }

// Valid reports whether s is a known status.
func (s SwapStatus) Valid() bool {
	for _, v := range SwapStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// SwapRequest proposes trading SkillOffered for SkillWanted between two users.
// At most one PENDING request may exist per unordered pair (PairKey).
type SwapRequest struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FromUserID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"fromUserId"`
	ToUserID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"toUserId"`
	SkillOffered string     `gorm:"type:varchar(100);not null" json:"skillOffered"`
	SkillWanted  string     `gorm:"type:varchar(100);not null" json:"skillWanted"`
	Message      *string    `gorm:"type:varchar(500)" json:"message"`
	Status       SwapStatus `gorm:"type:varchar(16);not null;default:PENDING;index" json:"status"`
	PairKey      string     `gorm:"type:varchar(80);not null;index:idx_swap_pending_pair,unique,where:status = 'PENDING'" json:"-"`
	CreatedAt    time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	FromUser *User `gorm:"foreignKey:FromUserID" json:"-"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"-"`
}

func (r *SwapRequest) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	if r.Status == "" {
		r.Status = SwapPending
	}
	r.PairKey = PairKey(r.FromUserID, r.ToUserID)
	return nil
}

// Involves reports whether userID is the sender or the recipient.
func (r *SwapRequest) Involves(userID uuid.UUID) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// DirectionFor returns "sent" or "received" relative to userID.
func (r *SwapRequest) DirectionFor(userID uuid.UUID) string {
	if r.FromUserID == userID {
		return "sent"
	}
	return "received"
}
