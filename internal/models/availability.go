package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability is one day a user is open to swapping.
type Availability struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Day    string    `gorm:"type:varchar(32);not null" json:"day"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
