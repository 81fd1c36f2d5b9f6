package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is a named ability users offer or want. NameKey makes names unique case-insensitively.
type Skill struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	NameKey   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	s.NameKey = SkillKey(s.Name)
	return nil
}

// SkillKey normalizes a skill name for lookups.
func SkillKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
