package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileType controls discoverability.
type ProfileType string

const (
	ProfilePublic  ProfileType = "PUBLIC"
	ProfilePrivate ProfileType = "PRIVATE"
)

// User represents a marketplace member.
type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string      `gorm:"type:varchar(100);not null" json:"name"`
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"column:password;not null" json:"-" swaggerignore:"true"`
	Location     *string     `json:"location"`
	ProfilePhoto *string     `json:"profilePhoto"`
	ProfileType  ProfileType `gorm:"type:varchar(16);not null;default:PUBLIC;index" json:"profileType"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`

	SkillsOffered []Skill        `gorm:"many2many:user_skills_offered" json:"skillsOffered,omitempty"`
	SkillsWanted  []Skill        `gorm:"many2many:user_skills_wanted" json:"skillsWanted,omitempty"`
	Availability  []Availability `gorm:"constraint:OnDelete:CASCADE" json:"availability,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	if u.ProfileType == "" {
		u.ProfileType = ProfilePublic
	}
	return nil
}

// IsPrivate reports whether the profile is hidden from other members.
func (u *User) IsPrivate() bool { return u.ProfileType == ProfilePrivate }

// UserSummary is the participant view embedded in swaps, ratings and chats.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProfilePhoto *string   `json:"profilePhoto"`
	Email        string    `json:"email,omitempty"`
}

// Summary returns the public participant view of u. Email is left out.
func (u *User) Summary() UserSummary {
	if u == nil {
		return UserSummary{}
	}
	return UserSummary{ID: u.ID, Name: u.Name, ProfilePhoto: u.ProfilePhoto}
}

// SummaryWithEmail is the admin-facing participant view.
func (u *User) SummaryWithEmail() UserSummary {
	s := u.Summary()
	if u != nil {
		s.Email = u.Email
	}
	return s
}
