package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
)

// SwapView is a swap request with its participants and, for a member's
// own listing, whether it was sent or received.
type SwapView struct {
	models.SwapRequest
	FromUser models.UserSummary `json:"fromUser"`
	ToUser   models.UserSummary `json:"toUser"`
	Type     string             `json:"type,omitempty"`
}

func newSwapView(r models.SwapRequest, viewer uuid.UUID) SwapView {
	v := SwapView{
		SwapRequest: r,
		FromUser:    r.FromUser.Summary(),
		ToUser:      r.ToUser.Summary(),
	}
	if viewer != uuid.Nil {
		v.Type = r.DirectionFor(viewer)
	}
	return v
}

func newAdminSwapView(r models.SwapRequest) SwapView {
	return SwapView{
		SwapRequest: r,
		FromUser:    r.FromUser.SummaryWithEmail(),
		ToUser:      r.ToUser.SummaryWithEmail(),
	}
}

// RatingView is a rating with whichever participants were loaded.
type RatingView struct {
	models.Rating
	FromUser *models.UserSummary `json:"fromUser,omitempty"`
	ToUser   *models.UserSummary `json:"toUser,omitempty"`
}

func newRatingView(r models.Rating) RatingView {
	v := RatingView{Rating: r}
	if r.FromUser != nil {
		s := r.FromUser.Summary()
		v.FromUser = &s
	}
	if r.ToUser != nil {
		s := r.ToUser.Summary()
		v.ToUser = &s
	}
	return v
}

// ProfileView is a member profile with rating aggregates computed on read.
type ProfileView struct {
	*models.User
	// Email shadows the embedded one so public profiles can omit it.
	Email           string                     `json:"email,omitempty"`
	AvgRating       float64                    `json:"avgRating"`
	RatingsReceived []RatingView               `json:"ratingsReceived"`
	Count           *repository.ActivityCounts `json:"_count,omitempty"`
}

// UserCard is one row of a member search.
type UserCard struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Location      *string               `json:"location"`
	ProfilePhoto  *string               `json:"profilePhoto"`
	SkillsOffered []models.Skill        `json:"skillsOffered"`
	SkillsWanted  []models.Skill        `json:"skillsWanted"`
	Availability  []models.Availability `json:"availability"`
	AvgRating     float64               `json:"avgRating"`
	RatingCount   int64                 `json:"ratingCount"`
}

// AdminUserView is one row of the admin member listing.
type AdminUserView struct {
	ID          uuid.UUID                 `json:"id"`
	Name        string                    `json:"name"`
	Email       string                    `json:"email"`
	Location    *string                   `json:"location"`
	ProfileType models.ProfileType        `json:"profileType"`
	CreatedAt   time.Time                 `json:"createdAt"`
	Count       repository.ActivityCounts `json:"_count"`
}

// ChatView is a chat from one participant's side.
type ChatView struct {
	ID            uuid.UUID          `json:"id"`
	Participant   models.UserSummary `json:"participant"`
	LastMessageAt time.Time          `json:"lastMessageAt"`
	CreatedAt     time.Time          `json:"createdAt"`
}

func newChatView(c models.Chat, viewer uuid.UUID) ChatView {
	return ChatView{
		ID:            c.ID,
		Participant:   c.Other(viewer).Summary(),
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
	}
}

// nonNil keeps empty lists as [] in JSON.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
