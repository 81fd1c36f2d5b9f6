package types

type RegisterRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	Password     string  `json:"password" validate:"required,min=6,max=72"`
	Location     *string `json:"location" validate:"omitempty,max=100"`
	ProfilePhoto *string `json:"profilePhoto" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name" validate:"omitnil,min=1,max=100"`
	Location     *string `json:"location" validate:"omitnil,max=100"`
	ProfilePhoto *string `json:"profilePhoto" validate:"omitempty,url"`
	ProfileType  *string `json:"profileType" validate:"omitnil,oneof=PUBLIC PRIVATE"`
}

type AvailabilityRequest struct {
	Availability []string `json:"availability" validate:"required,max=14,dive,min=1,max=50"`
}

type SkillsRequest struct {
	SkillsOffered []string `json:"skillsOffered" validate:"required,max=50,dive,min=1,max=100"`
	SkillsWanted  []string `json:"skillsWanted" validate:"required,max=50,dive,min=1,max=100"`
}

type SearchUsersQuery struct {
	Skill    string `query:"skill" validate:"max=100"`
	Location string `query:"location" validate:"max=100"`
}

type SearchSkillsQuery struct {
	Search string `query:"search" validate:"max=100"`
}

type CreateSwapRequest struct {
	ToUserID     string  `json:"toUserId" validate:"required,uuid"`
	SkillOffered string  `json:"skillOffered" validate:"required,max=100"`
	SkillWanted  string  `json:"skillWanted" validate:"required,max=100"`
	Message      *string `json:"message" validate:"omitnil,max=500"`
}

type UpdateSwapStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED DELETED"`
}

type SwapListQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=PENDING ACCEPTED REJECTED DELETED"`
}

type CreateRatingRequest struct {
	ToUserID string  `json:"toUserId" validate:"required,uuid"`
	Score    int     `json:"score" validate:"required,min=1,max=5"`
	Comment  *string `json:"comment" validate:"omitnil,max=1000"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminUsersQuery struct {
	Search string `query:"search" validate:"max=100"`
}

type StartChatRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}
