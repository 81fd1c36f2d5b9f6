package services

import appErr "github.com/mogith007/skillswap/pkg/errors"

// Domain failures. Handlers map the code onto an HTTP status.
var (
	ErrInvalidCredentials = appErr.New(appErr.CodeUnauthorized, "Invalid email or password")
	ErrEmailTaken         = appErr.New(appErr.CodeConflict, "User with this email already exists")
	ErrUserNotFound       = appErr.New(appErr.CodeNotFound, "User not found")
	ErrProfilePrivate     = appErr.New(appErr.CodeForbidden, "User profile is private")
	ErrInvalidResetToken  = appErr.New(appErr.CodeUnauthorized, "Invalid or expired reset token")
	ErrTokenRevoked       = appErr.New(appErr.CodeUnauthorized, "Token has been revoked")

	ErrSelfRequest       = appErr.New(appErr.CodeInvalid, "Cannot send swap request to yourself")
	ErrPrivateProfile    = appErr.New(appErr.CodeForbidden, "Cannot send swap request to private profile")
	ErrDuplicatePending  = appErr.New(appErr.CodeConflict, "A pending swap request already exists between these users")
	ErrSwapNotFound      = appErr.New(appErr.CodeNotFound, "Swap request not found")
	ErrSwapForbidden     = appErr.New(appErr.CodeForbidden, "You are not allowed to access this swap request")
	ErrOnlySenderDeletes = appErr.New(appErr.CodeForbidden, "Only the sender can delete a swap request")
	ErrOnlyRecipient     = appErr.New(appErr.CodeForbidden, "Only the recipient can accept or reject a swap request")
	ErrAlreadyProcessed  = appErr.New(appErr.CodeInvalid, "Swap request has already been processed")
	ErrInvalidTransition = appErr.New(appErr.CodeInvalid, "Status must be one of ACCEPTED, REJECTED, DELETED")

	ErrSelfRating      = appErr.New(appErr.CodeInvalid, "Cannot rate yourself")
	ErrNoCompletedSwap = appErr.New(appErr.CodeInvalid, "You can only rate users after completing a swap")
	ErrDuplicateRating = appErr.New(appErr.CodeConflict, "You have already rated this user")

	ErrSelfChat         = appErr.New(appErr.CodeInvalid, "Cannot start a chat with yourself")
	ErrChatRequiresSwap = appErr.New(appErr.CodeForbidden, "You can only chat with users after completing a swap")
	ErrChatNotFound     = appErr.New(appErr.CodeNotFound, "Chat not found")
	ErrChatForbidden    = appErr.New(appErr.CodeForbidden, "You are not a participant of this chat")
	ErrEmptyMessage     = appErr.Invalid("Validation failed", []string{"text: is required"})
)

// notFoundAs swaps a repository not-found error for a domain one.
func notFoundAs(err, domain error) error {
	if appErr.IsCode(err, appErr.CodeNotFound) {
		return domain
	}
	return err
}
