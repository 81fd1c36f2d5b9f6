package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/pkg/logger"
	"go.uber.org/zap"
)

// PasswordReset is what a member needs to finish a password reset.
type PasswordReset struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Token  string
}

// ResetNotifier delivers password-reset tokens out of band.
type ResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, r PasswordReset) error
}

// LogResetNotifier records that a reset was requested. The token is not logged.
type LogResetNotifier struct{}

func (LogResetNotifier) NotifyPasswordReset(_ context.Context, r PasswordReset) error {
	logger.L().Info("password reset requested", zap.String("user_id", r.UserID.String()))
	return nil
}
