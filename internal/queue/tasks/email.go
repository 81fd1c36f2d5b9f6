package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"github.com/mogith007/skillswap/internal/mailer"
	"github.com/mogith007/skillswap/internal/services"
	"github.com/mogith007/skillswap/pkg/logger"
	"go.uber.org/zap"
)

const TypePasswordReset = "email:password_reset"

// PasswordResetPayload is the task payload for reset emails.
type PasswordResetPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

func NewPasswordResetTask(p PasswordResetPayload) (*asynq.Task, error) {
	pb, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal reset payload: %w", err)
	}
	return asynq.NewTask(TypePasswordReset, pb, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)), nil
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dispatcher queues reset emails for the worker.
type Dispatcher struct {
	client enqueuer
}

func NewDispatcher(client *asynq.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

var _ services.ResetNotifier = (*Dispatcher)(nil)

func (d *Dispatcher) NotifyPasswordReset(ctx context.Context, r services.PasswordReset) error {
	task, err := NewPasswordResetTask(PasswordResetPayload{
		UserID: r.UserID.String(),
		Email:  r.Email,
		Name:   r.Name,
		Token:  r.Token,
	})
	if err != nil {
		return err
	}
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypePasswordReset, err)
	}
	logger.L().Info("queued password reset email", zap.String("task_id", info.ID), zap.String("user_id", r.UserID.String()))
	return nil
}

var resetHTML = template.Must(template.New("reset").Parse(
	`<p>Hi {{.Name}},</p>` +
		`<p>Someone asked to reset the password for your SkillSwap account.</p>` +
		`<p><a href="{{.Link}}">Choose a new password</a></p>` +
		`<p>If that wasn't you, you can ignore this email.</p>`))

// EmailTaskHandler renders and sends queued email.
type EmailTaskHandler struct {
	mailer       mailer.Mailer
	resetURLBase string
}

func NewEmailTaskHandler(m mailer.Mailer, resetURLBase string) *EmailTaskHandler {
	return &EmailTaskHandler{mailer: m, resetURLBase: resetURLBase}
}

func (h *EmailTaskHandler) HandlePasswordReset(ctx context.Context, t *asynq.Task) error {
	var p PasswordResetPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid password reset payload", zap.Error(err))
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}
	if p.Email == "" || p.Token == "" {
		logger.L().Error("password reset payload missing fields", zap.String("user_id", p.UserID))
		return fmt.Errorf("incomplete payload: %w", asynq.SkipRetry)
	}

	link, err := resetLink(h.resetURLBase, p.Token)
	if err != nil {
		return fmt.Errorf("reset link: %v: %w", err, asynq.SkipRetry)
	}

	var html strings.Builder
	if err := resetHTML.Execute(&html, struct{ Name, Link string }{p.Name, link}); err != nil {
		return fmt.Errorf("render reset email: %w", err)
	}

	msg := mailer.Message{
		ToEmail: p.Email,
		ToName:  p.Name,
		Subject: "Reset your SkillSwap password",
		Text:    fmt.Sprintf("Hi %s,\n\nReset your password here: %s\n\nIf that wasn't you, ignore this email.\n", p.Name, link),
		HTML:    html.String(),
	}
	if err := h.mailer.Send(ctx, msg); err != nil {
		logger.L().Warn("password reset email failed", zap.String("user_id", p.UserID), zap.Error(err))
		return err
	}
	logger.L().Info("password reset email sent", zap.String("user_id", p.UserID))
	return nil
}

func resetLink(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
