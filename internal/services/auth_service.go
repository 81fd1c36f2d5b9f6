package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/auth"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/logger"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Logout(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) (*models.User, error)
	AdminLogin(ctx context.Context, email, password string) (string, error)

	// Authenticate resolves an access token to a live user.
	Authenticate(ctx context.Context, token string) (*models.User, *auth.Claims, error)
	// AuthenticateAdmin resolves an admin token to a live admin.
	AuthenticateAdmin(ctx context.Context, token string) (*models.Admin, *auth.Claims, error)
}

type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Location     *string
	ProfilePhoto *string
}

type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type authService struct {
	users    repository.UserRepository
	admins   repository.AdminRepository
	hasher   *auth.Hasher
	issuer   *auth.Issuer
	denylist auth.Denylist
	notifier ResetNotifier
}

func NewAuthService(
	users repository.UserRepository,
	admins repository.AdminRepository,
	hasher *auth.Hasher,
	issuer *auth.Issuer,
	denylist auth.Denylist,
	notifier ResetNotifier,
) AuthService {
	if denylist == nil {
		denylist = auth.NopDenylist{}
	}
	if notifier == nil {
		notifier = LogResetNotifier{}
	}
	return &authService{
		users:    users,
		admins:   admins,
		hasher:   hasher,
		issuer:   issuer,
		denylist: denylist,
		notifier: notifier,
	}
}

var _ AuthService = (*authService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}
	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Location:     in.Location,
		ProfilePhoto: in.ProfilePhoto,
		ProfileType:  models.ProfilePublic,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.issuer.Issue(auth.Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "issue token failed")
	}
	logger.L().Info("user registered", zap.String("user_id", u.ID.String()))
	return &AuthResult{User: u, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var u models.User
	if err := s.users.GetByEmail(ctx, normalizeEmail(email), &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(auth.Claims{UserID: u.ID, Email: u.Email})
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "issue token failed")
	}
	logger.L().Info("user logged in", zap.String("user_id", u.ID.String()))
	return &AuthResult{User: &u, Token: token}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.users.GetProfile(ctx, userID, &u); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	u.SkillsOffered = nonNil(u.SkillsOffered)
	u.SkillsWanted = nonNil(u.SkillsWanted)
	u.Availability = nonNil(u.Availability)
	return &u, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	c, err := s.issuer.Parse(token)
	if err != nil {
		return err
	}
	if err := s.denylist.Revoke(ctx, token, c.ExpiresAt.Time); err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "revoke token failed")
	}
	logger.L().Info("token revoked", zap.String("user_id", c.UserID.String()))
	return nil
}

// ForgotPassword never reveals whether the email is registered.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	var u models.User
	if err := s.users.GetByEmail(ctx, normalizeEmail(email), &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil
		}
		return err
	}

	token, err := s.issuer.Issue(auth.Claims{UserID: u.ID, Email: u.Email, Type: auth.TokenPasswordReset})
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "issue reset token failed")
	}
	if err := s.notifier.NotifyPasswordReset(ctx, PasswordReset{UserID: u.ID, Email: u.Email, Name: u.Name, Token: token}); err != nil {
		logger.L().Error("password reset notification failed", zap.String("user_id", u.ID.String()), zap.Error(err))
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) (*models.User, error) {
	c, err := s.issuer.Parse(token)
	if err != nil || c.Type != auth.TokenPasswordReset {
		return nil, ErrInvalidResetToken
	}
	if err := s.checkRevoked(ctx, token); err != nil {
		return nil, ErrInvalidResetToken
	}

	var u models.User
	if err := s.users.GetByID(ctx, c.UserID, &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, err
	}
	if u.Email != c.Email {
		return nil, ErrInvalidResetToken
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "hash password failed")
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return nil, err
	}
	// reset tokens are single use
	if err := s.denylist.Revoke(ctx, token, c.ExpiresAt.Time); err != nil {
		logger.L().Warn("revoke reset token failed", zap.String("user_id", u.ID.String()), zap.Error(err))
	}

	logger.L().Info("password reset", zap.String("user_id", u.ID.String()))
	u.PasswordHash = hash
	return &u, nil
}

func (s *authService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	var a models.Admin
	if err := s.admins.GetByEmail(ctx, normalizeEmail(email), &a); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(password, a.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(auth.Claims{UserID: a.ID, Email: a.Email, Type: auth.TokenAdmin})
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "issue token failed")
	}
	logger.L().Info("admin logged in", zap.String("admin_id", a.ID.String()))
	return token, nil
}

func (s *authService) checkRevoked(ctx context.Context, token string) error {
	revoked, err := s.denylist.IsRevoked(ctx, token)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "check token revocation failed")
	}
	if revoked {
		return ErrTokenRevoked
	}
	return nil
}

func (s *authService) verify(ctx context.Context, token string, want auth.TokenType) (*auth.Claims, error) {
	c, err := s.issuer.Parse(token)
	if err != nil {
		return nil, err
	}
	if c.Type != want {
		return nil, auth.ErrInvalidToken
	}
	if err := s.checkRevoked(ctx, token); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, *auth.Claims, error) {
	c, err := s.verify(ctx, token, auth.TokenAccess)
	if err != nil {
		return nil, nil, err
	}
	var u models.User
	if err := s.users.GetByID(ctx, c.UserID, &u); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, nil, appErr.New(appErr.CodeUnauthorized, "User not found")
		}
		return nil, nil, err
	}
	return &u, c, nil
}

func (s *authService) AuthenticateAdmin(ctx context.Context, token string) (*models.Admin, *auth.Claims, error) {
	c, err := s.verify(ctx, token, auth.TokenAdmin)
	if err != nil {
		return nil, nil, err
	}
	var a models.Admin
	if err := s.admins.GetByID(ctx, c.UserID, &a); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			return nil, nil, appErr.New(appErr.CodeUnauthorized, "Admin not found")
		}
		return nil, nil, err
	}
	return &a, c, nil
}
