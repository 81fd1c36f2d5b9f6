package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/api/types"
	"github.com/mogith007/skillswap/internal/auth"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/pkg/logger"
	"go.uber.org/zap"
)

type authKeyType string

const (
	userKey   authKeyType = "user"
	adminKey  authKeyType = "admin"
	claimsKey authKeyType = "claims"
	tokenKey  authKeyType = "token"
)

// Authenticator resolves bearer tokens to live identities.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, *auth.Claims, error)
	AuthenticateAdmin(ctx context.Context, token string) (*models.Admin, *auth.Claims, error)
}

// Auth requires a member access token and stores the user in the request context.
func Auth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, types.Fail("Access token required"))
				return
			}
			u, claims, err := a.Authenticate(r.Context(), token)
			if err != nil {
				rejectAuth(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, u)
			ctx = context.WithValue(ctx, claimsKey, claims)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminAuth requires an admin token.
func AdminAuth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, types.Fail("Access token required"))
				return
			}
			admin, claims, err := a.AuthenticateAdmin(r.Context(), token)
			if err != nil {
				rejectAuth(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), adminKey, admin)
			ctx = context.WithValue(ctx, claimsKey, claims)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectAuth(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := types.FromError(err)
	if status == http.StatusInternalServerError {
		logger.L().Error("authentication failed",
			zap.String("id", GetRequestID(r.Context())),
			zap.Error(err))
	}
	writeJSON(w, status, resp)
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	ah := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(ah) <= len(prefix) || !strings.EqualFold(ah[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(ah[len(prefix):])
	return token, token != ""
}

func CurrentUser(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

// CurrentUserID returns uuid.Nil outside Auth.
func CurrentUserID(ctx context.Context) uuid.UUID {
	if u := CurrentUser(ctx); u != nil {
		return u.ID
	}
	return uuid.Nil
}

func CurrentAdmin(ctx context.Context) *models.Admin {
	a, _ := ctx.Value(adminKey).(*models.Admin)
	return a
}

func ClaimsFrom(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey).(*auth.Claims)
	return c
}

// TokenFrom returns the raw bearer token accepted for this request.
func TokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey).(string)
	return s
}

// WithUser is used by tests and internal callers to seed an authenticated context.
func WithUser(ctx context.Context, u *models.User, token string) context.Context {
	ctx = context.WithValue(ctx, userKey, u)
	return context.WithValue(ctx, tokenKey, token)
}
