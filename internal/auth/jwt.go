package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	appErr "github.com/mogith007/skillswap/pkg/errors"
)

// TokenType distinguishes what a token may be used for.
type TokenType string

const (
	TokenAccess        TokenType = ""
	TokenAdmin         TokenType = "admin"
	TokenPasswordReset TokenType = "password_reset"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = appErr.New(appErr.CodeUnauthorized, "Invalid or expired token")

type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Type   TokenType `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 tokens.
type Issuer struct {
	secret    []byte
	accessTTL time.Duration
	resetTTL  time.Duration
	now       func() time.Time
}

func NewIssuer(secret string, accessTTL, resetTTL time.Duration) *Issuer {
	return &Issuer{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		resetTTL:  resetTTL,
		now:       time.Now,
	}
}

func (i *Issuer) ttl(t TokenType) time.Duration {
	if t == TokenPasswordReset {
		return i.resetTTL
	}
	return i.accessTTL
}

// Issue signs c. Registered claims are filled in from the token type.
func (i *Issuer) Issue(c Claims) (string, error) {
	now := i.now().UTC()
	c.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   c.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl(c.Type))),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

// Parse verifies signature, algorithm and expiry and requires userId and email.
func (i *Issuer) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeUnauthorized, ErrInvalidToken.Message)
	}
	c, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || c.UserID == uuid.Nil || c.Email == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}
