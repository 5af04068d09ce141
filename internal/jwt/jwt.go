package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Scope restricts what a token may be used for.
type Scope string

const (
	ScopeAccess  Scope = "access"  // short-lived API access
	ScopeRefresh Scope = "refresh" // exchanging for a new token pair
	ScopeEmail   Scope = "email"   // one-time email confirmation
)

// Token validation errors
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidScope      = errors.New("invalid scope for token")
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// Claims are the claims embedded in every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Scope  Scope     `json:"scope"`
}

// JWT issues and verifies scoped HS256 tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	AccessExp  time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
	EmailExp   time.Duration // Email confirmation token lifetime
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing key.
func WithSecretKey(key string) Opt {
	return func(j *JWT) { j.SecretKey = key }
}

// WithAccessExp sets the access token lifetime.
func WithAccessExp(d time.Duration) Opt {
	return func(j *JWT) { j.AccessExp = d }
}

// WithRefreshExp sets the refresh token lifetime.
func WithRefreshExp(d time.Duration) Opt {
	return func(j *JWT) { j.RefreshExp = d }
}

// WithEmailExp sets the email confirmation token lifetime.
func WithEmailExp(d time.Duration) Opt {
	return func(j *JWT) { j.EmailExp = d }
}

// New creates a new JWT instance. Lifetimes default to 15 minutes for
// access tokens and 7 days for refresh and email tokens.
func New(opts ...Opt) *JWT {
	j := &JWT{
		AccessExp:  15 * time.Minute,
		RefreshExp: 7 * 24 * time.Hour,
		EmailExp:   7 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *JWT) expFor(scope Scope) time.Duration {
	switch scope {
	case ScopeRefresh:
		return j.RefreshExp
	case ScopeEmail:
		return j.EmailExp
	default:
		return j.AccessExp
	}
}

// Generate creates a token for the given user with the given scope.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, email string, scope Scope) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expFor(scope))),
		},
		UserID: userID,
		Email:  email,
		Scope:  scope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token and returns its claims if the signature is
// valid, the token is not expired and the scope matches the expected one.
func (j *JWT) GetClaims(ctx context.Context, tokenString string, expected Scope) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Scope != expected {
		return nil, ErrInvalidScope
	}

	return claims, nil
}

// Validate checks a token against the expected scope.
func (j *JWT) Validate(ctx context.Context, tokenString string, expected Scope) error {
	_, err := j.GetClaims(ctx, tokenString, expected)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
