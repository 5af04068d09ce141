package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	secret := "test-secret"
	j := New(WithSecretKey(secret), WithAccessExp(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice@example.com", ScopeAccess)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Valid token should pass validation
	err = j.Validate(ctx, token, ScopeAccess)
	assert.NoError(t, err)

	// Extract claims
	claims, err := j.GetClaims(ctx, token, ScopeAccess)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, ScopeAccess, claims.Scope)
}

func TestJWT_ScopeMismatch(t *testing.T) {
	j := New(WithSecretKey("test-secret"))

	userID := uuid.New()
	ctx := context.Background()

	// A refresh token presented where access is required must fail
	token, err := j.Generate(ctx, userID, "alice@example.com", ScopeRefresh)
	assert.NoError(t, err)

	err = j.Validate(ctx, token, ScopeAccess)
	assert.ErrorIs(t, err, ErrInvalidScope)

	claims, err := j.GetClaims(ctx, token, ScopeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)

	// Same token verified with its own scope is fine
	err = j.Validate(ctx, token, ScopeRefresh)
	assert.NoError(t, err)
}

func TestJWT_EmailScope(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, uuid.New(), "bob@example.com", ScopeEmail)
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token, ScopeEmail)
	assert.NoError(t, err)
	assert.Equal(t, "bob@example.com", claims.Email)

	err = j.Validate(ctx, token, ScopeAccess)
	assert.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	secret := "test-secret"
	j := New(WithSecretKey(secret), WithAccessExp(-time.Minute)) // already expired

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice@example.com", ScopeAccess)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validation should fail
	err = j.Validate(ctx, token, ScopeAccess)
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, token, ScopeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	// Totally invalid string
	err := j.Validate(ctx, "invalid.token.string", ScopeAccess)
	assert.Error(t, err)

	claims, err := j.GetClaims(ctx, "invalid.token.string", ScopeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WrongKey(t *testing.T) {
	ctx := context.Background()

	token, err := New(WithSecretKey("key-one")).Generate(ctx, uuid.New(), "a@b.com", ScopeAccess)
	assert.NoError(t, err)

	err = New(WithSecretKey("key-two")).Validate(ctx, token, ScopeAccess)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"MissingToken", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
