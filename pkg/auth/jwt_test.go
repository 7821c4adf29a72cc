package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitmarket/gitmarket/internal/domain"
)

const testUserID = "7d0b6c8e-3f4a-4e57-9a1c-2b5f0d9e8a11"

func TestGenerateJWT(t *testing.T) {
	validator := NewJWTValidator("secret")

	token, err := validator.GenerateJWT(testUserID, "alice@example.com", time.Now().Add(time.Hour))

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestJWTValidator_Validate(t *testing.T) {
	validator := NewJWTValidator("secret")

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid token",
			setup: func() string {
				token, _ := validator.GenerateJWT(testUserID, "alice@example.com", time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name: "Expired token",
			setup: func() string {
				token, _ := validator.GenerateJWT(testUserID, "alice@example.com", time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				token, _ := NewJWTValidator("other").GenerateJWT(testUserID, "", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Subject is not a user id",
			setup: func() string {
				token, _ := validator.GenerateJWT("service-role", "", time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong audience",
			setup: func() string {
				claims := Claims{StandardClaims: jwt.StandardClaims{
					Subject:   testUserID,
					Audience:  "anon",
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
				}}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
				return token
			},
			expectError: true,
		},
		{
			name: "Unsigned token",
			setup: func() string {
				claims := Claims{StandardClaims: jwt.StandardClaims{Subject: testUserID, Audience: audience}}
				token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				return token
			},
			expectError: true,
		},
		{
			name:        "Garbage",
			setup:       func() string { return "not-a-jwt" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := validator.Validate(context.Background(), tt.setup())

			if tt.expectError {
				assert.ErrorIs(t, err, domain.ErrUnauthenticated)
				assert.Nil(t, identity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &domain.Identity{ID: testUserID, Email: "alice@example.com"}, identity)
		})
	}
}
