package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	token, err := jwtService.GenerateJWT(RoleDesigner, time.Now().Add(TokenTTL))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleDesigner, claims.Role)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name        string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid admin token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(RoleAdmin, time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Garbage",
			setup:       func() string { return "invalid.token.string" },
			expectError: true,
		},
		{
			name: "Expired token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(RoleAdmin, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(RoleAdmin, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Unknown role",
			setup: func() string {
				return sign(Claims{
					Role:           "owner",
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: Issuer},
				}, jwt.SigningMethodHS256, []byte("test-secret"))
			},
			expectError: true,
		},
		{
			name: "Foreign issuer",
			setup: func() string {
				return sign(Claims{
					Role:           RoleAdmin,
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: "other-service"},
				}, jwt.SigningMethodHS256, []byte("test-secret"))
			},
			expectError: true,
		},
		{
			name: "Unsigned token",
			setup: func() string {
				return sign(Claims{
					Role:           RoleAdmin,
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: Issuer},
				}, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.setup())

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
