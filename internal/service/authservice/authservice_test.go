package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/furniture-crm/internal/domain"
	"github.com/GlebRadaev/furniture-crm/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	hashService.EXPECT().HashPassword("admin-secret").Return("admin-hash", nil)
	hashService.EXPECT().HashPassword("12345").Return("designer-hash", nil)

	service, err := New(map[auth.Role]string{
		auth.RoleAdmin:    "admin-secret",
		auth.RoleDesigner: "12345",
	}, hashService, jwtService)
	require.NoError(t, err)
	return service, hashService, jwtService
}

func TestNew_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	hashService.EXPECT().HashPassword("").Return("", errors.New("password cannot be empty"))

	_, err := New(map[auth.Role]string{auth.RoleAdmin: ""}, hashService, auth.NewMockJWTServiceInterface(ctrl))

	assert.ErrorContains(t, err, "hash admin secret")
}

func TestAuthenticate(t *testing.T) {
	service, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		role          auth.Role
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Designer logs in",
			role:     auth.RoleDesigner,
			password: "12345",
			prepareMock: func() {
				hashService.EXPECT().ComparePassword("designer-hash", "12345").Return(true)
			},
		},
		{
			name:     "Wrong admin secret",
			role:     auth.RoleAdmin,
			password: "12345",
			prepareMock: func() {
				hashService.EXPECT().ComparePassword("admin-hash", "12345").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:          "Unknown role",
			role:          "owner",
			password:      "12345",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Authenticate(context.Background(), tt.role, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, jwtService := NewMock(t)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Token issued for twelve hours",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(auth.RoleAdmin, now.Add(12*time.Hour)).Return("token", nil)
			},
			expectedToken: "token",
		},
		{
			name: "Signing error",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(auth.RoleAdmin, gomock.Any()).Return("", errors.New("sign error"))
			},
			expectedError: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, expires, err := service.GenerateToken(auth.RoleAdmin)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
			assert.Equal(t, now.Add(auth.TokenTTL), expires)
		})
	}
}
