package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func roleEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := RoleFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(role))
	})
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := NewMockJWTServiceInterface(ctrl)
	handler := AuthMiddleware(tokens)(roleEcho(t))

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Valid token",
			header: "Bearer good",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("good").Return(&Claims{Role: RoleDesigner}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "designer",
		},
		{
			name:         "Missing header",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Wrong scheme",
			header:       "Basic abc",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Rejected token",
			header: "Bearer bad",
			prepareMock: func() {
				tokens.EXPECT().ValidateToken("bad").Return(nil, ErrInvalidToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

type stubAuthorizer struct {
	allowed bool
	err     error
}

func (s stubAuthorizer) IsAuthorized(Role, string, string) (bool, error) {
	return s.allowed, s.err
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name         string
		authorizer   Authorizer
		withRole     bool
		expectedCode int
	}{
		{"Allowed", stubAuthorizer{allowed: true}, true, http.StatusOK},
		{"Forbidden", stubAuthorizer{allowed: false}, true, http.StatusForbidden},
		{"Enforcer error", stubAuthorizer{err: errors.New("boom")}, true, http.StatusInternalServerError},
		{"No role in context", stubAuthorizer{allowed: true}, false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Authorize(tt.authorizer, ObjAnalytics, ActRead)(roleEcho(t))
			req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
			if tt.withRole {
				req = req.WithContext(WithRole(req.Context(), RoleAdmin))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
