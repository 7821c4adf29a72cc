package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gitmarket/gitmarket/internal/domain"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header    string
		token     string
		expectErr bool
	}{
		{header: "Bearer abc", token: "abc"},
		{header: "abc", token: "abc"},
		{header: "  Bearer abc  ", token: "abc"},
		{header: "Bearer ", expectErr: true},
		{header: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := ExtractToken(tt.header)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrUnauthenticated)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := NewMockTokenValidator(ctrl)
	identity := &domain.Identity{ID: testUserID, Email: "alice@example.com"}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := IdentityFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, *identity, got)
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Middleware(validator)(next)

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Valid token",
			header: "Bearer good",
			prepareMock: func() {
				validator.EXPECT().Validate(gomock.Any(), "good").Return(identity, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Missing header",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Rejected token",
			header: "Bearer bad",
			prepareMock: func() {
				validator.EXPECT().Validate(gomock.Any(), "bad").Return(nil, errInvalidToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Provider down",
			header: "Bearer good",
			prepareMock: func() {
				validator.EXPECT().Validate(gomock.Any(), "good").
					Return(nil, domain.NewError(domain.ErrUnavailable, "Auth provider is unavailable"))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestIdentityFromContext_Missing(t *testing.T) {
	_, ok := IdentityFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
