package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/dto"
	"github.com/gitmarket/gitmarket/pkg/auth"
)

func NewMock(t *testing.T) (*ProfileHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestMe(t *testing.T) {
	handler, service := NewMock(t)
	identity := domain.Identity{ID: "7d0b6c8e-3f4a-4e57-9a1c-2b5f0d9e8a11", Email: "alice@example.com"}
	username := "alice"

	t.Run("Profile returned", func(t *testing.T) {
		service.EXPECT().GetOrCreate(gomock.Any(), identity).
			Return(&domain.Profile{ID: identity.ID, Username: &username, Balance: 100}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil).
			WithContext(auth.WithIdentity(context.Background(), identity))
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body dto.ProfileResponseDTO
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, identity.ID, body.ID)
		assert.Equal(t, int64(100), body.Balance)
		require.NotNil(t, body.Username)
		assert.Equal(t, "alice", *body.Username)
	})

	t.Run("Anonymous caller", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Store failure", func(t *testing.T) {
		service.EXPECT().GetOrCreate(gomock.Any(), identity).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil).
			WithContext(auth.WithIdentity(context.Background(), identity))
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())
	})
}
