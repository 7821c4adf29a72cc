package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitmarket/gitmarket/internal/domain"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithJSON(w, http.StatusCreated, map[string]int64{"id": 7})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondWithError(w, http.StatusBadRequest, "Invalid GitHub URL")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Invalid GitHub URL"}`, w.Body.String())
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind   error
		status int
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrInvalidState, http.StatusBadRequest},
		{domain.ErrDuplicateSubmission, http.StatusBadRequest},
		{domain.ErrInsufficientBalance, http.StatusBadRequest},
		{domain.ErrInvalidRequest, http.StatusBadRequest},
		{domain.ErrInvalidReference, http.StatusBadRequest},
		{domain.ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, StatusFor(domain.NewError(tt.kind, "msg")))
			assert.Equal(t, tt.status, StatusFor(fmt.Errorf("wrapped: %w", tt.kind)))
		})
	}
}

func TestRespondWithDomainError(t *testing.T) {
	t.Run("Domain message is shown", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondWithDomainError(w, fmt.Errorf("cancel: %w", domain.NewError(domain.ErrForbidden, "Not your bounty")))

		var body Response
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not your bounty", body.Detail)
	})

	t.Run("Unknown errors are hidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		RespondWithDomainError(w, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"Internal server error"}`, w.Body.String())
	})
}
