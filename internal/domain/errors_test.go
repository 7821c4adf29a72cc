package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{
			name:    "Plain domain error",
			err:     NewError(ErrNotFound, "Bounty not found"),
			kind:    ErrNotFound,
			message: "Bounty not found",
		},
		{
			name:    "Wrapped domain error keeps kind",
			err:     fmt.Errorf("cancel bounty: %w", NewError(ErrForbidden, "Not your bounty")),
			kind:    ErrForbidden,
			message: "cancel bounty: Not your bounty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.kind))
			assert.Equal(t, tt.message, tt.err.Error())

			var domainErr *Error
			assert.True(t, errors.As(tt.err, &domainErr))
		})
	}

	assert.False(t, errors.Is(NewError(ErrNotFound, "x"), ErrForbidden))
}

func TestCheckBountyAmount(t *testing.T) {
	assert.NoError(t, CheckBountyAmount(MinBountyAmount))
	assert.NoError(t, CheckBountyAmount(50))

	err := CheckBountyAmount(MinBountyAmount - 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, "Minimum bounty is $5", err.Error())
}
