package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"https://github.com/acme/widget/pull/8", true},
		{"http://example.com", true},
		{" https://github.com/acme/widget/issues/7 ", true},
		{"github.com/acme/widget/pull/8", false},
		{"ftp://example.com/file", false},
		{"https://", false},
		{"", false},
		{"::not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsHTTPURL(tt.input))
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t"))
	assert.False(t, IsBlank(" x "))
}
