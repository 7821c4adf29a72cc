package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gitmarket/gitmarket/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name          string
		config        *config.Config
		expectedError string
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{
			name:     "Info on console",
			config:   &config.Config{LogLvl: "info", LogFormat: "console"},
			enabled:  zapcore.InfoLevel,
			disabled: zapcore.DebugLevel,
		},
		{
			name:     "Warn as json",
			config:   &config.Config{LogLvl: "warn", LogFormat: "json"},
			enabled:  zapcore.WarnLevel,
			disabled: zapcore.InfoLevel,
		},
		{
			name:     "Error with default format",
			config:   &config.Config{LogLvl: "error"},
			enabled:  zapcore.ErrorLevel,
			disabled: zapcore.WarnLevel,
		},
		{
			name:     "Debug",
			config:   &config.Config{LogLvl: "debug", LogFormat: "console"},
			enabled:  zapcore.DebugLevel,
			disabled: zapcore.DebugLevel - 1,
		},
		{
			name:          "Invalid log level",
			config:        &config.Config{LogLvl: "loud"},
			expectedError: "unsupported log lvl: loud",
		},
		{
			name:          "Invalid format",
			config:        &config.Config{LogLvl: "info", LogFormat: "xml"},
			expectedError: "unsupported log format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.config)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.enabled))
			assert.False(t, zap.L().Core().Enabled(tt.disabled))
		})
	}
}
