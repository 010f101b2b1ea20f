package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 200, cfg.Reading.DefaultWordsPerMinute)
	assert.Equal(t, 500, cfg.Reading.MaxBatchSize)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("READING_DEFAULT_WPM", "320")
	t.Setenv("SERVER_READ_TIMEOUT", "45s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 320, cfg.Reading.DefaultWordsPerMinute)
	assert.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
}

func TestNewConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "SERVER_PORT", "70000"},
		{"non-numeric wpm", "READING_DEFAULT_WPM", "fast"},
		{"zero wpm", "READING_DEFAULT_WPM", "0"},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon"},
		{"bad log level", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
