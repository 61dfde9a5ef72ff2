package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func zapLevel(t *testing.T, s string) zapcore.Level {
	t.Helper()
	level, err := zapcore.ParseLevel(s)
	require.NoError(t, err)
	return level
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "defaults", config: NewDefaultConfig(), wantErr: false},
		{name: "json format", config: Config{Level: "debug", Format: "json"}, wantErr: false},
		{name: "unknown level", config: Config{Level: "loud", Format: "json"}, wantErr: true},
		{name: "unknown format", config: Config{Level: "info", Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger, err := New(Config{Level: "warn", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.False(t, logger.Core().Enabled(zapLevel(t, "info")))
	assert.True(t, logger.Core().Enabled(zapLevel(t, "error")))
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Level: "nope", Format: "json"})
	require.Error(t, err)
}
