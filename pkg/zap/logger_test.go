package zap

import (
	"os"
	"path/filepath"
	"testing"

	"sos-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sos.log")
	cfg := &config.Config{
		Env: "prod",
		Log: config.LogConfig{Level: "debug", File: file},
	}

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Infow("hello", "user_id", "u1")
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"user_id":"u1"`)
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&config.Config{Log: config.LogConfig{Level: "loud"}})
	assert.Error(t, err)
}
