package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 60*time.Second, c.SyncThrottle)
	assert.Equal(t, 5*time.Minute, c.TokenRefreshWindow)
	assert.Equal(t, "accountkeeper.db", c.DatabasePath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.APIBaseURL)
	assert.Equal(t, 60*time.Second, cfg.SyncThrottle)
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("SYNC_THROTTLE", "90s")
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.com", c.APIBaseURL)
	assert.Equal(t, 90*time.Second, c.SyncThrottle)
	// Malformed duration keeps the default.
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}
