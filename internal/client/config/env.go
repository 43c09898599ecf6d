package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first when present; real
// environment variables win over .env entries (godotenv never overrides).
//
// Recognized variables:
//
//	API_BASE_URL          string
//	REQUEST_TIMEOUT       duration, e.g. "10s"
//	SYNC_THROTTLE         duration, e.g. "60s"
//	TOKEN_REFRESH_WINDOW  duration, e.g. "5m"
//	DATABASE_PATH         string
//
// Malformed durations are ignored and the previous value kept.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	overlayDuration(os.Getenv("REQUEST_TIMEOUT"), &cfg.RequestTimeout)
	overlayDuration(os.Getenv("SYNC_THROTTLE"), &cfg.SyncThrottle)
	overlayDuration(os.Getenv("TOKEN_REFRESH_WINDOW"), &cfg.TokenRefreshWindow)
}

func overlayDuration(raw string, dst *time.Duration) {
	if raw == "" {
		return
	}
	if d, err := time.ParseDuration(raw); err == nil {
		*dst = d
	}
}
