package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avasiljevs/accountkeeper/internal/flagx"
	"github.com/avasiljevs/accountkeeper/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "60s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JSONConfig struct {
	APIBaseURL         string         `json:"api_base_url"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	SyncThrottle       timex.Duration `json:"sync_throttle"`
	TokenRefreshWindow timex.Duration `json:"token_refresh_window"`
	DatabasePath       string         `json:"database_path"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JSONConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JSONConfig.
//   - Copies set fields into the provided Config; absent fields keep their
//     previous values.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseEnv -> parseJSON -> parseFlags, where
// later stages override earlier ones.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SyncThrottle.Duration != 0 {
		cfg.SyncThrottle = time.Duration(jc.SyncThrottle.Duration)
	}
	if jc.TokenRefreshWindow.Duration != 0 {
		cfg.TokenRefreshWindow = time.Duration(jc.TokenRefreshWindow.Duration)
	}
}
