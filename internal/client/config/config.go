package config

import "time"

// Config holds runtime settings for the AccountKeeper CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote account service, e.g. "https://api.example.com".
//   - RequestTimeout: per-request HTTP timeout.
//   - SyncThrottle: minimum interval between unforced account syncs.
//   - TokenRefreshWindow: refresh the token when it expires within this window.
//   - DatabasePath: SQLite file holding offline credentials.
type Config struct {
	APIBaseURL         string
	RequestTimeout     time.Duration
	SyncThrottle       time.Duration
	TokenRefreshWindow time.Duration
	DatabasePath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.SyncThrottle = 60 * time.Second
	c.TokenRefreshWindow = 5 * time.Minute
	c.DatabasePath = "accountkeeper.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
