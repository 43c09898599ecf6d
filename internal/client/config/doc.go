// Package config loads runtime configuration for the AccountKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the remote account service
//	-t int      HTTP request timeout (seconds)
//	-s int      account sync throttle (seconds)
//	-d string   path to the offline credentials database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "60s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.example.com",
//	  "request_timeout": "10s",
//	  "sync_throttle": "60s",
//	  "token_refresh_window": "5m",
//	  "database_path": "accountkeeper.db"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings consumed by the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
