// Package credentials persists the current bearer token and minimal user
// identity so a session survives process restarts. It is the durability
// layer behind the in-memory session store: its only consumers are the
// startup restore path and the token-refresh fallback.
package credentials

import "context"

// Credentials is the minimal durable session state.
type Credentials struct {
	Token    string
	UserID   string
	Email    string
	Username string
}

// Repository stores at most one set of credentials.
type Repository interface {
	// Load returns the persisted credentials, or nil when none are stored.
	Load(ctx context.Context) (*Credentials, error)

	// Save replaces the persisted credentials wholesale, atomically.
	Save(ctx context.Context, creds *Credentials) error

	// Clear wipes the persisted credentials. Clearing an empty store is
	// not an error.
	Clear(ctx context.Context) error
}
