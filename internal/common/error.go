// Package common defines shared constants and sentinel errors used across
// AccountKeeper components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Credential lifecycle errors. ErrNoToken is a logic error: a flow that
	// requires a bearer token was started with neither an in-memory nor a
	// persisted token available. It is raised synchronously, before any
	// network call. ErrTokenExpired marks an unrecoverable credential: the
	// server rejected a refresh, and the session has been dropped.
	ErrNoToken      = errors.New("no token available")
	ErrTokenExpired = errors.New("token expired")

	// Validation errors, detected and reported before any network call.
	ErrPasswordPolicy   = errors.New("password must be at least 8 characters with an uppercase letter, a digit and a symbol")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingField     = errors.New("missing required field")
)
