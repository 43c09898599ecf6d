// Package client contains client-side building blocks for AccountKeeper.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the account service: the authentication flows (login, signup,
//     OAuth exchange, email verification, password reset, token refresh),
//     the account snapshot fetch, and billing session creation.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches
//     the bearer credential and a correlation id to every request and
//     decodes error payloads into a closed error-kind taxonomy exactly
//     once, at this boundary.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures surface as *Error values carrying a Kind (validation,
// unauthorized, transport, cancelled) and a human-readable message. Callers
// match them with errors.Is against the sentinels ErrValidation,
// ErrUnauthorized, ErrUnavailable, and ErrCancelled, and can recover the
// message with errors.As.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package client
