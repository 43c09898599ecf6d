// Package cli provides the interactive AccountKeeper command-line client.
//
// It wires configuration, offline credential storage, API services, and an
// interactive REPL. Typical flow: restore a persisted session, sync account
// state from the server, and execute user commands.
//
// Key features:
//   - Login / Signup / OAuth / Logout
//   - Email verification and password reset flows
//   - Account sync with throttling and a status view
//   - Checkout and billing portal session links
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
