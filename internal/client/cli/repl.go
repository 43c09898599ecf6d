package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	OAuth(ctx context.Context) error
	Verify(ctx context.Context) error
	Resend(ctx context.Context) error
	Reset(ctx context.Context) error
	ConfirmReset(ctx context.Context) error
	Refresh(ctx context.Context) error
	Sync(ctx context.Context) error
	Status(ctx context.Context) error
	Upgrade(ctx context.Context) error
	Portal(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the AccountKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate with email and password
//	  - signup         — create an account
//	  - oauth          — authenticate with a provider token
//	  - reset          — request a password reset email
//	  - confirm-reset  — finish a password reset
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - status         — show user, plan, and allowance balances
//	  - sync           — refresh account state from the server
//	  - verify         — confirm the email address
//	  - resend         — resend the verification email
//	  - refresh        — exchange the token for a fresh one
//	  - upgrade        — open a checkout session for a paid plan
//	  - portal         — open the billing portal
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ak %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: status, sync, verify, resend, refresh, upgrade, portal, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, oauth, reset, confirm-reset, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "oauth":
			_ = a.OAuth(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "resend":
			_ = a.Resend(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "confirm-reset":
			_ = a.ConfirmReset(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "status":
			_ = a.Status(ctx)

		case "upgrade":
			_ = a.Upgrade(ctx)

		case "portal":
			_ = a.Portal(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
