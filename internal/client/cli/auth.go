package cli

import (
	"context"
	"errors"
	"os"

	"github.com/avasiljevs/accountkeeper/internal/client/client"
	"github.com/avasiljevs/accountkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for an email and password and tries to
// authenticate. On success the session store holds the fresh token and an
// account sync is kicked off, so the prompt reflects the plan immediately.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn("Logged in!")
	a.syncAfterAuth(ctx)
	return nil
}

// Signup prompts for a username, email and password and attempts to create
// a new account. The password policy is enforced before any network call.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Signup(ctx, username, email, string(password)); err != nil {
		if errors.Is(err, common.ErrPasswordPolicy) {
			printlnFn("Password must be at least 8 characters with an uppercase letter, a digit and a symbol")
			return err
		}
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn("Account created! Check your inbox for a verification email.")
	a.syncAfterAuth(ctx)
	return nil
}

// OAuth prompts for a provider-issued token and exchanges it for a session.
// An empty token cancels the flow without touching the session.
func (a *App) OAuth(ctx context.Context) error {
	providerToken, err := getSimpleText(a.reader, "Paste the provider token (empty to cancel)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.OAuthLogin(ctx, providerToken); err != nil {
		if errors.Is(err, client.ErrCancelled) {
			printlnFn("Cancelled.")
			return nil
		}
		a.reportAuthError(ctx, err)
		return err
	}

	printlnFn("Logged in!")
	a.syncAfterAuth(ctx)
	return nil
}

// Logout clears the session and locally cached credentials.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Signout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// syncAfterAuth forces a fetch so fresh subscription and allowance data land
// right after a token change. Failures are already recorded in the session's
// sync state; the command only logs them.
func (a *App) syncAfterAuth(ctx context.Context) {
	if err := a.accounts.FetchAccount(ctx, true); err != nil {
		a.log.Warn(ctx, "post-login sync failed", "error", err)
	}
}

// reportAuthError translates client error kinds into user-facing messages.
func (a *App) reportAuthError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		printlnFn("Authentication failed:", err.Error())
	case errors.Is(err, client.ErrValidation):
		printlnFn("Request rejected:", err.Error())
	case errors.Is(err, client.ErrUnavailable):
		printlnFn("Server unavailable, try again later.")
	default:
		printlnFn("Error:", err.Error())
	}
	a.log.Debug(ctx, "auth command failed", "error", err)
}
