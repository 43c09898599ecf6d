package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avasiljevs/accountkeeper/internal/client/entitlement"
	"github.com/avasiljevs/accountkeeper/internal/client/session"
	"github.com/avasiljevs/accountkeeper/internal/token"
)

// Sync forces an account fetch, bypassing the throttle window.
func (a *App) Sync(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	if err := a.accounts.FetchAccount(ctx, true); err != nil {
		printlnFn("Sync failed:", err.Error())
		return err
	}
	printlnFn("Account synced.")
	return nil
}

// Status prints the current session: identity, plan, allowance balances,
// token expiry and the last sync outcome.
func (a *App) Status(ctx context.Context) error {
	snap := a.store.Snapshot()
	if snap.Token == "" {
		printlnFn("Not logged in.")
		return nil
	}

	if snap.User != nil {
		printlnFn(fmt.Sprintf("User:     %s <%s>", snap.User.Username, snap.User.Email))
		if !snap.User.IsVerified {
			printlnFn("          (email not verified)")
		}
	}

	tier := "free"
	if snap.Subscription != nil {
		tier = string(snap.Subscription.Tier)
		if snap.Subscription.Status != "" {
			tier += " (" + snap.Subscription.Status + ")"
		}
	}
	printlnFn("Plan:    ", tier)

	if entitlement.IsPremium(snap.Subscription) {
		printlnFn("Access:   premium, lands on the", entitlement.RedirectTarget(snap.Subscription))
	} else {
		printlnFn("Access:   free, lands on the", entitlement.RedirectTarget(snap.Subscription))
	}

	if len(snap.Allowances) > 0 {
		printlnFn("Allowances:")
		keys := make([]string, 0, len(snap.Allowances))
		for k := range snap.Allowances {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			printlnFn(fmt.Sprintf("  %-16s %d", k, snap.Allowances[k]))
		}
	}

	if exp, ok := token.ExpiresAt(snap.Token); ok {
		printlnFn("Token:    expires", exp.Format(time.RFC3339))
	} else {
		printlnFn("Token:    opaque")
	}

	switch snap.Status {
	case session.StatusError:
		printlnFn("Sync:     failed:", snap.Err)
	case session.StatusSuccess:
		printlnFn(fmt.Sprintf("Sync:     ok (last fetch %s)", a.accounts.LastFetchedAt().Format(time.RFC3339)))
	default:
		printlnFn("Sync:    ", string(snap.Status))
	}

	return nil
}
