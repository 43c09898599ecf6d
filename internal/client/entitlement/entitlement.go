// Package entitlement derives the binary premium flag from subscription
// state. It is the one place in the codebase that knows what counts as
// "premium"; every routing decision goes through these two functions so a
// renamed or newly introduced tier can never make call sites disagree.
package entitlement

import "github.com/avasiljevs/accountkeeper/internal/client/models"

// Canonical post-action redirect targets.
const (
	RedirectDashboard = "dashboard"
	RedirectPayment   = "payment"
)

// IsPremium reports whether the subscription grants premium access.
// An absent subscription and an explicit free tier are equivalent.
func IsPremium(sub *models.Subscription) bool {
	return sub != nil && sub.Tier != models.TierFree
}

// RedirectTarget returns where a completed flow should send the user:
// premium accounts land on the dashboard, everyone else on the payment page.
func RedirectTarget(sub *models.Subscription) string {
	if IsPremium(sub) {
		return RedirectDashboard
	}
	return RedirectPayment
}
