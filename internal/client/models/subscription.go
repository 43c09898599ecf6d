package models

import "time"

// Tier is a server-assigned subscription plan name. The client never invents
// a tier; new tiers introduced on the server side flow through unchanged.
type Tier string

const (
	TierFree    Tier = "free"
	TierStarter Tier = "starter"
	TierScale   Tier = "scale"
	TierBeast   Tier = "beast"
)

// Subscription describes the user's current plan. A nil Subscription is
// treated as TierFree everywhere.
type Subscription struct {
	Tier             Tier      `json:"tier"`
	Status           string    `json:"status"`
	SubscriptionID   string    `json:"subscriptionId"`
	CustomerID       string    `json:"customerId"`
	CurrentPeriodEnd time.Time `json:"currentPeriodEnd"`
}

// Equal reports whether two subscriptions match on every tracked field.
func (s *Subscription) Equal(other *Subscription) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Tier == other.Tier &&
		s.Status == other.Status &&
		s.SubscriptionID == other.SubscriptionID &&
		s.CustomerID == other.CustomerID &&
		s.CurrentPeriodEnd.Equal(other.CurrentPeriodEnd)
}
