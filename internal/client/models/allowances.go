package models

// Allowances holds consumable balance counters keyed by counter name
// (e.g. "generationTokens"). Balances change on nearly every fetch, so the
// sync engine replaces them wholesale without diffing. The client never
// decrements a balance speculatively.
type Allowances map[string]int64

// Get returns the named counter, or zero when the counter is absent.
func (a Allowances) Get(name string) int64 {
	return a[name]
}

// AccountSnapshot is a full account-state payload fetched from the remote
// authority at a point in time.
type AccountSnapshot struct {
	User         User
	Subscription *Subscription
	Allowances   Allowances
}
