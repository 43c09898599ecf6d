// Package session holds the client's in-memory session state: credential
// token, user identity, subscription, allowance balances, and sync status.
// The Store is the single source of truth read by every consumer.
package session

import (
	"sync"

	"github.com/avasiljevs/accountkeeper/internal/client/models"
)

// SyncStatus is the lifecycle state of the last account reconciliation.
type SyncStatus string

const (
	StatusIdle    SyncStatus = "idle"
	StatusLoading SyncStatus = "loading"
	StatusSuccess SyncStatus = "success"
	StatusError   SyncStatus = "error"
)

// Snapshot is a fully-formed view of the session at a point in time.
// Pointer fields reference values that are immutable once stored: writers
// always replace, never mutate in place, so readers may hold a Snapshot
// without copying.
type Snapshot struct {
	Token        string
	User         *models.User
	Subscription *models.Subscription
	Allowances   models.Allowances
	Status       SyncStatus
	Err          string
}

// Store is the single-writer session container. Every setter replaces its
// field wholesale; no field is ever patched in place, which keeps
// interleavings safe without fine-grained locking.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewStore() *Store {
	return &Store{snap: Snapshot{Status: StatusIdle}}
}

// Snapshot returns the current session state. Concurrent readers always
// observe a fully-formed snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Token returns just the current credential token.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Token
}

// SetToken replaces the current credential token.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Token = token
}

// SetUser replaces the cached user wholesale. Callers must pass a complete,
// already-merged value.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.User = user
}

// SetSubscription replaces the cached subscription wholesale. A nil value
// means "no subscription" and is treated as the free tier by consumers.
func (s *Store) SetSubscription(sub *models.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Subscription = sub
}

// SetAllowances replaces the allowance balances wholesale.
func (s *Store) SetAllowances(a models.Allowances) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Allowances = a
}

// SetSyncState records the outcome of an account reconciliation attempt.
// The error message is cleared on any non-error status.
func (s *Store) SetSyncState(status SyncStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Status = status
	if status == StatusError {
		s.snap.Err = errMsg
	} else {
		s.snap.Err = ""
	}
}

// Clear resets every field to its empty value. This is the signout path and
// the only place outside explicit expiry handling where the credential
// token may be dropped.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{Status: StatusIdle}
}
