package services

import (
	"context"
	"sync"
	"time"

	"github.com/avasiljevs/accountkeeper/internal/client/client"
	"github.com/avasiljevs/accountkeeper/internal/client/session"
	"github.com/avasiljevs/accountkeeper/internal/logging"
)

// DefaultSyncThrottle bounds remote call volume: unforced fetches inside
// this window after a successful fetch are no-ops.
const DefaultSyncThrottle = 60 * time.Second

// AccountService reconciles the session store against the authority of
// record.
//
// Contract:
//   - FetchAccount: fetch the account snapshot and diff-merge it into the
//     session store. force bypasses the throttle. Overlapping calls for the
//     same session coalesce into the in-flight fetch; a fetch is never
//     issued twice in parallel.
//   - LastFetchedAt: time of the last successful fetch (zero before any).
//
// Failures are absorbed into the session's sync state (status + error
// message) and returned to the immediate caller as data; cached session
// fields are never touched by a failed fetch.
type AccountService interface {
	FetchAccount(ctx context.Context, force bool) error
	LastFetchedAt() time.Time
}

type fetchCall struct {
	done chan struct{}
	err  error
}

type accountService struct {
	client   client.Client
	store    *session.Store
	log      logging.Logger
	throttle time.Duration

	// now is a test seam.
	now func() time.Time

	mu            sync.Mutex
	lastFetchedAt time.Time
	inflight      *fetchCall
}

// NewAccountService constructs an AccountService with the given throttle
// window; pass DefaultSyncThrottle unless configured otherwise.
func NewAccountService(apiClient client.Client, store *session.Store, log logging.Logger, throttle time.Duration) AccountService {
	return &accountService{
		client:   apiClient,
		store:    store,
		log:      log.With("component", "account-sync"),
		throttle: throttle,
		now:      time.Now,
	}
}

func (s *accountService) LastFetchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFetchedAt
}

// FetchAccount is a no-op without a credential token or user identity.
// The token is read once, up front: a refresh that lands mid-fetch does not
// invalidate the snapshot, and the next fetch takes a fresh token.
func (s *accountService) FetchAccount(ctx context.Context, force bool) error {
	snap := s.store.Snapshot()
	if snap.Token == "" || snap.User == nil {
		return nil
	}

	s.mu.Lock()
	if call := s.inflight; call != nil {
		// Coalesce: await the in-flight fetch so both callers observe the
		// same resulting store state.
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if !force && s.now().Sub(s.lastFetchedAt) < s.throttle {
		s.mu.Unlock()
		return nil
	}
	call := &fetchCall{done: make(chan struct{})}
	s.inflight = call
	s.mu.Unlock()

	call.err = s.fetchAndMerge(ctx, snap.Token, snap.User.UserID)

	s.mu.Lock()
	s.inflight = nil
	if call.err == nil {
		s.lastFetchedAt = s.now()
	}
	s.mu.Unlock()
	close(call.done)

	return call.err
}

// fetchAndMerge applies the diff-then-write policy: field-level comparison
// decides whether to write, the write itself is always a wholesale
// replacement.
func (s *accountService) fetchAndMerge(ctx context.Context, tok, userID string) error {
	s.store.SetSyncState(session.StatusLoading, "")

	fetched, err := s.client.GetAccount(ctx, tok, userID)
	if err != nil {
		// Fail-soft: stale data beats a blanked session.
		s.store.SetSyncState(session.StatusError, err.Error())
		s.log.Warn(ctx, "account fetch failed", "userId", userID, "error", err)
		return err
	}

	cur := s.store.Snapshot()

	if !cur.User.Equal(&fetched.User) {
		user := fetched.User
		s.store.SetUser(&user)
	}
	if !cur.Subscription.Equal(fetched.Subscription) {
		s.store.SetSubscription(fetched.Subscription)
	}
	if fetched.Allowances != nil {
		s.store.SetAllowances(fetched.Allowances)
	}

	s.store.SetSyncState(session.StatusSuccess, "")
	s.log.Debug(ctx, "account synced", "userId", userID)
	return nil
}
