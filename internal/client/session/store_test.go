package session

import (
	"sync"
	"testing"

	"github.com/avasiljevs/accountkeeper/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestNewStore_StartsIdleAndEmpty(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()
	require.Equal(t, StatusIdle, snap.Status)
	require.Empty(t, snap.Token)
	require.Nil(t, snap.User)
	require.Nil(t, snap.Subscription)
	require.Nil(t, snap.Allowances)
}

func TestSetters_ReplaceWholesale(t *testing.T) {
	s := NewStore()

	user := &models.User{UserID: "u-1", Username: "alice"}
	sub := &models.Subscription{Tier: models.TierScale}
	allow := models.Allowances{"generationTokens": 10}

	s.SetToken("tok-1")
	s.SetUser(user)
	s.SetSubscription(sub)
	s.SetAllowances(allow)

	snap := s.Snapshot()
	require.Equal(t, "tok-1", snap.Token)
	require.Same(t, user, snap.User)
	require.Same(t, sub, snap.Subscription)
	require.Equal(t, allow, snap.Allowances)
}

func TestSetSyncState_ErrorMessageLifecycle(t *testing.T) {
	s := NewStore()

	s.SetSyncState(StatusError, "Failed to load account data")
	snap := s.Snapshot()
	require.Equal(t, StatusError, snap.Status)
	require.Equal(t, "Failed to load account data", snap.Err)

	s.SetSyncState(StatusSuccess, "")
	snap = s.Snapshot()
	require.Equal(t, StatusSuccess, snap.Status)
	require.Empty(t, snap.Err)
}

func TestClear_ResetsEverything(t *testing.T) {
	s := NewStore()
	s.SetToken("tok-1")
	s.SetUser(&models.User{UserID: "u-1"})
	s.SetSubscription(&models.Subscription{Tier: models.TierBeast})
	s.SetAllowances(models.Allowances{"generationTokens": 5})
	s.SetSyncState(StatusError, "boom")

	s.Clear()

	snap := s.Snapshot()
	require.Equal(t, Snapshot{Status: StatusIdle}, snap)
}

func TestStore_ConcurrentReadersAndWriter(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.SetToken("tok")
			s.SetUser(&models.User{UserID: "u-1", Username: "alice"})
			s.SetSyncState(StatusSuccess, "")
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := s.Snapshot()
				// A populated user must always be fully formed.
				if snap.User != nil && snap.User.UserID != "u-1" {
					t.Error("observed partially written user")
					return
				}
			}
		}()
	}

	wg.Wait()
}
