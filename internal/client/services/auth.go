// Package services contains the application services of the AccountKeeper
// client: authentication flows, account synchronization, and billing
// session brokering. Services orchestrate the API client, the in-memory
// session store, and offline credential storage.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avasiljevs/accountkeeper/internal/client/client"
	"github.com/avasiljevs/accountkeeper/internal/client/models"
	"github.com/avasiljevs/accountkeeper/internal/client/repositories/credentials"
	"github.com/avasiljevs/accountkeeper/internal/client/session"
	"github.com/avasiljevs/accountkeeper/internal/common"
	"github.com/avasiljevs/accountkeeper/internal/logging"
	"github.com/avasiljevs/accountkeeper/internal/token"
)

// AuthService drives the credential lifecycle. Every flow that yields a
// token commits it to the session store and to offline credential storage
// in one step, so the two never disagree.
type AuthService interface {
	// Restore loads persisted credentials into the session store. A missing
	// record is not an error; the session simply stays signed out.
	Restore(ctx context.Context) error

	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, username, email, password string) error

	// OAuthLogin exchanges a provider token for a first-party session.
	// When the resulting user is unverified a verification email resend is
	// fired as a side effect; its failure is logged, not returned.
	OAuthLogin(ctx context.Context, providerToken string) error

	// VerifyEmail confirms the signed-in user's address and forces an
	// account resync, since verification commonly unlocks entitlements.
	VerifyEmail(ctx context.Context, verificationToken string) error
	ResendVerification(ctx context.Context, email string) error

	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, resetToken, newPassword, confirmPassword, userID string) error

	// RefreshToken exchanges the current token for a fresh one. With no
	// token in the session or in offline storage it fails synchronously
	// with common.ErrNoToken, before any network traffic. A refresh the
	// server rejects as unauthorized is unrecoverable: the session and the
	// offline credentials are dropped and the error matches
	// common.ErrTokenExpired.
	RefreshToken(ctx context.Context) error

	// EnsureFreshToken refreshes only when the current token expires within
	// the given window. Opaque tokens are treated as non-expiring.
	EnsureFreshToken(ctx context.Context, within time.Duration) error

	// Signout clears the session and offline credentials. It never fails:
	// storage errors are logged and swallowed so signout always lands.
	Signout(ctx context.Context) error

	Close()
}

type authService struct {
	client   client.Client
	store    *session.Store
	creds    credentials.Repository
	accounts AccountService
	log      logging.Logger
}

// NewAuthService constructs an AuthService. accounts may be nil when no
// post-verification sync is wanted (some tests do this).
func NewAuthService(apiClient client.Client, store *session.Store, creds credentials.Repository, accounts AccountService, log logging.Logger) AuthService {
	return &authService{
		client:   apiClient,
		store:    store,
		creds:    creds,
		accounts: accounts,
		log:      log.With("component", "auth"),
	}
}

func (s *authService) Close() {
	if err := s.client.Close(); err != nil {
		s.log.Warn(context.Background(), "client close failed", "error", err)
	}
}

func (s *authService) Restore(ctx context.Context) error {
	saved, err := s.creds.Load(ctx)
	if err != nil {
		return fmt.Errorf("offline data loading error: %w", err)
	}
	if saved == nil {
		return nil
	}
	s.store.SetToken(saved.Token)
	s.store.SetUser(&models.User{
		UserID:   saved.UserID,
		Username: saved.Username,
		Email:    saved.Email,
	})
	s.log.Debug(ctx, "session restored", "userId", saved.UserID)
	return nil
}

// commit records an authentication result in the session store and in
// offline storage.
func (s *authService) commit(ctx context.Context, res *client.AuthResult) error {
	s.store.SetToken(res.Token)
	user := res.User
	s.store.SetUser(&user)

	err := s.creds.Save(ctx, &credentials.Credentials{
		Token:    res.Token,
		UserID:   res.User.UserID,
		Email:    res.User.Email,
		Username: res.User.Username,
	})
	if err != nil {
		return fmt.Errorf("offline data saving error: %w", err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) error {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := s.commit(ctx, res); err != nil {
		return err
	}
	s.log.Info(ctx, "logged in", "userId", res.User.UserID)
	return nil
}

func (s *authService) Signup(ctx context.Context, username, email, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	res, err := s.client.Signup(ctx, email, password, username)
	if err != nil {
		return err
	}
	if err := s.commit(ctx, res); err != nil {
		return err
	}
	s.log.Info(ctx, "signed up", "userId", res.User.UserID)
	return nil
}

func (s *authService) OAuthLogin(ctx context.Context, providerToken string) error {
	if providerToken == "" {
		return client.NewCancelled("OAuth login was cancelled")
	}
	res, err := s.client.OAuthLogin(ctx, providerToken)
	if err != nil {
		return err
	}
	if err := s.commit(ctx, res); err != nil {
		return err
	}
	if !res.User.IsVerified {
		if err := s.client.ResendVerification(ctx, res.User.Email); err != nil {
			s.log.Warn(ctx, "verification resend failed", "email", res.User.Email, "error", err)
		}
	}
	s.log.Info(ctx, "logged in via oauth", "userId", res.User.UserID)
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, verificationToken string) error {
	snap := s.store.Snapshot()
	if snap.User == nil {
		return common.ErrNoToken
	}
	user, err := s.client.VerifyEmail(ctx, verificationToken, snap.User.UserID)
	if err != nil {
		return err
	}
	s.store.SetUser(user)
	if s.accounts != nil {
		// Verification often flips entitlements server-side; resync now.
		if err := s.accounts.FetchAccount(ctx, true); err != nil {
			s.log.Warn(ctx, "post-verification sync failed", "error", err)
		}
	}
	return nil
}

func (s *authService) ResendVerification(ctx context.Context, email string) error {
	return s.client.ResendVerification(ctx, email)
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	return s.client.RequestPasswordReset(ctx, email)
}

func (s *authService) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword, confirmPassword, userID string) error {
	if resetToken == "" {
		return common.ErrMissingField
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	if newPassword != confirmPassword {
		return common.ErrPasswordMismatch
	}
	// Deliberately leaves the session untouched: the reset flow runs
	// signed out and ends at the login prompt.
	return s.client.ConfirmPasswordReset(ctx, resetToken, newPassword, userID)
}

func (s *authService) RefreshToken(ctx context.Context) error {
	tok := s.store.Token()
	if tok == "" {
		saved, err := s.creds.Load(ctx)
		if err != nil {
			return fmt.Errorf("offline data loading error: %w", err)
		}
		if saved != nil {
			tok = saved.Token
		}
	}
	if tok == "" {
		return common.ErrNoToken
	}

	fresh, err := s.client.RefreshToken(ctx, tok)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			// The server no longer honors this token; keeping it would just
			// replay a dead credential on every call. Drop the session and
			// the offline copy.
			s.store.Clear()
			if cerr := s.creds.Clear(ctx); cerr != nil {
				s.log.Warn(ctx, "offline credential cleanup failed", "error", cerr)
			}
			s.log.Info(ctx, "session dropped after rejected refresh")
			return fmt.Errorf("%w: %w", common.ErrTokenExpired, err)
		}
		return err
	}
	s.store.SetToken(fresh)

	snap := s.store.Snapshot()
	if snap.User != nil {
		err = s.creds.Save(ctx, &credentials.Credentials{
			Token:    fresh,
			UserID:   snap.User.UserID,
			Email:    snap.User.Email,
			Username: snap.User.Username,
		})
		if err != nil {
			return fmt.Errorf("offline data saving error: %w", err)
		}
	}
	s.log.Debug(ctx, "token refreshed")
	return nil
}

func (s *authService) EnsureFreshToken(ctx context.Context, within time.Duration) error {
	tok := s.store.Token()
	if tok == "" {
		return common.ErrNoToken
	}
	if !token.ExpiresWithin(tok, within) {
		return nil
	}
	return s.RefreshToken(ctx)
}

func (s *authService) Signout(ctx context.Context) error {
	s.store.Clear()
	if err := s.creds.Clear(ctx); err != nil {
		s.log.Warn(ctx, "offline credential cleanup failed", "error", err)
	}
	s.log.Info(ctx, "signed out")
	return nil
}
