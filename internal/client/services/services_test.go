package services

import (
	"context"
	"sync"
	"time"

	"github.com/avasiljevs/accountkeeper/internal/client/client"
	"github.com/avasiljevs/accountkeeper/internal/client/models"
	"github.com/avasiljevs/accountkeeper/internal/client/repositories/credentials"
)

// ---- fake client ----

// fakeClient implements client.Client for unit tests. Return values and
// errors are injected per call; Last* fields record arguments for
// assertions.
type fakeClient struct {
	mu sync.Mutex

	CloseErr error

	LoginRet *client.AuthResult
	LoginErr error

	SignupRet *client.AuthResult
	SignupErr error

	OAuthRet *client.AuthResult
	OAuthErr error

	VerifyEmailRet *models.User
	VerifyEmailErr error

	ResendErr error

	RequestResetErr error
	ConfirmResetErr error

	RefreshRet string
	RefreshErr error

	GetAccountRet *models.AccountSnapshot
	GetAccountErr error
	// GetAccountHook, when set, runs inside GetAccount before returning.
	GetAccountHook func(ctx context.Context)

	CheckoutRet string
	CheckoutErr error
	PortalRet   string
	PortalErr   error

	LastLoginEmail    string
	LastLoginPassword string

	LastSignupEmail    string
	LastSignupPassword string
	LastSignupUsername string

	LastOAuthToken string

	LastVerifyToken  string
	LastVerifyUserID string

	LastResendEmail string

	LastRequestResetEmail string

	LastConfirmResetToken    string
	LastConfirmResetPassword string
	LastConfirmResetUserID   string

	LastRefreshToken string

	LastAccountToken  string
	LastAccountUserID string
	GetAccountCalls   int

	LastCheckoutToken     string
	LastCheckoutPriceID   string
	LastCheckoutProductID string
	LastPortalToken       string
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Login(ctx context.Context, email, password string) (*client.AuthResult, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, email, password, username string) (*client.AuthResult, error) {
	f.LastSignupEmail = email
	f.LastSignupPassword = password
	f.LastSignupUsername = username
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) OAuthLogin(ctx context.Context, providerToken string) (*client.AuthResult, error) {
	f.LastOAuthToken = providerToken
	return f.OAuthRet, f.OAuthErr
}

func (f *fakeClient) VerifyEmail(ctx context.Context, verificationToken, userID string) (*models.User, error) {
	f.LastVerifyToken = verificationToken
	f.LastVerifyUserID = userID
	return f.VerifyEmailRet, f.VerifyEmailErr
}

func (f *fakeClient) ResendVerification(ctx context.Context, email string) error {
	f.LastResendEmail = email
	return f.ResendErr
}

func (f *fakeClient) RequestPasswordReset(ctx context.Context, email string) error {
	f.LastRequestResetEmail = email
	return f.RequestResetErr
}

func (f *fakeClient) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword, userID string) error {
	f.LastConfirmResetToken = resetToken
	f.LastConfirmResetPassword = newPassword
	f.LastConfirmResetUserID = userID
	return f.ConfirmResetErr
}

func (f *fakeClient) RefreshToken(ctx context.Context, token string) (string, error) {
	f.LastRefreshToken = token
	return f.RefreshRet, f.RefreshErr
}

func (f *fakeClient) GetAccount(ctx context.Context, token, userID string) (*models.AccountSnapshot, error) {
	f.mu.Lock()
	f.LastAccountToken = token
	f.LastAccountUserID = userID
	f.GetAccountCalls++
	f.mu.Unlock()
	if f.GetAccountHook != nil {
		f.GetAccountHook(ctx)
	}
	return f.GetAccountRet, f.GetAccountErr
}

func (f *fakeClient) CreateCheckoutSession(ctx context.Context, token, priceID, productID string) (string, error) {
	f.LastCheckoutToken = token
	f.LastCheckoutPriceID = priceID
	f.LastCheckoutProductID = productID
	return f.CheckoutRet, f.CheckoutErr
}

func (f *fakeClient) CreatePortalSession(ctx context.Context, token string) (string, error) {
	f.LastPortalToken = token
	return f.PortalRet, f.PortalErr
}

func (f *fakeClient) accountCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.GetAccountCalls
}

// ---- fake credentials repository ----

// fakeCreds is an in-memory credentials.Repository.
type fakeCreds struct {
	Saved    *credentials.Credentials
	LoadErr  error
	SaveErr  error
	ClearErr error

	SaveCalls  int
	ClearCalls int
}

func (f *fakeCreds) Load(ctx context.Context) (*credentials.Credentials, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	return f.Saved, nil
}

func (f *fakeCreds) Save(ctx context.Context, creds *credentials.Credentials) error {
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	c := *creds
	f.Saved = &c
	return nil
}

func (f *fakeCreds) Clear(ctx context.Context) error {
	f.ClearCalls++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.Saved = nil
	return nil
}

// ---- fake account service ----

type fakeAccounts struct {
	FetchErr   error
	FetchCalls int
	LastForce  bool
}

func (f *fakeAccounts) FetchAccount(ctx context.Context, force bool) error {
	f.FetchCalls++
	f.LastForce = force
	return f.FetchErr
}

func (f *fakeAccounts) LastFetchedAt() time.Time { return time.Time{} }
