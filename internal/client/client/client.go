package client

import (
	"context"

	"github.com/avasiljevs/accountkeeper/internal/client/models"
)

// AuthResult carries the credential and identity returned by a successful
// authentication flow.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Client is the API contract against the remote account service. Operations
// that act on an authenticated session take the bearer token explicitly;
// the client itself holds no session state.
type Client interface {
	Close() error

	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, email, password, username string) (*AuthResult, error)
	OAuthLogin(ctx context.Context, providerToken string) (*AuthResult, error)

	VerifyEmail(ctx context.Context, verificationToken, userID string) (*models.User, error)
	ResendVerification(ctx context.Context, email string) error

	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, resetToken, newPassword, userID string) error

	RefreshToken(ctx context.Context, token string) (string, error)

	GetAccount(ctx context.Context, token, userID string) (*models.AccountSnapshot, error)

	CreateCheckoutSession(ctx context.Context, token, priceID, productID string) (string, error)
	CreatePortalSession(ctx context.Context, token string) (string, error)
}
