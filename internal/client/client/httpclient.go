package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avasiljevs/accountkeeper/internal/client/models"
	"github.com/avasiljevs/accountkeeper/internal/common"
	"github.com/google/uuid"
)

// HTTPClient implements Client over the account service's HTTP/JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient constructs a client for the given base URL. Timeouts are a
// transport concern and live here, not in the flows.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Close releases idle connections held by the underlying transport.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// errorPayload is the error body shape the account service returns alongside
// non-2xx statuses.
type errorPayload struct {
	Error string `json:"error"`
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindTransport
	}
}

// doJSON executes one request/response cycle: it attaches the bearer token
// and a correlation id, sends the JSON body, and decodes either the success
// payload into out or the error payload into an *Error. Fallback is the
// operation-specific message used when the server provides none.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, in, out any, fallback string) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Caller-initiated cancellation is not a server failure.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &Error{Kind: KindTransport, Message: fallback}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload errorPayload
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		message := payload.Error
		if message == "" {
			message = fallback
		}
		return &Error{Kind: kindForStatus(resp.StatusCode), Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindTransport, Message: fallback}
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", in, &out, "Login failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, password, username string) (*AuthResult, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Username string `json:"username"`
	}{email, password, username}

	var out AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", "", in, &out, "Signup failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) OAuthLogin(ctx context.Context, providerToken string) (*AuthResult, error) {
	in := struct {
		AccessToken string `json:"accessToken"`
	}{providerToken}

	var out AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/oauth", "", in, &out, "OAuth login failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, verificationToken, userID string) (*models.User, error) {
	in := struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
	}{verificationToken, userID}

	var out struct {
		User models.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/verify-email", "", in, &out, "Email verification failed"); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) ResendVerification(ctx context.Context, email string) error {
	in := struct {
		Email string `json:"email"`
	}{email}

	return c.doJSON(ctx, http.MethodPost, "/api/auth/resend-verification", "", in, nil, "Failed to resend verification email")
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	in := struct {
		Email string `json:"email"`
	}{email}

	return c.doJSON(ctx, http.MethodPost, "/api/auth/request-password-reset", "", in, nil, "Failed to request password reset")
}

func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword, userID string) error {
	in := struct {
		Token    string `json:"token"`
		Password string `json:"password"`
		UserID   string `json:"userId"`
	}{resetToken, newPassword, userID}

	return c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password", "", in, nil, "Failed to reset password")
}

func (c *HTTPClient) RefreshToken(ctx context.Context, token string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/refresh", token, nil, &out, "Failed to refresh token"); err != nil {
		return "", err
	}
	return out.Token, nil
}

// accountUserPayload mirrors the snapshot wire shape: subscription and
// allowances arrive nested inside the user object.
type accountUserPayload struct {
	models.User
	Subscription *models.Subscription `json:"subscription"`
	Allowances   models.Allowances    `json:"allowances"`
}

func (c *HTTPClient) GetAccount(ctx context.Context, token, userID string) (*models.AccountSnapshot, error) {
	var out struct {
		User accountUserPayload `json:"user"`
	}

	path := "/api/user/account?userId=" + url.QueryEscape(userID)
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out, "Failed to load account data"); err != nil {
		return nil, err
	}

	return &models.AccountSnapshot{
		User:         out.User.User,
		Subscription: out.User.Subscription,
		Allowances:   out.User.Allowances,
	}, nil
}

func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, token, priceID, productID string) (string, error) {
	in := struct {
		PriceID   string `json:"priceId"`
		ProductID string `json:"productId"`
	}{priceID, productID}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/payments/create-checkout-session", token, in, &out, "Failed to create checkout session"); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *HTTPClient) CreatePortalSession(ctx context.Context, token string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/payments/create-portal-session", token, struct{}{}, &out, "Failed to create portal session"); err != nil {
		return "", err
	}
	return out.URL, nil
}
