// Package token inspects bearer credentials issued by the account service.
// The client treats tokens as opaque for authorization purposes, but when a
// token happens to be a JWT its exp claim lets the client refresh
// proactively instead of waiting for a 401.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt returns the token's expiry time. The second return value is
// false when the token is not a parseable JWT or carries no exp claim;
// such tokens are treated as non-expiring by the callers here.
func ExpiresAt(tokenString string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	// The signature belongs to the server; the client only reads claims.
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ExpiresWithin reports whether the token expires inside the given window.
// Tokens without a readable exp claim never report true.
func ExpiresWithin(tokenString string, window time.Duration) bool {
	exp, ok := ExpiresAt(tokenString)
	if !ok {
		return false
	}
	return time.Until(exp) < window
}

// IsExpired reports whether the token's exp claim is in the past.
func IsExpired(tokenString string) bool {
	return ExpiresWithin(tokenString, 0)
}
