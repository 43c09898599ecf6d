// Package models defines the client-side account data model: user identity,
// subscription, and consumable allowance balances. Values are replaced
// wholesale from trusted sources (auth flow results or account snapshots),
// never field-mutated in place.
package models

import "time"

// EmailPreferences is the notification opt-in state attached to a user.
type EmailPreferences struct {
	Notifications bool `json:"notifications"`
}

// User is the account identity as reported by the authority of record.
type User struct {
	UserID           string           `json:"userId"`
	Username         string           `json:"username"`
	Email            string           `json:"email"`
	IsVerified       bool             `json:"isVerified"`
	IsAdmin          bool             `json:"isAdmin"`
	CreatedAt        time.Time        `json:"createdAt"`
	EmailPreferences EmailPreferences `json:"emailPreferences"`
}

// Equal reports whether the tracked fields of two users match. The merge
// step uses it to decide whether a fetched snapshot warrants a store write;
// it is never used to patch individual fields.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.UserID == other.UserID &&
		u.Username == other.Username &&
		u.Email == other.Email &&
		u.IsVerified == other.IsVerified &&
		u.IsAdmin == other.IsAdmin &&
		u.CreatedAt.Equal(other.CreatedAt) &&
		u.EmailPreferences.Notifications == other.EmailPreferences.Notifications
}
