package client

import "errors"

// ErrorKind is the closed enumeration of failure classes surfaced by the
// API boundary. Every remote failure is decoded into exactly one kind here;
// nothing downstream inspects payloads or status codes.
type ErrorKind uint8

const (
	// KindTransport covers network failures and server errors where
	// retrying later may help.
	KindTransport ErrorKind = iota
	// KindValidation covers rejected input ("fix your input").
	KindValidation
	// KindUnauthorized covers expired, invalid, or missing credentials.
	KindUnauthorized
	// KindCancelled marks a user-cancelled interactive flow. It is a
	// distinct, non-alarming outcome, not a failure to report.
	KindCancelled
)

// Sentinels for errors.Is matching. An *Error compares equal to the
// sentinel of its kind.
var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrCancelled    = errors.New("cancelled by user")
)

// Error is a structured API failure: a kind plus the server-provided or
// fallback human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match an *Error against the sentinel of its kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.Kind == KindTransport
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrCancelled:
		return e.Kind == KindCancelled
	default:
		return false
	}
}

// NewCancelled builds the distinct outcome for a user-cancelled interactive
// flow (e.g. a closed OAuth popup).
func NewCancelled(message string) *Error {
	return &Error{Kind: KindCancelled, Message: message}
}
