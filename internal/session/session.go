package session

import (
	"errors"
	"fmt"
)

// MaxIDLength bounds accepted tokens so pathological keys cannot grow the
// progress store unboundedly
const MaxIDLength = 128

// ErrInvalidID token failed shape validation
var ErrInvalidID = errors.New("session id must be 1-128 printable characters without spaces")

// ID opaque client-generated session token. Not an auth credential, only a
// tracking key
type ID string

// Anonymous zero token for requests carrying no X-Session-Id header
const Anonymous ID = ""

// Parse validate raw token shape and wrap it into an ID
func Parse(raw string) (ID, error) {
	if raw == "" || len(raw) > MaxIDLength {
		return Anonymous, ErrInvalidID
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c <= ' ' || c > '~' {
			return Anonymous, fmt.Errorf("invalid byte at offset %d: %w", i, ErrInvalidID)
		}
	}
	return ID(raw), nil
}

// IsAnonymous report whether the token belongs to the anonymous bucket
func (id ID) IsAnonymous() bool {
	return id == Anonymous
}

func (id ID) String() string {
	return string(id)
}
