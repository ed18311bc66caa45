// Package session keeps per-browser key/value state on the server and
// notifies subscribers when it changes.
package session

import (
	"context"
	"errors"
	"time"
)

// Keys used by the application.
const (
	KeyUser      = "user"
	KeyAuthToken = "authToken"
	KeyAPICookie = "apiCookie"
	KeyFlash     = "flash"
)

// TokenSession means the booking API authenticates this browser through
// its own session cookie, so no bearer header is sent.
const TokenSession = "session"

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrStoreClosed    = errors.New("session store closed")
)

// Change describes a mutation of one browser session.
type Change struct {
	SessionID string   `json:"sessionId"`
	Keys      []string `json:"keys"`
}

// Has reports whether key was part of the change.
func (change Change) Has(key string) bool {
	for _, changed := range change.Keys {
		if changed == key {
			return true
		}
	}
	return false
}

// Store is a key/value store partitioned by session ID.
type Store interface {
	// Get returns all values of a session. Unknown sessions are empty.
	Get(ctx context.Context, sessionID string) (map[string]string, error)
	// Set merges values into a session and publishes a Change.
	Set(ctx context.Context, sessionID string, values map[string]string) error
	// Delete removes keys from a session and publishes a Change.
	Delete(ctx context.Context, sessionID string, keys ...string) error
	// Subscribe delivers Changes of one session until Unsubscribe is called
	// or ctx ends.
	Subscribe(ctx context.Context, sessionID string) (*Subscription, error)
	Close() error
}

// Sweeper is implemented by stores that need idle sessions removed
// explicitly.
type Sweeper interface {
	Sweep(ctx context.Context, maxIdle time.Duration) (int, error)
}
