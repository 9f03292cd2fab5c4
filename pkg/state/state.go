package state

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// DefaultTTL is how long an unconsumed login attempt stays valid.
const DefaultTTL = 10 * time.Minute

// Attempt is the short-lived state of one pending login: created when the
// authorization redirect is issued, consumed exactly once by the matching
// callback, expired after its TTL otherwise. At most one live attempt
// exists per handle.
type Attempt struct {
	Handle         string    `json:"handle"`
	State          string    `json:"state"`    // anti-forgery token round-tripped through the redirect
	Verifier       string    `json:"verifier"` // PKCE code verifier, empty when PKCE is off
	ProviderID     string    `json:"provider_id"`
	RedirectTarget string    `json:"redirect_target"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// NewAttempt creates a pending login attempt with a fresh opaque handle
// and a cryptographically random anti-forgery token. When withPKCE is set
// a PKCE code verifier is generated as well. A non-positive ttl falls back
// to DefaultTTL.
func NewAttempt(providerID, redirectTarget string, ttl time.Duration, withPKCE bool) *Attempt {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	a := &Attempt{
		Handle:         uuid.NewString(),
		State:          newStateToken(),
		ProviderID:     providerID,
		RedirectTarget: redirectTarget,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
	if withPKCE {
		a.Verifier = oauth2.GenerateVerifier()
	}
	return a
}

// Expired reports whether the attempt is past its TTL.
func (a *Attempt) Expired() bool {
	return time.Now().After(a.ExpiresAt)
}

// matchesState compares the supplied anti-forgery token in constant time.
func (a *Attempt) matchesState(supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(a.State), []byte(supplied)) == 1
}

// Store persists pending login attempts keyed by their opaque handle.
//
// Consume must be atomic check-and-delete: the attempt is removed on the
// first call regardless of outcome, so a replayed callback with the same
// handle observes ErrNotFound, and a consume with a wrong anti-forgery
// token still burns the entry rather than leaving it live for another try.
type Store interface {
	// Save persists a new attempt until its ExpiresAt.
	Save(ctx context.Context, a *Attempt) error

	// Consume atomically retrieves and deletes the attempt stored under
	// handle, then validates it. Returns ErrNotFound for unknown or
	// already-consumed handles, ErrExpired past the TTL, and
	// ErrStateMismatch when suppliedState does not match.
	Consume(ctx context.Context, handle, suppliedState string) (*Attempt, error)
}

// newStateToken returns a 32-byte cryptographically random URL-safe token.
func newStateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("state: crypto/rand unavailable: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

// validate applies the shared expiry and anti-forgery checks after a
// backend has removed the entry.
func validate(a *Attempt, suppliedState string) (*Attempt, error) {
	if a.Expired() {
		return nil, ErrExpired
	}
	if !a.matchesState(suppliedState) {
		return nil, ErrStateMismatch
	}
	return a, nil
}
