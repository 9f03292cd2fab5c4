package state

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-memory attempt store with TTL-based expiration and a
// background janitor for abandoned attempts. Suitable for single-process
// deployments and tests; use Redis or Postgres when callbacks may land on
// a different process than the one that issued the redirect.
type Memory struct {
	attempts map[string]*Attempt
	done     chan struct{}
	mu       sync.Mutex
	closed   bool
}

// MemoryOption configures the in-memory store.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	cleanupInterval time.Duration
}

// WithCleanupInterval sets how often abandoned attempts are removed by
// the background janitor goroutine. Zero disables the janitor.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// NewMemory creates a new in-memory attempt store.
//
// Example:
//
//	store := state.NewMemory(state.WithCleanupInterval(30 * time.Second))
//	defer store.Close()
func NewMemory(opts ...MemoryOption) *Memory {
	o := &memoryOptions{cleanupInterval: time.Minute}
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		attempts: make(map[string]*Attempt),
		done:     make(chan struct{}),
	}
	if o.cleanupInterval > 0 {
		go m.janitor(o.cleanupInterval)
	}
	return m
}

// Save persists a new attempt.
func (m *Memory) Save(_ context.Context, a *Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.attempts[a.Handle] = a
	return nil
}

// Consume atomically retrieves and deletes the attempt under handle.
// Exactly-once: any subsequent call with the same handle returns ErrNotFound.
func (m *Memory) Consume(_ context.Context, handle, suppliedState string) (*Attempt, error) {
	m.mu.Lock()
	a, ok := m.attempts[handle]
	if ok {
		delete(m.attempts, handle)
	}
	m.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}
	return validate(a, suppliedState)
}

// Close stops the background janitor goroutine and marks the store closed.
// Close is idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	return nil
}

func (m *Memory) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for handle, a := range m.attempts {
		if now.After(a.ExpiresAt) {
			delete(m.attempts, handle)
		}
	}
}

var _ Store = (*Memory)(nil)
