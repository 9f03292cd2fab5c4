package state_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauthflow/pkg/state"
)

func newMemory(t *testing.T) *state.Memory {
	t.Helper()
	m := state.NewMemory(state.WithCleanupInterval(0))
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestMemory_Consume(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("first consume succeeds, second observes not found", func(t *testing.T) {
		t.Parallel()
		m := newMemory(t)

		a := state.NewAttempt("google", "/dash", time.Minute, false)
		require.NoError(t, m.Save(ctx, a))

		got, err := m.Consume(ctx, a.Handle, a.State)
		require.NoError(t, err)
		require.Equal(t, a.RedirectTarget, got.RedirectTarget)

		_, err = m.Consume(ctx, a.Handle, a.State)
		require.ErrorIs(t, err, state.ErrNotFound)
	})

	t.Run("unknown handle", func(t *testing.T) {
		t.Parallel()
		m := newMemory(t)
		_, err := m.Consume(ctx, "nope", "whatever")
		require.ErrorIs(t, err, state.ErrNotFound)
	})

	t.Run("state mismatch burns the entry", func(t *testing.T) {
		t.Parallel()
		m := newMemory(t)

		a := state.NewAttempt("google", "/", time.Minute, false)
		require.NoError(t, m.Save(ctx, a))

		_, err := m.Consume(ctx, a.Handle, "forged-state")
		require.ErrorIs(t, err, state.ErrStateMismatch)

		// The correct token no longer works either: single use.
		_, err = m.Consume(ctx, a.Handle, a.State)
		require.ErrorIs(t, err, state.ErrNotFound)
	})

	t.Run("expired attempt", func(t *testing.T) {
		t.Parallel()
		m := newMemory(t)

		a := state.NewAttempt("google", "/", time.Minute, false)
		a.ExpiresAt = time.Now().Add(-time.Second)
		require.NoError(t, m.Save(ctx, a))

		_, err := m.Consume(ctx, a.Handle, a.State)
		require.ErrorIs(t, err, state.ErrExpired)
	})

	t.Run("concurrent consume: exactly one wins", func(t *testing.T) {
		t.Parallel()
		m := newMemory(t)

		a := state.NewAttempt("google", "/", time.Minute, false)
		require.NoError(t, m.Save(ctx, a))

		const racers = 16
		var wg sync.WaitGroup
		results := make([]error, racers)
		for i := range racers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, results[i] = m.Consume(ctx, a.Handle, a.State)
			}()
		}
		wg.Wait()

		var wins, notFound int
		for _, err := range results {
			switch {
			case err == nil:
				wins++
			default:
				require.ErrorIs(t, err, state.ErrNotFound)
				notFound++
			}
		}
		require.Equal(t, 1, wins)
		require.Equal(t, racers-1, notFound)
	})
}

func TestMemory_Close(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := state.NewMemory(state.WithCleanupInterval(0))
	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "close is idempotent")

	err := m.Save(ctx, state.NewAttempt("google", "/", time.Minute, false))
	require.ErrorIs(t, err, state.ErrClosed)
}

func TestMemory_Janitor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := state.NewMemory(state.WithCleanupInterval(10 * time.Millisecond))
	t.Cleanup(func() { _ = m.Close() })

	a := state.NewAttempt("google", "/", time.Minute, false)
	a.ExpiresAt = time.Now().Add(20 * time.Millisecond)
	require.NoError(t, m.Save(ctx, a))

	require.Eventually(t, func() bool {
		_, err := m.Consume(ctx, a.Handle, a.State)
		return err != nil
	}, time.Second, 10*time.Millisecond)
}
