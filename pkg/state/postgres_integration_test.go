//go:build integration

package state_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauthflow/pkg/state"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("DATABASE_CONN_URL")
	if url == "" {
		t.Skip("DATABASE_CONN_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS login_attempts (
			handle          TEXT PRIMARY KEY,
			state_token     TEXT NOT NULL,
			verifier        TEXT NOT NULL DEFAULT '',
			provider_id     TEXT NOT NULL,
			redirect_target TEXT NOT NULL DEFAULT '',
			created_at      TIMESTAMPTZ NOT NULL,
			expires_at      TIMESTAMPTZ NOT NULL
		)`)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, "TRUNCATE login_attempts")
		pool.Close()
	})

	return pool
}

func TestPostgresStore_Consume(t *testing.T) {
	ctx := context.Background()
	s := state.NewPostgres(newTestPool(t))

	t.Run("save and consume once", func(t *testing.T) {
		a := state.NewAttempt("github", "/repos", time.Minute, false)
		require.NoError(t, s.Save(ctx, a))

		got, err := s.Consume(ctx, a.Handle, a.State)
		require.NoError(t, err)
		require.Equal(t, "github", got.ProviderID)

		_, err = s.Consume(ctx, a.Handle, a.State)
		require.ErrorIs(t, err, state.ErrNotFound)
	})

	t.Run("expired attempt", func(t *testing.T) {
		a := state.NewAttempt("github", "/", time.Minute, false)
		a.ExpiresAt = time.Now().Add(-time.Second)
		require.NoError(t, s.Save(ctx, a))

		_, err := s.Consume(ctx, a.Handle, a.State)
		require.ErrorIs(t, err, state.ErrExpired)
	})

	t.Run("delete expired", func(t *testing.T) {
		a := state.NewAttempt("github", "/", time.Minute, false)
		a.ExpiresAt = time.Now().Add(-time.Second)
		require.NoError(t, s.Save(ctx, a))

		n, err := s.DeleteExpired(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, int64(1))

		_, err = s.Consume(ctx, a.Handle, a.State)
		require.ErrorIs(t, err, state.ErrNotFound)
	})
}
