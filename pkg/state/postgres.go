package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps pending attempts in Postgres. Consume is a single
// DELETE ... RETURNING statement, which gives exactly-once semantics even
// across processes without an explicit transaction.
//
// The login_attempts table is created by the migration shipped in
// migrations/postgres; apply it with pkg/db.Migrate. Expired rows are not
// removed by Postgres itself — run a Janitor alongside this store.
type PostgresStore struct {
	pool  *pgxpool.Pool
	table string
}

// PostgresOption configures the Postgres-backed store.
type PostgresOption func(*PostgresStore)

// WithTable sets the attempts table name.
// Default: "login_attempts".
func WithTable(table string) PostgresOption {
	return func(s *PostgresStore) {
		if table != "" {
			s.table = table
		}
	}
}

// NewPostgres creates a Postgres-backed attempt store.
// The pool should be obtained from pkg/db.Connect.
func NewPostgres(pool *pgxpool.Pool, opts ...PostgresOption) *PostgresStore {
	s := &PostgresStore{
		pool:  pool,
		table: "login_attempts",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save persists a new attempt row.
func (s *PostgresStore) Save(ctx context.Context, a *Attempt) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (handle, state_token, verifier, provider_id, redirect_target, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, s.table)

	_, err := s.pool.Exec(ctx, query,
		a.Handle, a.State, a.Verifier, a.ProviderID, a.RedirectTarget, a.CreatedAt, a.ExpiresAt)
	return err
}

// Consume atomically retrieves and deletes the attempt under handle.
func (s *PostgresStore) Consume(ctx context.Context, handle, suppliedState string) (*Attempt, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE handle = $1
		RETURNING handle, state_token, verifier, provider_id, redirect_target, created_at, expires_at`, s.table)

	var a Attempt
	err := s.pool.QueryRow(ctx, query, handle).Scan(
		&a.Handle, &a.State, &a.Verifier, &a.ProviderID, &a.RedirectTarget, &a.CreatedAt, &a.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return validate(&a, suppliedState)
}

// DeleteExpired removes attempts past their TTL and reports how many rows
// were deleted. Called by the Janitor.
func (s *PostgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE expires_at < now()", s.table))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

var _ Store = (*PostgresStore)(nil)
