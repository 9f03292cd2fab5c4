// Package db provides the PostgreSQL plumbing for the login attempt store.
//
// This package wraps [github.com/jackc/pgx/v5/pgxpool] to provide
// connection pooling, startup retry, health checks, and schema migrations
// with sensible defaults. The resulting pool is what state.NewPostgres
// consumes.
//
// # Configuration
//
// All settings are loaded from environment variables:
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL (required)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 10)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 5)
//	DATABASE_HEALTHCHECK_PERIOD - Health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection retry attempts (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 5s)
//	DATABASE_MIGRATIONS_TABLE   - Migrations table name (default: schema_migrations)
//
// # Usage
//
//	import (
//		"context"
//		"log"
//
//		pgmigrations "github.com/dmitrymomot/oauthflow/migrations/postgres"
//		"github.com/dmitrymomot/oauthflow/pkg/db"
//		"github.com/dmitrymomot/oauthflow/pkg/state"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		pool, err := db.Connect(ctx, cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer pool.Close()
//
//		if err := db.Migrate(ctx, pool, pgmigrations.Files, cfg.MigrationsTable, logger); err != nil {
//			log.Fatal(err)
//		}
//
//		store := state.NewPostgres(pool)
//		_ = store
//	}
//
// # Health Checks
//
// The [Healthcheck] function returns a closure suitable for health endpoints:
//
//	healthFn := db.Healthcheck(pool)
//	if err := healthFn(r.Context()); err != nil {
//		w.WriteHeader(http.StatusServiceUnavailable)
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure modes:
//
//   - [ErrFailedToParseDBConfig] - Invalid connection string format
//   - [ErrFailedToOpenDBConnection] - Connection failed after all retries
//   - [ErrHealthcheckFailed] - Database ping failed
//   - [ErrSetDialect] - Migration dialect configuration error
//   - [ErrApplyMigrations] - Migration execution failed
//
// Errors are wrapped using [errors.Join] to preserve the original error context.
package db
