// Package redis provides the Redis client plumbing for the login attempt store.
//
// This package wraps [github.com/redis/go-redis/v9] to provide connection
// pooling, startup retry, health checks, and graceful shutdown with
// sensible defaults. The resulting client is what state.NewRedis consumes.
//
// # Configuration
//
// All settings are configured via functional options:
//
//   - WithPoolSize(n int) — Maximum number of connections (default: 10)
//   - WithMinIdleConns(n int) — Minimum idle connections (default: 5)
//   - WithRetry(attempts int, interval time.Duration) — Startup retry (default: 3 attempts, 5s)
//   - WithTimeouts(read, write, dial time.Duration) — Operation timeouts (defaults: 3s/3s/5s)
//
// # Usage
//
//	import (
//		"context"
//		"log"
//		"os"
//
//		"github.com/dmitrymomot/oauthflow/pkg/redis"
//		"github.com/dmitrymomot/oauthflow/pkg/state"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//			redis.WithPoolSize(20),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer client.Close()
//
//		store := state.NewRedis(client)
//		_ = store
//	}
//
// # Health Checks
//
// The [Healthcheck] function returns a closure suitable for health endpoints:
//
//	healthFn := redis.Healthcheck(client)
//	if err := healthFn(r.Context()); err != nil {
//		w.WriteHeader(http.StatusServiceUnavailable)
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure modes:
//
//   - [ErrEmptyConnectionURL] - Empty connection URL provided
//   - [ErrFailedToParseURL] - Invalid connection URL format or scheme
//   - [ErrConnectionFailed] - Connection failed after all retry attempts
//   - [ErrHealthcheckFailed] - Redis ping failed
//
// Errors are wrapped using [errors.Join] to preserve the original error context.
package redis
