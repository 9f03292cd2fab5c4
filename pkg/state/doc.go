// Package state stores per-login-attempt state: the anti-forgery token,
// the optional PKCE verifier, and the redirect target, keyed by an opaque
// session handle.
//
// Attempts are strictly single-use. Consume is an atomic check-and-delete
// in every backend: the first call removes the entry no matter what, so a
// replayed callback observes ErrNotFound and a consume with a wrong
// anti-forgery token burns the entry instead of leaving it live. Under
// concurrent replay on one handle, exactly one caller wins.
//
// # Backends
//
//   - Memory: mutex-guarded map with a janitor goroutine. Single-process
//     deployments and tests.
//   - RedisStore: per-entry TTLs, consume via a server-side Lua script.
//   - PostgresStore: consume via DELETE ... RETURNING; pair with a Janitor
//     for expired-row sweeps.
//
// # Usage
//
//	store := state.NewMemory()
//	defer store.Close()
//
//	attempt := state.NewAttempt("google", "/dashboard", 10*time.Minute, true)
//	if err := store.Save(ctx, attempt); err != nil {
//	    return err
//	}
//
//	// later, in the callback:
//	attempt, err := store.Consume(ctx, handle, returnedState)
//	switch {
//	case errors.Is(err, state.ErrNotFound):
//	case errors.Is(err, state.ErrExpired):
//	case errors.Is(err, state.ErrStateMismatch):
//	}
package state
