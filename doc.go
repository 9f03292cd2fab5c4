// Package oauthflow is an OAuth2 authorization-code relying-party core:
// provider-pluggable "login with third-party provider" with single-use
// attempt state and tolerant token response parsing.
//
// The package wires four collaborators into one Flow:
//
//   - pkg/provider: registry of identity provider descriptors
//   - pkg/state: single-use per-attempt state (anti-forgery token, PKCE
//     verifier, redirect target) behind memory, Redis, or Postgres
//   - pkg/token: token endpoint exchange, including the quirky
//     query-string response mode some providers use
//   - pkg/userinfo: identity resolution and normalization
//
// # Usage
//
//	registry, err := provider.NewRegistry(
//	    provider.Google(googleCfg),
//	    provider.QQ(qqCfg),
//	)
//	if err != nil {
//	    return err
//	}
//
//	store := state.NewMemory()
//	defer store.Close()
//
//	flow := oauthflow.New(registry, store,
//	    oauthflow.WithLogger(logger),
//	    oauthflow.WithExchangeTimeout(5*time.Second),
//	)
//
//	// Login endpoint: redirect the user to the provider.
//	redirect, err := flow.BeginLogin(ctx, "google", "/dashboard")
//	// persist redirect.Handle (e.g. signed cookie), then 302 to redirect.URL
//
//	// Callback endpoint:
//	outcome := flow.HandleCallback(ctx, oauthflow.Callback{
//	    ProviderID: "google",
//	    Handle:     handleFromCookie,
//	    Code:       r.URL.Query().Get("code"),
//	    State:      r.URL.Query().Get("state"),
//	    ErrorCode:  r.URL.Query().Get("error"),
//	})
//	if outcome.Succeeded() {
//	    // establish the principal in your session, then redirect to
//	    // outcome.RedirectTarget
//	}
//
// pkg/weblogin packages this wiring as a chi router with pluggable
// success/failure hooks for callers that want ready-made HTTP endpoints.
//
// # Outcomes and Errors
//
// HandleCallback always returns a SessionOutcome; failures carry exactly
// one taxonomy kind (ErrInvalidState, ErrProviderDenied, and so on)
// checkable with errors.Is, plus a safe user-displayable Description. Raw
// transport errors and provider response bodies never escape.
//
// State validation detail is deliberately collapsed: missing, expired, and
// mismatched attempts all surface as ErrInvalidState.
//
// # Single-Use Guarantees
//
// Attempts are consumed exactly once, atomically, before anything else
// happens in the callback — a replayed callback fails even when the first
// one did. Authorization codes are never exchanged twice: exchange
// failures are terminal for the attempt and the caller must start a fresh
// login.
package oauthflow
