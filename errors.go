package oauthflow

import "errors"

// Error taxonomy for login outcomes. Every failure surfaced by the flow
// maps to exactly one of these kinds; raw transport errors and provider
// response bodies never escape past them.
var (
	// ErrUnknownProvider is returned when the provider id has no
	// registered descriptor. A client-visible 4xx-equivalent condition.
	ErrUnknownProvider = errors.New("oauthflow: unknown provider")

	// ErrInvalidState covers a missing, expired, or mismatched login
	// attempt. The three cases are deliberately collapsed into one
	// externally visible kind so callers cannot learn which check failed.
	ErrInvalidState = errors.New("oauthflow: invalid login state")

	// ErrProviderDenied is returned when the provider reported an error
	// on the callback, typically because the user declined consent.
	ErrProviderDenied = errors.New("oauthflow: provider denied authorization")

	// ErrTokenEndpointUnreachable is returned when the token exchange
	// fails at the transport level, times out, or returns a non-2xx
	// status. The flow never retries: the authorization code is single
	// use, so the caller must begin a fresh attempt.
	ErrTokenEndpointUnreachable = errors.New("oauthflow: token endpoint unreachable")

	// ErrMalformedTokenResponse is returned when the token response
	// cannot be decoded or carries no access token.
	ErrMalformedTokenResponse = errors.New("oauthflow: malformed token response")

	// ErrUserInfoUnavailable is returned when the userinfo endpoint
	// request fails or its payload cannot be decoded.
	ErrUserInfoUnavailable = errors.New("oauthflow: userinfo unavailable")

	// ErrIncompleteIdentity is returned when the userinfo payload lacks
	// the mandatory subject id.
	ErrIncompleteIdentity = errors.New("oauthflow: incomplete identity")
)
