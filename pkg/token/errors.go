package token

import "errors"

var (
	// ErrMalformedResponse is returned when the token endpoint response
	// cannot be decoded or carries no access token.
	ErrMalformedResponse = errors.New("token: malformed token response")

	// ErrEndpointUnreachable is returned when the token endpoint request
	// fails at the transport level or returns a non-2xx status.
	ErrEndpointUnreachable = errors.New("token: token endpoint unreachable")
)
