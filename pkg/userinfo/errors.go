package userinfo

import "errors"

var (
	// ErrUnavailable is returned when the userinfo endpoint request fails
	// at the transport level, returns a non-OK status, or cannot be decoded.
	ErrUnavailable = errors.New("userinfo: userinfo endpoint unavailable")

	// ErrIncompleteIdentity is returned when the payload lacks the
	// mandatory subject id.
	ErrIncompleteIdentity = errors.New("userinfo: incomplete identity")
)
