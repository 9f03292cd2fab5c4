package state

import "errors"

var (
	// ErrNotFound is returned when no attempt exists for the handle,
	// including handles that were already consumed once.
	ErrNotFound = errors.New("state: attempt not found")

	// ErrExpired is returned when the attempt is past its TTL.
	ErrExpired = errors.New("state: attempt expired")

	// ErrStateMismatch is returned when the supplied anti-forgery token
	// does not match the stored one. The attempt is deleted anyway.
	ErrStateMismatch = errors.New("state: anti-forgery token mismatch")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("state: store closed")
)
