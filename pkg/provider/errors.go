package provider

import "errors"

var (
	// ErrUnknownProvider is returned when no descriptor is registered for
	// the requested provider id. This is a client-visible condition, not a
	// fatal one.
	ErrUnknownProvider = errors.New("provider: unknown provider")

	// ErrDuplicateProvider is returned when two descriptors share an id.
	ErrDuplicateProvider = errors.New("provider: duplicate provider id")

	// ErrMissingProviderID is returned when a descriptor has no id.
	ErrMissingProviderID = errors.New("provider: missing provider id")

	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("provider: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("provider: missing client secret")

	// ErrMissingEndpoint is returned when a descriptor lacks the
	// authorization or token endpoint URL.
	ErrMissingEndpoint = errors.New("provider: missing endpoint URL")

	// ErrUnknownPreset is returned when a registry file references a
	// preset this package does not ship.
	ErrUnknownPreset = errors.New("provider: unknown preset")
)
