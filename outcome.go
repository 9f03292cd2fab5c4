package oauthflow

import (
	"errors"

	"github.com/dmitrymomot/oauthflow/pkg/userinfo"
)

// SessionOutcome is the structured result of a completed callback: either
// an authenticated identity or a failure kind with a safe description.
// Producing it has no side effects — establishing the principal in a
// session or cookie is the caller's job.
type SessionOutcome struct {
	// Identity is set on success only.
	Identity *userinfo.Identity

	// RedirectTarget is the target captured when the login began.
	// Populated on success; empty on failures where the attempt state
	// was unavailable.
	RedirectTarget string

	// Err is nil on success; otherwise it matches exactly one taxonomy
	// kind via errors.Is. It may wrap internal detail for logging, which
	// must not be shown to end users — render Description instead.
	Err error

	// Description is a short, safe, user-displayable failure summary.
	Description string
}

// Succeeded reports whether the outcome carries an authenticated identity.
func (o SessionOutcome) Succeeded() bool {
	return o.Err == nil && o.Identity != nil
}

// descriptions are the only failure texts that may reach end users.
var descriptions = map[error]string{
	ErrUnknownProvider:          "This login provider is not available.",
	ErrInvalidState:             "The login request is invalid or has expired. Please try again.",
	ErrProviderDenied:           "The provider did not authorize the login.",
	ErrTokenEndpointUnreachable: "The provider could not be reached. Please try again.",
	ErrMalformedTokenResponse:   "The provider returned an unusable response. Please try again.",
	ErrUserInfoUnavailable:      "The provider could not be reached. Please try again.",
	ErrIncompleteIdentity:       "The provider did not supply a usable identity.",
}

// Success builds a successful outcome.
func Success(identity *userinfo.Identity, redirectTarget string) SessionOutcome {
	return SessionOutcome{
		Identity:       identity,
		RedirectTarget: redirectTarget,
	}
}

// Failure builds a failed outcome. The kind must be one of the taxonomy
// errors; err may additionally wrap internal detail.
func Failure(kind, err error) SessionOutcome {
	if err == nil {
		err = kind
	} else if !errors.Is(err, kind) {
		err = errors.Join(kind, err)
	}
	return SessionOutcome{
		Err:         err,
		Description: descriptions[kind],
	}
}

// Kind extracts the taxonomy kind from an outcome error, or nil for
// success outcomes.
func (o SessionOutcome) Kind() error {
	for kind := range descriptions {
		if errors.Is(o.Err, kind) {
			return kind
		}
	}
	return nil
}
