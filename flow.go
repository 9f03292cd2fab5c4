package oauthflow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/oauth2"

	"github.com/dmitrymomot/oauthflow/pkg/logger"
	"github.com/dmitrymomot/oauthflow/pkg/provider"
	"github.com/dmitrymomot/oauthflow/pkg/state"
	"github.com/dmitrymomot/oauthflow/pkg/token"
	"github.com/dmitrymomot/oauthflow/pkg/userinfo"
)

// Flow orchestrates the authorization-code login: redirect building,
// callback validation, token exchange, and identity resolution. One Flow
// serves all providers in its registry and any number of concurrent login
// attempts; the only shared mutable state is the attempt store.
type Flow struct {
	registry   *provider.Registry
	store      state.Store
	exchanger  *token.Exchanger
	resolver   *userinfo.Resolver
	log        *slog.Logger
	attemptTTL time.Duration
}

// New creates a Flow over the given provider registry and attempt store.
func New(registry *provider.Registry, store state.Store, opts ...Option) *Flow {
	o := defaultFlowOptions()
	for _, opt := range opts {
		opt(o)
	}

	log := o.log
	if log == nil {
		log = logger.NewNope()
	}

	return &Flow{
		registry:   registry,
		store:      store,
		exchanger:  o.exchanger(),
		resolver:   o.resolver(),
		log:        log,
		attemptTTL: o.attemptTTL,
	}
}

// Redirect is the result of starting a login: the provider authorization
// URL to send the user to, and the opaque handle the caller must round-trip
// (typically in a cookie) so the callback can find its attempt.
type Redirect struct {
	URL       string
	Handle    string
	ExpiresAt time.Time
}

// BeginLogin starts a login attempt against the named provider. It
// persists the pending state and composes the authorization URL with the
// anti-forgery token and, when the provider requires it, a PKCE challenge.
// Pure composition: no network call is made.
//
// Returns ErrUnknownProvider when the id has no registered descriptor.
func (f *Flow) BeginLogin(ctx context.Context, providerID, redirectTarget string) (*Redirect, error) {
	desc, err := f.registry.Resolve(providerID)
	if err != nil {
		return nil, errors.Join(ErrUnknownProvider, err)
	}

	attempt := state.NewAttempt(providerID, redirectTarget, f.attemptTTL, desc.UsePKCE)
	if err := f.store.Save(ctx, attempt); err != nil {
		return nil, err
	}

	var authOpts []oauth2.AuthCodeOption
	if attempt.Verifier != "" {
		authOpts = append(authOpts, oauth2.S256ChallengeOption(attempt.Verifier))
	}

	f.log.DebugContext(ctx, "login attempt started",
		slog.String("provider", providerID),
		slog.String("handle", attempt.Handle))

	return &Redirect{
		URL:       desc.OAuthConfig().AuthCodeURL(attempt.State, authOpts...),
		Handle:    attempt.Handle,
		ExpiresAt: attempt.ExpiresAt,
	}, nil
}

// Callback carries the parameters of one inbound provider callback.
type Callback struct {
	ProviderID       string
	Handle           string // opaque handle returned by BeginLogin
	Code             string
	State            string
	ErrorCode        string // provider "error" parameter, if any
	ErrorDescription string
}

// HandleCallback validates the callback, exchanges the authorization code,
// resolves the identity, and maps everything into a SessionOutcome. It
// never returns raw transport errors or provider response bodies: every
// failure is one of the taxonomy kinds.
//
// The attempt is consumed before anything else, including when the
// provider reported an error, so a replayed callback always fails with an
// invalid-state outcome.
func (f *Flow) HandleCallback(ctx context.Context, cb Callback) SessionOutcome {
	attempt, err := f.store.Consume(ctx, cb.Handle, cb.State)
	if err != nil {
		// Collapse missing/expired/mismatch so the response does not
		// reveal which check failed.
		f.log.InfoContext(ctx, "login state rejected",
			slog.String("provider", cb.ProviderID),
			slog.String("error", err.Error()))
		return Failure(ErrInvalidState, err)
	}

	if attempt.ProviderID != cb.ProviderID {
		f.log.InfoContext(ctx, "callback provider does not match attempt",
			slog.String("expected", attempt.ProviderID),
			slog.String("got", cb.ProviderID))
		return Failure(ErrInvalidState, nil)
	}

	if cb.ErrorCode != "" {
		// The user declined consent or the provider refused; there is no
		// code to exchange, so no network call is made.
		f.log.InfoContext(ctx, "provider denied authorization",
			slog.String("provider", cb.ProviderID),
			slog.String("code", cb.ErrorCode))
		return Failure(ErrProviderDenied, nil)
	}

	desc, err := f.registry.Resolve(attempt.ProviderID)
	if err != nil {
		return Failure(ErrUnknownProvider, err)
	}

	tokenResp, err := f.exchanger.Exchange(ctx, token.ExchangeRequest{
		TokenURL:     desc.TokenURL,
		ClientID:     desc.ClientID,
		ClientSecret: desc.ClientSecret,
		Code:         cb.Code,
		RedirectURI:  desc.RedirectURL,
		Verifier:     attempt.Verifier,
		Mode:         desc.ResponseMode,
	})
	if err != nil {
		f.log.WarnContext(ctx, "token exchange failed",
			slog.String("provider", cb.ProviderID),
			slog.String("error", err.Error()))
		return Failure(exchangeKind(err), err)
	}

	identity, err := f.resolver.Resolve(ctx, desc, tokenResp)
	if err != nil {
		f.log.WarnContext(ctx, "userinfo resolution failed",
			slog.String("provider", cb.ProviderID),
			slog.String("error", err.Error()))
		return Failure(resolveKind(err), err)
	}

	f.log.InfoContext(ctx, "login completed",
		slog.String("provider", cb.ProviderID),
		slog.String("subject", identity.Subject))

	return Success(identity, attempt.RedirectTarget)
}

func exchangeKind(err error) error {
	if errors.Is(err, token.ErrMalformedResponse) {
		return ErrMalformedTokenResponse
	}
	return ErrTokenEndpointUnreachable
}

func resolveKind(err error) error {
	if errors.Is(err, userinfo.ErrIncompleteIdentity) {
		return ErrIncompleteIdentity
	}
	return ErrUserInfoUnavailable
}
