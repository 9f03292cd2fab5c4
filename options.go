package oauthflow

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/oauthflow/pkg/token"
	"github.com/dmitrymomot/oauthflow/pkg/userinfo"
)

// Option configures a Flow.
type Option func(*flowOptions)

type flowOptions struct {
	httpClient       *http.Client
	log              *slog.Logger
	attemptTTL       time.Duration
	exchangeTimeout  time.Duration
	userInfoTimeout  time.Duration
	concurrencyLimit int
}

func defaultFlowOptions() *flowOptions {
	return &flowOptions{
		attemptTTL:      10 * time.Minute,
		exchangeTimeout: 10 * time.Second,
		userInfoTimeout: 10 * time.Second,
	}
}

// WithHTTPClient sets the HTTP client used for token and userinfo
// requests. Useful for testing with httptest servers or injecting custom
// transports.
func WithHTTPClient(client *http.Client) Option {
	return func(o *flowOptions) {
		o.httpClient = client
	}
}

// WithLogger sets the logger for flow diagnostics.
// Default: a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *flowOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// WithAttemptTTL sets how long an unconsumed login attempt stays valid.
// Default: 10 minutes.
func WithAttemptTTL(ttl time.Duration) Option {
	return func(o *flowOptions) {
		if ttl > 0 {
			o.attemptTTL = ttl
		}
	}
}

// WithExchangeTimeout sets the token exchange timeout.
// Default: 10 seconds.
func WithExchangeTimeout(d time.Duration) Option {
	return func(o *flowOptions) {
		if d > 0 {
			o.exchangeTimeout = d
		}
	}
}

// WithUserInfoTimeout sets the userinfo resolution timeout.
// Default: 10 seconds.
func WithUserInfoTimeout(d time.Duration) Option {
	return func(o *flowOptions) {
		if d > 0 {
			o.userInfoTimeout = d
		}
	}
}

// WithConcurrencyLimit caps how many token exchanges may be in flight at
// once across all attempts. Zero means unlimited.
// Default: 0 (unlimited).
func WithConcurrencyLimit(n int) Option {
	return func(o *flowOptions) {
		o.concurrencyLimit = n
	}
}

func (o *flowOptions) exchanger() *token.Exchanger {
	opts := []token.ExchangerOption{token.WithTimeout(o.exchangeTimeout)}
	if o.httpClient != nil {
		opts = append(opts, token.WithHTTPClient(o.httpClient))
	}
	if o.concurrencyLimit > 0 {
		opts = append(opts, token.WithConcurrencyLimit(o.concurrencyLimit))
	}
	return token.NewExchanger(opts...)
}

func (o *flowOptions) resolver() *userinfo.Resolver {
	opts := []userinfo.Option{userinfo.WithTimeout(o.userInfoTimeout)}
	if o.httpClient != nil {
		opts = append(opts, userinfo.WithHTTPClient(o.httpClient))
	}
	return userinfo.NewResolver(opts...)
}
