package token

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

// maxResponseBytes bounds how much of a token response is read.
const maxResponseBytes = 1 << 20

// ExchangeRequest describes a single authorization code exchange.
type ExchangeRequest struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Code         string
	RedirectURI  string
	Verifier     string // PKCE code_verifier, empty when PKCE is not in use
	Mode         Mode
}

// Exchanger trades authorization codes for tokens at provider token
// endpoints. Exchanges from independent login attempts run in parallel,
// bounded by an optional concurrency limit.
//
// Failed exchanges are never retried here: authorization codes are
// single-use by protocol, so a second attempt would be rejected anyway.
type Exchanger struct {
	httpClient *http.Client
	sem        *semaphore.Weighted
	timeout    time.Duration
}

// ExchangerOption configures an Exchanger.
type ExchangerOption func(*Exchanger)

// WithHTTPClient sets a custom HTTP client for token endpoint requests.
// Useful for testing with httptest servers or injecting custom transports.
func WithHTTPClient(client *http.Client) ExchangerOption {
	return func(e *Exchanger) {
		if client != nil {
			e.httpClient = client
		}
	}
}

// WithTimeout sets the per-exchange timeout.
// Default: 10 seconds.
func WithTimeout(d time.Duration) ExchangerOption {
	return func(e *Exchanger) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithConcurrencyLimit caps how many exchanges may be in flight at once.
// Zero means unlimited.
// Default: 0 (unlimited).
func WithConcurrencyLimit(n int) ExchangerOption {
	return func(e *Exchanger) {
		if n > 0 {
			e.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// NewExchanger creates an Exchanger with the given options.
func NewExchanger(opts ...ExchangerOption) *Exchanger {
	e := &Exchanger{
		httpClient: http.DefaultClient,
		timeout:    10 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Exchange posts the authorization code to the token endpoint and parses
// the response according to req.Mode. Transport failures, timeouts, and
// non-2xx statuses map to ErrEndpointUnreachable; undecodable bodies map
// to ErrMalformedResponse.
func (e *Exchanger) Exchange(ctx context.Context, req ExchangeRequest) (*Response, error) {
	if e.sem != nil {
		if err := e.sem.Acquire(ctx, 1); err != nil {
			return nil, errors.Join(ErrEndpointUnreachable, err)
		}
		defer e.sem.Release(1)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {req.Code},
		"redirect_uri": {req.RedirectURI},
		"client_id":    {req.ClientID},
	}
	if req.ClientSecret != "" {
		form.Set("client_secret", req.ClientSecret)
	}
	if req.Verifier != "" {
		form.Set("code_verifier", req.Verifier)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Join(ErrEndpointUnreachable, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Join(ErrEndpointUnreachable, fmt.Errorf("token request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Join(ErrEndpointUnreachable, fmt.Errorf("read token response: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Join(ErrEndpointUnreachable, fmt.Errorf("token request failed: status=%d", resp.StatusCode))
	}

	return Parse(req.Mode, body)
}
