package userinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/oauthflow/pkg/provider"
	"github.com/dmitrymomot/oauthflow/pkg/token"
)

// maxResponseBytes bounds how much of a userinfo response is read.
const maxResponseBytes = 1 << 20

var (
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

// strict returns the shared policy that strips all HTML from provider-
// supplied display attributes. Provider payloads are untrusted input.
func strict() *bluemonday.Policy {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// Resolver fetches and normalizes the authenticated identity from a
// provider's userinfo endpoint using the obtained access token.
type Resolver struct {
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient sets a custom HTTP client for userinfo requests.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.httpClient = client
		}
	}
}

// WithTimeout sets the per-resolution timeout.
// Default: 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		httpClient: http.DefaultClient,
		timeout:    10 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches the userinfo payload with the access token as a bearer
// credential and maps provider-specific field names into the canonical
// Identity shape via the descriptor's field mapping.
//
// Display attributes are stripped of HTML, and locales are canonicalized.
// When the payload carries no email and the descriptor names a secondary
// emails endpoint, that endpoint is consulted for a verified address.
func (r *Resolver) Resolve(ctx context.Context, desc provider.Descriptor, tok *token.Response) (*Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	payload, err := r.fetchJSON(ctx, desc.UserInfoURL, tok.AccessToken)
	if err != nil {
		return nil, err
	}

	fm := desc.FieldMap
	subject := stringify(payload[fm.Subject])
	if subject == "" {
		return nil, errors.Join(ErrIncompleteIdentity, fmt.Errorf("field %q missing from userinfo payload", fm.Subject))
	}

	attrs := make(map[string]string)
	setAttr(attrs, AttrName, payload, fm.Name)
	setAttr(attrs, AttrEmail, payload, fm.Email)
	setAttr(attrs, AttrPicture, payload, fm.Picture)

	if locale := stringify(payload[fm.Locale]); fm.Locale != "" && locale != "" {
		if tag, err := language.Parse(locale); err == nil {
			attrs[AttrLocale] = tag.String()
		}
	}

	if attrs[AttrEmail] == "" && desc.EmailsURL != "" {
		if email, err := r.fetchVerifiedEmail(ctx, desc.EmailsURL, tok.AccessToken); err == nil && email != "" {
			attrs[AttrEmail] = strict().Sanitize(email)
		}
	}

	return &Identity{
		ProviderID: desc.ID,
		Subject:    subject,
		Attributes: attrs,
	}, nil
}

func (r *Resolver) fetchJSON(ctx context.Context, url, accessToken string) (map[string]any, error) {
	body, err := r.get(ctx, url, accessToken)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Join(ErrUnavailable, fmt.Errorf("decode userinfo: %w", err))
	}
	return payload, nil
}

// fetchVerifiedEmail queries a GitHub-style emails endpoint, preferring
// the primary verified address, falling back to any verified one.
func (r *Resolver) fetchVerifiedEmail(ctx context.Context, url, accessToken string) (string, error) {
	body, err := r.get(ctx, url, accessToken)
	if err != nil {
		return "", err
	}

	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := json.Unmarshal(body, &emails); err != nil {
		return "", errors.Join(ErrUnavailable, fmt.Errorf("decode emails: %w", err))
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, nil
		}
	}
	return "", nil
}

func (r *Resolver) get(ctx context.Context, url, accessToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrUnavailable, fmt.Errorf("fetch userinfo: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Join(ErrUnavailable, fmt.Errorf("userinfo request failed: status=%d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Join(ErrUnavailable, fmt.Errorf("read userinfo response: %w", err))
	}
	return body, nil
}

// setAttr copies one mapped field into attrs, stripped of any HTML.
func setAttr(attrs map[string]string, key string, payload map[string]any, field string) {
	if field == "" {
		return
	}
	if v := stringify(payload[field]); v != "" {
		attrs[key] = strict().Sanitize(v)
	}
}

// stringify renders scalar JSON values as strings. Numeric subject ids
// (GitHub) come through as float64 and are formatted without a fraction.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
