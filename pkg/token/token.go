package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode selects how a provider encodes its token endpoint response.
type Mode string

const (
	// ModeStandard is a JSON object per RFC 6749 section 5.1.
	ModeStandard Mode = "standard"

	// ModeQuery is a flat key=value&key=value text body. Some providers
	// (notably QQ) answer the token endpoint this way and omit the
	// mandatory token_type field.
	ModeQuery Mode = "query"
)

// DefaultTokenType is injected in query mode when the provider omits
// the token_type field.
const DefaultTokenType = "bearer"

// Response is the outcome of a token endpoint exchange.
// It is transient: owned by the in-flight login attempt that produced it
// and never persisted by this module.
type Response struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	ExpiresIn    time.Duration

	// Raw preserves every parameter the provider returned, including
	// unrecognized and duplicate keys.
	Raw map[string][]string
}

// Parse decodes a token endpoint response body according to the given mode.
func Parse(mode Mode, body []byte) (*Response, error) {
	switch mode {
	case ModeQuery:
		return ParseQuery(body)
	default:
		return ParseStandard(body)
	}
}

// ParseStandard decodes a JSON token response. No defaulting is applied:
// a spec-conformant provider is expected to supply token_type itself.
func ParseStandard(body []byte) (*Response, error) {
	var payload struct {
		AccessToken  string      `json:"access_token"`
		TokenType    string      `json:"token_type"`
		RefreshToken string      `json:"refresh_token"`
		ExpiresIn    json.Number `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Join(ErrMalformedResponse, fmt.Errorf("decode token response: %w", err))
	}

	resp := &Response{
		AccessToken:  payload.AccessToken,
		TokenType:    payload.TokenType,
		RefreshToken: payload.RefreshToken,
		Raw:          rawFromJSON(body),
	}
	if sec, err := payload.ExpiresIn.Int64(); err == nil {
		resp.ExpiresIn = time.Duration(sec) * time.Second
	}

	if resp.AccessToken == "" {
		return nil, ErrMalformedResponse
	}
	return resp, nil
}

// ParseQuery decodes a flat key=value&key=value token response.
//
// Pairs are split on the first "=" only, so values may themselves contain
// "=" (base64 padding in access tokens). The body is taken verbatim: no
// percent- or plus-decoding is applied, which is why url.ParseQuery is not
// used here. When token_type is absent it is defaulted to "bearer", patching
// providers whose responses are not spec-conformant.
func ParseQuery(body []byte) (*Response, error) {
	raw := make(map[string][]string)
	for pair := range strings.SplitSeq(string(body), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		raw[key] = append(raw[key], value)
	}

	if _, ok := raw["token_type"]; !ok {
		raw["token_type"] = []string{DefaultTokenType}
	}

	resp := &Response{
		AccessToken:  first(raw, "access_token"),
		TokenType:    first(raw, "token_type"),
		RefreshToken: first(raw, "refresh_token"),
		Raw:          raw,
	}
	if sec, err := strconv.ParseInt(first(raw, "expires_in"), 10, 64); err == nil {
		resp.ExpiresIn = time.Duration(sec) * time.Second
	}

	if resp.AccessToken == "" {
		return nil, ErrMalformedResponse
	}
	return resp, nil
}

// first returns the first value recorded for key, or "".
func first(raw map[string][]string, key string) string {
	if vs := raw[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// rawFromJSON flattens a JSON object into the Raw parameter mapping.
func rawFromJSON(body []byte) map[string][]string {
	var all map[string]any
	if err := json.Unmarshal(body, &all); err != nil {
		return nil
	}
	raw := make(map[string][]string, len(all))
	for k, v := range all {
		switch val := v.(type) {
		case string:
			raw[k] = []string{val}
		case float64:
			raw[k] = []string{strconv.FormatFloat(val, 'f', -1, 64)}
		default:
			raw[k] = []string{fmt.Sprint(val)}
		}
	}
	return raw
}
