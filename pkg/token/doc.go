// Package token implements the OAuth2 token endpoint exchange and the
// parsing of token responses, including a tolerant mode for providers that
// answer with non-conformant bodies.
//
// # Response Modes
//
// Providers declare one of two response modes:
//
//   - ModeStandard: JSON object with access_token, token_type, expires_in,
//     and optional refresh_token (RFC 6749 section 5.1).
//   - ModeQuery: flat key=value&key=value text. Pairs are split on the first
//     "=" only so values may contain "=", and a missing token_type is
//     defaulted to "bearer". QQ is the canonical example of this mode.
//
// All parameters the provider returned, recognized or not, survive in
// Response.Raw.
//
// # Usage
//
//	exchanger := token.NewExchanger(
//	    token.WithTimeout(5*time.Second),
//	    token.WithConcurrencyLimit(32),
//	)
//
//	resp, err := exchanger.Exchange(ctx, token.ExchangeRequest{
//	    TokenURL:     desc.TokenURL,
//	    ClientID:     desc.ClientID,
//	    ClientSecret: desc.ClientSecret,
//	    Code:         code,
//	    RedirectURI:  desc.RedirectURL,
//	    Mode:         desc.ResponseMode,
//	})
//	if err != nil {
//	    // errors.Is(err, token.ErrEndpointUnreachable) or
//	    // errors.Is(err, token.ErrMalformedResponse)
//	}
//
// # Retry Semantics
//
// Exchange never retries. An authorization code is single-use by protocol;
// after a failed exchange the caller must restart the login flow with a
// fresh attempt.
package token
