// Package userinfo turns a provider's userinfo payload into a normalized
// identity.
//
// The resolver issues a bearer-authenticated GET to the provider's
// userinfo endpoint and maps provider-specific field names (Google's
// "picture", GitHub's "avatar_url", QQ's "figureurl_qq_1") into the
// canonical attribute set via the descriptor's FieldMap. Payloads are
// untrusted: display attributes are stripped of HTML and locales are
// canonicalized before they reach the caller.
//
//	resolver := userinfo.NewResolver(userinfo.WithTimeout(5 * time.Second))
//
//	identity, err := resolver.Resolve(ctx, desc, tokenResponse)
//	switch {
//	case errors.Is(err, userinfo.ErrUnavailable):
//	    // transport, status, or decode failure
//	case errors.Is(err, userinfo.ErrIncompleteIdentity):
//	    // provider payload had no subject id
//	}
//
// Providers that keep email addresses on a secondary endpoint (GitHub)
// are handled through the descriptor's EmailsURL: when the primary
// payload has no email, the resolver asks that endpoint for a verified
// address, preferring the primary one.
package userinfo
