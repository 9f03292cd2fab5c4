// Package cookie provides HTTP cookie management with optional HMAC signing.
//
// The Manager handles plain and signed cookies. Signed cookies carry an
// HMAC-SHA256 tag and are the transport for the login attempt handle that
// must survive the round trip to the identity provider without the client
// being able to forge or swap it.
//
// # Basic Usage
//
// Plain cookies work without a secret:
//
//	import (
//		"net/http"
//
//		"github.com/dmitrymomot/oauthflow/pkg/cookie"
//	)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		m := cookie.New()
//		m.Set(w, "theme", "dark", 86400)
//		value, err := m.Get(r, "theme")
//		if err != nil {
//			// handle error
//		}
//	}
//
// # Signed Cookies
//
// Enable signing with a 32+ byte secret:
//
//	m := cookie.New(
//		cookie.WithSecret("your-32+-byte-secret-key-here!!"),
//		cookie.WithSecure(true),
//	)
//
//	err := m.SetSigned(w, "login_attempt", handle, 600)
//	handle, err := m.GetSigned(r, "login_attempt")
//
// GetSigned returns [ErrBadSig] when the value or its tag was altered.
//
// # Configuration
//
// Use options to configure cookie attributes:
//   - [WithSecret]: Set the signing secret (32+ bytes)
//   - [WithDomain]: Set the cookie domain
//   - [WithPath]: Set the cookie path (default: "/")
//   - [WithSecure]: Set the Secure flag (HTTPS only)
//   - [WithHTTPOnly]: Set the HttpOnly flag (default: true)
//   - [WithSameSite]: Set the SameSite attribute (default: Lax)
//
// # Errors
//
// The package defines these sentinel errors:
//   - [ErrNotFound]: Cookie does not exist
//   - [ErrNoSecret]: Secret required for signed operations
//   - [ErrBadSecret]: Secret must be at least 32 bytes
//   - [ErrBadSig]: Signature verification failed (tampering detected)
package cookie
