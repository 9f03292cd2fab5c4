// Package weblogin exposes the login flow over HTTP with chi.
//
// The Handler mounts two endpoints:
//
//	GET /{provider}           start a login and redirect to the provider
//	GET /{provider}/callback  finish the login
//
// The login endpoint accepts an optional redirect_to query parameter
// naming where the user should land after a successful login. The target
// is validated against a pluggable policy; the default accepts relative
// paths only, so the endpoint cannot be used as an open redirector.
// Invalid targets silently fall back to "/".
//
// The attempt handle is round-tripped in an HMAC-signed cookie, so the
// callback can locate its pending attempt without trusting any provider
// -controlled parameter.
//
// # Usage
//
//	cookies := cookie.New(
//		cookie.WithSecret(os.Getenv("COOKIE_SECRET")),
//		cookie.WithSecure(true),
//	)
//
//	h := weblogin.New(flow, cookies,
//		weblogin.WithSuccessHandler(func(w http.ResponseWriter, r *http.Request, o oauthflow.SessionOutcome) {
//			sessions.Establish(w, o.Identity)
//			http.Redirect(w, r, o.RedirectTarget, http.StatusFound)
//		}),
//	)
//
//	r := chi.NewRouter()
//	r.Mount("/api/oauth2", h.Router())
//
// The success and failure handlers are the integration points for session
// establishment and error pages. The defaults issue a 302 to the redirect
// target on success and a JSON error body on failure, with the HTTP
// status derived from the outcome kind (400 for invalid state, 403 for a
// provider denial, 502 for provider-side trouble).
package weblogin
