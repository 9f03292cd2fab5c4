package weblogin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/oauthflow"
	"github.com/dmitrymomot/oauthflow/pkg/cookie"
	"github.com/dmitrymomot/oauthflow/pkg/logger"
)

// DefaultCookieName is the cookie that round-trips the attempt handle.
const DefaultCookieName = "oauth_login"

// TargetValidator decides whether a caller-supplied post-login redirect
// target is safe to honor.
type TargetValidator func(target string) bool

// SuccessHandler renders a successful login. The default issues a 302 to
// the outcome's redirect target.
type SuccessHandler func(w http.ResponseWriter, r *http.Request, outcome oauthflow.SessionOutcome)

// FailureHandler renders a failed login. The default writes a JSON error
// body with a status derived from the outcome kind.
type FailureHandler func(w http.ResponseWriter, r *http.Request, outcome oauthflow.SessionOutcome)

// Handler exposes a Flow over HTTP:
//
//	GET /{provider}           start a login, redirect to the provider
//	GET /{provider}/callback  finish it
//
// Mount its Router under a prefix of your choosing, e.g.
// r.Mount("/api/oauth2", h.Router()).
type Handler struct {
	flow       *oauthflow.Flow
	cookies    *cookie.Manager
	cookieName string
	cookieAge  int // seconds
	validator  TargetValidator
	onSuccess  SuccessHandler
	onFailure  FailureHandler
	log        *slog.Logger
}

// Option configures the Handler.
type Option func(*Handler)

// WithCookieName overrides the handle cookie name.
func WithCookieName(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.cookieName = name
		}
	}
}

// WithCookieMaxAge sets the handle cookie lifetime in seconds.
// Default: 600, matching the attempt TTL.
func WithCookieMaxAge(seconds int) Option {
	return func(h *Handler) {
		if seconds > 0 {
			h.cookieAge = seconds
		}
	}
}

// WithTargetValidator replaces the redirect-target policy. The default
// accepts relative paths only.
func WithTargetValidator(v TargetValidator) Option {
	return func(h *Handler) {
		if v != nil {
			h.validator = v
		}
	}
}

// WithSuccessHandler replaces the default success response.
func WithSuccessHandler(fn SuccessHandler) Option {
	return func(h *Handler) {
		if fn != nil {
			h.onSuccess = fn
		}
	}
}

// WithFailureHandler replaces the default failure response.
func WithFailureHandler(fn FailureHandler) Option {
	return func(h *Handler) {
		if fn != nil {
			h.onFailure = fn
		}
	}
}

// WithLogger sets the handler logger. Default discards.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// New creates an HTTP handler over the flow. The cookie manager must be
// configured with a signing secret; the handle cookie is always signed.
func New(flow *oauthflow.Flow, cookies *cookie.Manager, opts ...Option) *Handler {
	h := &Handler{
		flow:       flow,
		cookies:    cookies,
		cookieName: DefaultCookieName,
		cookieAge:  600,
		validator:  RelativeTarget,
		log:        logger.NewNope(),
	}
	h.onSuccess = h.defaultSuccess
	h.onFailure = h.defaultFailure
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router returns the chi router with both endpoints mounted at its root.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/{provider}", h.login)
	r.Get("/{provider}/callback", h.callback)
	return r
}

// RelativeTarget is the default redirect-target policy: a non-empty
// relative path that cannot be abused as a protocol-relative or absolute
// URL.
func RelativeTarget(target string) bool {
	if target == "" || target[0] != '/' {
		return false
	}
	if strings.HasPrefix(target, "//") || strings.ContainsAny(target, "\\\r\n") {
		return false
	}
	return true
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "provider")
	ctx := logger.WithProvider(r.Context(), providerID)

	target := r.URL.Query().Get("redirect_to")
	if !h.validator(target) {
		target = "/"
	}

	redirect, err := h.flow.BeginLogin(ctx, providerID, target)
	if err != nil {
		if errors.Is(err, oauthflow.ErrUnknownProvider) {
			h.writeJSONError(w, http.StatusNotFound, "unknown provider")
			return
		}
		h.log.ErrorContext(ctx, "failed to start login", slog.String("error", err.Error()))
		h.writeJSONError(w, http.StatusInternalServerError, "could not start login")
		return
	}

	if err := h.cookies.SetSigned(w, h.cookieName, redirect.Handle, h.cookieAge); err != nil {
		h.log.ErrorContext(ctx, "failed to set handle cookie", slog.String("error", err.Error()))
		h.writeJSONError(w, http.StatusInternalServerError, "could not start login")
		return
	}

	http.Redirect(w, r, redirect.URL, http.StatusFound)
}

func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "provider")
	ctx := logger.WithProvider(r.Context(), providerID)

	// A missing or forged cookie leaves the handle empty, which the flow
	// rejects as invalid state. The cookie is single-use either way.
	handle, err := h.cookies.GetSigned(r, h.cookieName)
	if err != nil && !errors.Is(err, cookie.ErrNotFound) && !errors.Is(err, cookie.ErrBadSig) {
		h.log.ErrorContext(ctx, "failed to read handle cookie", slog.String("error", err.Error()))
	}
	h.cookies.Delete(w, h.cookieName)
	ctx = logger.WithAttemptHandle(ctx, handle)

	q := r.URL.Query()
	outcome := h.flow.HandleCallback(ctx, oauthflow.Callback{
		ProviderID:       providerID,
		Handle:           handle,
		Code:             q.Get("code"),
		State:            q.Get("state"),
		ErrorCode:        q.Get("error"),
		ErrorDescription: q.Get("error_description"),
	})

	if outcome.Succeeded() {
		h.onSuccess(w, r, outcome)
		return
	}
	h.onFailure(w, r, outcome)
}

func (h *Handler) defaultSuccess(w http.ResponseWriter, r *http.Request, outcome oauthflow.SessionOutcome) {
	target := outcome.RedirectTarget
	if !h.validator(target) {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *Handler) defaultFailure(w http.ResponseWriter, _ *http.Request, outcome oauthflow.SessionOutcome) {
	h.writeJSONError(w, statusFor(outcome.Kind()), outcome.Description)
}

func (h *Handler) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// statusFor maps an outcome kind to an HTTP status.
func statusFor(kind error) int {
	switch {
	case errors.Is(kind, oauthflow.ErrUnknownProvider):
		return http.StatusNotFound
	case errors.Is(kind, oauthflow.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(kind, oauthflow.ErrProviderDenied):
		return http.StatusForbidden
	case errors.Is(kind, oauthflow.ErrTokenEndpointUnreachable),
		errors.Is(kind, oauthflow.ErrMalformedTokenResponse),
		errors.Is(kind, oauthflow.ErrUserInfoUnavailable),
		errors.Is(kind, oauthflow.ErrIncompleteIdentity):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
