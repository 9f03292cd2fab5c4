package token_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauthflow/pkg/token"
)

func TestExchanger_Exchange(t *testing.T) {
	t.Parallel()

	t.Run("standard response", func(t *testing.T) {
		t.Parallel()

		var gotForm map[string]string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotForm = map[string]string{
				"grant_type":    r.PostForm.Get("grant_type"),
				"code":          r.PostForm.Get("code"),
				"redirect_uri":  r.PostForm.Get("redirect_uri"),
				"client_id":     r.PostForm.Get("client_id"),
				"client_secret": r.PostForm.Get("client_secret"),
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","expires_in":3600}`))
		}))
		defer ts.Close()

		resp, err := token.NewExchanger().Exchange(context.Background(), token.ExchangeRequest{
			TokenURL:     ts.URL,
			ClientID:     "cid",
			ClientSecret: "secret",
			Code:         "the-code",
			RedirectURI:  "https://example.com/callback",
			Mode:         token.ModeStandard,
		})
		require.NoError(t, err)
		require.Equal(t, "tok", resp.AccessToken)
		require.Equal(t, map[string]string{
			"grant_type":    "authorization_code",
			"code":          "the-code",
			"redirect_uri":  "https://example.com/callback",
			"client_id":     "cid",
			"client_secret": "secret",
		}, gotForm)
	})

	t.Run("query response with defaulted token_type", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("access_token=QQTOK&expires_in=7776000&refresh_token=QQREF"))
		}))
		defer ts.Close()

		resp, err := token.NewExchanger().Exchange(context.Background(), token.ExchangeRequest{
			TokenURL: ts.URL,
			ClientID: "cid",
			Code:     "code",
			Mode:     token.ModeQuery,
		})
		require.NoError(t, err)
		require.Equal(t, "QQTOK", resp.AccessToken)
		require.Equal(t, "bearer", resp.TokenType)
		require.Equal(t, "QQREF", resp.RefreshToken)
	})

	t.Run("pkce verifier forwarded", func(t *testing.T) {
		t.Parallel()

		var gotVerifier string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotVerifier = r.PostForm.Get("code_verifier")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer"}`))
		}))
		defer ts.Close()

		_, err := token.NewExchanger().Exchange(context.Background(), token.ExchangeRequest{
			TokenURL: ts.URL,
			ClientID: "cid",
			Code:     "code",
			Verifier: "the-verifier",
		})
		require.NoError(t, err)
		require.Equal(t, "the-verifier", gotVerifier)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
		}))
		defer ts.Close()

		_, err := token.NewExchanger().Exchange(context.Background(), token.ExchangeRequest{
			TokenURL: ts.URL,
			ClientID: "cid",
			Code:     "used-code",
		})
		require.ErrorIs(t, err, token.ErrEndpointUnreachable)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer ts.Close()

		_, err := token.NewExchanger(token.WithTimeout(20*time.Millisecond)).Exchange(context.Background(), token.ExchangeRequest{
			TokenURL: ts.URL,
			ClientID: "cid",
			Code:     "code",
		})
		require.ErrorIs(t, err, token.ErrEndpointUnreachable)
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		_, err := token.NewExchanger().Exchange(context.Background(), token.ExchangeRequest{
			TokenURL: "http://127.0.0.1:1/token",
			ClientID: "cid",
			Code:     "code",
		})
		require.ErrorIs(t, err, token.ErrEndpointUnreachable)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer ts.Close()

		_, err := token.NewExchanger().Exchange(context.Background(), token.ExchangeRequest{
			TokenURL: ts.URL,
			ClientID: "cid",
			Code:     "code",
			Mode:     token.ModeStandard,
		})
		require.ErrorIs(t, err, token.ErrMalformedResponse)
	})
}
