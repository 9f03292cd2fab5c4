package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauthflow/pkg/token"
)

func TestParseStandard(t *testing.T) {
	t.Parallel()

	t.Run("full response", func(t *testing.T) {
		t.Parallel()
		resp, err := token.ParseStandard([]byte(`{"access_token":"X","token_type":"bearer","expires_in":10,"refresh_token":"R"}`))
		require.NoError(t, err)
		require.Equal(t, "X", resp.AccessToken)
		require.Equal(t, "bearer", resp.TokenType)
		require.Equal(t, 10*time.Second, resp.ExpiresIn)
		require.Equal(t, "R", resp.RefreshToken)
	})

	t.Run("no defaulting applied", func(t *testing.T) {
		t.Parallel()
		resp, err := token.ParseStandard([]byte(`{"access_token":"X"}`))
		require.NoError(t, err)
		require.Empty(t, resp.TokenType, "standard mode must not invent a token_type")
	})

	t.Run("unrecognized fields retained in raw", func(t *testing.T) {
		t.Parallel()
		resp, err := token.ParseStandard([]byte(`{"access_token":"X","token_type":"bearer","scope":"openid"}`))
		require.NoError(t, err)
		require.Equal(t, []string{"openid"}, resp.Raw["scope"])
	})

	t.Run("missing access token", func(t *testing.T) {
		t.Parallel()
		_, err := token.ParseStandard([]byte(`{"token_type":"bearer"}`))
		require.ErrorIs(t, err, token.ErrMalformedResponse)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := token.ParseStandard([]byte(`access_token=oops`))
		require.ErrorIs(t, err, token.ErrMalformedResponse)
	})
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	t.Run("token_type defaulted", func(t *testing.T) {
		t.Parallel()
		resp, err := token.ParseQuery([]byte("access_token=ABC123&expires_in=3600"))
		require.NoError(t, err)
		require.Equal(t, "ABC123", resp.AccessToken)
		require.Equal(t, "bearer", resp.TokenType)
		require.Equal(t, time.Hour, resp.ExpiresIn)
	})

	t.Run("provider-supplied token_type preserved", func(t *testing.T) {
		t.Parallel()
		resp, err := token.ParseQuery([]byte("access_token=A&token_type=mac"))
		require.NoError(t, err)
		require.Equal(t, "mac", resp.TokenType)
	})

	t.Run("split on first equals only", func(t *testing.T) {
		t.Parallel()
		resp, err := token.ParseQuery([]byte("access_token=AB==C&expires_in=60"))
		require.NoError(t, err)
		require.Equal(t, "AB==C", resp.AccessToken)
		require.Equal(t, time.Minute, resp.ExpiresIn)
	})

	t.Run("no percent decoding", func(t *testing.T) {
		t.Parallel()
		resp, err := token.ParseQuery([]byte("access_token=a%2Bb+c"))
		require.NoError(t, err)
		require.Equal(t, "a%2Bb+c", resp.AccessToken, "body must be taken verbatim")
	})

	t.Run("duplicate keys retained in raw", func(t *testing.T) {
		t.Parallel()
		resp, err := token.ParseQuery([]byte("access_token=first&access_token=second"))
		require.NoError(t, err)
		require.Equal(t, "first", resp.AccessToken, "first value wins for typed fields")
		require.Equal(t, []string{"first", "second"}, resp.Raw["access_token"])
	})

	t.Run("unrecognized keys retained", func(t *testing.T) {
		t.Parallel()
		resp, err := token.ParseQuery([]byte("access_token=A&openid=OID"))
		require.NoError(t, err)
		require.Equal(t, []string{"OID"}, resp.Raw["openid"])
	})

	t.Run("missing access token", func(t *testing.T) {
		t.Parallel()
		_, err := token.ParseQuery([]byte("expires_in=3600"))
		require.ErrorIs(t, err, token.ErrMalformedResponse)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		_, err := token.ParseQuery(nil)
		require.ErrorIs(t, err, token.ErrMalformedResponse)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("query mode", func(t *testing.T) {
		t.Parallel()
		resp, err := token.Parse(token.ModeQuery, []byte("access_token=A"))
		require.NoError(t, err)
		require.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("standard mode is the default", func(t *testing.T) {
		t.Parallel()
		resp, err := token.Parse("", []byte(`{"access_token":"A","token_type":"bearer"}`))
		require.NoError(t, err)
		require.Equal(t, "A", resp.AccessToken)
	})
}
