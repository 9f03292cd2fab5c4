package provider_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauthflow/pkg/provider"
	"github.com/dmitrymomot/oauthflow/pkg/token"
)

func testDescriptor(id string) provider.Descriptor {
	return provider.Descriptor{
		ID:           id,
		AuthURL:      "https://idp.test/authorize",
		TokenURL:     "https://idp.test/token",
		UserInfoURL:  "https://idp.test/me",
		ClientID:     "cid",
		ClientSecret: "secret",
	}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("valid descriptors", func(t *testing.T) {
		t.Parallel()
		r, err := provider.NewRegistry(testDescriptor("a"), testDescriptor("b"))
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, r.IDs())
	})

	t.Run("duplicate id", func(t *testing.T) {
		t.Parallel()
		_, err := provider.NewRegistry(testDescriptor("a"), testDescriptor("a"))
		require.ErrorIs(t, err, provider.ErrDuplicateProvider)
	})

	t.Run("missing id", func(t *testing.T) {
		t.Parallel()
		_, err := provider.NewRegistry(testDescriptor(""))
		require.ErrorIs(t, err, provider.ErrMissingProviderID)
	})

	t.Run("missing client id", func(t *testing.T) {
		t.Parallel()
		d := testDescriptor("a")
		d.ClientID = ""
		_, err := provider.NewRegistry(d)
		require.ErrorIs(t, err, provider.ErrMissingClientID)
	})

	t.Run("missing client secret", func(t *testing.T) {
		t.Parallel()
		d := testDescriptor("a")
		d.ClientSecret = ""
		_, err := provider.NewRegistry(d)
		require.ErrorIs(t, err, provider.ErrMissingClientSecret)
	})

	t.Run("missing endpoints", func(t *testing.T) {
		t.Parallel()
		d := testDescriptor("a")
		d.TokenURL = ""
		_, err := provider.NewRegistry(d)
		require.ErrorIs(t, err, provider.ErrMissingEndpoint)
	})
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	r, err := provider.NewRegistry(testDescriptor("a"))
	require.NoError(t, err)

	t.Run("registered id", func(t *testing.T) {
		t.Parallel()
		d, err := r.Resolve("a")
		require.NoError(t, err)
		require.Equal(t, "a", d.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve("nope")
		require.ErrorIs(t, err, provider.ErrUnknownProvider)
	})
}

func TestPresets(t *testing.T) {
	t.Parallel()

	t.Run("google", func(t *testing.T) {
		t.Parallel()
		d := provider.Google(provider.GoogleConfig{ClientID: "cid", ClientSecret: "sec"})
		require.NoError(t, d.Validate())
		require.Equal(t, "google", d.ID)
		require.Equal(t, token.ModeStandard, d.ResponseMode)
		require.True(t, d.UsePKCE)
		require.Equal(t, "id", d.FieldMap.Subject)
		require.Contains(t, d.Scopes, "https://www.googleapis.com/auth/userinfo.email")
	})

	t.Run("github", func(t *testing.T) {
		t.Parallel()
		d := provider.GitHub(provider.GitHubConfig{ClientID: "cid", ClientSecret: "sec"})
		require.NoError(t, d.Validate())
		require.NotEmpty(t, d.EmailsURL)
		require.Equal(t, "avatar_url", d.FieldMap.Picture)
	})

	t.Run("qq uses query mode", func(t *testing.T) {
		t.Parallel()
		d := provider.QQ(provider.QQConfig{ClientID: "cid", ClientSecret: "sec"})
		require.NoError(t, d.Validate())
		require.Equal(t, token.ModeQuery, d.ResponseMode)
		require.Equal(t, "openid", d.FieldMap.Subject)
	})

	t.Run("custom scopes override defaults", func(t *testing.T) {
		t.Parallel()
		d := provider.Google(provider.GoogleConfig{ClientID: "cid", ClientSecret: "sec", Scopes: []string{"openid"}})
		require.Equal(t, []string{"openid"}, d.Scopes)
	})
}

func TestDescriptor_OAuthConfig(t *testing.T) {
	t.Parallel()

	d := testDescriptor("a")
	d.RedirectURL = "https://example.com/cb"
	d.Scopes = []string{"openid"}

	cfg := d.OAuthConfig()
	url := cfg.AuthCodeURL("the-state")
	require.Contains(t, url, "https://idp.test/authorize")
	require.Contains(t, url, "state=the-state")
	require.Contains(t, url, "response_type=code")
	require.Contains(t, url, "client_id=cid")
	require.Contains(t, url, "scope=openid")
}
