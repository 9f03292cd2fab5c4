package oauthflow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/oauthflow"
	"github.com/dmitrymomot/oauthflow/pkg/userinfo"
)

func TestSessionOutcome(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		identity := &userinfo.Identity{ProviderID: "google", Subject: "42"}
		outcome := oauthflow.Success(identity, "/home")
		require.True(t, outcome.Succeeded())
		require.Equal(t, "/home", outcome.RedirectTarget)
		require.Empty(t, outcome.Description)
		require.NoError(t, outcome.Err)
	})

	t.Run("failure carries the kind and a safe description", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("dial tcp: connection refused")
		outcome := oauthflow.Failure(oauthflow.ErrTokenEndpointUnreachable, cause)
		require.False(t, outcome.Succeeded())
		require.ErrorIs(t, outcome.Err, oauthflow.ErrTokenEndpointUnreachable)
		require.ErrorIs(t, outcome.Err, cause)
		require.NotEmpty(t, outcome.Description)
		require.NotContains(t, outcome.Description, "connection refused")
	})

	t.Run("failure without a distinct cause", func(t *testing.T) {
		t.Parallel()
		outcome := oauthflow.Failure(oauthflow.ErrProviderDenied, oauthflow.ErrProviderDenied)
		require.ErrorIs(t, outcome.Err, oauthflow.ErrProviderDenied)
		require.NotEmpty(t, outcome.Description)
	})

	t.Run("kind resolution", func(t *testing.T) {
		t.Parallel()
		for _, kind := range []error{
			oauthflow.ErrUnknownProvider,
			oauthflow.ErrInvalidState,
			oauthflow.ErrProviderDenied,
			oauthflow.ErrTokenEndpointUnreachable,
			oauthflow.ErrMalformedTokenResponse,
			oauthflow.ErrUserInfoUnavailable,
			oauthflow.ErrIncompleteIdentity,
		} {
			outcome := oauthflow.Failure(kind, errors.New("detail"))
			require.ErrorIs(t, outcome.Kind(), kind)
		}
	})

	t.Run("kind of a success is nil", func(t *testing.T) {
		t.Parallel()
		outcome := oauthflow.Success(&userinfo.Identity{Subject: "s"}, "/")
		require.NoError(t, outcome.Kind())
	})
}
