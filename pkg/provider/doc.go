// Package provider describes identity providers and resolves them by id.
//
// A Descriptor is an immutable record of one provider: endpoints, client
// credentials, scopes, the token response mode, and the userinfo field
// mapping. The Registry holds all configured descriptors, is built once at
// startup, and serves unsynchronized concurrent reads afterwards.
//
// # Presets
//
// Google, GitHub, and QQ descriptors ship as presets. Adding another
// provider is a registry entry, not a new type: quirks like QQ's
// query-string token response are plain data on the descriptor
// (ResponseMode), interpreted by pkg/token.
//
//	registry, err := provider.NewRegistry(
//	    provider.Google(provider.GoogleConfig{
//	        ClientID:     os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
//	        ClientSecret: os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET"),
//	        RedirectURL:  "https://example.com/auth/google/callback",
//	    }),
//	    provider.QQ(provider.QQConfig{ /* ... */ }),
//	)
//
// # Registry Files
//
// Registries can also be loaded from YAML, mixing presets with fully
// spelled-out providers:
//
//	registry, err := provider.LoadFile("providers.yml")
//
// # Error Handling
//
// Resolve returns ErrUnknownProvider for unregistered ids — a
// client-visible condition the caller should map to a 4xx response, not a
// fatal error.
package provider
