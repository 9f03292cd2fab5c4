package provider

import (
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/oauthflow/pkg/token"
)

// FieldMap names the provider-specific userinfo fields that feed the
// canonical identity attributes. Empty entries mean the provider does not
// supply that attribute.
type FieldMap struct {
	Subject string `yaml:"subject"`
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Picture string `yaml:"picture"`
	Locale  string `yaml:"locale"`
}

// Descriptor describes one identity provider: its endpoints, client
// credentials, scopes, and response quirks. Descriptors are built at
// configuration load, never mutated afterwards, and shared read-only
// across all in-flight login attempts.
type Descriptor struct {
	ID           string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	EmailsURL    string // optional secondary endpoint (GitHub-style email list)
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	ResponseMode token.Mode
	UsePKCE      bool
	FieldMap     FieldMap
}

// Validate checks the descriptor carries everything the flow needs.
func (d Descriptor) Validate() error {
	switch {
	case d.ID == "":
		return ErrMissingProviderID
	case d.ClientID == "":
		return ErrMissingClientID
	case d.ClientSecret == "":
		return ErrMissingClientSecret
	case d.AuthURL == "" || d.TokenURL == "":
		return ErrMissingEndpoint
	}
	return nil
}

// OAuthConfig builds the oauth2 configuration used for authorization URL
// composition. Token exchange goes through pkg/token instead, so that
// quirky response modes can be handled.
func (d Descriptor) OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     d.ClientID,
		ClientSecret: d.ClientSecret,
		RedirectURL:  d.RedirectURL,
		Scopes:       d.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  d.AuthURL,
			TokenURL: d.TokenURL,
		},
	}
}
