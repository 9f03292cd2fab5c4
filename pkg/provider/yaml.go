package provider

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/oauthflow/pkg/token"
)

// ErrInvalidRegistryFile is returned when a registry document cannot be decoded.
var ErrInvalidRegistryFile = errors.New("provider: invalid registry file")

// registryFile is the YAML document shape:
//
//	providers:
//	  - preset: google
//	    client_id: "..."
//	    client_secret: "..."
//	    redirect_url: "https://example.com/auth/google/callback"
//	  - id: acme
//	    auth_url: "https://idp.acme.test/authorize"
//	    token_url: "https://idp.acme.test/token"
//	    userinfo_url: "https://idp.acme.test/me"
//	    client_id: "..."
//	    client_secret: "..."
//	    response_mode: query
//	    pkce: true
//	    fields:
//	      subject: uid
//	      name: display_name
type registryFile struct {
	Providers []fileEntry `yaml:"providers"`
}

type fileEntry struct {
	Preset       string   `yaml:"preset"`
	ID           string   `yaml:"id"`
	AuthURL      string   `yaml:"auth_url"`
	TokenURL     string   `yaml:"token_url"`
	UserInfoURL  string   `yaml:"userinfo_url"`
	EmailsURL    string   `yaml:"emails_url"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	RedirectURL  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
	ResponseMode string   `yaml:"response_mode"`
	PKCE         *bool    `yaml:"pkce"`
	Fields       *FieldMap `yaml:"fields"`
}

// Load builds a registry from a YAML document. Entries either start from a
// shipped preset (google, github, qq) or describe a provider in full; any
// field present in the entry overrides the preset value.
func Load(r io.Reader) (*Registry, error) {
	var doc registryFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidRegistryFile, err)
	}

	descs := make([]Descriptor, 0, len(doc.Providers))
	for _, e := range doc.Providers {
		d, err := e.descriptor()
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
	}
	return NewRegistry(descs...)
}

// LoadFile builds a registry from a YAML file on disk.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidRegistryFile, err)
	}
	defer f.Close()
	return Load(f)
}

func (e fileEntry) descriptor() (Descriptor, error) {
	var d Descriptor

	switch e.Preset {
	case "":
		d = Descriptor{ResponseMode: token.ModeStandard}
	case GoogleProviderName:
		d = Google(GoogleConfig{ClientID: e.ClientID, ClientSecret: e.ClientSecret})
	case GitHubProviderName:
		d = GitHub(GitHubConfig{ClientID: e.ClientID, ClientSecret: e.ClientSecret})
	case QQProviderName:
		d = QQ(QQConfig{ClientID: e.ClientID, ClientSecret: e.ClientSecret})
	default:
		return Descriptor{}, errors.Join(ErrUnknownPreset, fmt.Errorf("preset %q", e.Preset))
	}

	if e.ID != "" {
		d.ID = e.ID
	}
	if e.AuthURL != "" {
		d.AuthURL = e.AuthURL
	}
	if e.TokenURL != "" {
		d.TokenURL = e.TokenURL
	}
	if e.UserInfoURL != "" {
		d.UserInfoURL = e.UserInfoURL
	}
	if e.EmailsURL != "" {
		d.EmailsURL = e.EmailsURL
	}
	if e.ClientID != "" {
		d.ClientID = e.ClientID
	}
	if e.ClientSecret != "" {
		d.ClientSecret = e.ClientSecret
	}
	if e.RedirectURL != "" {
		d.RedirectURL = e.RedirectURL
	}
	if len(e.Scopes) > 0 {
		d.Scopes = e.Scopes
	}
	if e.ResponseMode != "" {
		d.ResponseMode = token.Mode(e.ResponseMode)
	}
	if e.PKCE != nil {
		d.UsePKCE = *e.PKCE
	}
	if e.Fields != nil {
		d.FieldMap = *e.Fields
	}

	return d, nil
}
