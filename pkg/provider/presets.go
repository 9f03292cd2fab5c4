package provider

import (
	githubOAuth "golang.org/x/oauth2/github"
	googleOAuth "golang.org/x/oauth2/google"

	"github.com/dmitrymomot/oauthflow/pkg/token"
)

// Provider identifiers for the shipped presets.
const (
	GoogleProviderName = "google"
	GitHubProviderName = "github"
	QQProviderName     = "qq"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	githubUserURL     = "https://api.github.com/user"
	githubEmailsURL   = "https://api.github.com/user/emails"
	qqAuthURL         = "https://graph.qq.com/oauth2.0/authorize"
	qqTokenURL        = "https://graph.qq.com/oauth2.0/token"
	qqUserInfoURL     = "https://graph.qq.com/user/get_user_info"
)

// GoogleDefaultScopes returns the default scopes for Google OAuth.
func GoogleDefaultScopes() []string {
	return []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	}
}

// GitHubDefaultScopes returns the default scopes for GitHub OAuth.
func GitHubDefaultScopes() []string {
	return []string{"read:user", "user:email"}
}

// QQDefaultScopes returns the default scopes for QQ Connect.
func QQDefaultScopes() []string {
	return []string{"get_user_info"}
}

// Google builds a descriptor for Google OAuth with a standard JSON token
// response and PKCE enabled.
func Google(cfg GoogleConfig) Descriptor {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = GoogleDefaultScopes()
	}
	return Descriptor{
		ID:           GoogleProviderName,
		AuthURL:      googleOAuth.Endpoint.AuthURL,
		TokenURL:     googleOAuth.Endpoint.TokenURL,
		UserInfoURL:  googleUserInfoURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       scopes,
		ResponseMode: token.ModeStandard,
		UsePKCE:      true,
		FieldMap: FieldMap{
			Subject: "id",
			Name:    "name",
			Email:   "email",
			Picture: "picture",
			Locale:  "locale",
		},
	}
}

// GitHub builds a descriptor for GitHub OAuth. GitHub keeps email
// addresses on a secondary endpoint, so EmailsURL is set and the userinfo
// resolver fetches it when the primary payload has no email.
func GitHub(cfg GitHubConfig) Descriptor {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = GitHubDefaultScopes()
	}
	return Descriptor{
		ID:           GitHubProviderName,
		AuthURL:      githubOAuth.Endpoint.AuthURL,
		TokenURL:     githubOAuth.Endpoint.TokenURL,
		UserInfoURL:  githubUserURL,
		EmailsURL:    githubEmailsURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       scopes,
		ResponseMode: token.ModeStandard,
		FieldMap: FieldMap{
			Subject: "id",
			Name:    "name",
			Email:   "email",
			Picture: "avatar_url",
		},
	}
}

// QQ builds a descriptor for QQ Connect. QQ answers the token endpoint
// with a query-string body that omits token_type, so the descriptor uses
// the quirky response mode.
func QQ(cfg QQConfig) Descriptor {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = QQDefaultScopes()
	}
	return Descriptor{
		ID:           QQProviderName,
		AuthURL:      qqAuthURL,
		TokenURL:     qqTokenURL,
		UserInfoURL:  qqUserInfoURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       scopes,
		ResponseMode: token.ModeQuery,
		FieldMap: FieldMap{
			Subject: "openid",
			Name:    "nickname",
			Picture: "figureurl_qq_1",
		},
	}
}
