package userinfo

// Canonical attribute keys for Identity.Attributes.
const (
	AttrName    = "name"
	AttrEmail   = "email"
	AttrPicture = "picture"
	AttrLocale  = "locale"
)

// Identity is the normalized authenticated identity produced from a
// provider's userinfo payload. It is immutable once returned and owned by
// the single login attempt that produced it; persisting it is the
// caller's responsibility.
type Identity struct {
	ProviderID string
	Subject    string // provider-scoped subject id
	Attributes map[string]string
}

// Name returns the display name attribute, if present.
func (i *Identity) Name() string {
	return i.Attributes[AttrName]
}

// Email returns the email attribute, if present.
func (i *Identity) Email() string {
	return i.Attributes[AttrEmail]
}

// Picture returns the avatar URL attribute, if present.
func (i *Identity) Picture() string {
	return i.Attributes[AttrPicture]
}

// Locale returns the canonicalized locale attribute, if present.
func (i *Identity) Locale() string {
	return i.Attributes[AttrLocale]
}
