package config

// Identity represents one git author identity as stored in git's global scope
// or in a saved profile.
// - Name: user.name
// - Email: user.email
// - SigningKey: user.signingkey (GPG key id or SSH key), optional.
//
// A nil field means "not configured". An empty SigningKey is normalized to nil
// before it is persisted or applied (see Normalized).
type Identity struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	SigningKey *string `json:"signingKey,omitempty"`
}

// Profiles is the persisted profile store document.
// - Profiles: profile name to identity, names are unique and non-empty.
// - CurrentProfile: name of the profile last applied successfully, if any.
//
// CurrentProfile is not validated against Profiles on load.
type Profiles struct {
	Profiles       map[string]Identity `json:"profiles"`
	CurrentProfile *string             `json:"currentProfile,omitempty"`
}

// Settings holds gitup's own configuration, loaded from settings.yaml.
// - GitBinary: name or path of the git executable.
// - ProfilesFile: location of the profile store document.
type Settings struct {
	GitBinary    string `yaml:"git_binary"`
	ProfilesFile string `yaml:"profiles_file"`
}

// String returns a pointer to s, for building Identity values.
func String(s string) *string {
	return &s
}

// Value dereferences p, returning "" for nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// IsComplete reports whether both name and email are present and non-empty.
func (i Identity) IsComplete() bool {
	return Value(i.Name) != "" && Value(i.Email) != ""
}

// IsEmpty reports whether neither name nor email is present.
func (i Identity) IsEmpty() bool {
	return i.Name == nil && i.Email == nil
}

// HasSigningKey reports whether a non-empty signing key is set.
func (i Identity) HasSigningKey() bool {
	return Value(i.SigningKey) != ""
}

// Normalized returns a copy with an empty signing key replaced by nil.
func (i Identity) Normalized() Identity {
	if !i.HasSigningKey() {
		i.SigningKey = nil
	}
	return i
}

// NewProfiles returns an empty store with an initialized map.
func NewProfiles() *Profiles {
	return &Profiles{Profiles: make(map[string]Identity)}
}

// IsActive reports whether name is the current profile.
func (p *Profiles) IsActive(name string) bool {
	return p.CurrentProfile != nil && *p.CurrentProfile == name
}
