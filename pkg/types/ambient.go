package types

// GlobalPreferences is the user's configured defaults for new projects.
// Nil fields were not set in any configuration layer.
type GlobalPreferences struct {
	Name  *string         `koanf:"name"`
	Email *string         `koanf:"email"`
	VCS   *VersionControl `koanf:"vcs"`
}

// Identity is the author identity configured for the VCS tool
type Identity struct {
	Name  string
	Email string
}

// EnvVars holds the environment variables consulted for author attribution
type EnvVars struct {
	User     string
	Username string
	Email    string
}

// Ambient is the configuration and environment snapshot taken once at the
// start of an invocation and passed explicitly through the pipeline
type Ambient struct {
	Preferences GlobalPreferences
	Identity    Identity
	Env         EnvVars
}

// StringPtr returns a pointer to s, for building preferences in code
func StringPtr(s string) *string {
	return &s
}

// VcsPtr returns a pointer to v, for optional VCS choices
func VcsPtr(v VersionControl) *VersionControl {
	return &v
}
