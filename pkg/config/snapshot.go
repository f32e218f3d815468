package config

import (
	"os"

	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/arthur-debert/kiln/pkg/vcs"
)

// Snapshot captures everything the pipeline reads from the outside world:
// the layered preferences, the VCS identity and the author environment
// variables. It is taken once per invocation.
func Snapshot(cwd string) (types.Ambient, error) {
	prefs, err := Load(cwd)
	if err != nil {
		return types.Ambient{}, err
	}
	return types.Ambient{
		Preferences: prefs,
		Identity:    vcs.LoadIdentity(),
		Env: types.EnvVars{
			User:     os.Getenv("USER"),
			Username: os.Getenv("USERNAME"),
			Email:    os.Getenv("EMAIL"),
		},
	}, nil
}
