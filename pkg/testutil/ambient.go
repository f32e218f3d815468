package testutil

import "github.com/arthur-debert/kiln/pkg/types"

// DefaultAmbient is an invocation where only $USER is known
func DefaultAmbient() types.Ambient {
	return types.Ambient{
		Env: types.EnvVars{User: "tester"},
	}
}

// AmbientWithIdentity is an invocation with a VCS identity configured
func AmbientWithIdentity(name, email string) types.Ambient {
	a := DefaultAmbient()
	a.Identity = types.Identity{Name: name, Email: email}
	return a
}

// EmptyAmbient is an invocation where no author information is available
func EmptyAmbient() types.Ambient {
	return types.Ambient{}
}
