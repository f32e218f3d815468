package config

import (
	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

type preferencesTable struct {
	Name  string `toml:"name,omitempty"`
	Email string `toml:"email,omitempty"`
	VCS   string `toml:"vcs,omitempty"`
}

type preferencesDocument struct {
	CargoNew preferencesTable `toml:"cargo-new"`
}

// Encode renders prefs as a configuration file. Unset preferences are left
// out, so the result can be loaded back as a layer.
func Encode(prefs types.GlobalPreferences) ([]byte, error) {
	var table preferencesTable
	if prefs.Name != nil {
		table.Name = *prefs.Name
	}
	if prefs.Email != nil {
		table.Email = *prefs.Email
	}
	if prefs.VCS != nil {
		table.VCS = prefs.VCS.String()
	}

	data, err := toml.Marshal(preferencesDocument{CargoNew: table})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode preferences")
	}
	return data, nil
}
