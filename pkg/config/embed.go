package config

import (
	_ "embed"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultConfigContent returns the embedded defaults, which double as a
// commented template for user configuration files
func DefaultConfigContent() string {
	return string(defaultConfig)
}
