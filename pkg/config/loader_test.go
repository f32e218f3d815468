package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every global layer into a fresh temp dir and clears the
// overrides the host environment may carry
func isolate(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv(EnvCargoHome, filepath.Join(base, "cargo-home"))
	t.Setenv(EnvKilnConfig, filepath.Join(base, "kiln.toml"))
	for _, key := range []string{"NAME", "EMAIL", "VCS"} {
		t.Setenv(EnvPrefix+key, "")
	}
	return base
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_NothingConfigured(t *testing.T) {
	base := isolate(t)

	prefs, err := Load(base)
	require.NoError(t, err)
	assert.Nil(t, prefs.Name)
	assert.Nil(t, prefs.Email)
	assert.Nil(t, prefs.VCS)
}

func TestLoad_Layering(t *testing.T) {
	base := isolate(t)
	cwd := filepath.Join(base, "work", "proj")
	require.NoError(t, os.MkdirAll(cwd, 0755))

	writeConfig(t, filepath.Join(base, "cargo-home", "config.toml"),
		"[cargo-new]\nname = \"home\"\nemail = \"home@example.com\"\nvcs = \"hg\"\n")
	writeConfig(t, filepath.Join(base, "kiln.toml"),
		"[cargo-new]\nemail = \"user@example.com\"\n")
	writeConfig(t, filepath.Join(base, "work", ".cargo", "config.toml"),
		"[cargo-new]\nvcs = \"none\"\n")
	writeConfig(t, filepath.Join(cwd, ".cargo", "config.toml"),
		"[cargo-new]\nname = \"project\"\n")

	prefs, err := Load(cwd)
	require.NoError(t, err)
	require.NotNil(t, prefs.Name)
	require.NotNil(t, prefs.Email)
	require.NotNil(t, prefs.VCS)
	assert.Equal(t, "project", *prefs.Name)
	assert.Equal(t, "user@example.com", *prefs.Email)
	assert.Equal(t, types.VcsNone, *prefs.VCS)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	base := isolate(t)
	writeConfig(t, filepath.Join(base, ".cargo", "config.toml"),
		"[cargo-new]\nname = \"file\"\nvcs = \"git\"\n")
	t.Setenv("CARGO_NEW_NAME", "env")
	t.Setenv("CARGO_NEW_VCS", "hg")

	prefs, err := Load(base)
	require.NoError(t, err)
	assert.Equal(t, "env", *prefs.Name)
	assert.Equal(t, types.VcsHg, *prefs.VCS)
}

func TestLoad_UnknownVcs(t *testing.T) {
	base := isolate(t)
	path := filepath.Join(base, ".cargo", "config.toml")
	writeConfig(t, path, "[cargo-new]\nvcs = \"svn\"\n")

	_, err := Load(base)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.Contains(t, err.Error(), "invalid configuration for key `cargo-new.vcs`, unknown vcs `svn`")
	assert.Equal(t, path, errors.GetErrorDetails(err)["origin"])
}

func TestLoad_UnknownVcsFromEnvironment(t *testing.T) {
	base := isolate(t)
	t.Setenv("CARGO_NEW_VCS", "cvs")

	_, err := Load(base)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.Contains(t, err.Error(), "CARGO_NEW_VCS")
}

func TestLoad_MalformedFile(t *testing.T) {
	base := isolate(t)
	path := filepath.Join(base, "kiln.toml")
	writeConfig(t, path, "[cargo-new\n")

	_, err := Load(base)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestSources(t *testing.T) {
	base := isolate(t)
	cwd := filepath.Join(base, "a", "b")

	sources := Sources(cwd)
	require.GreaterOrEqual(t, len(sources), 4)
	assert.Equal(t, filepath.Join(base, "cargo-home", "config.toml"), sources[0])
	assert.Equal(t, filepath.Join(base, "kiln.toml"), sources[1])
	assert.Equal(t, filepath.Join(cwd, ".cargo", "config.toml"), sources[len(sources)-1])
	assert.Equal(t, filepath.Join(base, "a", ".cargo", "config.toml"), sources[len(sources)-2])
}

func TestSources_DeduplicatesCargoHome(t *testing.T) {
	base := isolate(t)
	t.Setenv(EnvCargoHome, filepath.Join(base, ".cargo"))

	sources := Sources(base)
	count := 0
	for _, s := range sources {
		if s == filepath.Join(base, ".cargo", "config.toml") {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, filepath.Join(base, ".cargo", "config.toml"), sources[0])
}

func TestSnapshot(t *testing.T) {
	base := isolate(t)
	t.Setenv("HOME", base)
	t.Setenv("USER", "snap")
	t.Setenv("USERNAME", "")
	t.Setenv("EMAIL", "snap@example.com")
	t.Setenv("CARGO_NEW_NAME", "configured")

	ambient, err := Snapshot(base)
	require.NoError(t, err)
	assert.Equal(t, "configured", *ambient.Preferences.Name)
	assert.Equal(t, types.EnvVars{User: "snap", Email: "snap@example.com"}, ambient.Env)
}

func TestDefaultConfigContent(t *testing.T) {
	assert.Contains(t, DefaultConfigContent(), "[cargo-new]")
}
