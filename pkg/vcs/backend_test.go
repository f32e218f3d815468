package vcs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolBackend_GitInit(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(root, 0755))

	backend := NewBackend()
	require.NoError(t, backend.Init(types.VcsGit, root))

	info, err := os.Stat(filepath.Join(root, ".git"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.True(t, backend.InsideRepository(filepath.Join(root, "nested", "dir")))
}

func TestToolBackend_InitNoneIsNoop(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, NewBackend().Init(types.VcsNone, root))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestToolBackend_HgInitFailure(t *testing.T) {
	original := HgCommand
	HgCommand = filepath.Join(t.TempDir(), "no-such-hg")
	t.Cleanup(func() { HgCommand = original })

	err := NewBackend().Init(types.VcsHg, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVcsInit))
}

func TestInsideHg(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "repo", ".hg"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "repo", "a", "b"), 0755))

	assert.True(t, insideHg(filepath.Join(root, "repo", "a", "b")))
	assert.True(t, insideHg(filepath.Join(root, "repo")))
	assert.False(t, insideHg(root))
}

func TestLoadIdentity(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"),
		[]byte("[user]\n\tname = Ada Lovelace \n\temail = ada@example.com\n"), 0644))

	id := LoadIdentity()
	assert.Equal(t, types.Identity{Name: "Ada Lovelace", Email: "ada@example.com"}, id)
}
