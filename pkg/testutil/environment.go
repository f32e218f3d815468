package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/kiln/pkg/filesystem"
	"github.com/arthur-debert/kiln/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a workspace directory and the dependencies the
// pipeline needs to scaffold a project inside it
type TestEnvironment struct {
	// Workspace is the directory projects are created in
	Workspace string

	FS      types.FS
	Backend *MockBackend
	Ambient types.Ambient

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		t:       t,
		Type:    envType,
		Ambient: DefaultAmbient(),
	}

	switch envType {
	case EnvMemoryOnly:
		env.Workspace = "/virtual/work"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.Workspace = filepath.Join(t.TempDir(), "work")
		env.FS = filesystem.NewOS()
	}
	env.Backend = &MockBackend{FS: env.FS}

	if err := env.FS.MkdirAll(env.Workspace, 0755); err != nil {
		t.Fatalf("Failed to create workspace %s: %v", env.Workspace, err)
	}
	return env
}

// Path joins a slash-separated path onto the workspace
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Workspace, filepath.FromSlash(rel))
}

// WithFiles writes every file, relative to the workspace
func (env *TestEnvironment) WithFiles(files map[string]string) {
	env.t.Helper()
	for rel, content := range files {
		CreateFileT(env.t, env.FS, env.Path(rel), content)
	}
}

// ReadFile returns the content of a workspace-relative file
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()
	return ReadFileT(env.t, env.FS, env.Path(rel))
}

// Exists reports whether a workspace-relative path exists
func (env *TestEnvironment) Exists(rel string) bool {
	_, err := env.FS.Stat(env.Path(rel))
	return err == nil
}
