package testutil

import (
	"path/filepath"

	"github.com/arthur-debert/kiln/pkg/types"
)

// InitCall records one repository creation requested from a MockBackend
type InitCall struct {
	Kind types.VersionControl
	Path string
}

// MockBackend is a mock implementation of vcs.Backend for testing.
// Without InitFunc it creates the metadata directory on FS, when set.
type MockBackend struct {
	FS                   types.FS
	InitFunc             func(kind types.VersionControl, path string) error
	InsideRepositoryFunc func(path string) bool

	Inits []InitCall
}

// Init records the call and runs the mock's init function.
func (m *MockBackend) Init(kind types.VersionControl, path string) error {
	m.Inits = append(m.Inits, InitCall{Kind: kind, Path: path})
	if m.InitFunc != nil {
		return m.InitFunc(kind, path)
	}
	if m.FS != nil && kind.MetadataDir() != "" {
		return m.FS.MkdirAll(filepath.Join(path, kind.MetadataDir()), 0755)
	}
	return nil
}

// InsideRepository runs the mock's discovery function.
func (m *MockBackend) InsideRepository(path string) bool {
	if m.InsideRepositoryFunc != nil {
		return m.InsideRepositoryFunc(path)
	}
	return false
}
