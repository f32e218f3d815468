package types

import (
	"io"
	"io/fs"
)

// FS is the slice of a filesystem that planning and writing need. Paths
// are native and absolute; implementations wrap afero backends.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	// OpenFile is used for appends and exclusive creates, so only the
	// write side of the handle is exposed
	OpenFile(name string, flag int, perm fs.FileMode) (io.WriteCloser, error)
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
