package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/kiln/pkg/types"
)

// AppendFile adds data at the end of path, creating the file when needed
func AppendFile(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm)
	if err != nil {
		return err
	}
	return writeAndClose(f, data)
}

// CreateExclusive writes data to path only if nothing exists there. It
// reports false, without error, when the path was already taken.
func CreateExclusive(fsys types.FS, path string, data []byte, perm fs.FileMode) (bool, error) {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	return true, writeAndClose(f, data)
}

// ReplaceFile writes data beside path under a hidden temporary name and
// renames it over path, so readers see the old content or the new one
func ReplaceFile(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}

func writeAndClose(f io.WriteCloser, data []byte) error {
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
