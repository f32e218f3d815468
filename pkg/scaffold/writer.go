package scaffold

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/filesystem"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/manifest"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/arthur-debert/kiln/pkg/vcs"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Result lists what Write did, with paths relative to the project root
type Result struct {
	RepositoryCreated bool
	IgnoreFile        string
	Created           []string
	Kept              []string
}

// Writer performs the filesystem side of project creation
type Writer struct {
	fs      types.FS
	backend vcs.Backend
}

// NewWriter returns a writer that mutates fsys and creates repositories
// through backend
func NewWriter(fsys types.FS, backend vcs.Backend) *Writer {
	return &Writer{fs: fsys, backend: backend}
}

// Write realizes plan. The author is resolved and the manifest rendered
// before anything is touched, so attribution failures leave the disk as it
// was. The first failing write aborts with the offending path attached.
func (w *Writer) Write(plan *types.ProjectPlan, ambient types.Ambient) (*Result, error) {
	log := logging.GetLogger("scaffold")

	author, err := manifest.ResolveAuthor(ambient)
	if err != nil {
		return nil, err
	}
	text, err := manifest.Render(plan, author)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	if err := w.materializeVCS(plan, result); err != nil {
		return nil, err
	}

	if err := w.writeManifest(plan.Root, text); err != nil {
		return nil, err
	}
	result.Created = append(result.Created, manifest.FileName)
	log.Debug().Str("root", plan.Root).Msg("Manifest written")

	for _, sf := range plan.SourceFiles {
		created, err := w.writeStub(plan.Root, sf)
		if err != nil {
			return nil, err
		}
		if created {
			result.Created = append(result.Created, sf.RelativePath)
		} else {
			result.Kept = append(result.Kept, sf.RelativePath)
		}
	}

	log.Info().
		Str("name", plan.Name.String()).
		Str("root", plan.Root).
		Strs("created", result.Created).
		Strs("kept", result.Kept).
		Msg("Project written")
	return result, nil
}

func (w *Writer) materializeVCS(plan *types.ProjectPlan, result *Result) error {
	if err := w.fs.MkdirAll(plan.Root, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory `%s`", plan.Root).
			WithDetail("path", plan.Root)
	}
	if plan.VCS == types.VcsNone {
		return nil
	}

	if _, err := w.fs.Stat(filepath.Join(plan.Root, plan.VCS.MetadataDir())); err != nil {
		if err := w.backend.Init(plan.VCS, plan.Root); err != nil {
			return err
		}
		result.RepositoryCreated = true
	}

	result.IgnoreFile = plan.VCS.IgnoreFile()
	return w.appendIgnore(filepath.Join(plan.Root, result.IgnoreFile))
}

// appendIgnore adds the ignore entries after any existing content, starting
// a new line first when the file does not end with one
func (w *Writer) appendIgnore(path string) error {
	entries := IgnoreEntries
	if existing, err := w.fs.ReadFile(path); err == nil && len(existing) > 0 && existing[len(existing)-1] != '\n' {
		entries = "\n" + entries
	}
	if err := filesystem.AppendFile(w.fs, path, []byte(entries), filePerm); err != nil {
		return writeError(err, path)
	}
	return nil
}

func (w *Writer) writeManifest(root, text string) error {
	path := filepath.Join(root, manifest.FileName)
	if err := filesystem.ReplaceFile(w.fs, path, []byte(text), filePerm); err != nil {
		return writeError(err, path)
	}
	return nil
}

// writeStub creates the source file for sf unless one is already there.
// It reports whether a file was created.
func (w *Writer) writeStub(root string, sf types.SourceFileIntent) (bool, error) {
	path := filepath.Join(root, filepath.FromSlash(sf.RelativePath))

	if info, err := w.fs.Stat(path); err == nil {
		if !info.Mode().IsRegular() {
			return false, errors.Newf(errors.ErrFileWrite, "`%s` exists and is not a file", path).
				WithDetail("path", path)
		}
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory `%s`", dir).
			WithDetail("path", dir)
	}

	created, err := filesystem.CreateExclusive(w.fs, path, []byte(StubFor(sf.Kind)), filePerm)
	if err != nil {
		return false, writeError(err, path)
	}
	return created, nil
}

func writeError(err error, path string) error {
	return errors.Wrapf(err, errors.ErrFileWrite, "failed to write `%s`", path).
		WithDetail("path", path)
}
