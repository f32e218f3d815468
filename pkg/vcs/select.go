package vcs

import (
	"path/filepath"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/types"
)

// Select chooses the version control for the project at root.
//
// Priority: an explicit choice always wins; otherwise metadata directories
// already present at root decide (both .git and .hg is an error); otherwise
// the configured default; otherwise git, unless the parent of root already
// sits inside a git or mercurial checkout, in which case none.
func Select(fsys types.FS, root string, explicit *types.VersionControl, prefs types.GlobalPreferences, backend Backend) (types.VersionControl, error) {
	log := logging.GetLogger("vcs")

	if explicit != nil {
		log.Debug().Stringer("vcs", *explicit).Msg("Using explicit version control")
		return *explicit, nil
	}

	hasGit := exists(fsys, filepath.Join(root, types.VcsGit.MetadataDir()))
	hasHg := exists(fsys, filepath.Join(root, types.VcsHg.MetadataDir()))
	switch {
	case hasGit && hasHg:
		return types.VcsNone, errors.Newf(errors.ErrAmbiguousVcs,
			"both .git and .hg exist in `%s`; use --vcs to choose one", root).
			WithDetail("path", root)
	case hasGit:
		log.Debug().Str("root", root).Msg("Found existing git metadata")
		return types.VcsGit, nil
	case hasHg:
		log.Debug().Str("root", root).Msg("Found existing mercurial metadata")
		return types.VcsHg, nil
	}

	if prefs.VCS != nil {
		log.Debug().Stringer("vcs", *prefs.VCS).Msg("Using configured version control")
		return *prefs.VCS, nil
	}

	parent := filepath.Dir(filepath.Clean(root))
	if backend != nil && backend.InsideRepository(parent) {
		log.Info().Str("parent", parent).Msg("Parent directory is already under version control, not initializing a repository")
		return types.VcsNone, nil
	}
	return types.VcsGit, nil
}

func exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
