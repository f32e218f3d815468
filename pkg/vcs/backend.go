package vcs

import (
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/go-git/go-git/v5"
)

// Backend creates and discovers repositories
type Backend interface {
	// Init creates an empty repository of the given kind at path
	Init(kind types.VersionControl, path string) error
	// InsideRepository reports whether path is within a git or mercurial checkout
	InsideRepository(path string) bool
}

// HgCommand is the mercurial executable used for hg repositories
var HgCommand = "hg"

type toolBackend struct{}

// NewBackend returns the Backend that uses go-git for git repositories
// and the hg executable for mercurial ones
func NewBackend() Backend {
	return toolBackend{}
}

func (toolBackend) Init(kind types.VersionControl, path string) error {
	log := logging.GetLogger("vcs")

	switch kind {
	case types.VcsGit:
		if _, err := git.PlainInit(path, false); err != nil {
			return errors.Wrapf(err, errors.ErrVcsInit, "failed to initialize git repository at %s", path).
				WithDetail("path", path)
		}
	case types.VcsHg:
		cmd := exec.Command(HgCommand, "init", path)
		if output, err := cmd.CombinedOutput(); err != nil {
			return errors.Wrapf(err, errors.ErrVcsInit, "failed to initialize mercurial repository at %s: %s",
				path, strings.TrimSpace(string(output))).
				WithDetail("path", path)
		}
	default:
		return nil
	}

	log.Info().Str("path", path).Stringer("vcs", kind).Msg("Initialized repository")
	return nil
}

func (toolBackend) InsideRepository(path string) bool {
	return insideGit(path) || insideHg(path)
}

func insideGit(path string) bool {
	_, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err == nil {
		return true
	}
	if !stderrors.Is(err, git.ErrRepositoryNotExists) {
		log := logging.GetLogger("vcs")
		log.Debug().Err(err).Str("path", path).Msg("Could not open git repository")
	}
	return false
}

func insideHg(path string) bool {
	dir, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, types.VcsHg.MetadataDir())); err == nil && info.IsDir() {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}
