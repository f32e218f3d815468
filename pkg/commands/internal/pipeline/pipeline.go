// Package pipeline runs the shared plan-then-write flow behind the new and
// init commands.
package pipeline

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/kiln/pkg/config"
	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/filesystem"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/manifest"
	"github.com/arthur-debert/kiln/pkg/planner"
	"github.com/arthur-debert/kiln/pkg/scaffold"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/arthur-debert/kiln/pkg/vcs"
)

// Options are the inputs shared by both commands. Zero-valued capabilities
// are replaced by the real ones.
type Options struct {
	// Path is the project directory; relative paths resolve against the
	// working directory
	Path string
	Name string
	Kind *types.TargetKind
	VCS  *types.VersionControl

	// DryRun plans and renders without touching the filesystem
	DryRun bool

	// Notify receives planner notices as they are produced. They are also
	// collected in the result.
	Notify func(notice string)

	FS      types.FS
	Backend vcs.Backend
	// Ambient defaults to a config.Snapshot taken from the working directory
	Ambient *types.Ambient
}

// Env is Options with every capability resolved
type Env struct {
	Root    string
	FS      types.FS
	Backend vcs.Backend
	Ambient types.Ambient
}

// Resolve makes the project path absolute and fills in the default
// capabilities. The ambient snapshot is taken here, once.
func Resolve(opts Options) (*Env, error) {
	root, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %q", opts.Path)
	}

	env := &Env{Root: root, FS: opts.FS, Backend: opts.Backend}
	if env.FS == nil {
		env.FS = filesystem.NewOS()
	}
	if env.Backend == nil {
		env.Backend = vcs.NewBackend()
	}

	if opts.Ambient != nil {
		env.Ambient = *opts.Ambient
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
		}
		ambient, err := config.Snapshot(cwd)
		if err != nil {
			return nil, err
		}
		env.Ambient = ambient
	}
	return env, nil
}

// Run plans the project at env.Root and, unless this is a dry run, writes it.
// Failures after planning are wrapped with the resolved package name and
// root; planning failures are returned as they are.
func Run(command string, opts Options, env *Env) (*types.ProjectResult, error) {
	log := logging.GetLogger("commands.pipeline")
	defer logging.LogOperationStart(log, command)()

	prepared, err := planner.Prepare(planner.Request{
		Root: env.Root,
		Name: opts.Name,
		Kind: opts.Kind,
		VCS:  opts.VCS,
	}, planner.Deps{FS: env.FS, Backend: env.Backend, Ambient: env.Ambient, Notify: opts.Notify})
	if err != nil {
		return nil, err
	}
	for _, notice := range prepared.Notices {
		log.Debug().Str("notice", notice).Msg("Planner notice")
	}

	author, err := manifest.ResolveAuthor(env.Ambient)
	if err != nil {
		return nil, createFailure(prepared.Plan, err)
	}

	result := &types.ProjectResult{
		Command: command,
		Plan:    prepared.Plan,
		Author:  author,
		Notices: prepared.Notices,
		DryRun:  opts.DryRun,
	}

	if opts.DryRun {
		text, err := manifest.Render(prepared.Plan, author)
		if err != nil {
			return nil, createFailure(prepared.Plan, err)
		}
		result.Manifest = text
		log.Info().Str("root", env.Root).Msg("Dry run, nothing written")
		return result, nil
	}

	written, err := scaffold.NewWriter(env.FS, env.Backend).Write(prepared.Plan, env.Ambient)
	if err != nil {
		return nil, createFailure(prepared.Plan, err)
	}
	result.RepositoryCreated = written.RepositoryCreated
	result.IgnoreFile = written.IgnoreFile
	result.FilesCreated = written.Created
	result.FilesKept = written.Kept
	return result, nil
}

// createFailure keeps the error code of err so callers can still match on it
func createFailure(plan *types.ProjectPlan, err error) error {
	return errors.Wrapf(err, errors.GetErrorCode(err), "Failed to create project `%s` at `%s`", plan.Name, plan.Root).
		WithDetail("name", plan.Name.String()).
		WithDetail("root", plan.Root)
}
