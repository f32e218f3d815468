package initialize

import (
	"path/filepath"

	"github.com/arthur-debert/kiln/pkg/commands/internal/pipeline"
	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/manifest"
	"github.com/arthur-debert/kiln/pkg/types"
)

// InitProjectOptions defines the options for the InitProject command.
// An empty Path means the working directory.
type InitProjectOptions = pipeline.Options

// InitProject turns a directory, usually with sources already in it, into
// a package. It refuses directories that already have a manifest.
func InitProject(opts InitProjectOptions) (*types.ProjectResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "InitProject").Str("path", opts.Path).Msg("Executing command")

	// 1. Default to the working directory
	if opts.Path == "" {
		opts.Path = "."
	}

	// 2. Resolve path and capabilities
	env, err := pipeline.Resolve(opts)
	if err != nil {
		return nil, err
	}

	// 3. An existing manifest means this is already a package
	manifestPath := filepath.Join(env.Root, manifest.FileName)
	if _, err := env.FS.Stat(manifestPath); err == nil {
		return nil, errors.Newf(errors.ErrDestinationExists,
			"`kiln init` cannot be run on existing packages (found `%s`)", manifestPath).
			WithDetail("path", manifestPath)
	}

	// 4. Plan and write
	result, err := pipeline.Run("init", opts, env)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "InitProject").
		Str("name", result.Plan.Name.String()).
		Str("path", env.Root).
		Bool("dryRun", result.DryRun).
		Int("filesCreated", len(result.FilesCreated)).
		Int("filesKept", len(result.FilesKept)).
		Msg("Command finished")
	return result, nil
}
