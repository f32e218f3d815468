package create

import (
	"github.com/arthur-debert/kiln/pkg/commands/internal/pipeline"
	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/types"
)

// NewProjectOptions defines the options for the NewProject command.
type NewProjectOptions = pipeline.Options

// NewProject creates a package in a directory that must not exist yet.
func NewProject(opts NewProjectOptions) (*types.ProjectResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "NewProject").Str("path", opts.Path).Msg("Executing command")

	// 1. Validate input
	if opts.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "project path cannot be empty")
	}

	// 2. Resolve path and capabilities
	env, err := pipeline.Resolve(opts)
	if err != nil {
		return nil, err
	}

	// 3. The destination must be free
	if _, err := env.FS.Stat(env.Root); err == nil {
		return nil, errors.Newf(errors.ErrDestinationExists,
			"destination `%s` already exists\n\nUse `kiln init` to initialize the directory", env.Root).
			WithDetail("path", env.Root)
	}

	// 4. Plan and write
	result, err := pipeline.Run("new", opts, env)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "NewProject").
		Str("name", result.Plan.Name.String()).
		Str("path", env.Root).
		Bool("dryRun", result.DryRun).
		Int("filesCreated", len(result.FilesCreated)).
		Msg("Command finished")
	return result, nil
}
