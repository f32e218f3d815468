// Package commands provides high-level command implementations for kiln.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the planning and writing stages.
//
// Each command is implemented in its own subdirectory:
//   - create/     - NewProject command (kiln new)
//   - initialize/ - InitProject command (kiln init)
//   - internal/   - Shared plan-then-write pipeline
//
// This file re-exports the command functions so callers need one import.
package commands

import (
	"github.com/arthur-debert/kiln/pkg/commands/create"
	"github.com/arthur-debert/kiln/pkg/commands/initialize"
	"github.com/arthur-debert/kiln/pkg/types"
)

// NewProject creates a package in a directory that does not exist yet.
type NewProjectOptions = create.NewProjectOptions

func NewProject(opts NewProjectOptions) (*types.ProjectResult, error) {
	return create.NewProject(opts)
}

// InitProject turns an existing directory into a package.
type InitProjectOptions = initialize.InitProjectOptions

func InitProject(opts InitProjectOptions) (*types.ProjectResult, error) {
	return initialize.InitProject(opts)
}
