// Package planner composes name resolution, the source survey and VCS
// selection into a validated ProjectPlan. Nothing in this package writes to
// the filesystem.
package planner

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/naming"
	"github.com/arthur-debert/kiln/pkg/survey"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/arthur-debert/kiln/pkg/vcs"
)

// Request is what the user asked for. Nil pointers were not specified.
type Request struct {
	Root string
	Name string
	Kind *types.TargetKind
	VCS  *types.VersionControl
}

// Deps are the capabilities planning reads through
type Deps struct {
	FS      types.FS
	Backend vcs.Backend
	Ambient types.Ambient
	// Notify, when set, receives each notice as soon as it is produced,
	// so notices reach the user even when a later stage fails
	Notify func(notice string)
}

// Result is a plan plus the notes to show the user about how it was derived
type Result struct {
	Plan    *types.ProjectPlan
	Notices []string
}

// DefaultKind is used when neither --bin nor --lib was given
const DefaultKind = types.Library

// Prepare runs the query stages in order: name, source survey (or the
// default stub), version control. It fails on the first stage that fails.
func Prepare(req Request, deps Deps) (*Result, error) {
	log := logging.GetLogger("planner")

	kind := DefaultKind
	if req.Kind != nil {
		kind = *req.Kind
	}

	var notices []string
	note := func(notice string) {
		notices = append(notices, notice)
		if deps.Notify != nil {
			deps.Notify(notice)
		}
	}

	name, notice, err := naming.Resolve(req.Root, req.Name, kind)
	if err != nil {
		return nil, err
	}
	if notice != "" {
		note(notice)
	}

	intents, err := survey.Survey(deps.FS, req.Root, name)
	if err != nil {
		return nil, err
	}
	if len(intents) == 0 {
		intents = []types.SourceFileIntent{survey.DefaultIntent(name, kind)}
	} else if req.Kind != nil && !hasKind(intents, *req.Kind) {
		note(fmt.Sprintf(
			"note: ignoring --%s, the targets are taken from the existing source files", *req.Kind))
	}

	choice, err := vcs.Select(deps.FS, req.Root, req.VCS, deps.Ambient.Preferences, deps.Backend)
	if err != nil {
		return nil, err
	}

	plan, err := Build(name, req.Root, choice, intents)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("name", plan.Name.String()).
		Str("root", plan.Root).
		Stringer("vcs", plan.VCS).
		Int("sourceFiles", len(plan.SourceFiles)).
		Msg("Project plan prepared")

	return &Result{Plan: plan, Notices: notices}, nil
}

func hasKind(intents []types.SourceFileIntent, kind types.TargetKind) bool {
	for _, sf := range intents {
		if sf.Kind == kind {
			return true
		}
	}
	return false
}

// Build assembles a plan and re-checks its invariants. A violation means a
// caller skipped validation and is reported as an internal error.
func Build(name types.ProjectName, root string, choice types.VersionControl, intents []types.SourceFileIntent) (*types.ProjectPlan, error) {
	if err := naming.CheckName(name.String()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "plan built with an unchecked project name")
	}
	if root == "" {
		return nil, errors.New(errors.ErrInternal, "plan built without a project root")
	}
	if len(intents) == 0 {
		return nil, errors.New(errors.ErrInternal, "plan built without source files")
	}

	libraries := 0
	binaries := make(map[string]bool)
	for _, sf := range intents {
		switch sf.Kind {
		case types.Library:
			libraries++
			if libraries > 1 {
				return nil, errors.Newf(errors.ErrInternal, "plan has more than one library target (%s)", sf.RelativePath).
					WithDetail("path", sf.RelativePath)
			}
		case types.Binary:
			if binaries[sf.TargetName] {
				return nil, errors.Newf(errors.ErrInternal, "plan has two binary targets named %s", sf.TargetName).
					WithDetail("path", sf.RelativePath)
			}
			binaries[sf.TargetName] = true
		default:
			return nil, errors.Newf(errors.ErrInternal, "unknown target kind %s", sf.Kind)
		}
	}

	sources := make([]types.SourceFileIntent, len(intents))
	copy(sources, intents)

	return &types.ProjectPlan{
		Name:        name,
		Root:        filepath.Clean(root),
		VCS:         choice,
		SourceFiles: sources,
	}, nil
}
