// Package survey discovers the source files already present in a project
// directory and classifies each one as a binary or library target.
package survey

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/types"
)

// EntryPointMarker is the text whose presence makes a detected file a binary
const EntryPointMarker = "fn main"

const (
	DefaultBinaryPath  = "src/main.rs"
	DefaultLibraryPath = "src/lib.rs"
)

type rule int

const (
	alwaysBinary rule = iota
	alwaysLibrary
	detect
)

type candidate struct {
	// template is slash-separated; {name} is replaced by the project name
	template string
	rule     rule
}

// candidates are probed in this order and the output keeps it
var candidates = []candidate{
	{"src/main.rs", alwaysBinary},
	{"main.rs", alwaysBinary},
	{"src/{name}.rs", detect},
	{"{name}.rs", detect},
	{"src/lib.rs", alwaysLibrary},
	{"lib.rs", alwaysLibrary},
}

// Survey probes the candidate table under root and returns an intent for
// every candidate that exists as a regular file. It fails when the
// discovered files define the same binary twice or more than one library.
func Survey(fsys types.FS, root string, name types.ProjectName) ([]types.SourceFileIntent, error) {
	log := logging.GetLogger("survey")

	var intents []types.SourceFileIntent
	seen := make(map[string]bool)
	for _, c := range candidates {
		rel := strings.ReplaceAll(c.template, "{name}", name.String())
		// a crate named "main" or "lib" makes two templates point at one file
		if seen[rel] {
			continue
		}
		seen[rel] = true
		abs := filepath.Join(root, filepath.FromSlash(rel))

		info, err := fsys.Stat(abs)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		kind, err := classify(fsys, abs, c.rule)
		if err != nil {
			return nil, err
		}

		log.Debug().Str("path", rel).Stringer("kind", kind).Msg("Discovered source file")
		intents = append(intents, types.SourceFileIntent{
			RelativePath: rel,
			TargetName:   name.String(),
			Kind:         kind,
		})
	}

	if err := checkConflicts(intents); err != nil {
		return nil, err
	}
	return intents, nil
}

func classify(fsys types.FS, abs string, r rule) (types.TargetKind, error) {
	switch r {
	case alwaysBinary:
		return types.Binary, nil
	case alwaysLibrary:
		return types.Library, nil
	}

	content, err := fsys.ReadFile(abs)
	if err != nil {
		return types.Library, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", abs).
			WithDetail("path", abs)
	}
	if strings.Contains(string(content), EntryPointMarker) {
		return types.Binary, nil
	}
	return types.Library, nil
}

func checkConflicts(intents []types.SourceFileIntent) error {
	binaries := make(map[string]string)
	library := ""

	for _, sf := range intents {
		switch sf.Kind {
		case types.Binary:
			if first, ok := binaries[sf.TargetName]; ok {
				return errors.Newf(errors.ErrAmbiguousBinary,
					"There are multiple eligible source files for binary `%s`: `%s` and `%s`. Remove one of them or use --name.",
					sf.TargetName, first, sf.RelativePath).
					WithDetail("first", first).
					WithDetail("second", sf.RelativePath)
			}
			binaries[sf.TargetName] = sf.RelativePath
		case types.Library:
			if library != "" {
				return errors.Newf(errors.ErrDuplicateLibrary,
					"There are multiple library source files: `%s` and `%s`. A package can only have one library.",
					library, sf.RelativePath).
					WithDetail("first", library).
					WithDetail("second", sf.RelativePath)
			}
			library = sf.RelativePath
		}
	}
	return nil
}

// DefaultIntent is the single stub planned when the survey found nothing
func DefaultIntent(name types.ProjectName, kind types.TargetKind) types.SourceFileIntent {
	rel := DefaultLibraryPath
	if kind == types.Binary {
		rel = DefaultBinaryPath
	}
	return types.SourceFileIntent{
		RelativePath: rel,
		TargetName:   name.String(),
		Kind:         kind,
		Planned:      true,
	}
}

// IsDefaultLayout reports whether the manifest can rely on the implicit
// target for sf instead of an explicit section
func IsDefaultLayout(sf types.SourceFileIntent, name types.ProjectName) bool {
	if sf.TargetName != name.String() {
		return false
	}
	switch sf.Kind {
	case types.Binary:
		return path.Clean(sf.RelativePath) == DefaultBinaryPath
	case types.Library:
		return path.Clean(sf.RelativePath) == DefaultLibraryPath
	}
	return false
}
