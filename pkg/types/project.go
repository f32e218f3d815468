package types

import "fmt"

// ProjectName is a validated crate identifier. Values are only produced by
// the naming package after every rune has been checked.
type ProjectName string

// String returns the name as plain text
func (n ProjectName) String() string {
	return string(n)
}

// TargetKind classifies a source file as a binary or library target
type TargetKind int

const (
	// Binary targets have an entry point and produce an executable
	Binary TargetKind = iota
	// Library targets produce a crate other crates depend on
	Library
)

// String returns the manifest-facing name of the kind
func (k TargetKind) String() string {
	switch k {
	case Binary:
		return "bin"
	case Library:
		return "lib"
	default:
		return fmt.Sprintf("TargetKind(%d)", int(k))
	}
}

// MarshalYAML renders the kind by name in plan previews
func (k TargetKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// SourceFileIntent describes one source file that exists or will be created
type SourceFileIntent struct {
	// RelativePath is slash-separated and relative to the project root
	RelativePath string     `yaml:"path"`
	TargetName   string     `yaml:"target"`
	Kind         TargetKind `yaml:"kind"`
	// Planned is true for the default stub synthesized when nothing was discovered
	Planned bool `yaml:"planned"`
}

// ProjectPlan is everything the writer needs to realize a project on disk.
// It is fully validated before any filesystem mutation happens and is never
// modified afterwards.
type ProjectPlan struct {
	Name        ProjectName        `yaml:"name"`
	Root        string             `yaml:"root"`
	VCS         VersionControl     `yaml:"vcs"`
	SourceFiles []SourceFileIntent `yaml:"source_files"`
}

// Library returns the library intent of the plan, if any
func (p *ProjectPlan) Library() (SourceFileIntent, bool) {
	for _, sf := range p.SourceFiles {
		if sf.Kind == Library {
			return sf, true
		}
	}
	return SourceFileIntent{}, false
}

// Binaries returns the binary intents of the plan in plan order
func (p *ProjectPlan) Binaries() []SourceFileIntent {
	var bins []SourceFileIntent
	for _, sf := range p.SourceFiles {
		if sf.Kind == Binary {
			bins = append(bins, sf)
		}
	}
	return bins
}
