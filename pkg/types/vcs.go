package types

import (
	"fmt"
	"strings"
)

// VersionControl is the version-control system governing a new project
type VersionControl int

const (
	// VcsNone leaves the project outside any repository
	VcsNone VersionControl = iota
	// VcsGit initializes or reuses a git repository
	VcsGit
	// VcsHg initializes or reuses a mercurial repository
	VcsHg
)

// String returns the flag/config spelling of the choice
func (v VersionControl) String() string {
	switch v {
	case VcsNone:
		return "none"
	case VcsGit:
		return "git"
	case VcsHg:
		return "hg"
	default:
		return fmt.Sprintf("VersionControl(%d)", int(v))
	}
}

// MarshalYAML renders the choice by name in plan previews
func (v VersionControl) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// MetadataDir is the directory whose presence marks a repository root
func (v VersionControl) MetadataDir() string {
	switch v {
	case VcsGit:
		return ".git"
	case VcsHg:
		return ".hg"
	default:
		return ""
	}
}

// IgnoreFile is the name of the ignore file the VCS reads
func (v VersionControl) IgnoreFile() string {
	switch v {
	case VcsGit:
		return ".gitignore"
	case VcsHg:
		return ".hgignore"
	default:
		return ""
	}
}

// ParseVersionControl parses "none", "git" or "hg"
func ParseVersionControl(s string) (VersionControl, error) {
	switch strings.TrimSpace(s) {
	case "none":
		return VcsNone, nil
	case "git":
		return VcsGit, nil
	case "hg":
		return VcsHg, nil
	default:
		return VcsNone, fmt.Errorf("could not decode '%s' as version control", s)
	}
}
