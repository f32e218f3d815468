package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/types"
)

var (
	affixPrefixes = []string{"rust-", "rust_", "rs-", "rs_"}
	affixSuffixes = []string{"-rust", "_rust", "-rs", "_rs"}
)

// Resolve produces the project name for root. An explicit name is used
// verbatim; otherwise the last path component is used, with one Rust affix
// stripped for library targets. The returned notice is non-empty when
// stripping changed the derived name.
func Resolve(root, explicit string, kind types.TargetKind) (types.ProjectName, string, error) {
	log := logging.GetLogger("naming")

	if explicit != "" {
		if err := CheckName(explicit); err != nil {
			return "", "", err
		}
		return types.ProjectName(explicit), "", nil
	}

	dirName, err := lastComponent(root)
	if err != nil {
		return "", "", err
	}

	name := dirName
	notice := ""
	if kind == types.Library {
		name = StripAffixes(dirName)
		if name != dirName {
			notice = fmt.Sprintf("note: package will be named `%s`; use --name to override", name)
		}
	}

	if err := CheckName(name); err != nil {
		return "", "", err
	}

	log.Debug().Str("root", root).Str("name", name).Msg("Resolved project name")
	return types.ProjectName(name), notice, nil
}

// lastComponent returns the final element of path, refusing paths that have none
func lastComponent(path string) (string, error) {
	cleaned := filepath.Clean(path)
	base := filepath.Base(cleaned)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", errors.Newf(errors.ErrNameResolution,
			"cannot auto-detect project name from path %q ; use --name to override", path).
			WithDetail("path", path)
	}
	if !utf8.ValidString(base) {
		return "", errors.Newf(errors.ErrNameResolution,
			"cannot create a project with a non-unicode name: %q", base).
			WithDetail("path", path)
	}
	return base, nil
}

// StripAffixes removes at most one conventional Rust prefix or suffix.
// Prefixes are checked before suffixes and the first match wins.
func StripAffixes(name string) string {
	for _, prefix := range affixPrefixes {
		if strings.HasPrefix(name, prefix) {
			return name[len(prefix):]
		}
	}
	for _, suffix := range affixSuffixes {
		if strings.HasSuffix(name, suffix) {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}

// CheckName rejects empty names and names containing anything other than
// alphanumerics, '_' and '-'. Alphanumeric includes the combining vowel
// signs of scripts such as Devanagari.
func CheckName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidName, "crate name cannot be empty")
	}
	for _, c := range name {
		if unicode.In(c, unicode.Letter, unicode.Number, unicode.Other_Alphabetic) || c == '_' || c == '-' {
			continue
		}
		return errors.Newf(errors.ErrInvalidName, "Invalid character `%c` in crate name: `%s`", c, name).
			WithDetail("char", string(c)).
			WithDetail("name", name)
	}
	return nil
}
