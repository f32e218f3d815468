// Package manifest renders the Cargo.toml for a project plan and resolves
// the author attributed in it.
package manifest

import (
	"strings"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/survey"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the manifest written at the project root
const FileName = "Cargo.toml"

// InitialVersion is the version every new package starts at
const InitialVersion = "0.1.0"

type packageSection struct {
	Name    string   `toml:"name"`
	Version string   `toml:"version"`
	Authors []string `toml:"authors"`
}

type targetSection struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

type document struct {
	Package packageSection  `toml:"package"`
	Bin     []targetSection `toml:"bin,omitempty"`
	Lib     *targetSection  `toml:"lib,omitempty"`
}

// Render produces the manifest text: the package table, a [[bin]] table for
// every binary outside the default layout, a [lib] table when the library
// is outside it, and an empty dependencies table.
func Render(plan *types.ProjectPlan, author string) (string, error) {
	doc := document{
		Package: packageSection{
			Name:    plan.Name.String(),
			Version: InitialVersion,
			Authors: []string{author},
		},
	}

	for _, sf := range plan.Binaries() {
		if survey.IsDefaultLayout(sf, plan.Name) {
			continue
		}
		doc.Bin = append(doc.Bin, targetSection{Name: sf.TargetName, Path: sf.RelativePath})
	}
	if lib, ok := plan.Library(); ok && !survey.IsDefaultLayout(lib, plan.Name) {
		doc.Lib = &targetSection{Name: lib.TargetName, Path: lib.RelativePath}
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode manifest")
	}

	var b strings.Builder
	b.Write(out)
	b.WriteString("\n[dependencies]\n")
	return b.String(), nil
}
