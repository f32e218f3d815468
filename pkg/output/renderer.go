// Package output renders command results for the terminal.
//
// Successful commands print nothing; the renderer is only used for dry-run
// previews, notices and errors. Styles come from pkg/output/styles and are
// dropped entirely when color is disabled.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/output/styles"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Renderer writes styled output to one writer
type Renderer struct {
	writer   io.Writer
	noColor  bool
	renderer *lipgloss.Renderer
}

// NewRenderer creates a Renderer for w. With noColor every style is
// stripped and plain text is written.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	log := logging.GetLogger("output.Renderer")

	r := &Renderer{writer: w, noColor: noColor}
	if !noColor {
		r.renderer = lipgloss.NewRenderer(w)
		log.Debug().
			Str("colorProfile", fmt.Sprintf("%v", r.renderer.ColorProfile())).
			Msg("Lipgloss renderer created")
	}
	return r
}

func (r *Renderer) style(name, text string) string {
	if r.noColor {
		return text
	}
	return styles.GetStyle(name).Renderer(r.renderer).Render(text)
}

// previewDocument is the YAML shape of a dry run
type previewDocument struct {
	Command string             `yaml:"command"`
	Plan    *types.ProjectPlan `yaml:"plan"`
	Author  string             `yaml:"author"`
}

// RenderPreview writes the plan of a dry run as YAML followed by the
// manifest that would be written
func (r *Renderer) RenderPreview(result *types.ProjectResult) error {
	doc, err := yaml.Marshal(previewDocument{
		Command: result.Command,
		Plan:    result.Plan,
		Author:  result.Author,
	})
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	var b strings.Builder
	b.WriteString(r.style("Comment", "# dry run: nothing was written"))
	b.WriteString("\n")
	b.Write(doc)
	b.WriteString("\n")
	b.WriteString(r.style("Heading", "# "+result.Plan.Root+"/Cargo.toml"))
	b.WriteString("\n")
	b.WriteString(result.Manifest)

	_, err = io.WriteString(r.writer, b.String())
	return err
}

// RenderNotices writes one line per notice
func (r *Renderer) RenderNotices(notices []string) error {
	for _, notice := range notices {
		if _, err := fmt.Fprintln(r.writer, r.style("Note", notice)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError writes err on one line, followed by a "Caused by" block
// listing the errors it wraps
func (r *Renderer) RenderError(err error) error {
	causes := errors.Causes(err)
	if len(causes) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.style("Error", "error:"), causes[0])
	if len(causes) > 1 {
		b.WriteString("\n" + r.style("Heading", "Caused by:") + "\n")
		for _, cause := range causes[1:] {
			for _, line := range strings.Split(cause, "\n") {
				if line == "" {
					b.WriteString("\n")
					continue
				}
				b.WriteString("  " + line + "\n")
			}
		}
	}
	_, writeErr := io.WriteString(r.writer, b.String())
	return writeErr
}
