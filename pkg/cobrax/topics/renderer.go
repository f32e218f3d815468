package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for the terminal. ext is the extension of
// the topic file, dot included.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through unchanged.
type GlamourRenderer struct {
	// Style is a glamour standard style name or a path to a style file.
	// Empty or "auto" detects from the terminal.
	Style string
	// Width wraps output at this column; 0 keeps glamour's default
	Width int
	// NoColor selects the "notty" style regardless of Style
	NoColor bool
}

// NewGlamourRenderer creates a markdown renderer that detects its style
// from the terminal, or renders without color when noColor is set
func NewGlamourRenderer(noColor bool) *GlamourRenderer {
	return &GlamourRenderer{Style: "auto", NoColor: noColor}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	var options []glamour.TermRendererOption
	switch {
	case r.NoColor:
		options = append(options, glamour.WithStandardStyle("notty"))
	case r.Style != "" && r.Style != "auto":
		options = append(options, glamour.WithStylePath(r.Style))
	default:
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	return options
}

// Render converts markdown to terminal output, falling back to the raw
// content when glamour fails
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	renderer, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
