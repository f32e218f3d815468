// Package ui decides how kiln's terminal output should look.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is the styling requested with --format
type Format int

const (
	// FormatAuto styles output only when it reaches a color terminal
	FormatAuto Format = iota
	// FormatTerminal always styles output
	FormatTerminal
	// FormatText never styles output
	FormatText
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat accepts the --format spellings, case-insensitively. The empty
// string is auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	}
	return FormatAuto, fmt.Errorf("unknown format %q, expected auto, term or text", s)
}

// DetectFormat resolves auto for w. NO_COLOR and TERM=dumb force text;
// otherwise w must be a terminal file with color support.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return FormatText
	}

	file, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(file).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// NoColor reports whether output written to w must be plain under format
func NoColor(format Format, w io.Writer) bool {
	if format == FormatAuto {
		format = DetectFormat(w)
	}
	return format == FormatText
}
