package main

import (
	"os"

	"github.com/arthur-debert/kiln/cmd/kiln"
	"github.com/arthur-debert/kiln/pkg/output"
	"github.com/arthur-debert/kiln/pkg/ui"
)

func main() {
	rootCmd := kiln.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := output.NewRenderer(os.Stderr, ui.NoColor(ui.FormatAuto, os.Stderr))
		_ = renderer.RenderError(err)
		os.Exit(1)
	}
}
