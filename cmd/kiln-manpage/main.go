// Command kiln-manpage generates the kiln man pages. With no argument the
// root page is written to stdout; with a directory, one page per command is
// written there.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/kiln/cmd/kiln"
	"github.com/arthur-debert/kiln/internal/version"
)

func main() {
	rootCmd := kiln.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "KILN",
		Section: "1",
		Source:  "kiln " + version.Version,
		Manual:  "kiln manual",
	}

	var err error
	if len(os.Args) > 1 {
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
