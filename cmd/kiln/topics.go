package kiln

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var embeddedTopics embed.FS

// topicsFS returns the help topics rooted at the topics directory
func topicsFS() fs.FS {
	sub, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		// the embed pattern guarantees the directory
		panic(err)
	}
	return sub
}
