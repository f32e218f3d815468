// Package version holds the build information stamped in by the release
// tooling.
package version

import "fmt"

// Build information set by ldflags, e.g.
// -X github.com/arthur-debert/kiln/internal/version.Version={{.Version}}
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the build information on one line
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
