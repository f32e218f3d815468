// Package testutil provides utilities for testing kiln components.
//
// Key components:
//   - TestEnvironment: a workspace on an in-memory or real filesystem
//   - MockBackend: a Backend double that records repository creation
//   - Ambient fixtures for author attribution
//   - File helpers that fail the test instead of returning errors
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; only tests that drive real VCS tools or the OS
//     filesystem need EnvIsolated
//   - All test data should be defined inline, not in external files
package testutil
