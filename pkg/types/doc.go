// Package types defines the core types and interfaces used throughout kiln.
// This includes the project plan and its source-file intents, the version
// control choice, the ambient configuration snapshot, and the filesystem
// interface every stage reads and writes through.
package types
