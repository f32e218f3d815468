// Package filesystem provides kiln's types.FS implementation and the three
// write primitives project creation is built from.
//
// Both the real filesystem and the in-memory one used by tests are afero
// filesystems behind the same adapter, so surveys and writes behave the
// same way in either. The primitives never overwrite user content:
// AppendFile only adds bytes, CreateExclusive refuses existing paths and
// ReplaceFile swaps a file in through a rename.
package filesystem
