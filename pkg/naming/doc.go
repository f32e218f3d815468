// Package naming derives and validates the project identifier.
//
// A name comes either from an explicit override or from the last component of
// the target directory. Library projects named after the directory lose one
// conventional Rust affix ("rust-foo" becomes "foo"). Every resolved name is
// checked with CheckName before anything touches the filesystem.
package naming
