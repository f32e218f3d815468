// Package scaffold realizes a ProjectPlan on disk.
//
// Every decision has already been made by the time Write runs. The writer
// only performs four kinds of mutation, in this order:
//
//  1. version control: create the repository when its metadata directory is
//     missing and append the build outputs to its ignore file
//  2. the manifest, written to a temporary file and renamed into place
//  3. parent directories of the source files
//  4. source stubs, created only where no file exists yet
//
// Existing user files are never truncated or replaced. Running Write twice
// against the same plan leaves every source file byte-for-byte identical,
// though the ignore file receives its entries a second time.
package scaffold
