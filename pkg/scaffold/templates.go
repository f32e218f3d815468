package scaffold

import "github.com/arthur-debert/kiln/pkg/types"

// IgnoreEntries are appended to the ignore file of the chosen VCS
const IgnoreEntries = "target\nCargo.lock\n"

// BinaryStub is the source written for a new binary target
const BinaryStub = `fn main() {
    println!("Hello, world!");
}
`

// LibraryStub is the source written for a new library target
const LibraryStub = `#[test]
fn it_works() {
}
`

// StubFor returns the initial source for a target of the given kind
func StubFor(kind types.TargetKind) string {
	if kind == types.Binary {
		return BinaryStub
	}
	return LibraryStub
}
