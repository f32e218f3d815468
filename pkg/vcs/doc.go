// Package vcs decides which version-control system a new project lives
// under and hosts the capabilities that talk to the VCS tools.
//
// Selection is a pure decision over the explicit request, the evidence on
// disk, the configured default and whether the parent directory already
// belongs to a checkout. The side effects (creating a repository,
// discovering an enclosing one, reading the user's identity) sit behind
// the Backend interface and LoadIdentity so the decision can be tested
// without git or hg installed.
package vcs
