// Package config loads the user's defaults for new projects.
//
// Settings live under the [cargo-new] table (name, email, vcs) and are
// layered with koanf, later layers winning:
//
//  1. the embedded defaults
//  2. $CARGO_HOME/config.toml (~/.cargo/config.toml when unset)
//  3. the kiln user config, $KILN_CONFIG or <XDG config home>/kiln/config.toml
//  4. every .cargo/config.toml from the filesystem root down to the
//     working directory
//  5. CARGO_NEW_NAME, CARGO_NEW_EMAIL and CARGO_NEW_VCS
//
// The result, together with the VCS identity and the author environment
// variables, is captured once per invocation by Snapshot.
package config
