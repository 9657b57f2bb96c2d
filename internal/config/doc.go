// Package config manages jot's persistent settings.
//
// Settings live in a single TOML document in a per-user configuration
// directory. The set of keys is closed: jot stores exactly the idea
// repository path and the branch name. Whether setup has completed is
// always derived from the presence of both values, never stored.
package config
