// Package cmd implements the buildfile subcommands.
//
// Each command is a kong command struct whose Run method receives the
// command's [context.Context] and an [*Env] bound by the caller. Commands
// never touch the process's files or standard streams directly; they go
// through the Env, so tests can run them against an in-memory filesystem.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the JSON configuration file.
	ConfigIdentifier = "config"
)
