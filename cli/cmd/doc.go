// Package cmd implements the subcommands of the hini command line tool.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default configuration file. It doubles as the name of the section
	// holding flag values within that file.
	ConfigIdentifier = "config"
)
