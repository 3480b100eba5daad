// Package cli contains the command line interface for hini.
//
// # Usage
//
// Every command reads its document from an explicit source argument, the
// global --source flags, or stdin:
//
//	hini server.host config.ini
//	hini -s base.ini -s site.ini get server.host
//	cat config.ini | hini fmt json
//
// # Parser
//
// Commands load documents through the lang package's cached parsers:
//
//   - [lang.ParseReader]: parse from an io.Reader
//   - [lang.ParseFile]: parse the file at a path
//   - [lang.Load]: parse a file and resolve all value references
//   - [lang.NewStream]: incremental access to single sections
//   - [lang.ClearCache]: clear all cached parse results (useful for testing)
//
// Parse results are cached by content hash, so identical content is parsed
// only once even when accessed from multiple goroutines; every call sees a
// private copy of the tree.
//
// # Configuration Loader
//
// The package includes a Kong configuration loader ([resolve]) that reads
// flag values from a [config] section of a file written in the same
// language this tool processes:
//
//	[config]
//	log-level = debug
//	log-format = text
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/hini/pprof)
//
// # Examples
//
//	# Print a value with debug logging
//	hini --log-level=debug get server.host config.ini
//
//	# Render as YAML with CPU profiling
//	hini --pprof-mode=cpu fmt yaml config.ini
//
//	# Lint a set of files
//	hini check base.ini site.ini
package cli
