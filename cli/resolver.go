package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/hini/lang"
	"github.com/ardnew/hini/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from a
// configuration file written in the same language this tool processes.
//
// Flag values are read from the section whose name matches the given name:
//
//	[config]
//	log-level = debug
//	log-format = text
//
// Keys may use either hyphens or underscores. Command-line flags override
// anything found here. A file that fails to parse never blocks the CLI: the
// loader degrades to an empty configuration.
func resolve(ctx context.Context, name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		root, err := lang.ParseReader(ctx, r)
		if err != nil {
			// Parse error - degrade to empty config
			log.DebugContext(ctx, "configuration file not loaded",
				slog.Any("error", err),
			)

			return config{}, nil
		}

		section, ok := root.Child(name)
		if !ok {
			// Section not found - return empty config
			return config{}, nil
		}

		values := make(config, section.Len())
		for _, key := range section.Keys() {
			values[key], _ = section.Lookup(key)
		}

		return values, nil
	}
}

// config implements [kong.Resolver] for configuration file sections.
// Every value is a string; Kong decodes it into the flag's own type.
type config map[string]string

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed - the config was already parsed successfully
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but keys in the config
	// file may use underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}
