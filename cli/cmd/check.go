package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/hini/lang"
	"github.com/ardnew/hini/pkg"
)

// Check parses each source and resolves its %...% references, printing
// a diagnostic for every failure. It exits nonzero when any source
// fails.
type Check struct {
	Quiet bool `help:"Suppress diagnostics; report only via exit status" short:"q"`

	Sources []string `arg:"" help:"Source input files or '-' for stdin" optional:"" name:"sources"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	sources := c.Sources
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	var chain pkg.Error

	for _, source := range sources {
		checkErr := checkSource(ctx, source)
		if checkErr == nil {
			continue
		}

		chain = chain.Wrapf("%s: %w", source, checkErr)

		if !c.Quiet {
			fmt.Fprint(os.Stderr, diagnostic(source, checkErr))
		}
	}

	if len(chain) > 0 {
		return ErrCheckFailed.With(slog.Int("sources", len(chain))).Wrap(chain)
	}

	return nil
}

// checkSource parses and resolves a single source.
func checkSource(ctx context.Context, source string) error {
	file, err := input(ctx, source)
	if err != nil {
		return err
	}
	defer file.Close()

	root, err := lang.ParseReader(ctx, file)
	if err != nil {
		return err
	}

	return root.Resolve()
}

// diagnostic renders one failure as "source: message" followed by the
// offending line and a caret when the error carries a position.
func diagnostic(source string, err error) string {
	var b strings.Builder

	b.WriteString(source)
	b.WriteString(": ")
	b.WriteString(err.Error())
	b.WriteString("\n")

	var e *lang.Error
	if errors.As(err, &e) {
		b.WriteString(e.Snippet())
	}

	return b.String()
}
