package cmd

import (
	"context"
	"io"

	"github.com/ardnew/hini/cli/cmd/repl"
	"github.com/ardnew/hini/log"
)

// Repl starts an interactive prompt for evaluating expressions against
// a parsed document.
type Repl struct {
	Source string `arg:"" help:"Source input file or '-' for stdin" optional:"" name:"source"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	cacheDir, ok := ktx.Model.Vars()[CacheIdentifier]
	if !ok {
		panic("internal error: cache directory undefined")
	}

	// The prompt owns the terminal, so the document must be named
	// explicitly or arrive via --source; there is no stdin default.
	var reader io.Reader

	if r.Source != "" {
		file, err := input(ctx, r.Source)
		if err != nil {
			return err
		}
		defer file.Close()

		reader = file
	} else if files := sourceFilesFrom(ctx); files != nil {
		reader = files
	}

	return repl.Run(ctx, reader, cacheDir, log.Default())
}
