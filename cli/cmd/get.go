package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ardnew/hini/lang"
)

// Get prints the value stored at a dot-separated path. When the path
// names a section instead of a key, the section is rendered in native
// syntax.
type Get struct {
	Raw bool `help:"Keep %...% references unresolved" negatable:"" short:"r"`

	Path   string `arg:"" help:"Dot-separated path of a key or section"              name:"path"`
	Source string `arg:"" help:"Source input file or '-' for stdin"    optional:"" default:"-" name:"source"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, err := input(ctx, g.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	root, err := lang.ParseReader(ctx, file)
	if err != nil {
		return err
	}

	if !g.Raw {
		if err := root.Resolve(); err != nil {
			return err
		}
	}

	// A path naming a key wins; otherwise retry it as a section path.
	value, keyErr := root.Value(g.Path)
	if keyErr == nil {
		fmt.Println(value)

		return nil
	}

	section, secErr := root.At(g.Path)
	if secErr != nil {
		return keyErr
	}

	return section.Format(ctx, os.Stdout)
}
