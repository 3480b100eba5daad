package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ardnew/hini/lang"
)

// Fmt parses a source document and renders it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Render in native syntax (default)."`
	JSON   JSON   `cmd:""                    help:"Render as JSON."`
	YAML   YAML   `cmd:""                    help:"Render as YAML."`
	Tree   Tree   `cmd:""                    help:"Render the section hierarchy as a tree."`
}

// wrapFormat tags a failure with the output format in effect.
func wrapFormat(err error, format string) error {
	var e *lang.Error
	if errors.As(err, &e) {
		return e.With(slog.String("format", format))
	}

	return err
}

// Native renders the document back in native syntax.
type Native struct {
	Resolve bool `help:"Resolve %...% references before rendering" negatable:""`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin" name:"source"`
}

// Run executes the fmt native command.
func (f *Native) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, err := input(ctx, f.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	root, err := lang.ParseReader(ctx, file)
	if err != nil {
		return wrapFormat(err, "native")
	}

	if f.Resolve {
		if err := root.Resolve(); err != nil {
			return wrapFormat(err, "native")
		}
	}

	if err := root.Format(ctx, os.Stdout); err != nil {
		return ErrRender.With(slog.String("format", "native")).Wrap(err)
	}

	return nil
}

// JSON renders the document as JSON.
type JSON struct {
	Indent  int  `default:"2" help:"Indent width for JSON output" short:"i"`
	Resolve bool `            help:"Resolve %...% references before rendering" negatable:""`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin" name:"source"`
}

// Run executes the fmt json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, err := input(ctx, j.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	root, err := lang.ParseReader(ctx, file)
	if err != nil {
		return wrapFormat(err, "json")
	}

	if j.Resolve {
		if err := root.Resolve(); err != nil {
			return wrapFormat(err, "json")
		}
	}

	if err := root.FormatJSON(ctx, os.Stdout, j.Indent); err != nil {
		return ErrRender.With(slog.String("format", "json")).Wrap(err)
	}

	return nil
}

// YAML renders the document as YAML.
type YAML struct {
	Indent  int  `default:"2" help:"Indent width for YAML output" short:"i"`
	Resolve bool `            help:"Resolve %...% references before rendering" negatable:""`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin" name:"source"`
}

// Run executes the fmt yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, err := input(ctx, y.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	root, err := lang.ParseReader(ctx, file)
	if err != nil {
		return wrapFormat(err, "yaml")
	}

	if y.Resolve {
		if err := root.Resolve(); err != nil {
			return wrapFormat(err, "yaml")
		}
	}

	if err := root.FormatYAML(ctx, os.Stdout, y.Indent); err != nil {
		return ErrRender.With(slog.String("format", "yaml")).Wrap(err)
	}

	return nil
}

// Tree renders the section hierarchy as an ASCII tree.
type Tree struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin" name:"source"`
}

// Run executes the fmt tree command.
func (t *Tree) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, err := input(ctx, t.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	root, err := lang.ParseReader(ctx, file)
	if err != nil {
		return wrapFormat(err, "tree")
	}

	if err := root.FormatTree(ctx, os.Stdout); err != nil {
		return ErrRender.With(slog.String("format", "tree")).Wrap(err)
	}

	return nil
}
