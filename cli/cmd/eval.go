package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/hini/lang"
)

// Eval runs an expression against a parsed document and prints the
// result. Scalar results print bare; composite results print as
// compact JSON.
type Eval struct {
	Raw bool `help:"Keep %...% references unresolved" negatable:"" short:"r"`

	Expr   string `arg:"" help:"Expression to evaluate"                         name:"expr"`
	Source string `       help:"Source input file or '-' for stdin" default:"-" short:"f"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, err := input(ctx, e.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	root, err := lang.ParseReader(ctx, file)
	if err != nil {
		return err
	}

	if !e.Raw {
		if err := root.Resolve(); err != nil {
			return err
		}
	}

	result, err := lang.Eval(ctx, root, e.Expr)
	if err != nil {
		return err
	}

	fmt.Println(lang.FormatResult(result))

	return nil
}
