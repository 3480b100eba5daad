package lang

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr/vm"
)

// Eval compiles and runs an expression against the document
// environment of root.
//
// Top-level sections appear as nested maps and keys as strings, so
// expressions like server.host or port == "8080" read the document
// directly. The built-ins include get and has for dotted-path access,
// env for process environment variables, and the host inspection
// helpers described in the package documentation.
func Eval(
	ctx context.Context,
	root *Section,
	source string,
	opts ...EvalOption,
) (any, error) {
	cfg := evalConfig{}.apply(opts...)

	env, program, err := compileExpr(root, source, cfg)
	if err != nil {
		return nil, err
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).
			With(slog.String("source", source))
	}

	cfg.logger.DebugContext(ctx, "evaluated expression",
		slog.String("source", source),
		slog.String("result_type", resultTypeName(result)),
	)

	return result, nil
}
