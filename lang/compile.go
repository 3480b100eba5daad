package lang

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/hini/log"
)

// evalConfig holds evaluation-time parameters.
type evalConfig struct {
	environ []string
	logger  log.Logger
}

// EvalOption configures expression compilation and evaluation.
type EvalOption func(evalConfig) evalConfig

func (c evalConfig) apply(opts ...EvalOption) evalConfig {
	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithEnviron overrides the process environment visible to the env
// built-in. Entries are "KEY=VALUE" strings; with none, os.Environ()
// is used.
func WithEnviron(environ ...string) EvalOption {
	return func(c evalConfig) evalConfig {
		c.environ = environ

		return c
	}
}

// WithEvalLogger sets the logger used during compilation and
// evaluation.
func WithEvalLogger(logger log.Logger) EvalOption {
	return func(c evalConfig) evalConfig {
		c.logger = logger

		return c
	}
}

// Compile compiles an expression against the document environment of
// root. Hyphenated section and key names parse as subtraction in
// expr-lang and are patched back into single identifiers when they
// name something in the document.
func Compile(root *Section, source string, opts ...EvalOption) (*vm.Program, error) {
	_, program, err := compileExpr(root, source, evalConfig{}.apply(opts...))

	return program, err
}

// compileExpr builds the evaluation environment and compiles source
// against it, returning both.
func compileExpr(
	root *Section,
	source string,
	cfg evalConfig,
) (map[string]any, *vm.Program, error) {
	env := buildEnv(root, cfg.environ)

	patcher := &hyphenPatcher{root: root, env: env, logger: cfg.logger}

	program, err := expr.Compile(source, expr.Env(env), expr.Patch(patcher))
	if err != nil {
		return nil, nil, ErrExprCompile.Wrap(err).
			With(slog.String("source", source))
	}

	return env, program, nil
}
