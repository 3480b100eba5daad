package lang

import (
	"context"
	"log/slog"
)

// Parse builds a section tree from configuration source text.
//
// The returned root section holds keys assigned before the first
// header and one child per named section. Parsing stops at the first
// syntax error; the returned error carries the offending position,
// recoverable with [PositionOf].
//
// The context is used only for logging.
func Parse(ctx context.Context, input string, opts ...Option) (*Section, error) {
	return parse(ctx, DefaultConfig().apply(opts...), input)
}

func parse(ctx context.Context, cfg Config, input string) (*Section, error) {
	scanner := newScanner(cfg, input)
	builder := newBuilder(cfg.logger)

	for scanner.Scan() {
		if err := builder.apply(scanner.Token()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	cfg.logger.DebugContext(ctx, "parsed document",
		slog.Int("sections", len(builder.root.children)),
		slog.Int("keys", len(builder.root.keys)),
	)

	return builder.root, nil
}
