package lang

import (
	"slices"
	"strings"

	"github.com/ardnew/hini/log"
)

// Config holds the lexical parameters of the configuration language.
//
// The zero value is not useful; construct one with [DefaultConfig] and
// refine it with [Option] values.
type Config struct {
	comment   []rune
	assign    rune
	quote     rune
	cont      rune
	escape    bool
	multiline bool
	logger    log.Logger
}

// DefaultConfig returns the standard lexical parameters:
// comments open with '#' or ';', assignment is '=', values quote
// with '"', lines continue with a trailing '\', and both escape
// sequences and multi-line values are enabled.
func DefaultConfig() Config {
	return Config{
		comment:   []rune{'#', ';'},
		assign:    '=',
		quote:     '"',
		cont:      '\\',
		escape:    true,
		multiline: true,
	}
}

// Option configures the lexical parameters of a parse.
type Option func(Config) Config

// apply returns cfg with each option applied in order.
func (c Config) apply(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithComments sets the runes that open a comment line.
func WithComments(marks ...rune) Option {
	return func(c Config) Config {
		c.comment = slices.Clone(marks)

		return c
	}
}

// WithAssign sets the rune separating keys from values.
func WithAssign(mark rune) Option {
	return func(c Config) Config {
		c.assign = mark

		return c
	}
}

// WithQuote sets the rune delimiting quoted values.
// Passing 0 disables quoted values entirely.
func WithQuote(mark rune) Option {
	return func(c Config) Config {
		c.quote = mark

		return c
	}
}

// WithContinuation sets the rune that joins a value with the following
// line. Passing 0 disables line continuation.
func WithContinuation(mark rune) Option {
	return func(c Config) Config {
		c.cont = mark

		return c
	}
}

// WithEscapes enables or disables escape sequences in quoted values.
func WithEscapes(enable bool) Option {
	return func(c Config) Config {
		c.escape = enable

		return c
	}
}

// WithMultiline enables or disables triple-quoted multi-line values.
func WithMultiline(enable bool) Option {
	return func(c Config) Config {
		c.multiline = enable

		return c
	}
}

// WithLogger sets the logger used during scanning and parsing.
// The zero logger discards all records.
func WithLogger(logger log.Logger) Option {
	return func(c Config) Config {
		c.logger = logger

		return c
	}
}

// Comments returns a copy of the runes that open a comment line.
func (c Config) Comments() []rune {
	return slices.Clone(c.comment)
}

// Assign returns the rune separating keys from values.
func (c Config) Assign() rune {
	return c.assign
}

// Quote returns the rune delimiting quoted values, or 0 when disabled.
func (c Config) Quote() rune {
	return c.quote
}

// Continuation returns the line continuation rune, or 0 when disabled.
func (c Config) Continuation() rune {
	return c.cont
}

// Escapes reports whether escape sequences are recognized in
// quoted values.
func (c Config) Escapes() bool {
	return c.escape
}

// Multiline reports whether triple-quoted multi-line values are
// recognized.
func (c Config) Multiline() bool {
	return c.multiline
}

// Logger returns the configured logger.
func (c Config) Logger() log.Logger {
	return c.logger
}

// isComment reports whether r opens a comment line.
func (c Config) isComment(r rune) bool {
	return slices.Contains(c.comment, r)
}

// triple returns the multi-line value delimiter, three quote runes.
func (c Config) triple() string {
	return strings.Repeat(string(c.quote), 3)
}
