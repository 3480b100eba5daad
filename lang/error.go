package lang

import (
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrSyntax         = NewError("syntax error")
	ErrLookup         = NewError("lookup error")
	ErrMissingKey     = NewError("key not found")
	ErrMissingSection = NewError("section not found")
	ErrValue          = NewError("invalid value")
	ErrCycle          = NewError("section cycle detected")
	ErrReadInput      = NewError("failed to read input")
	ErrExprCompile    = NewError("expression compilation failed")
	ErrExprEvaluate   = NewError("expression evaluation failed")
	ErrEncode         = NewError("encoding failed")
)

// Syntax error details wrapped by [ErrSyntax].
var (
	errBracket   = NewError("malformed section header")
	errName      = NewError("empty section name")
	errInherit   = NewError("empty inheritance path")
	errAssign    = NewError("missing assignment marker")
	errKey       = NewError("empty key")
	errQuote     = NewError("unterminated quoted value")
	errMultiline = NewError("unterminated multi-line value")
)

// Position locates a token or error in the source text.
//
// Line is 1-based. Col is 1-based when known and 0 when unknown;
// [Error.Snippet] draws a caret only when Col is positive.
// Text holds the raw source line, untrimmed.
type Position struct {
	Line int
	Col  int
	Text string
}

// String returns the position as "line N".
func (p Position) String() string {
	return "line " + strconv.Itoa(p.Line)
}

// Error represents an error with optional structured logging attributes
// and an optional source position.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error
	pos   *Position
	attrs []slog.Attr
}

// NewError creates a new Error with the given message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps an existing error with a message.
// If err is already an *Error, its attributes are preserved.
func WrapError(msg string, err error) *Error {
	e := &Error{msg: msg, err: err}

	var ee *Error
	if errors.As(err, &ee) {
		e.attrs = ee.attrs
		e.pos = ee.pos
	}

	return e
}

// Error returns the error message, joined with the position and cause
// when present. Attributes render as a bracketed suffix.
func (e *Error) Error() string {
	parts := make([]string, 0, 3)

	if e.msg != "" {
		parts = append(parts, e.msg)
	}

	if e.pos != nil {
		parts = append(parts, e.pos.String())
	}

	if e.err != nil {
		parts = append(parts, e.err.Error())
	}

	s := strings.Join(parts, ": ")

	if len(e.attrs) > 0 {
		kv := make([]string, len(e.attrs))
		for i, a := range e.attrs {
			kv[i] = a.Key + "=" + a.Value.String()
		}

		s += " [" + strings.Join(kv, " ") + "]"
	}

	return s
}

// Is reports whether target is an *Error carrying the same message.
// Derived copies made with [Error.Wrap], [Error.With], and
// [Error.WithPosition] match their originating sentinel.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)

	return ok && e.msg == te.msg
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.err
}

// LogValue implements slog.LogValuer for structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)
	attrs = append(attrs, slog.String("error", e.msg))

	if e.pos != nil {
		attrs = append(attrs, slog.Int("line", e.pos.Line))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	attrs = append(attrs, e.attrs...)

	return slog.GroupValue(attrs...)
}

// clone returns a shallow copy of the error.
func (e *Error) clone() *Error {
	c := *e

	return &c
}

// Wrap returns a copy of the error wrapping the given cause.
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err

	return c
}

// With returns a copy of the error carrying additional attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := e.clone()
	c.attrs = append(slices.Clone(e.attrs), attrs...)

	return c
}

// WithPosition returns a copy of the error anchored at pos.
func (e *Error) WithPosition(pos Position) *Error {
	c := e.clone()
	c.pos = &pos

	return c
}

// Position returns the source position and whether one is recorded.
func (e *Error) Position() (Position, bool) {
	if e.pos == nil {
		return Position{}, false
	}

	return *e.pos, true
}

// Snippet renders the offending source line with its line number,
// followed by a caret marking the column when known.
//
//	  4 | [unterminated
//	      ^
//
// It returns the empty string when no position is recorded.
func (e *Error) Snippet() string {
	if e.pos == nil {
		return ""
	}

	num := strconv.Itoa(e.pos.Line)

	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(num)
	b.WriteString(" | ")
	b.WriteString(e.pos.Text)
	b.WriteString("\n")

	if e.pos.Col > 0 {
		b.WriteString(strings.Repeat(" ", len(num)+5+e.pos.Col-1))
		b.WriteString("^\n")
	}

	return b.String()
}

// PositionOf returns the source position recorded in err, if any.
func PositionOf(err error) (Position, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Position()
	}

	return Position{}, false
}
