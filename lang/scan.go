package lang

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner tokenizes configuration source line by line.
//
// It follows the bufio.Scanner idiom: call [Scanner.Scan] until it
// returns false, reading each token with [Scanner.Token], then check
// [Scanner.Err]. Scanning stops at the first syntax error.
type Scanner struct {
	cfg   Config
	lines []string
	index int
	tok   Token
	err   error
}

// NewScanner returns a Scanner over input with the given options.
func NewScanner(input string, opts ...Option) *Scanner {
	return newScanner(DefaultConfig().apply(opts...), input)
}

func newScanner(cfg Config, input string) *Scanner {
	return &Scanner{cfg: cfg, lines: splitLines(input)}
}

// splitLines splits source text on '\n', dropping one trailing '\r'
// from each line so that CRLF input scans identically to LF input.
func splitLines(input string) []string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// Scan advances to the next token. It returns false at end of input or
// on the first syntax error; the two are distinguished by [Scanner.Err].
func (s *Scanner) Scan() bool {
	for s.index < len(s.lines) {
		line := s.lines[s.index]
		pos := Position{Line: s.index + 1, Text: line}
		s.index++

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if r, _ := utf8.DecodeRuneInString(trimmed); s.cfg.isComment(r) {
			continue
		}

		var (
			tok Token
			err error
		)

		if strings.HasPrefix(trimmed, "[") {
			tok, err = s.scanHeader(line, pos)
		} else {
			tok, err = s.scanAssign(line, pos)
		}

		if err != nil {
			s.err = err

			return false
		}

		s.tok = tok
		s.cfg.logger.Trace("scanned token",
			slog.Int("line", pos.Line),
			slog.Any("token", tok),
		)

		return true
	}

	return false
}

// Token returns the token produced by the most recent call to
// [Scanner.Scan] that returned true.
func (s *Scanner) Token() Token {
	return s.tok
}

// Err returns the first syntax error encountered, or nil.
func (s *Scanner) Err() error {
	return s.err
}

// scanHeader reads a "[name]" or "[name : parent]" line. Syntax is
// validated on the trimmed text; carets index into the raw line.
func (s *Scanner) scanHeader(line string, pos Position) (Token, error) {
	trimmed := strings.TrimSpace(line)
	lead := strings.Index(line, trimmed)

	end := strings.IndexRune(trimmed, ']')
	if end < 0 {
		pos.Col = col(line, len(line))

		return nil, ErrSyntax.WithPosition(pos).Wrap(errBracket)
	}

	if rest := trimmed[end+1:]; strings.TrimSpace(rest) != "" {
		skip := strings.IndexFunc(rest, notSpace)
		pos.Col = col(line, lead+end+1+skip)

		return nil, ErrSyntax.WithPosition(pos).Wrap(errBracket)
	}

	body := trimmed[1:end]

	name, inherit, found := strings.Cut(body, ":")
	name = strings.TrimSpace(name)
	inherit = strings.TrimSpace(inherit)

	if name == "" {
		pos.Col = col(line, lead+1)

		return nil, ErrSyntax.WithPosition(pos).Wrap(errName)
	}

	if found && inherit == "" {
		cut := strings.IndexRune(body, ':')
		pos.Col = col(line, lead+1+cut)

		return nil, ErrSyntax.WithPosition(pos).Wrap(errInherit)
	}

	return SectionHeader{Name: name, Inherit: inherit, pos: pos}, nil
}

// scanAssign reads a "key = value" line. The key may be wrapped in
// quote runes, which are stripped without escape processing.
func (s *Scanner) scanAssign(line string, pos Position) (Token, error) {
	idx := strings.IndexRune(line, s.cfg.assign)
	if idx < 0 {
		pos.Col = col(line, len(line))

		return nil, ErrSyntax.WithPosition(pos).Wrap(errAssign)
	}

	key := strings.TrimSpace(line[:idx])

	if q := string(s.cfg.quote); s.cfg.quote != 0 && len(key) >= 2*len(q) &&
		strings.HasPrefix(key, q) && strings.HasSuffix(key, q) {
		key = key[len(q) : len(key)-len(q)]
	}

	if key == "" {
		pos.Col = col(line, idx)

		return nil, ErrSyntax.WithPosition(pos).Wrap(errKey)
	}

	value, err := s.scanValue(strings.TrimSpace(line[idx+1:]), pos)
	if err != nil {
		return nil, err
	}

	return KeyValue{Key: key, Value: value, pos: pos}, nil
}

// scanValue decodes the text to the right of the assignment marker.
// Multi-line values are tried first so that a triple quote is never
// mistaken for an empty quoted value.
func (s *Scanner) scanValue(raw string, pos Position) (string, error) {
	if t := s.cfg.triple(); s.cfg.multiline && s.cfg.quote != 0 &&
		strings.HasPrefix(raw, t) {
		return s.scanMultiline(raw[len(t):], pos)
	}

	if q := string(s.cfg.quote); s.cfg.quote != 0 && strings.HasPrefix(raw, q) {
		return s.scanQuoted(raw, pos)
	}

	return s.scanPlain(raw), nil
}

// scanMultiline consumes lines until the closing triple quote. The
// delimiters are excluded from the value; interior newlines and
// whitespace are preserved verbatim. Text following the closing
// delimiter on its line is discarded.
func (s *Scanner) scanMultiline(rest string, pos Position) (string, error) {
	t := s.cfg.triple()

	var b strings.Builder

	chunk := rest

	for {
		if i := strings.Index(chunk, t); i >= 0 {
			b.WriteString(chunk[:i])

			return b.String(), nil
		}

		b.WriteString(chunk)

		if s.index >= len(s.lines) {
			return "", ErrSyntax.WithPosition(pos).Wrap(errMultiline)
		}

		b.WriteByte('\n')

		chunk = s.lines[s.index]
		s.index++
	}
}

// scanQuoted decodes a single-line quoted value. The value ends at the
// first unescaped quote rune; text following it is discarded. When
// escapes are enabled, \n, \t, \\, and an escaped quote are decoded
// and unrecognized sequences are kept verbatim.
func (s *Scanner) scanQuoted(raw string, pos Position) (string, error) {
	q := s.cfg.quote

	var b strings.Builder

	esc := false

	for _, r := range raw[len(string(q)):] {
		switch {
		case esc:
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\':
				b.WriteByte('\\')
			case q:
				b.WriteRune(q)
			default:
				b.WriteByte('\\')
				b.WriteRune(r)
			}

			esc = false
		case s.cfg.escape && r == '\\':
			esc = true
		case r == q:
			return b.String(), nil
		default:
			b.WriteRune(r)
		}
	}

	pos.Col = col(pos.Text, len(pos.Text))

	return "", ErrSyntax.WithPosition(pos).Wrap(errQuote)
}

// scanPlain reads an unquoted value verbatim to end of line, including
// any comment runes. A trailing continuation rune joins the following
// line, trimmed, with a single space.
func (s *Scanner) scanPlain(raw string) string {
	if s.cfg.cont == 0 {
		return raw
	}

	m := string(s.cfg.cont)
	val := raw

	for strings.HasSuffix(val, m) {
		val = strings.TrimRight(strings.TrimSuffix(val, m), " \t")

		if s.index >= len(s.lines) {
			break
		}

		next := strings.TrimSpace(s.lines[s.index])
		s.index++

		if val == "" {
			val = next
		} else {
			val += " " + next
		}
	}

	return strings.TrimSpace(val)
}

// col converts a byte offset in line to a 1-based rune column.
func col(line string, off int) int {
	if off > len(line) {
		off = len(line)
	}

	return utf8.RuneCountInString(line[:off]) + 1
}

func notSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
