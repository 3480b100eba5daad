package lang

import (
	"log/slog"
	"strings"
)

// marker delimits a substitution reference inside a value.
const marker = '%'

// Resolve replaces every %path% reference in the values of the section
// and its descendants with the referenced value.
//
// The text between two markers is a dot-separated path: all segments
// but the last name sections, the last names a key. A path beginning
// with '.' is resolved from the tree root, otherwise from the section
// holding the value. Replacement output is not rescanned, so a
// reference that produces further markers leaves them in the text.
//
// Sections and the keys within them resolve in map order, which is not
// deterministic. When one value's reference reads another value that
// itself contains references, the result depends on which resolved
// first. Do not chain references across keys.
//
// A reference to a missing key or section fails with [ErrLookup],
// leaving the tree partially resolved.
func (s *Section) Resolve() error {
	if err := s.resolveKeys(); err != nil {
		return err
	}

	for _, child := range s.children {
		if err := child.Resolve(); err != nil {
			return err
		}
	}

	return nil
}

func (s *Section) resolveKeys() error {
	for key, val := range s.keys {
		if !strings.ContainsRune(val, marker) {
			continue
		}

		next, err := s.resolveValue(key, val)
		if err != nil {
			return err
		}

		s.keys[key] = next
	}

	return nil
}

// resolveValue rewrites one value, replacing each marker-delimited
// reference with its target. An unterminated trailing reference is
// kept literally, opening marker included.
func (s *Section) resolveValue(key, val string) (string, error) {
	var out, buf strings.Builder

	inside := false

	for _, r := range val {
		switch {
		case r == marker && inside:
			ref := buf.String()

			target := s
			if strings.HasPrefix(ref, ".") {
				target = s.Root()
				ref = strings.TrimPrefix(ref, ".")
			}

			got, err := target.Value(ref)
			if err != nil {
				return "", ErrLookup.With(
					slog.String("path", buf.String()),
					slog.String("section", s.Path()),
					slog.String("key", key),
				).Wrap(err)
			}

			out.WriteString(got)
			buf.Reset()

			inside = false
		case r == marker:
			inside = true
		case inside:
			buf.WriteRune(r)
		default:
			out.WriteRune(r)
		}
	}

	if inside {
		out.WriteRune(marker)
		out.WriteString(buf.String())
	}

	return out.String(), nil
}
