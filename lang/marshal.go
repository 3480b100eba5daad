package lang

import (
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"
)

// MarshalJSON implements json.Marshaler for Section.
func (s *Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.ToMap())
}

// ToMap converts the section tree to nested native Go maps. Keys map
// to their string values and child sections to nested maps. A child
// section whose name collides with a key shadows the key.
func (s *Section) ToMap() map[string]any {
	result := make(map[string]any, len(s.keys)+len(s.children))

	for key, val := range s.keys {
		result[key] = val
	}

	for name, child := range s.children {
		result[name] = child.ToMap()
	}

	return result
}

// String returns the section tree in source form.
func (s *Section) String() string {
	var b strings.Builder

	write(&b, s, s)

	return b.String()
}

// WriteTo writes the section tree in source form, parseable back to an
// equal tree with the default lexical parameters. Sections and keys
// are emitted in sorted order. Descendants beyond the first level are
// flattened to dotted header names.
func (s *Section) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	if err != nil {
		return int64(n), ErrEncode.Wrap(err)
	}

	return int64(n), nil
}

func write(b *strings.Builder, root, s *Section) {
	if s != root {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}

		b.WriteByte('[')
		b.WriteString(pathFrom(root, s))
		b.WriteString("]\n")
	}

	for _, key := range s.Keys() {
		b.WriteString(encodeKey(key))
		b.WriteString(" = ")
		b.WriteString(encodeValue(s.keys[key]))
		b.WriteByte('\n')
	}

	for _, child := range s.Children() {
		write(b, root, child)
	}
}

// pathFrom returns the dotted path of s relative to root.
func pathFrom(root, s *Section) string {
	names := []string{}
	for p := s; p != nil && p != root; p = p.parent {
		names = append(names, p.name)
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}

	return strings.Join(names, ".")
}

// encodeValue renders a value so the scanner decodes it back exactly.
// Values holding newlines use the multi-line form when it is lossless;
// anything else that would not survive a plain read is quoted with
// escapes.
func encodeValue(val string) string {
	if val == "" {
		return `""`
	}

	if multilineSafe(val) {
		return `"""` + val + `"""`
	}

	if needsQuoting(val) {
		return `"` + escaper.Replace(val) + `"`
	}

	return val
}

// multilineSafe reports whether val survives the multi-line form. A
// quote rune anywhere could merge into a closing delimiter, the
// scanner trims the first physical line of an assignment, and a
// carriage return would vanish at the following line split.
func multilineSafe(val string) bool {
	if !strings.ContainsRune(val, '\n') || strings.ContainsAny(val, "\"\r") {
		return false
	}

	first, _, _ := strings.Cut(val, "\n")

	return first == strings.TrimRight(first, " \t")
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
)

// needsQuoting reports whether a value read back as plain text would
// differ from val.
func needsQuoting(val string) bool {
	return val != strings.TrimSpace(val) ||
		strings.ContainsAny(val, "\n\r") ||
		strings.HasPrefix(val, `"`) ||
		strings.HasSuffix(val, `\`)
}

// encodeKey renders a key, quoting it when a plain read would mangle
// or reject it. Key quotes strip without escape processing, so keys
// holding a quote rune adjacent to both ends cannot round-trip and
// are emitted as-is.
func encodeKey(key string) string {
	if key == "" || key != strings.TrimSpace(key) ||
		leadingComment(key) ||
		strings.HasPrefix(key, "[") ||
		(strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) && len(key) >= 2) {
		return `"` + key + `"`
	}

	return key
}

func leadingComment(key string) bool {
	r, _ := utf8.DecodeRuneInString(key)

	return r == '#' || r == ';'
}
