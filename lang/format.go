package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the section tree in native source syntax.
func (s *Section) Format(_ context.Context, w io.Writer) error {
	if _, err := s.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// FormatJSON writes the section tree as JSON. A positive indent
// pretty-prints with that many spaces per level.
func (s *Section) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(s.ToMap(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(s.ToMap())
	}

	if err != nil {
		return ErrEncode.Wrap(err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return ErrEncode.Wrap(err)
	}

	return nil
}

// FormatYAML writes the section tree as YAML. A positive indent
// selects block style with that many spaces per level; otherwise
// flow style is used.
func (s *Section) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	opts := []yaml.EncodeOption{}

	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, s.ToMap(), opts...)
	if err != nil {
		return ErrEncode.Wrap(err)
	}

	if _, err := w.Write(data); err != nil {
		return ErrEncode.Wrap(err)
	}

	return nil
}

// FormatTree writes the section tree as an ASCII outline, sections as
// branches and keys as "key = value" leaves, both in sorted order.
func (s *Section) FormatTree(_ context.Context, w io.Writer) error {
	name := s.name
	if s.IsRoot() {
		name = "."
	}

	if _, err := fmt.Fprintln(w, name); err != nil {
		return ErrEncode.Wrap(err)
	}

	return writeTree(w, s, "")
}

func writeTree(w io.Writer, s *Section, prefix string) error {
	keys := s.Keys()
	children := s.Children()
	last := len(keys) + len(children) - 1

	for i, key := range keys {
		if err := writeBranch(w, prefix, i == last,
			key+" = "+s.keys[key]); err != nil {
			return err
		}
	}

	for i, child := range children {
		final := len(keys)+i == last

		if err := writeBranch(w, prefix, final, child.name); err != nil {
			return err
		}

		ext := "│   "
		if final {
			ext = "    "
		}

		if err := writeTree(w, child, prefix+ext); err != nil {
			return err
		}
	}

	return nil
}

func writeBranch(w io.Writer, prefix string, final bool, label string) error {
	tee := "├── "
	if final {
		tee = "└── "
	}

	if _, err := fmt.Fprintln(w, prefix+tee+label); err != nil {
		return ErrEncode.Wrap(err)
	}

	return nil
}

// FormatResult renders an expression result for display. Scalars print
// bare; composite values print as compact JSON.
func FormatResult(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"

	case string:
		return v

	case bool:
		return strconv.FormatBool(v)

	case int:
		return strconv.Itoa(v)

	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)

	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	}
}
