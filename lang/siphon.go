package lang

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Field describes one key a caller wants drained from a section.
// Set receives the raw value; a nil Set only checks presence.
type Field struct {
	Key      string
	Required bool
	Set      func(string) error
}

// Siphon drains the listed fields from the section. A missing
// required key fails with [ErrMissingKey]; a Set function returning
// an error fails with [ErrValue]. Optional missing keys are skipped.
func (s *Section) Siphon(fields ...Field) error {
	for _, f := range fields {
		val, ok := s.keys[f.Key]
		if !ok {
			if f.Required {
				return ErrMissingKey.With(
					slog.String("key", f.Key),
					slog.String("section", s.Path()),
				)
			}

			continue
		}

		if f.Set == nil {
			continue
		}

		if err := f.Set(val); err != nil {
			return ErrValue.With(
				slog.String("key", f.Key),
				slog.String("section", s.Path()),
				slog.String("value", val),
			).Wrap(err)
		}
	}

	return nil
}

// String stores the value verbatim in dst.
func String(dst *string) func(string) error {
	return func(val string) error {
		*dst = val

		return nil
	}
}

// Int parses the value as an integer into dst.
func Int(dst *int) func(string) error {
	return func(val string) error {
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return err
		}

		*dst = n

		return nil
	}
}

// Bool parses the value as a boolean into dst, accepting the strconv
// forms plus yes/no and on/off.
func Bool(dst *bool) func(string) error {
	return func(val string) error {
		b, err := parseBool(val)
		if err != nil {
			return err
		}

		*dst = b

		return nil
	}
}

// Float64 parses the value as a float into dst.
func Float64(dst *float64) func(string) error {
	return func(val string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return err
		}

		*dst = f

		return nil
	}
}

// Duration parses the value with time.ParseDuration into dst.
func Duration(dst *time.Duration) func(string) error {
	return func(val string) error {
		d, err := time.ParseDuration(strings.TrimSpace(val))
		if err != nil {
			return err
		}

		*dst = d

		return nil
	}
}

// Strings splits the value on sep into dst, trimming whitespace from
// each element and dropping empties.
func Strings(dst *[]string, sep string) func(string) error {
	return func(val string) error {
		parts := strings.Split(val, sep)

		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}

		*dst = out

		return nil
	}
}
