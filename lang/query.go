package lang

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// HasKey reports whether key is defined directly in the section.
func (s *Section) HasKey(key string) bool {
	_, ok := s.keys[key]

	return ok
}

// HasSection reports whether the section has a child with name.
func (s *Section) HasSection(name string) bool {
	_, ok := s.children[name]

	return ok
}

// Lookup returns the value stored under key and whether it exists.
func (s *Section) Lookup(key string) (string, bool) {
	val, ok := s.keys[key]

	return val, ok
}

// Get returns the value stored under key, or fallback when absent.
func (s *Section) Get(key, fallback string) string {
	if val, ok := s.keys[key]; ok {
		return val
	}

	return fallback
}

// Require returns the value stored under key, or [ErrMissingKey]
// when absent.
func (s *Section) Require(key string) (string, error) {
	val, ok := s.keys[key]
	if !ok {
		return "", ErrMissingKey.With(
			slog.String("key", key),
			slog.String("section", s.Path()),
		)
	}

	return val, nil
}

// Child returns the child section with name and whether it exists.
func (s *Section) Child(name string) (*Section, bool) {
	child, ok := s.children[name]

	return child, ok
}

// RequireChild returns the child section with name, or
// [ErrMissingSection] when absent.
func (s *Section) RequireChild(name string) (*Section, error) {
	child, ok := s.children[name]
	if !ok {
		return nil, ErrMissingSection.With(
			slog.String("name", name),
			slog.String("section", s.Path()),
		)
	}

	return child, nil
}

// At descends the dot-separated path of section names from s and
// returns the section found there. The empty path returns s itself.
func (s *Section) At(path string) (*Section, error) {
	if path == "" {
		return s, nil
	}

	cur := s
	for _, name := range strings.Split(path, ".") {
		child, ok := cur.children[name]
		if !ok {
			return nil, ErrMissingSection.With(
				slog.String("name", name),
				slog.String("path", path),
				slog.String("section", s.Path()),
			)
		}

		cur = child
	}

	return cur, nil
}

// Value resolves a dot-separated path whose final segment names a key
// and whose leading segments name sections under s.
func (s *Section) Value(path string) (string, error) {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return s.Require(path)
	}

	sec, err := s.At(path[:i])
	if err != nil {
		return "", err
	}

	return sec.Require(path[i+1:])
}

// GetInt returns the value under key parsed as an integer, or
// fallback when the key is absent or does not parse.
func (s *Section) GetInt(key string, fallback int) int {
	val, ok := s.keys[key]
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fallback
	}

	return n
}

// GetBool returns the value under key parsed as a boolean, or
// fallback when the key is absent or does not parse. Beyond the
// strconv forms, yes/no and on/off are accepted case-insensitively.
func (s *Section) GetBool(key string, fallback bool) bool {
	val, ok := s.keys[key]
	if !ok {
		return fallback
	}

	b, err := parseBool(val)
	if err != nil {
		return fallback
	}

	return b
}

// GetFloat64 returns the value under key parsed as a float, or
// fallback when the key is absent or does not parse.
func (s *Section) GetFloat64(key string, fallback float64) float64 {
	val, ok := s.keys[key]
	if !ok {
		return fallback
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return fallback
	}

	return f
}

// GetDuration returns the value under key parsed with
// time.ParseDuration, or fallback when the key is absent or does
// not parse.
func (s *Section) GetDuration(key string, fallback time.Duration) time.Duration {
	val, ok := s.keys[key]
	if !ok {
		return fallback
	}

	d, err := time.ParseDuration(strings.TrimSpace(val))
	if err != nil {
		return fallback
	}

	return d
}

// parseBool parses the strconv boolean forms plus yes/no and on/off,
// case-insensitively.
func parseBool(val string) (bool, error) {
	val = strings.TrimSpace(val)

	if b, err := strconv.ParseBool(val); err == nil {
		return b, nil
	}

	switch strings.ToLower(val) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}

	return false, ErrValue.With(slog.String("value", val))
}
