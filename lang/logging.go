package lang

import (
	"log/slog"
	"reflect"
	"sort"
)

func sortedKeys[T any](m map[string]T) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func resultTypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}

// LogValue implements slog.LogValuer for Section.
func (s *Section) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", s.Path()),
		slog.Int("keys", len(s.keys)),
		slog.Int("sections", len(s.children)),
	)
}
