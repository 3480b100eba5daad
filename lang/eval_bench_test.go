package lang

import (
	"context"
	"testing"
)

// BenchmarkEval measures compile-and-run expression evaluation against
// a parsed document.
func BenchmarkEval(b *testing.B) {
	tests := []struct {
		name   string
		config string
		expr   string
	}{
		{
			name:   "string_comparison",
			config: "[server]\nhost = localhost\n",
			expr:   `server.host == "localhost"`,
		},
		{
			name:   "arithmetic",
			config: "[server]\nport = 8080\n",
			expr:   `int(server.port) + 1`,
		},
		{
			name:   "accessor_function",
			config: "[server]\nhost = localhost\n",
			expr:   `get("server.host")`,
		},
		{
			name:   "builtin",
			config: "",
			expr:   `platform.OS != ""`,
		},
		{
			name:   "hyphenated",
			config: "log-level = debug\n",
			expr:   `log-level == "debug"`,
		},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			root, err := Parse(context.Background(), tt.config)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Eval(context.Background(), root, tt.expr); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCompile measures compilation alone, for comparison with the
// full compile-and-run path.
func BenchmarkCompile(b *testing.B) {
	root, err := Parse(context.Background(), "[server]\nhost = localhost\n")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Compile(root, `server.host == "localhost"`); err != nil {
			b.Fatal(err)
		}
	}
}
