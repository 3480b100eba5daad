package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
)

// writeSource creates a temp file holding the given document text.
func writeSource(t *testing.T, input string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "hini-test-*.ini")
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.WriteString(input); err != nil {
		t.Fatal(err)
	}

	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	return tmpfile.Name()
}

// captureStdout runs fn with stdout redirected to a pipe and returns
// everything written.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)

	return buf.String(), runErr
}

// TestNativeFmtValidSyntax tests that valid syntax is formatted correctly.
func TestNativeFmtValidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "root keys only",
			input:   "mode = dev\n",
			wantErr: false,
		},
		{
			name:    "section with keys",
			input:   "[server]\nhost = localhost\nport = 8080\n",
			wantErr: false,
		},
		{
			name:    "multiple sections",
			input:   "[a]\nx = 1\n[b]\ny = 2\n",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			native := &Native{
				Source: writeSource(t, tt.input),
			}

			err := native.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Native.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestNativeFmtInvalidSyntax tests that invalid syntax produces parse errors.
func TestNativeFmtInvalidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "unterminated bracket",
			input:   "[broken\n",
			wantErr: true,
		},
		{
			name:    "missing assignment",
			input:   "test 123\n",
			wantErr: true,
		},
		{
			name:    "text after bracket",
			input:   "[server] trailing\n",
			wantErr: true,
		},
		{
			name:    "unknown inheritance source",
			input:   "[derived : nowhere]\nk = v\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			native := &Native{
				Source: writeSource(t, tt.input),
			}

			err := native.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Native.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestNativeFmtStdin tests reading from stdin.
func TestNativeFmtStdin(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid from stdin",
			input:   "key = value\n",
			wantErr: false,
		},
		{
			name:    "invalid from stdin",
			input:   "test 123\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save and restore stdin
			oldStdin := os.Stdin
			defer func() { os.Stdin = oldStdin }()

			// Create a pipe to simulate stdin
			r, w, err := os.Pipe()
			if err != nil {
				t.Fatal(err)
			}
			os.Stdin = r

			// Write input to pipe in goroutine
			go func() {
				defer w.Close()
				io.WriteString(w, tt.input)
			}()

			native := &Native{
				Source: "-",
			}

			err = native.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Native.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestJSONFmtInvalidSyntax tests that JSON format also catches parse errors.
func TestJSONFmtInvalidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "unterminated bracket",
			input:   "[broken\n",
			wantErr: true,
		},
		{
			name:    "valid syntax",
			input:   "key = value\n",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			json := &JSON{
				Indent: 2,
				Source: writeSource(t, tt.input),
			}

			err := json.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("JSON.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestYAMLFmtInvalidSyntax tests that YAML format also catches parse errors.
func TestYAMLFmtInvalidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "unterminated bracket",
			input:   "[broken\n",
			wantErr: true,
		},
		{
			name:    "valid syntax",
			input:   "key = value\n",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := &YAML{
				Indent: 2,
				Source: writeSource(t, tt.input),
			}

			err := yaml.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("YAML.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestTreeFmtInvalidSyntax tests that tree format also catches parse errors.
func TestTreeFmtInvalidSyntax(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "unterminated bracket",
			input:   "[broken\n",
			wantErr: true,
		},
		{
			name:    "valid syntax",
			input:   "[server]\nhost = localhost\n",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := &Tree{
				Source: writeSource(t, tt.input),
			}

			err := tree.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Tree.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestNativeFmtOutput tests the rendered native output.
func TestNativeFmtOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:  "root keys",
			input: "mode = dev\n",
			contains: []string{
				"mode = dev",
			},
		},
		{
			name:  "section block",
			input: "[server]\nhost = localhost\nport = 8080\n",
			contains: []string{
				"[server]",
				"host = localhost",
				"port = 8080",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			native := &Native{
				Source: writeSource(t, tt.input),
			}

			output, err := captureStdout(t, func() error {
				return native.Run(context.Background())
			})
			if err != nil {
				t.Fatalf("Native.Run() unexpected error = %v", err)
			}

			for _, expected := range tt.contains {
				if !strings.Contains(output, expected) {
					t.Errorf("Native.Run() output = %q, want to contain %q", output, expected)
				}
			}
		})
	}
}

// TestNativeFmtResolveFlag tests that --resolve substitutes references in the
// rendered output.
func TestNativeFmtResolveFlag(t *testing.T) {
	input := "[server]\n" +
		"host = localhost\n" +
		"port = 8080\n" +
		"url = http://%host%:%port%/api\n"

	native := &Native{
		Resolve: true,
		Source:  writeSource(t, input),
	}

	output, err := captureStdout(t, func() error {
		return native.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Native.Run() unexpected error = %v", err)
	}

	if !strings.Contains(output, "url = http://localhost:8080/api") {
		t.Errorf("output = %q, want resolved url", output)
	}

	if strings.Contains(output, "%host%") {
		t.Errorf("output = %q, still contains raw reference", output)
	}
}

// TestJSONFmtOutput tests the rendered JSON output.
func TestJSONFmtOutput(t *testing.T) {
	json := &JSON{
		Indent: 2,
		Source: writeSource(t, "[server]\nhost = localhost\n"),
	}

	output, err := captureStdout(t, func() error {
		return json.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("JSON.Run() unexpected error = %v", err)
	}

	for _, expected := range []string{`"server"`, `"host"`, `"localhost"`} {
		if !strings.Contains(output, expected) {
			t.Errorf("JSON.Run() output = %q, want to contain %q", output, expected)
		}
	}
}

// TestTreeFmtOutput tests the rendered tree output.
func TestTreeFmtOutput(t *testing.T) {
	tree := &Tree{
		Source: writeSource(t, "[server]\nhost = localhost\n"),
	}

	output, err := captureStdout(t, func() error {
		return tree.Run(context.Background())
	})
	if err != nil {
		t.Fatalf("Tree.Run() unexpected error = %v", err)
	}

	for _, expected := range []string{"server", "host"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Tree.Run() output = %q, want to contain %q", output, expected)
		}
	}
}
