package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_Defaults(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.config.level != DefaultLevel {
		t.Errorf("expected default level %v, got %v", DefaultLevel, logger.config.level)
	}

	if logger.config.format != DefaultFormat {
		t.Errorf("expected default format %v, got %v", DefaultFormat, logger.config.format)
	}

	if logger.config.caller != DefaultCaller {
		t.Errorf("expected default caller %v, got %v", DefaultCaller, logger.config.caller)
	}
}

func TestMake_NilWriter(t *testing.T) {
	logger := Make(nil)

	// Must not panic; output goes to io.Discard.
	logger.Info("discarded")
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logged  []string
		dropped []string
	}{
		{
			name:    "info hides debug and trace",
			level:   LevelInfo,
			logged:  []string{"info msg", "warn msg"},
			dropped: []string{"debug msg", "trace msg"},
		},
		{
			name:    "trace shows everything",
			level:   LevelTrace,
			logged:  []string{"trace msg", "debug msg", "info msg"},
			dropped: nil,
		},
		{
			name:    "error hides warn",
			level:   LevelError,
			logged:  []string{"error msg"},
			dropped: []string{"warn msg", "info msg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			logger := Make(&buf, WithLevel(tt.level), WithPretty(false))

			logger.Trace("trace msg")
			logger.Debug("debug msg")
			logger.Info("info msg")
			logger.Warn("warn msg")
			logger.Error("error msg")

			out := buf.String()

			for _, want := range tt.logged {
				if !strings.Contains(out, want) {
					t.Errorf("expected output to contain %q:\n%s", want, out)
				}
			}

			for _, drop := range tt.dropped {
				if strings.Contains(out, drop) {
					t.Errorf("expected output to omit %q:\n%s", drop, out)
				}
			}
		})
	}
}

func TestLogger_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))
	logger.Trace("tracing")

	out := buf.String()
	if !strings.Contains(out, "TRACE") {
		t.Errorf("expected custom TRACE level name, got:\n%s", out)
	}

	if strings.Contains(out, "DEBUG-4") {
		t.Errorf("expected slog's DEBUG-4 alias to be replaced, got:\n%s", out)
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
	logger.Info("structured", slog.String("key", "value"), slog.Int("n", 42))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if record["msg"] != "structured" {
		t.Errorf("expected msg %q, got %v", "structured", record["msg"])
	}

	if record["key"] != "value" {
		t.Errorf("expected key %q, got %v", "value", record["key"])
	}

	if record["n"] != float64(42) {
		t.Errorf("expected n 42, got %v", record["n"])
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(false))
	logger = logger.With(slog.String("component", "scan"))
	logger.Info("attached")

	out := buf.String()
	if !strings.Contains(out, "component") || !strings.Contains(out, "scan") {
		t.Errorf("expected inherited attribute in output:\n%s", out)
	}
}

func TestLogger_Wrap_OverridesLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError), WithPretty(false))
	logger.Info("hidden")

	if buf.Len() > 0 {
		t.Fatalf("expected no output at error level, got:\n%s", buf.String())
	}

	wrapped := logger.Wrap(WithLevel(LevelInfo))
	wrapped.Info("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected wrapped logger to emit at info level:\n%s", buf.String())
	}

	if logger.Level() != LevelError {
		t.Errorf("expected original logger level unchanged, got %v", logger.Level())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var logger Logger

	// All methods must be no-ops on the zero value.
	logger.Info("ignored")
	logger.Error("ignored")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected zero-value level %v, got %v", DefaultLevel, logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected zero-value format %v, got %v", DefaultFormat, logger.Format())
	}
}

func TestLogger_TimeLayoutNone(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(false),
		WithTimeLayout("none"),
	)
	logger.Info("timeless")

	out := buf.String()
	if strings.Contains(out, "time=") {
		t.Errorf("expected no timestamp in output:\n%s", out)
	}
}

func TestLogger_PrettyText(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithPretty(true))
	logger.Info("painted", slog.Bool("ok", true))

	out := buf.String()

	if !strings.Contains(out, "\033[") {
		t.Errorf("expected ANSI color codes in pretty output:\n%q", out)
	}

	if !strings.Contains(out, "painted") {
		t.Errorf("expected message in pretty output:\n%s", out)
	}
}

func TestLogger_PrettyJSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(true))
	logger.Info("painted")

	out := buf.String()

	if !strings.HasPrefix(out, "{\n") {
		t.Errorf("expected multiline JSON object, got:\n%q", out)
	}

	if !strings.Contains(out, "painted") {
		t.Errorf("expected message in pretty output:\n%s", out)
	}
}
