package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyHandler implements a colorized slog.Handler.
// Text mode writes space-separated key=value pairs on one line.
// JSON mode writes one colorized key: value pair per line inside braces.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	groups []string
	json   bool
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	json bool,
) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		json: json,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if h.json {
		buf.WriteString("{\n")
	}

	if !r.Time.IsZero() {
		h.writeAttr(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeLevel(buf, r.Level)

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			site := fmt.Sprintf("%s:%d", src.File, src.Line)
			h.writeAttr(buf, slog.String(slog.SourceKey, site))
		}
	}

	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	if h.json {
		buf.WriteString("\n}")
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

// writeLevel renders the level attribute with its severity color, bypassing
// opts.ReplaceAttr so the color survives the custom level naming.
func (h *prettyHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	h.separate(buf)

	buf.WriteString(colorGray)
	buf.WriteString(slog.LevelKey)
	buf.WriteString(colorReset)

	if h.json {
		buf.WriteString(": ")
	} else {
		buf.WriteByte('=')
	}

	buf.WriteString(levelColor(level))
	buf.WriteString(strings.ToUpper(Level(level).String()))
	buf.WriteString(colorReset)
}

// writeAttr renders one key/value pair.
// Attributes pass through opts.ReplaceAttr first, mirroring the behavior
// of the standard slog handlers; an empty result is dropped.
func (h *prettyHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(h.groups, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	h.separate(buf)

	buf.WriteString(colorGray)
	buf.WriteString(a.Key)
	buf.WriteString(colorReset)

	if h.json {
		buf.WriteString(": ")
	} else {
		buf.WriteByte('=')
	}

	h.writeValue(buf, a.Value)
}

// separate writes the pair delimiter appropriate for the output mode.
func (h *prettyHandler) separate(buf *bytes.Buffer) {
	if buf.Len() > 0 {
		if h.json {
			if buf.Len() > 2 { // past the opening "{\n"
				buf.WriteString(",\n")
			}

			buf.WriteString("  ")
		} else {
			buf.WriteByte(' ')
		}
	}
}

// writeValue renders a value with a color chosen by its kind.
func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	v = v.Resolve()

	paint := func(color, s string) {
		buf.WriteString(color)
		buf.WriteString(s)
		buf.WriteString(colorReset)
	}

	switch v.Kind() {
	case slog.KindString:
		paint(colorCyan, v.String())

	case slog.KindInt64:
		paint(colorYellow, strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		paint(colorYellow, strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		paint(colorYellow, strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			paint(colorGreen, "true")
		} else {
			paint(colorRed, "false")
		}

	case slog.KindDuration:
		paint(colorMagenta, v.Duration().String())

	case slog.KindTime:
		paint(colorBlue, v.Time().String())

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			paint(levelColor(level), level.String())

			return
		}

		paint(colorCyan, v.String())

	default:
		paint(colorCyan, v.String())
	}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	default:
		return colorBlue
	}
}
