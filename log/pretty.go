package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handlers. Styles are bound to
// a renderer for the handler's writer, so color is dropped automatically
// when the writer is not a terminal.
type palette struct {
	key, str, num, yes, no, dur, time, null lipgloss.Style
	trace, debug, info, warn, error         lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		yes:   fg("2"),
		no:    fg("1"),
		dur:   fg("5"),
		time:  fg("4"),
		null:  fg("8"),
		trace: fg("5"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3"),
		error: fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.error
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler writes colorized records either as a single line of
// key=value pairs or as an indented JSON-like object.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  palette
	object bool        // JSON-like layout
	attrs  []slog.Attr // from WithAttrs, already qualified by group
	prefix string      // dotted group path for subsequent attributes
}

func newPrettyTextHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w, style: newPalette(w)}
}

func newPrettyJSONHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	h := newPrettyTextHandler(w, opts)
	h.object = true

	return h
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var fields []slog.Attr

	if !r.Time.IsZero() {
		fields = h.builtin(fields, slog.Time(slog.TimeKey, r.Time))
	}

	fields = h.builtin(fields, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			fields = append(fields,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	fields = append(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = flatten(fields, h.prefix, a)

		return true
	})

	buf := new(bytes.Buffer)
	if h.object {
		buf.WriteString("{\n")
	}

	for i, a := range fields {
		h.writeField(buf, i, a, r.Level)
	}

	if h.object {
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
	c.attrs = append([]slog.Attr(nil), h.attrs...)

	for _, a := range attrs {
		c.attrs = flatten(c.attrs, h.prefix, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// builtin applies ReplaceAttr to a built-in attribute and appends the result
// unless it was dropped.
func (h *prettyHandler) builtin(fields []slog.Attr, a slog.Attr) []slog.Attr {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Key == "" {
		return fields
	}

	return append(fields, a)
}

// flatten appends a, expanding groups into dotted keys.
func flatten(fields []slog.Attr, prefix string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		if a.Key == "" {
			return fields
		}

		return append(fields, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}

	group := prefix
	if a.Key != "" {
		group += a.Key + "."
	}

	for _, ga := range a.Value.Group() {
		fields = flatten(fields, group, ga)
	}

	return fields
}

func (h *prettyHandler) writeField(buf *bytes.Buffer, i int, a slog.Attr, level slog.Level) {
	if h.object {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString("  ")
		buf.WriteString(h.style.key.Render(a.Key))
		buf.WriteString(": ")
	} else {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(h.style.key.Render(a.Key))
		buf.WriteByte('=')
	}

	if a.Key == slog.LevelKey {
		s := a.Value.String()
		if l, ok := a.Value.Any().(slog.Level); ok {
			s = Level(l).String()
		}

		buf.WriteString(h.style.level(level).Render(s))

		return
	}

	buf.WriteString(h.render(a.Value))
}

func (h *prettyHandler) render(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.style.str.Render(v.String())

	case slog.KindInt64:
		return h.style.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return h.style.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return h.style.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return h.style.yes.Render("true")
		}

		return h.style.no.Render("false")

	case slog.KindDuration:
		return h.style.dur.Render(v.Duration().String())

	case slog.KindTime:
		return h.style.time.Render(v.Time().Format("2006-01-02T15:04:05Z07:00"))

	default:
		if v.Any() == nil {
			return h.style.null.Render("null")
		}

		return h.style.str.Render(v.String())
	}
}
