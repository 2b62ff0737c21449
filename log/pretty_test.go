package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

// A bytes.Buffer is not a terminal, so the pretty handlers render without
// color escapes.

func TestPrettyText(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText), WithTimeLayout("none"))

	logger.Info("parse complete",
		slog.Int("declarations", 3),
		slog.Bool("ok", true),
		slog.String("source", "build.ninja"))

	want := "level=INFO msg=parse complete declarations=3 ok=true source=build.ninja\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithTimeLayout("none"))

	logger.Warn("skipped", slog.Any("value", nil))

	want := "{\n  level: WARN,\n  msg: skipped,\n  value: null\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrettyGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText), WithTimeLayout("none"))

	h := logger.Handler().
		WithAttrs([]slog.Attr{slog.String("cmd", "dump")}).
		WithGroup("parse")

	slog.New(h).Info("done",
		slog.Group("counts", slog.Int("rule", 1), slog.Int("build", 2)),
		slog.Group("", slog.String("inline", "yes")),
		slog.String("", "dropped"))

	want := "level=INFO msg=done cmd=dump parse.counts.rule=1 parse.counts.build=2 parse.inline=yes\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

type lazyErr struct{ err error }

func (l lazyErr) LogValue() slog.Value { return slog.StringValue(l.err.Error()) }

func TestPrettyLogValuer(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText), WithTimeLayout("none"))

	logger.Error("failed", slog.Any("error", lazyErr{errors.New("line 2: missing token")}))

	if got := buf.String(); !strings.Contains(got, "error=line 2: missing token") {
		t.Errorf("output = %q, want resolved LogValuer", got)
	}
}

func TestPrettyEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelWarn), WithFormat(FormatText))

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged below threshold: %q", buf.String())
	}
}
