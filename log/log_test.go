package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.config.level != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.config.level)
	}
	if logger.config.caller {
		t.Error("expected caller disabled by default")
	}
	if logger.config.format != FormatJSON {
		t.Errorf("expected default format JSON, got %v", logger.config.format)
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("read input")
	if !strings.Contains(buf.String(), "read input") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()
	logger = Make(&buf, WithLevel(LevelError))
	logger.Info("parse complete")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger.Error("syntax error")
	if !strings.Contains(buf.String(), "syntax error") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Trace(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf).Trace("declaration")
	if buf.Len() > 0 {
		t.Errorf("trace logged at default level: %s", buf.String())
	}

	Make(&buf, WithLevel(LevelTrace), WithPretty(false)).
		Trace("declaration", slog.String("kind", "rule"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if entry["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", entry["level"])
	}
	if entry["kind"] != "rule" {
		t.Errorf("kind = %v, want rule", entry["kind"])
	}
}

func TestLogger_Make_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithCaller(true), WithPretty(false)).Info("parse start")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller info not included when enabled: %s", buf.String())
	}

	buf.Reset()
	Make(&buf, WithCaller(false)).Info("parse start")

	if strings.Contains(buf.String(), "source") {
		t.Error("caller info included when disabled")
	}
}

func TestLogger_Make_FormatText(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(false),
		WithTimeLayout("none"))

	logger.Info("parse complete", slog.Int("declarations", 3))

	want := "level=INFO msg=\"parse complete\" declarations=3\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelError {
		t.Errorf("base level = %v, want error", base.Level())
	}
	if wrapped.Level() != LevelDebug {
		t.Errorf("wrapped level = %v, want debug", wrapped.Level())
	}
	if wrapped.Format() != base.Format() {
		t.Errorf("wrapped format = %v, want %v", wrapped.Format(), base.Format())
	}

	wrapped.Debug("lexing")
	if !strings.Contains(buf.String(), "lexing") {
		t.Error("wrapped logger does not share the base output")
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false)).
		With(slog.String("source", "build.ninja"))

	logger.Info("parse complete")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if entry["source"] != "build.ninja" {
		t.Errorf("source = %v, want build.ninja", entry["source"])
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("ignored")
	logger.ErrorContext(context.Background(), "ignored")

	if logger.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", logger.Level(), DefaultLevel)
	}
	if logger.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", logger.Format(), DefaultFormat)
	}
	if got := logger.With(slog.Int("n", 1)); got.Logger != nil {
		t.Error("With on zero value returned a configured logger")
	}
}

func TestLogger_AllLevels(t *testing.T) {
	tests := []struct {
		name string
		log  func(Logger, string)
		want string
	}{
		{"trace", func(l Logger, m string) { l.Trace(m) }, "TRACE"},
		{"debug", func(l Logger, m string) { l.Debug(m) }, "DEBUG"},
		{"info", func(l Logger, m string) { l.Info(m) }, "INFO"},
		{"warn", func(l Logger, m string) { l.Warn(m) }, "WARN"},
		{"error", func(l Logger, m string) { l.Error(m) }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := Make(&buf,
				WithLevel(LevelTrace),
				WithFormat(FormatText),
				WithTimeLayout("none"))

			tt.log(logger, tt.name+" message")

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q missing level %q", out, tt.want)
			}
			if !strings.Contains(out, tt.name+" message") {
				t.Errorf("output %q missing message", out)
			}
		})
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var (
		buf syncBuffer
		wg  sync.WaitGroup
	)

	logger := Make(&buf, WithPretty(false))

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			l := logger.With(slog.Int("worker", i))
			for range 10 {
				l.Info("declaration")
			}
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 160 {
		t.Fatalf("got %d lines, want 160", len(lines))
	}

	for _, line := range lines {
		if !json.Valid([]byte(line)) {
			t.Fatalf("interleaved output: %q", line)
		}
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
