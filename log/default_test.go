package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// swapDefault replaces the default logger for the duration of a test.
func swapDefault(t *testing.T, l Logger) {
	t.Helper()

	defaultMu.Lock()
	saved := defaultLog
	defaultLog = l
	defaultMu.Unlock()

	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLog = saved
		defaultMu.Unlock()
	})
}

func TestDefault_PackageFunctions(t *testing.T) {
	var buf bytes.Buffer
	swapDefault(t, Make(&buf,
		WithLevel(LevelTrace),
		WithFormat(FormatText),
		WithTimeLayout("none")))

	Trace("t")
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	With(slog.String("k", "v")).Info("with")

	out := buf.String()
	for _, want := range []string{
		"level=TRACE msg=t",
		"level=DEBUG msg=d",
		"level=INFO msg=i",
		"level=WARN msg=w",
		"level=ERROR msg=e",
		"msg=with k=v",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfig_UpdatesDefault(t *testing.T) {
	var buf bytes.Buffer
	swapDefault(t, Make(&buf))

	Config(WithLevel(LevelError), WithFormat(FormatText))

	if got := Default().Level(); got != LevelError {
		t.Errorf("Default().Level() = %v, want error", got)
	}
	if got := Default().Format(); got != FormatText {
		t.Errorf("Default().Format() = %v, want text", got)
	}

	Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("warn logged at error level: %q", buf.String())
	}
}
