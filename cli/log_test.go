package cli

import (
	"os"
	"testing"

	"github.com/ardnew/buildfile/log"
)

func TestLogConfigScan(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		level  log.Level
		format log.Format
		pretty bool
		caller bool
	}{
		{
			name:   "assigned",
			args:   []string{"dump", "--log-level=debug", "--log-format=text"},
			level:  log.LevelDebug,
			format: log.FormatText,
			pretty: true,
		},
		{
			name:   "separate values",
			args:   []string{"--log-level", "trace", "--log-format", "json", "check"},
			level:  log.LevelTrace,
			format: log.FormatJSON,
			pretty: true,
		},
		{
			name:   "booleans",
			args:   []string{"--no-log-pretty", "--log-caller"},
			level:  log.LevelInfo,
			format: log.FormatJSON,
			caller: true,
		},
		{
			name:   "assigned booleans",
			args:   []string{"--log-pretty=false", "--no-log-caller=false"},
			level:  log.LevelInfo,
			format: log.FormatJSON,
			caller: true,
		},
		{
			name:   "after terminator",
			args:   []string{"--", "--log-level=error"},
			level:  log.LevelInfo,
			format: log.FormatJSON,
			pretty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.Config(log.WithDefaults(os.Stderr))
			t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

			f := logConfig{Pretty: true}
			f.scan(tt.args)

			l := log.Default()
			if l.Level() != tt.level {
				t.Errorf("level = %v, want %v", l.Level(), tt.level)
			}

			if l.Format() != tt.format {
				t.Errorf("format = %v, want %v", l.Format(), tt.format)
			}

			if f.Pretty != tt.pretty {
				t.Errorf("pretty = %v, want %v", f.Pretty, tt.pretty)
			}

			if f.Caller != tt.caller {
				t.Errorf("caller = %v, want %v", f.Caller, tt.caller)
			}
		})
	}
}
