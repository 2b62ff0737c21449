package log

import (
	"log/slog"
	"strconv"
	"strings"
)

// String returns the lowercase name of the level. Levels between the named
// ones are rendered as an offset from the nearest lower name, as slog does.
func (l Level) String() string {
	name := func(base string, val Level) string {
		if l == val {
			return base
		}

		return base + "+" + strconv.Itoa(int(l-val))
	}

	switch {
	case l < LevelDebug:
		if l < LevelTrace {
			return strings.ToLower(slog.Level(l).String())
		}

		return name("trace", LevelTrace)
	case l < LevelInfo:
		return name("debug", LevelDebug)
	case l < LevelWarn:
		return name("info", LevelInfo)
	case l < LevelError:
		return name("warn", LevelWarn)
	default:
		return name("error", LevelError)
	}
}

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}
