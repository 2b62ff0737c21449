package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/buildfile/log"
)

// logFormat configures the default logger's format as a side effect of
// parsing, so errors reported while kong is still parsing already use it.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the default logger's level as a side effect of
// parsing.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level (${enum})."`
	Format     logFormat `default:"json"    enum:"${logFormatEnum}" help:"Set log format (${enum})."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp format, or 'none'."`
	Caller     bool      `default:"false"                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// start applies every parsed logging flag to the default logger. The
// returned function logs the end of the run.
func (f *logConfig) start(ctx context.Context) (stop func()) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)

	return func() { log.TraceContext(ctx, "logger stopped") }
}

// scan applies logging flags found in args before kong parses them, so the
// logger is configured regardless of flag position. The level and format
// flags are also applied by their UnmarshalText during parsing; the boolean
// flags are not.
func (f *logConfig) scan(args []string) {
	bools := map[string]struct {
		field *bool
		apply func(bool) log.Option
	}{
		"pretty": {&f.Pretty, log.WithPretty},
		"caller": {&f.Caller, log.WithCaller},
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		negate := strings.HasPrefix(arg, "--no-log-")

		name, ok := strings.CutPrefix(arg, "--log-")
		if negate {
			name, ok = strings.CutPrefix(arg, "--no-log-")
		}

		if !ok {
			continue
		}

		name, value, assigned := strings.Cut(name, "=")

		if _, isBool := bools[name]; negate && !isBool {
			continue
		}

		// Non-boolean flags consume the next argument unless assigned.
		next := func() string {
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++

				return args[i]
			}

			return value
		}

		switch name {
		case "level":
			_ = f.Level.UnmarshalText([]byte(next()))

		case "format":
			_ = f.Format.UnmarshalText([]byte(next()))

		case "time-layout":
			f.TimeLayout = next()
			log.Config(log.WithTimeLayout(f.TimeLayout))

		default:
			b, ok := bools[name]
			if !ok {
				continue
			}

			v := true
			if assigned {
				parsed, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				v = parsed
			}

			*b.field = v != negate
			log.Config(b.apply(*b.field))
		}
	}
}
