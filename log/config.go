package log

import (
	"io"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

var levels = []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}

// Levels returns an iterator over the names of all defined log levels,
// lowest first.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range levels {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a level name, case-insensitively, optionally followed
// by a "+" or "-" and an integer offset (see [slog.Level.UnmarshalText]).
// Unrecognized names yield [DefaultLevel].
func ParseLevel(s string) Level {
	// slog does not know "trace".
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatJSON

// Formats returns an iterator over the names of all defined log formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, format := range []Format{FormatJSON, FormatText} {
			if !yield(format.String()) {
				return
			}
		}
	}
}

// ParseFormat parses "json" or "text"; anything else yields
// [DefaultFormat].
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}

// FormatTime defines a function that formats a time.Time value as a string.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the default used when no valid time layout is provided.
const DefaultTimeLayout = time.RFC3339

// DefaultCaller is the default setting for including caller information.
const DefaultCaller = false

// DefaultPretty is the default setting for pretty printing log output.
const DefaultPretty = true

// config holds the configuration options for a Logger.
type config struct {
	mutex      *sync.RWMutex
	output     io.Writer
	formatTime FormatTime
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(w io.Writer, opts ...Option) config {
	c := config{mutex: &sync.RWMutex{}}

	return apply(apply(c, WithDefaults(w)), opts...)
}

// clone returns a copy of c with its own mutex and opts applied.
func (c config) clone(opts ...Option) config {
	c.mutex = &sync.RWMutex{}

	return apply(c, opts...)
}

// set applies fn to a copy of c while holding c's lock, creating the mutex
// on first use.
func (c config) set(fn func(*config)) config {
	if c.mutex == nil {
		c.mutex = &sync.RWMutex{}
	} else {
		c.mutex.Lock()
		defer c.mutex.Unlock()
	}

	fn(&c)

	return c
}

// replaceAttr formats the built-in time and level attributes.
func (c config) replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		if t, ok := a.Value.Any().(time.Time); ok {
			s := c.formatTime(t)
			if s == "" {
				return slog.Attr{}
			}

			a.Value = slog.StringValue(s)
		}

	case slog.LevelKey:
		// "TRACE" rather than slog's "DEBUG-4".
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToUpper(Level(l).String()))
		}
	}

	return a
}

// handler creates the slog.Handler described by c.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   c.caller,
		Level:       slog.Level(c.level),
		ReplaceAttr: c.replaceAttr,
	}

	switch {
	case c.format == FormatJSON && c.pretty:
		return newPrettyJSONHandler(c.output, opts)
	case c.format == FormatText && c.pretty:
		return newPrettyTextHandler(c.output, opts)
	case c.format == FormatJSON:
		return slog.NewJSONHandler(c.output, opts)
	case c.format == FormatText:
		return slog.NewTextHandler(c.output, opts)
	default:
		return slog.DiscardHandler
	}
}

// WithDefaults returns an option that resets every setting to its default
// and directs output to w ([io.Discard] if nil).
func WithDefaults(w io.Writer) Option {
	return func(c config) config {
		return c.set(func(c *config) {
			c.output = orDiscard(w)
			c.formatTime = makeFormatTimeFunc(DefaultTimeLayout)
			c.level = DefaultLevel
			c.format = DefaultFormat
			c.caller = DefaultCaller
			c.pretty = DefaultPretty
		})
	}
}

// WithOutput returns an option that sets the output writer ([io.Discard] if
// nil).
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		return c.set(func(c *config) { c.output = orDiscard(w) })
	}
}

// WithLevel returns an option that sets the minimum log level.
func WithLevel(level Level) Option {
	return func(c config) config {
		return c.set(func(c *config) { c.level = level })
	}
}

// WithFormat returns an option that sets the output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		return c.set(func(c *config) { c.format = format })
	}
}

// WithTimeLayout returns an option that sets the layout of log timestamps.
//
// The layout is either one of the named layouts of the [time] package
// ("RFC3339", "Kitchen", ...) or an alias such as "ms", matched
// case-insensitively, or else it is passed verbatim to [time.Time.Format].
// An empty layout or "none" removes timestamps from the output.
func WithTimeLayout(layout string) Option {
	format := makeFormatTimeFunc(layout)

	return func(c config) config {
		return c.set(func(c *config) { c.formatTime = format })
	}
}

// WithCaller returns an option that controls whether the caller's source
// location is included in log output.
func WithCaller(enable bool) Option {
	return func(c config) config {
		return c.set(func(c *config) { c.caller = enable })
	}
}

// WithPretty returns an option that controls colorized output. Pretty text
// is unquoted key=value pairs; pretty JSON is an indented object.
func WithPretty(enable bool) Option {
	return func(c config) config {
		return c.set(func(c *config) { c.pretty = enable })
	}
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}

	return w
}

// timeLayout maps lowercase alphanumeric layout names to time layouts.
var timeLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"stamp":       time.Stamp,
	"none":        "",
}

func init() {
	for layout, aliases := range map[string][]string{
		time.StampMilli: {"stampmilli", "milli", "millis", "ms"},
		time.StampMicro: {"stampmicro", "micro", "micros", "us"},
		time.StampNano:  {"stampnano", "nano", "nanos", "ns"},
	} {
		for _, alias := range aliases {
			timeLayout[alias] = layout
		}
	}
}

func makeFormatTimeFunc(layout string) FormatTime {
	// Only the lookup key is normalized; custom layouts are used verbatim.
	key := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if std, ok := timeLayout[key]; ok {
		layout = std
	}

	if key == "" || layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}

