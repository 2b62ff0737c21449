// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Time formatting, caller information, level and output format are applied
// at logger creation time using functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("parse complete", slog.Int("declarations", n))
//	logger.Error("parse failed", slog.Any("error", err))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Info], [Trace], ...) write through a default
// logger that [Config] reconfigures in place.
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is used for per-declaration
// parser output. The remaining levels map directly onto [slog.Level].
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. With [WithPretty] enabled, both are rendered with lipgloss
// styles; color is dropped when the output is not a terminal.
package log
