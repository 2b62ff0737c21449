// Package cli contains the command line interface for buildfile.
//
// # Commands
//
//	buildfile [check] [SOURCE]           digest and declaration counts
//	buildfile tokens [SOURCE]            token stream
//	buildfile dump [-o yaml|json|cbor] [SOURCE]
//	buildfile get [--rule R | --build OUT] NAME [SOURCE]
//	buildfile init [--force]             write the configuration file
//	buildfile version
//
// SOURCE defaults to "-", standard input.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: log output format (json, text)
//   - --log-time-layout: timestamp format (RFC3339, RFC3339Nano, none, ...)
//   - --[no-]log-caller: include caller information
//   - --[no-]log-pretty: colorized pretty printing
//
// Logging flags are applied before the remaining arguments are parsed, so
// they take effect for errors reported during parsing too.
//
// # Configuration
//
// Flag defaults are read from config.json in the user configuration
// directory (for example ~/.config/buildfile/config.json). Keys are flag
// names:
//
//	{
//	  "log-level": "debug",
//	  "log-format": "text"
//	}
//
// The init command writes this file from the current flag values.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: profiling mode (see package profile)
//   - --pprof-dir: output directory (default: <cache dir>/buildfile/pprof)
package cli
