package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/ardnew/buildfile/log"
	"github.com/ardnew/buildfile/profile"
)

// defaultConfigIndent is the number of spaces used to indent the generated
// configuration file.
const defaultConfigIndent = 2

// defaultFileMode is the permission mode of the generated configuration
// file.
const defaultFileMode = 0o600

// Init writes a JSON configuration file holding the current value of every
// global flag. The file is read back as flag defaults on later runs.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context, ktx *kong.Context, env *Env) error {
	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	exists, err := afero.Exists(env.Fs, confPath)
	if err != nil {
		return ErrWriteConfig.Wrap(err).With(slog.String("file", confPath))
	}

	if exists && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath), slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	data, err := json.MarshalIndent(
		flagValues(ktx),
		"",
		strings.Repeat(" ", defaultConfigIndent),
	)
	if err != nil {
		return ErrWriteConfig.Wrap(err).With(slog.String("file", confPath))
	}

	if err := env.Fs.MkdirAll(filepath.Dir(confPath), 0o700); err != nil {
		return ErrWriteConfig.Wrap(err).With(slog.String("file", confPath))
	}

	err = afero.WriteFile(env.Fs, confPath, append(data, '\n'), defaultFileMode)
	if err != nil {
		return ErrWriteConfig.Wrap(err).With(slog.String("file", confPath))
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath))

	return nil
}

// flagValues collects the global flags that can be meaningfully stored in a
// configuration file, keyed by flag name.
func flagValues(ktx *kong.Context) map[string]any {
	ignore := []string{"help", profile.Tag}
	values := make(map[string]any)

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		switch v := ktx.FlagValue(flag).(type) {
		case nil:

		case string:
			if v != "" {
				values[flag.Name] = v
			}

		case []string:
			if len(v) > 0 {
				values[flag.Name] = v
			}

		case bool, int, int64, uint, uint64, float64:
			values[flag.Name] = v

		default:
			// Named string types (log level, log format).
			if s, ok := v.(interface{ String() string }); ok {
				values[flag.Name] = s.String()
			} else if b, err := json.Marshal(v); err == nil {
				values[flag.Name] = json.RawMessage(b)
			}
		}
	}

	return values
}
