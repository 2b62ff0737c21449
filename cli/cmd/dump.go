package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/buildfile/lang"
)

// Dump prints the parsed declarations and file-level variables.
type Dump struct {
	Format string `default:"yaml" enum:"yaml,json,cbor" help:"Output format (${enum})."             short:"o"`
	Indent int    `default:"2"                          help:"Indent width for YAML and JSON output." short:"i"`

	Source string `arg:"" default:"-" help:"Source build file or '-' for stdin." name:"source" optional:""`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context, env *Env) error {
	file, table, err := env.parse(ctx, d.Source)
	if err != nil {
		return err
	}

	data, err := d.encode(lang.ToMap(file, table))
	if err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", d.Format))
	}

	return env.write(data)
}

func (d *Dump) encode(m map[string]any) ([]byte, error) {
	switch d.Format {
	case "json":
		data, err := json.MarshalIndent(m, "", strings.Repeat(" ", d.Indent))
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil

	case "cbor":
		// Canonical encoding sorts map keys, so equal files encode to equal
		// bytes.
		em, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return nil, err
		}

		return em.Marshal(m)

	default:
		return yaml.MarshalWithOptions(m, yaml.Indent(d.Indent))
	}
}
