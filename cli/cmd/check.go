package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/buildfile/lang"
	"github.com/ardnew/buildfile/lang/ast"
	"github.com/ardnew/buildfile/lang/intern"
	"github.com/ardnew/buildfile/log"
)

// Check parses a build file and reports its digest and declaration counts.
type Check struct {
	Source string `arg:"" default:"-" help:"Source build file or '-' for stdin." name:"source" optional:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context, env *Env) error {
	input, err := env.readAll(c.Source)
	if err != nil {
		return err
	}

	table := intern.New()

	file, err := lang.ParseBytes(ctx, input, table,
		lang.WithLogger(log.Default().With(slog.String("source", c.Source))))
	if err != nil {
		return ErrParseSource.Wrap(err).With(slog.String("source", c.Source))
	}

	count := file.Declarations().Count()

	var sb strings.Builder

	fmt.Fprintf(&sb, "digest\t%s\n", lang.FormatDigest(lang.Digest(input)))

	for _, k := range []ast.Kind{ast.KindRule, ast.KindBuild, ast.KindDefault, ast.KindPool} {
		fmt.Fprintf(&sb, "%s\t%d\n", k, count[k])
	}

	fmt.Fprintf(&sb, "variables\t%d\n", file.Scopes().Scope(file.Scopes().Top()).Len())

	return env.write([]byte(sb.String()))
}
