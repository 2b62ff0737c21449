package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/buildfile/lang/arena"
	"github.com/ardnew/buildfile/lang/ast"
	"github.com/ardnew/buildfile/lang/intern"
	"github.com/ardnew/buildfile/lang/lex"
)

// Get prints the value of a variable. Without --rule or --build the name is
// looked up among the file-level variables; otherwise the lookup starts in
// the named rule's or build edge's scope and falls back to the file level.
type Get struct {
	Rule  string `help:"Look up NAME in the scope of this rule."                              xor:"scope"`
	Build string `help:"Look up NAME in the scope of the build edge producing this output." xor:"scope"`

	Name   string `arg:"" help:"Variable name."                                  name:"name"`
	Source string `arg:"" default:"-" help:"Source build file or '-' for stdin." name:"source" optional:""`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context, env *Env) error {
	file, table, err := env.parse(ctx, g.Source)
	if err != nil {
		return err
	}

	scope, err := g.scope(file, table)
	if err != nil {
		return err
	}

	value, ok := file.Scopes().Get(scope, lex.NewIdentifierString(table, g.Name))
	if !ok {
		return ErrNotFound.With(slog.String("name", g.Name))
	}

	return env.write(append(value.Bytes(), '\n'))
}

func (g *Get) scope(file *ast.File, table *intern.Table) (arena.ID[ast.Scope], error) {
	scopes := file.Scopes()

	switch {
	case g.Rule != "":
		rule, ok := file.Rule(lex.NewIdentifierString(table, g.Rule))
		if !ok {
			return arena.ID[ast.Scope]{}, ErrNoScope.With(slog.String("rule", g.Rule))
		}

		return rule.Scope, nil

	case g.Build != "":
		top := scopes.Scope(scopes.Top())

		id, ok := file.BuildScope(func(t ast.Target) bool {
			return top.Evaluate(t.Value).String() == g.Build
		})
		if !ok {
			return arena.ID[ast.Scope]{}, ErrNoScope.With(slog.String("build", g.Build))
		}

		return id, nil

	default:
		return scopes.Top(), nil
	}
}
