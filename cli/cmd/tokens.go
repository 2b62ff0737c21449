package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/buildfile/lang/intern"
	"github.com/ardnew/buildfile/lang/lex"
	"github.com/ardnew/buildfile/log"
)

// Tokens prints the token stream of a build file, one token per line:
//
//	LINE	START:END	KIND	LEXEME
//
// Right-hand sides of bindings are printed as a single value token and
// build/default paths as target tokens.
type Tokens struct {
	Source string `arg:"" default:"-" help:"Source build file or '-' for stdin." name:"source" optional:""`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context, env *Env) error {
	input, err := env.readAll(t.Source)
	if err != nil {
		return err
	}

	w := tokenWriter{
		w:     env.Stdout,
		input: input,
		style: newTokenStyle(env.Stdout),
	}

	n, err := w.walk(ctx, lex.New(input), intern.New())

	log.DebugContext(ctx, "tokenized",
		slog.String("source", t.Source),
		slog.Int("tokens", n))

	if err != nil {
		return ErrTokenize.Wrap(err).With(slog.String("source", t.Source))
	}

	return nil
}

// tokenStyle colors token kinds. Color is dropped when the output is not a
// terminal.
type tokenStyle struct {
	keyword, ident, punct, space, text lipgloss.Style
}

func newTokenStyle(w io.Writer) tokenStyle {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return tokenStyle{
		keyword: fg("5").Bold(true),
		ident:   fg("4"),
		punct:   fg("3"),
		space:   fg("8"),
		text:    fg("2"),
	}
}

func (s tokenStyle) render(kind string) string {
	switch kind {
	case "rule", "build", "default", "pool", "include", "subninja":
		return s.keyword.Render(kind)
	case "identifier":
		return s.ident.Render(kind)
	case "newline", "indent":
		return s.space.Render(kind)
	case "value", "target":
		return s.text.Render(kind)
	default:
		return s.punct.Render(kind)
	}
}

type tokenWriter struct {
	w     io.Writer
	input []byte
	style tokenStyle
	count int
	err   error
}

func (w *tokenWriter) emit(kind string, start, end, line int) {
	if w.err != nil {
		return
	}

	w.count++
	_, w.err = fmt.Fprintf(w.w, "%d\t%d:%d\t%s\t%q\n",
		line, start, end, w.style.render(kind), w.input[start:end])
}

// walk drives the lexer through input, choosing the entry point a parser
// would use at each position. It does not check the grammar beyond that.
// It returns the number of tokens written.
func (w *tokenWriter) walk(
	ctx context.Context,
	l *lex.Lexer,
	table *intern.Table,
) (int, error) {
	var (
		lineStart = true
		targets   bool // inside a build or default target list
	)

	for {
		if err := ctx.Err(); err != nil {
			return w.count, err
		}

		if w.err != nil {
			return w.count, ErrWriteOutput.Wrap(w.err)
		}

		if lineStart && !l.TryIndent() {
			decl, ok, err := l.LexDecl()
			if err != nil || !ok {
				return w.count, err
			}

			loc := decl.Location
			w.emit(decl.Kind.String(), loc.Start, loc.End, loc.Line)

			switch decl.Kind {
			case lex.DeclNewline:

			case lex.DeclBuild, lex.DeclDefault:
				lineStart, targets = false, true

			default:
				lineStart = false
			}

			continue
		}

		lineStart = false

		if targets {
			from := l.Location()

			_, ok, err := l.LexTarget(table)
			if err != nil {
				return w.count, err
			}

			if ok {
				end := from.Start + len(bytes.TrimRight(w.input[from.Start:l.Location().End], " "))
				w.emit("target", from.Start, end, from.Line)

				continue
			}
		}

		tok, ok, err := l.Lex()
		if err != nil || !ok {
			return w.count, err
		}

		loc := tok.Location
		w.emit(tok.Kind.String(), loc.Start, loc.End, loc.Line)

		switch tok.Kind {
		case lex.TokenNewline:
			lineStart, targets = true, false

		case lex.TokenColon:
			if !targets {
				break
			}

			// The rule name of a build edge.
			tok, ok, err := l.Lex()
			if err != nil || !ok {
				return w.count, err
			}

			loc := tok.Location
			w.emit(tok.Kind.String(), loc.Start, loc.End, loc.Line)

		case lex.TokenEqual:
			from := l.Location()

			if _, err := l.LexValue(table); err != nil {
				return w.count, err
			}

			w.emit("value", from.Start, l.Location().End, from.Line)
		}
	}
}
