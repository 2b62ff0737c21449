package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/ardnew/buildfile/lang"
	"github.com/ardnew/buildfile/lang/ast"
	"github.com/ardnew/buildfile/lang/intern"
	"github.com/ardnew/buildfile/log"
)

// Env holds the endpoints a command reads from and writes to.
type Env struct {
	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// open returns a reader for source, which is either a path in e.Fs or "-"
// for standard input.
func (e *Env) open(source string) (io.ReadCloser, error) {
	if source == stdinSource || source == "" {
		return io.NopCloser(e.Stdin), nil
	}

	f, err := e.Fs.Open(source)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err).With(slog.String("source", source))
	}

	return f, nil
}

// readAll returns the complete content of source.
func (e *Env) readAll(source string) ([]byte, error) {
	r, err := e.open(source)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err).With(slog.String("source", source))
	}

	return data, nil
}

// parse reads and parses source with a fresh intern table.
func (e *Env) parse(
	ctx context.Context,
	source string,
) (*ast.File, *intern.Table, error) {
	r, err := e.open(source)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	table := intern.New()

	file, err := lang.ParseReader(ctx, r, table,
		lang.WithLogger(log.Default().With(slog.String("source", source))))
	if err != nil {
		return nil, nil, ErrParseSource.Wrap(err).
			With(slog.String("source", source))
	}

	return file, table, nil
}

// write copies p to e.Stdout.
func (e *Env) write(p []byte) error {
	if _, err := e.Stdout.Write(p); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
