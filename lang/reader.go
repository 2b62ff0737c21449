package lang

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/buildfile/lang/ast"
	"github.com/ardnew/buildfile/lang/intern"
)

// ParseBytes parses input and returns the resulting file.
func ParseBytes(
	ctx context.Context,
	input []byte,
	table *intern.Table,
	opts ...Option,
) (*ast.File, error) {
	return NewParser(input, opts...).Parse(ctx, table)
}

// ParseReader reads r to completion and parses its content.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	table *intern.Table,
	opts ...Option,
) (*ast.File, error) {
	// Wrap reader with async read-ahead so reads overlap with buffering.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	p := NewParser(data, opts...)

	p.logger.TraceContext(
		ctx,
		"read input",
		slog.Int("source_bytes", len(data)),
		slog.String("digest", FormatDigest(Digest(data))),
		slog.Bool("read_ahead", true),
	)

	return p.Parse(ctx, table)
}

// Digest returns the xxh3 hash of a build file's content.
func Digest(input []byte) uint64 { return xxh3.Hash(input) }

// FormatDigest renders a digest as fixed-width lowercase hex.
func FormatDigest(d uint64) string { return fmt.Sprintf("%016x", d) }
