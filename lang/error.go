package lang

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/ardnew/buildfile/lang/lex"
	"github.com/ardnew/buildfile/pkg"
)

// Predefined errors (sentinel values).
var (
	ErrLex              = pkg.NewError("lexical error")
	ErrAST              = pkg.NewError("invalid declaration")
	ErrMissingNewline   = pkg.NewError("missing newline")
	ErrUnexpectedToken  = pkg.NewError("unexpected token")
	ErrExpected         = pkg.NewError("missing token")
	ErrUnexpectedEOF    = pkg.NewError("unexpected end of input")
	ErrInvalidValue     = pkg.NewError("invalid value")
	ErrPoolDepthInvalid = pkg.NewError("invalid pool depth")
	ErrUnsupported      = pkg.NewError("unsupported declaration")
	ErrReadInput        = pkg.NewError("failed to read input")
)

// SyntaxError describes the first failure encountered while parsing.
// It unwraps to the sentinel chain, so both the parser's and the lexer's
// sentinels match with [errors.Is].
type SyntaxError struct {
	Err      error
	Expected lex.TokenKind // TokenNone unless a specific token was required
	Got      lex.TokenKind // TokenNone unless a token was read
	Location lex.SourceLocation
	Snippet  string // Offending source line with a caret under Location
}

func newSyntaxError(
	input []byte,
	err error,
	loc lex.SourceLocation,
	expected, got lex.TokenKind,
) *SyntaxError {
	return &SyntaxError{
		Err:      err,
		Expected: expected,
		Got:      got,
		Location: loc,
		Snippet:  snippet(input, loc.Start),
	}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var buf strings.Builder

	buf.WriteString("line ")
	buf.WriteString(strconv.Itoa(e.Location.Line))
	buf.WriteString(": ")
	buf.WriteString(e.Err.Error())

	if e.Expected != lex.TokenNone {
		buf.WriteString(": expected ")
		buf.WriteString(e.Expected.String())
	}

	if e.Got != lex.TokenNone {
		buf.WriteString(", got ")
		buf.WriteString(e.Got.String())
	}

	if e.Snippet != "" {
		buf.WriteByte('\n')
		buf.WriteString(e.Snippet)
	}

	return buf.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *SyntaxError) Unwrap() error { return e.Err }

// snippet renders the physical line of input containing offset, prefixed
// with its line number, and a caret under offset.
func snippet(input []byte, offset int) string {
	if offset < 0 || offset > len(input) {
		return ""
	}

	begin := bytes.LastIndexByte(input[:offset], '\n') + 1

	end := bytes.IndexByte(input[offset:], '\n')
	if end < 0 {
		end = len(input)
	} else {
		end += offset
	}

	line := strings.TrimSuffix(string(input[begin:end]), "\r")
	num := strconv.Itoa(bytes.Count(input[:begin], []byte{'\n'}) + 1)

	var src strings.Builder

	src.WriteString("  ")
	src.WriteString(num)
	src.WriteString(" | ")
	src.WriteString(line)
	src.WriteByte('\n')

	// 2 leading spaces + " | " (3 chars)
	src.WriteString(strings.Repeat(" ", len(num)+5+offset-begin))
	src.WriteString("^\n")

	return src.String()
}
