// Package lex tokenizes Ninja-style build files.
//
// A [Lexer] is a single-pass byte cursor with two families of entry points
// sharing the same position:
//
//   - [Lexer.Lex] and [Lexer.LexDecl] produce delimited tokens: '=', ':',
//     '|', '||', identifiers, indentation and newlines.
//   - [Lexer.LexValue] and [Lexer.LexTarget] scan free text with '$'
//     escapes into a [Value] of literal and variable parts.
//
// The parser decides which entry point to call next; the lexer never
// backtracks and keeps no token pushback.
package lex

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/buildfile/lang/blob"
	"github.com/ardnew/buildfile/lang/intern"
)

// Lexer scans an immutable input buffer.
type Lexer struct {
	input []byte
	start int // start of the current span
	end   int // cursor; end of the current span
	line  int
}

// New returns a Lexer positioned at the start of input.
// The input must not be modified while the Lexer is in use.
func New(input []byte) *Lexer {
	return &Lexer{input: input, line: 1}
}

// Lexeme returns the bytes of the input covered by loc.
// The result aliases the input buffer.
func (l *Lexer) Lexeme(loc SourceLocation) []byte {
	return l.input[loc.Start:loc.End]
}

// Location returns the current span and line. After a failed call it
// points at the offending byte.
func (l *Lexer) Location() SourceLocation {
	return SourceLocation{Start: l.start, End: l.end, Line: l.line}
}

// TryIndent reports whether the next byte is a space, i.e. whether an
// indented line follows.
func (l *Lexer) TryIndent() bool {
	c, ok := l.peek()

	return ok && c == ' '
}

// Lex returns the next generic token. It returns false at end of input.
// Comments are skipped. After any token other than a newline, trailing
// spaces and escaped line continuations are consumed.
func (l *Lexer) Lex() (Token[TokenKind], bool, error) {
	kind, ok, err := l.lexOne()
	if err != nil || !ok {
		return Token[TokenKind]{}, false, err
	}

	tok := l.token(kind)
	if kind != TokenNewline {
		l.skipWhitespace()
	}

	return tok, true, nil
}

// LexDecl returns the next token classified as the start of a declaration.
// Identifiers matching a keyword become the keyword's kind; newlines pass
// through; any other token fails with [ErrInvalidDeclStart].
func (l *Lexer) LexDecl() (Token[DeclKind], bool, error) {
	tok, ok, err := l.Lex()
	if err != nil || !ok {
		return Token[DeclKind]{}, false, err
	}

	var kind DeclKind

	switch tok.Kind {
	case TokenNewline:
		kind = DeclNewline

	case TokenIdentifier:
		kind, ok = keywords[string(l.Lexeme(tok.Location))]
		if !ok {
			kind = DeclIdentifier
		}

	default:
		return Token[DeclKind]{}, false, ErrInvalidDeclStart.With(
			slog.String("token", tok.Kind.String()),
			slog.Int("offset", tok.Location.Start),
			slog.Int("line", tok.Location.Line),
		)
	}

	return Token[DeclKind]{Kind: kind, Location: tok.Location}, true, nil
}

// LexValue scans the right-hand side of a binding up to, but not
// including, the terminating newline. Variable names are interned in table.
// End of input before the newline fails with [ErrUnknownToken].
func (l *Lexer) LexValue(table *intern.Table) (Value, error) {
	var p parts

	for {
		c, ok := l.peek()
		if !ok {
			return Value{}, l.fail("unterminated value")
		}

		if l.newlineAt(l.end) > 0 {
			break
		}

		l.advance()

		if c != '$' {
			p.literal(c)

			continue
		}

		part, err := l.lexDollar(table)
		if err != nil {
			return Value{}, err
		}

		p.push(part)
	}

	l.start = l.end

	return p.value(), nil
}

// LexTarget scans one path of a space-separated target list. It stops at
// the first unescaped '|', ':', space or newline and consumes trailing
// spaces. It returns false when no part was scanned, which is how a caller
// detects the end of the list. End of input fails with [ErrUnknownToken].
func (l *Lexer) LexTarget(table *intern.Table) (Value, bool, error) {
	var p parts

loop:
	for {
		c, ok := l.peek()
		if !ok {
			return Value{}, false, l.fail("unterminated target")
		}

		switch {
		case c == '|', c == ':', c == ' ', l.newlineAt(l.end) > 0:
			break loop

		case c == '$':
			l.advance()

			part, err := l.lexDollar(table)
			if err != nil {
				return Value{}, false, err
			}

			p.push(part)

		default:
			l.advance()
			p.literal(c)
		}
	}

	l.skipWhitespace()

	if p.empty() {
		return Value{}, false, nil
	}

	return p.value(), true, nil
}

// lexDollar scans the escape following a '$' that was just consumed.
func (l *Lexer) lexDollar(table *intern.Table) (Part, error) {
	c, ok := l.peek()
	if !ok {
		return Part{}, l.fail("'$' at end of input")
	}

	switch {
	case c == ' ', c == ':', c == '$':
		l.advance()

		return TextPart(blob.New([]byte{c})), nil

	case c == '\n', c == '\r':
		n := l.newlineAt(l.end)
		if n == 0 {
			return Part{}, l.fail("'\\r' not followed by '\\n'")
		}

		l.end += n
		l.skipSpaces()

		return TextPart(blob.Empty()), nil

	case c == '{':
		l.advance()

		name := l.end
		for {
			c, ok := l.peek()
			if !ok || (!isIdentifier(c) && c != '}') {
				return Part{}, l.fail("unterminated '${'")
			}

			if c == '}' {
				break
			}

			l.advance()
		}

		if l.end == name {
			return Part{}, l.fail("empty '${}'")
		}

		id := NewIdentifier(table, l.input[name:l.end])
		l.advance() // '}'

		return VariablePart(id), nil

	case isBareIdentifier(c):
		name := l.end
		for ok && isBareIdentifier(c) {
			l.advance()
			c, ok = l.peek()
		}

		return VariablePart(NewIdentifier(table, l.input[name:l.end])), nil

	default:
		return Part{}, l.fail("bad '$' escape")
	}
}

// lexOne scans one generic token, skipping comments, and reports its kind.
func (l *Lexer) lexOne() (TokenKind, bool, error) {
	for {
		c, ok := l.peek()
		if !ok {
			return TokenNone, false, nil
		}

		switch {
		case c == '=':
			l.advance()

			return TokenEqual, true, nil

		case c == ':':
			l.advance()

			return TokenColon, true, nil

		case c == '|':
			l.advance()

			if c, ok := l.peek(); ok && c == '|' {
				l.advance()

				return TokenPipePipe, true, nil
			}

			return TokenPipe, true, nil

		case isIdentifier(c):
			for ok && isIdentifier(c) {
				l.advance()
				c, ok = l.peek()
			}

			return TokenIdentifier, true, nil

		case c == ' ':
			l.skipSpaces()

			return TokenIndent, true, nil

		case c == '\n', c == '\r':
			n := l.newlineAt(l.end)
			if n == 0 {
				return TokenNone, false, l.fail("'\\r' not followed by '\\n'")
			}

			l.end += n

			return TokenNewline, true, nil

		case c == '#':
			// The terminating newline is left for the next token.
			for ok && l.newlineAt(l.end) == 0 {
				l.advance()
				_, ok = l.peek()
			}

			l.start = l.end

		default:
			return TokenNone, false, l.fail("unexpected byte")
		}
	}
}

// token closes the current span as a token of the given kind.
func (l *Lexer) token(kind TokenKind) Token[TokenKind] {
	tok := Token[TokenKind]{Kind: kind, Location: l.Location()}
	if kind == TokenNewline {
		l.line++
	}

	l.start = l.end

	return tok
}

// skipWhitespace consumes spaces and escaped line continuations, then
// starts a new span.
func (l *Lexer) skipWhitespace() {
	for {
		c, ok := l.peek()
		if !ok {
			break
		}

		if c == ' ' {
			l.advance()

			continue
		}

		if c == '$' {
			if n := l.newlineAt(l.end + 1); n > 0 {
				l.end += 1 + n

				continue
			}
		}

		break
	}

	l.start = l.end
}

func (l *Lexer) skipSpaces() {
	for c, ok := l.peek(); ok && c == ' '; c, ok = l.peek() {
		l.advance()
	}
}

// newlineAt returns the length of the newline sequence ("\n" or "\r\n")
// at offset i, or 0 if there is none.
func (l *Lexer) newlineAt(i int) int {
	switch {
	case i < len(l.input) && l.input[i] == '\n':
		return 1
	case i+1 < len(l.input) && l.input[i] == '\r' && l.input[i+1] == '\n':
		return 2
	default:
		return 0
	}
}

func (l *Lexer) peek() (byte, bool) {
	if l.end >= len(l.input) {
		return 0, false
	}

	return l.input[l.end], true
}

func (l *Lexer) advance() { l.end++ }

// fail returns an [ErrUnknownToken] describing the byte at the cursor.
func (l *Lexer) fail(reason string) error {
	attrs := []slog.Attr{
		slog.String("reason", reason),
		slog.Int("offset", l.end),
		slog.Int("line", l.line),
	}

	if c, ok := l.peek(); ok {
		attrs = append(attrs, slog.String("byte", strconv.QuoteRune(rune(c))))
	}

	l.start = l.end

	return ErrUnknownToken.With(attrs...)
}

// Character classification

func isBareIdentifier(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '_' || c == '-'
}

func isIdentifier(c byte) bool { return isBareIdentifier(c) || c == '.' }
