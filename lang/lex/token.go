package lex

import "strconv"

// TokenKind classifies a generic token.
type TokenKind int

const (
	// TokenNone is the zero TokenKind; the lexer never produces it.
	TokenNone TokenKind = iota

	// TokenPipe is a single '|'.
	TokenPipe

	// TokenPipePipe is '||'.
	TokenPipePipe

	// TokenEqual is '='.
	TokenEqual

	// TokenColon is ':'.
	TokenColon

	// TokenIdentifier is a run of identifier bytes [A-Za-z0-9_.-].
	TokenIdentifier

	// TokenNewline is '\n' or '\r\n'.
	TokenNewline

	// TokenIndent is a run of spaces at the start of a line.
	TokenIndent
)

// String returns a human-readable name of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "none"

	case TokenPipe:
		return "'|'"

	case TokenPipePipe:
		return "'||'"

	case TokenEqual:
		return "'='"

	case TokenColon:
		return "':'"

	case TokenIdentifier:
		return "identifier"

	case TokenNewline:
		return "newline"

	case TokenIndent:
		return "indent"

	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// DeclKind classifies the first token of a declaration line.
type DeclKind int

const (
	// DeclNone is the zero DeclKind; the lexer never produces it.
	DeclNone DeclKind = iota

	DeclDefault
	DeclRule
	DeclBuild
	DeclPool
	DeclInclude
	DeclSubninja

	// DeclIdentifier is any identifier that is not a keyword; it starts a
	// top-level variable binding.
	DeclIdentifier

	// DeclNewline is a blank line.
	DeclNewline
)

// keywords maps each declaration keyword to its kind.
var keywords = map[string]DeclKind{
	"default":  DeclDefault,
	"rule":     DeclRule,
	"build":    DeclBuild,
	"pool":     DeclPool,
	"include":  DeclInclude,
	"subninja": DeclSubninja,
}

// String returns a human-readable name of the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclNone:
		return "none"

	case DeclDefault:
		return "default"

	case DeclRule:
		return "rule"

	case DeclBuild:
		return "build"

	case DeclPool:
		return "pool"

	case DeclInclude:
		return "include"

	case DeclSubninja:
		return "subninja"

	case DeclIdentifier:
		return "identifier"

	case DeclNewline:
		return "newline"

	default:
		return "DeclKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// SourceLocation is a half-open byte range [Start, End) of the input and
// the 1-based line it begins on.
type SourceLocation struct {
	Start int
	End   int
	Line  int
}

// Len returns the number of bytes covered by the location.
func (l SourceLocation) Len() int { return l.End - l.Start }

// Kind is the set of token taxonomies produced by a [Lexer].
type Kind interface {
	TokenKind | DeclKind
}

// Token is a classified span of the input.
type Token[K Kind] struct {
	Kind     K
	Location SourceLocation
}
