package lex

import "github.com/ardnew/buildfile/pkg"

// Predefined errors (sentinel values).
var (
	// ErrUnknownToken reports a byte that cannot start or continue a token:
	// a disallowed character, a malformed '$' escape, a lone '\r', or end
	// of input in the middle of a value or target.
	ErrUnknownToken = pkg.NewError("unknown token")

	// ErrInvalidDeclStart reports a declaration line that begins with
	// something other than an identifier or a newline.
	ErrInvalidDeclStart = pkg.NewError("invalid declaration start")
)
