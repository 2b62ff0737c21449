// Package lang parses Ninja-style build files into the model defined by
// package [github.com/ardnew/buildfile/lang/ast].
//
// # Grammar
//
// A build file is a sequence of declarations, one per line:
//
//	name = value
//	rule name
//	  name = value
//	build outputs [| implicit-outputs]: rule [inputs] [| implicit-inputs] [|| order-inputs]
//	  name = value
//	default targets
//	pool name
//	  depth = N
//
// Values and targets may contain variable references ($name or ${name})
// and the escapes "$ ", "$:", "$$" and "$" followed by a newline.
//
// # Evaluation
//
// Every binding value is expanded as soon as it is parsed, using only the
// file-level variables declared above it. References to unknown variables
// expand to nothing. Targets are kept unexpanded.
//
// # Errors
//
// Parsing stops at the first failure, which is returned as a
// [*SyntaxError]. Use [errors.Is] with the sentinels of this package, of
// package lex, or of package ast to classify it.
//
// include and subninja are recognized and rejected with [ErrUnsupported].
package lang
