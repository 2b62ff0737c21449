package cmd

import "github.com/ardnew/buildfile/pkg"

var (
	ErrOpenSource  = pkg.NewError("open source")
	ErrParseSource = pkg.NewError("parse source")
	ErrTokenize    = pkg.NewError("tokenize source")
	ErrEncode      = pkg.NewError("encode model")
	ErrWriteOutput = pkg.NewError("write output")
	ErrNotFound    = pkg.NewError("variable not found")
	ErrNoScope     = pkg.NewError("scope not found")
	ErrWriteConfig = pkg.NewError("write configuration file")
	ErrFileExists  = pkg.NewError("file exists (use --force to overwrite)")
)
