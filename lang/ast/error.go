package ast

import "github.com/ardnew/buildfile/pkg"

// ErrDuplicateBinding reports a name bound twice in the same scope.
var ErrDuplicateBinding = pkg.NewError("duplicate binding")
