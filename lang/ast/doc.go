// Package ast defines the declarative model of a parsed build file.
//
// A [File] owns an ordered list of [Declaration]s and the [Scopes] arena
// holding every variable binding. Scopes are referenced by arena handle;
// each rule or build scope has the file-level scope as its parent, so a
// lookup through [Scopes.Get] falls back to file-level variables.
//
// Binding values are expanded eagerly when they are parsed. Targets and
// declaration names are kept unexpanded.
package ast
