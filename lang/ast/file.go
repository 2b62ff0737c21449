package ast

import (
	"github.com/ardnew/buildfile/lang/arena"
	"github.com/ardnew/buildfile/lang/lex"
)

// File is the result of parsing one build file.
type File struct {
	declarations Declarations
	scopes       *Scopes
}

// NewFile returns a File with no declarations and only a top scope.
func NewFile() *File {
	return &File{scopes: NewScopes()}
}

// Declarations returns the file's declarations.
func (f *File) Declarations() *Declarations { return &f.declarations }

// Scopes returns the file's scopes.
func (f *File) Scopes() *Scopes { return f.scopes }

// Rule returns the last rule declared with name.
func (f *File) Rule(name lex.Identifier) (*Rule, bool) {
	var found *Rule

	for _, decl := range f.declarations.All() {
		if decl.Kind == KindRule && decl.Rule.Name == name {
			found = decl.Rule
		}
	}

	return found, found != nil
}

// BuildScope returns the scope of the first build edge for which match
// reports true on any of its explicit or implicit outputs.
func (f *File) BuildScope(match func(Target) bool) (arena.ID[Scope], bool) {
	for _, decl := range f.declarations.All() {
		if decl.Kind != KindBuild {
			continue
		}

		for _, list := range [][]Target{decl.Build.Outputs, decl.Build.ImplicitOutputs} {
			for _, t := range list {
				if match(t) {
					return decl.Build.Scope, true
				}
			}
		}
	}

	return arena.ID[Scope]{}, false
}
