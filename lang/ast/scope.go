package ast

import (
	"cmp"
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/ardnew/buildfile/lang/arena"
	"github.com/ardnew/buildfile/lang/blob"
	"github.com/ardnew/buildfile/lang/lex"
)

// Binding is a variable name with its fully expanded value.
type Binding struct {
	Name  lex.Identifier
	Value blob.Blob
}

// Value is the unexpanded right-hand side of a binding.
type Value struct {
	lex.Value
}

// Target is one unexpanded path in a target list.
type Target struct {
	lex.Value
}

// Scope is a set of bindings with an optional parent.
type Scope struct {
	bindings  map[lex.Identifier]blob.Blob
	parent    arena.ID[Scope]
	hasParent bool
}

func newScope(parent arena.ID[Scope], hasParent bool) Scope {
	return Scope{
		bindings:  make(map[lex.Identifier]blob.Blob),
		parent:    parent,
		hasParent: hasParent,
	}
}

// Parent returns the handle of the enclosing scope, if any.
func (s *Scope) Parent() (arena.ID[Scope], bool) { return s.parent, s.hasParent }

// Len returns the number of local bindings.
func (s *Scope) Len() int { return len(s.bindings) }

// Get returns the value bound to name in this scope only.
func (s *Scope) Get(name lex.Identifier) (blob.Blob, bool) {
	v, ok := s.bindings[name]

	return v, ok
}

// Push adds b to the scope. A name already bound here fails with
// [ErrDuplicateBinding]; the existing value is kept.
func (s *Scope) Push(b Binding) error {
	if _, ok := s.bindings[b.Name]; ok {
		return ErrDuplicateBinding.With(
			slog.Uint64("symbol", uint64(b.Name.Symbol())),
		)
	}

	if s.bindings == nil {
		s.bindings = make(map[lex.Identifier]blob.Blob)
	}

	s.bindings[b.Name] = b.Value

	return nil
}

// Bindings returns an iterator over the local bindings ordered by symbol,
// which is the order their names were first interned.
func (s *Scope) Bindings() iter.Seq[Binding] {
	return func(yield func(Binding) bool) {
		names := slices.SortedFunc(maps.Keys(s.bindings), func(a, b lex.Identifier) int {
			return cmp.Compare(a.Symbol(), b.Symbol())
		})

		for _, name := range names {
			if !yield(Binding{Name: name, Value: s.bindings[name]}) {
				return
			}
		}
	}
}

// Evaluate expands v using this scope's own bindings. Literal text is
// copied verbatim; an unbound variable expands to nothing.
func (s *Scope) Evaluate(v lex.Value) blob.Blob {
	var b blob.Builder

	for _, part := range v.Parts {
		switch part.Kind {
		case lex.PartText:
			b.Append(part.Text)

		case lex.PartVariable:
			if text, ok := s.Get(part.Variable); ok {
				b.Append(text)
			}
		}
	}

	return b.Blob()
}

// Scopes is the arena of every scope in a file together with the
// file-level scope.
type Scopes struct {
	arena *arena.Arena[Scope]
	top   arena.ID[Scope]
}

// NewScopes returns a Scopes holding only an empty, parentless top scope.
func NewScopes() *Scopes {
	a := arena.New[Scope]()

	return &Scopes{arena: a, top: a.Insert(newScope(arena.ID[Scope]{}, false))}
}

// Top returns the handle of the file-level scope.
func (s *Scopes) Top() arena.ID[Scope] { return s.top }

// Len returns the number of scopes, including the top scope.
func (s *Scopes) Len() int { return s.arena.Len() }

// Scope returns the scope referenced by id.
// The pointer is valid until the next call to NewScope.
func (s *Scopes) Scope(id arena.ID[Scope]) *Scope { return s.arena.Ref(id) }

// NewScope creates a scope holding bindings whose parent is the top scope.
// A name bound twice fails with [ErrDuplicateBinding] and no scope is
// created.
func (s *Scopes) NewScope(bindings []Binding) (arena.ID[Scope], error) {
	scope := newScope(s.top, true)

	for _, b := range bindings {
		if err := scope.Push(b); err != nil {
			return arena.ID[Scope]{}, err
		}
	}

	return s.arena.Insert(scope), nil
}

// Get looks name up in the scope referenced by id and then in each of its
// ancestors, returning the nearest binding.
func (s *Scopes) Get(id arena.ID[Scope], name lex.Identifier) (blob.Blob, bool) {
	for {
		scope := s.Scope(id)
		if v, ok := scope.Get(name); ok {
			return v, true
		}

		parent, ok := scope.Parent()
		if !ok {
			return blob.Blob{}, false
		}

		id = parent
	}
}

// All returns an iterator over every scope handle in creation order.
func (s *Scopes) All() iter.Seq2[arena.ID[Scope], *Scope] {
	return func(yield func(arena.ID[Scope], *Scope) bool) {
		for id := range s.arena.All() {
			if !yield(id, s.arena.Ref(id)) {
				return
			}
		}
	}
}
