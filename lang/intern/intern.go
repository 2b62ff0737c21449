// Package intern deduplicates identifier names into small integer symbols.
package intern

import (
	"fmt"

	"github.com/ccoveille/go-safecast"
)

// Symbol is an interned name. Two symbols from the same [Table] are equal
// iff the bytes they were interned from are equal.
type Symbol uint32

// Table maps byte sequences to symbols and back.
//
// Symbols are assigned in first-occurrence order starting at zero, so the
// ordinal of a new symbol is the number of distinct names seen before it.
// A Table is not safe for concurrent use.
type Table struct {
	index map[string]Symbol
	names []string
}

// New returns an empty Table.
func New() *Table {
	return &Table{index: make(map[string]Symbol)}
}

// Insert returns the symbol for name, allocating the next one if name has
// not been seen before. The table retains its own copy of name.
func (t *Table) Insert(name []byte) Symbol {
	if sym, ok := t.index[string(name)]; ok {
		return sym
	}

	return t.insert(string(name))
}

// InsertString is like [Table.Insert] for a string.
func (t *Table) InsertString(name string) Symbol {
	if sym, ok := t.index[name]; ok {
		return sym
	}

	return t.insert(name)
}

func (t *Table) insert(name string) Symbol {
	n, err := safecast.ToUint32(len(t.names))
	if err != nil {
		panic(fmt.Errorf("intern table overflow: %w", err))
	}

	sym := Symbol(n)
	t.index[name] = sym
	t.names = append(t.names, name)

	return sym
}

// Lookup returns the symbol for name without inserting it.
func (t *Table) Lookup(name []byte) (Symbol, bool) {
	sym, ok := t.index[string(name)]

	return sym, ok
}

// String returns the name sym was interned from.
// It panics if sym was not returned by t.
func (t *Table) String(sym Symbol) string {
	if int(sym) >= len(t.names) {
		panic(fmt.Sprintf("intern: symbol %d out of range [0,%d)", sym, len(t.names)))
	}

	return t.names[sym]
}

// Bytes returns a copy of the name sym was interned from.
func (t *Table) Bytes(sym Symbol) []byte { return []byte(t.String(sym)) }

// Len returns the number of distinct names interned.
func (t *Table) Len() int { return len(t.names) }
