// Package arena provides a generic insert-only store addressed by typed
// handles.
//
// Handles are plain values: they can be copied, compared and used as map
// keys. A handle is only meaningful to the [Arena] that produced it; using
// it with any other arena, or with an index the arena never returned, is a
// programming error and panics.
package arena

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/ccoveille/go-safecast"
)

// tags hands out a distinct identity to every Arena.
var tags atomic.Uint32

// ID is a handle to a value of type T stored in an [Arena].
type ID[T any] struct {
	tag   uint32
	index uint32
}

// Index returns the insertion ordinal of the handle.
func (id ID[T]) Index() int { return int(id.index) }

// IsZero reports whether id is the zero handle, which no arena returns.
func (id ID[T]) IsZero() bool { return id.tag == 0 }

// String implements fmt.Stringer.
func (id ID[T]) String() string { return fmt.Sprintf("#%d", id.index) }

// Arena is an append-only slice of T with stable handles.
type Arena[T any] struct {
	tag   uint32
	items []T
}

// New returns an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{tag: tags.Add(1)}
}

// Insert appends v and returns its handle.
func (a *Arena[T]) Insert(v T) ID[T] {
	index, err := safecast.ToUint32(len(a.items))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}

	a.items = append(a.items, v)

	return ID[T]{tag: a.tag, index: index}
}

// Get returns a copy of the value referenced by id.
func (a *Arena[T]) Get(id ID[T]) T { return *a.Ref(id) }

// Ref returns a pointer to the value referenced by id. The pointer is valid
// until the next call to Insert.
func (a *Arena[T]) Ref(id ID[T]) *T {
	if id.tag != a.tag {
		panic(fmt.Sprintf("arena: handle %v does not belong to this arena", id))
	}

	if int(id.index) >= len(a.items) {
		panic(fmt.Sprintf("arena: handle %v out of range [0,%d)", id, len(a.items)))
	}

	return &a.items[id.index]
}

// Len returns the number of values inserted.
func (a *Arena[T]) Len() int { return len(a.items) }

// All returns an iterator over all handles and values in insertion order.
func (a *Arena[T]) All() iter.Seq2[ID[T], T] {
	return func(yield func(ID[T], T) bool) {
		for i, v := range a.items {
			//nolint:gosec // bounded by Insert
			if !yield(ID[T]{tag: a.tag, index: uint32(i)}, v) {
				return
			}
		}
	}
}
