// Package blob provides an immutable, content-addressed byte sequence and an
// append-only builder that produces one.
package blob

import "github.com/zeebo/xxh3"

// Blob is an immutable owned byte sequence.
//
// Two Blobs are equal (==) iff their contents are equal, so a Blob may be
// used directly as a map key.
type Blob struct {
	s string
}

// New returns a Blob holding a copy of b.
func New(b []byte) Blob { return Blob{s: string(b)} }

// FromString returns a Blob holding the bytes of s.
func FromString(s string) Blob { return Blob{s: s} }

// Empty returns the zero-length Blob.
func Empty() Blob { return Blob{} }

// Bytes returns a copy of the contents.
func (b Blob) Bytes() []byte { return []byte(b.s) }

// String returns the contents as a string.
func (b Blob) String() string { return b.s }

// Len returns the number of bytes in b.
func (b Blob) Len() int { return len(b.s) }

// IsEmpty reports whether b has no bytes.
func (b Blob) IsEmpty() bool { return len(b.s) == 0 }

// Equal reports whether b and o hold the same bytes.
func (b Blob) Equal(o Blob) bool { return b.s == o.s }

// Hash returns the 64-bit xxh3 hash of the contents.
func (b Blob) Hash() uint64 { return xxh3.HashString(b.s) }

// MarshalText implements encoding.TextMarshaler.
func (b Blob) MarshalText() ([]byte, error) { return []byte(b.s), nil }

// Builder accumulates bytes and freezes them into a Blob.
// The zero value is an empty Builder ready to use.
type Builder struct {
	buf []byte
}

// Push appends a single byte.
func (b *Builder) Push(c byte) { b.buf = append(b.buf, c) }

// Extend appends a copy of p.
func (b *Builder) Extend(p []byte) { b.buf = append(b.buf, p...) }

// Append appends the contents of v.
func (b *Builder) Append(v Blob) { b.buf = append(b.buf, v.s...) }

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int { return len(b.buf) }

// Blob freezes the accumulated bytes into a Blob and resets the Builder.
func (b *Builder) Blob() Blob {
	v := Blob{s: string(b.buf)}
	b.buf = nil

	return v
}
