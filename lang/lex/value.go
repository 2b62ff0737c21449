package lex

import (
	"strings"

	"github.com/ardnew/buildfile/lang/blob"
	"github.com/ardnew/buildfile/lang/intern"
)

// Identifier is an interned variable, rule or pool name.
type Identifier struct {
	sym intern.Symbol
}

// NewIdentifier interns name in table and returns its Identifier.
func NewIdentifier(table *intern.Table, name []byte) Identifier {
	return Identifier{sym: table.Insert(name)}
}

// NewIdentifierString is like [NewIdentifier] for a string.
func NewIdentifierString(table *intern.Table, name string) Identifier {
	return Identifier{sym: table.InsertString(name)}
}

// Symbol returns the interned symbol.
func (id Identifier) Symbol() intern.Symbol { return id.sym }

// Name returns the identifier's name as recorded in table.
func (id Identifier) Name(table *intern.Table) string { return table.String(id.sym) }

// PartKind indicates which field of a [Part] is set.
type PartKind int

const (
	// PartText is literal text.
	PartText PartKind = iota

	// PartVariable is a variable reference.
	PartVariable
)

// Part is one piece of an unexpanded [Value].
type Part struct {
	Kind PartKind
	// Exactly one of these is meaningful, based on Kind
	Text     blob.Blob
	Variable Identifier
}

// TextPart returns a literal text part.
func TextPart(text blob.Blob) Part { return Part{Kind: PartText, Text: text} }

// VariablePart returns a variable reference part.
func VariablePart(id Identifier) Part { return Part{Kind: PartVariable, Variable: id} }

// Value is an unexpanded string: literal text interleaved with variable
// references.
type Value struct {
	Parts []Part
}

// Format renders v back into build-file syntax, escaping literal '$', ' '
// and ':' and writing variables in braced form.
func (v Value) Format(table *intern.Table) string {
	var sb strings.Builder

	for _, part := range v.Parts {
		switch part.Kind {
		case PartText:
			for _, c := range []byte(part.Text.String()) {
				switch c {
				case '$', ' ', ':':
					sb.WriteByte('$')
				}

				sb.WriteByte(c)
			}

		case PartVariable:
			sb.WriteString("${")
			sb.WriteString(part.Variable.Name(table))
			sb.WriteByte('}')
		}
	}

	return sb.String()
}

// parts accumulates the parts of a value, coalescing adjacent literal bytes
// into a single text part.
type parts struct {
	list []Part
	text blob.Builder
}

func (p *parts) literal(c byte) { p.text.Push(c) }

func (p *parts) push(part Part) {
	p.flush()
	p.list = append(p.list, part)
}

func (p *parts) flush() {
	if p.text.Len() > 0 {
		p.list = append(p.list, TextPart(p.text.Blob()))
	}
}

func (p *parts) empty() bool { return len(p.list) == 0 && p.text.Len() == 0 }

func (p *parts) value() Value {
	p.flush()

	return Value{Parts: p.list}
}
