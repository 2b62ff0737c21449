package ast

import (
	"iter"
	"strconv"

	"github.com/ardnew/buildfile/lang/arena"
	"github.com/ardnew/buildfile/lang/lex"
)

// Kind indicates which field of a [Declaration] is set.
type Kind int

const (
	// KindRule is a rule declaration.
	KindRule Kind = iota

	// KindBuild is a build edge.
	KindBuild

	// KindDefault is a list of default targets.
	KindDefault

	// KindPool is a resource pool.
	KindPool
)

// String returns the keyword introducing the declaration kind.
func (k Kind) String() string {
	switch k {
	case KindRule:
		return "rule"

	case KindBuild:
		return "build"

	case KindDefault:
		return "default"

	case KindPool:
		return "pool"

	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Declaration is one top-level statement of a build file.
type Declaration struct {
	Kind Kind
	// Exactly one of these is set, based on Kind
	Rule    *Rule
	Build   *Build
	Default *Default
	Pool    *Pool
}

// Rule names a command template. Its bindings live in Scope.
type Rule struct {
	Name  lex.Identifier
	Scope arena.ID[Scope]
}

// Build is an edge producing Outputs from Inputs with Rule.
type Build struct {
	Outputs         []Target
	ImplicitOutputs []Target
	Rule            lex.Identifier
	Inputs          []Target
	ImplicitInputs  []Target
	OrderInputs     []Target
	Scope           arena.ID[Scope]
}

// Default lists the targets built when none are requested.
type Default struct {
	Targets []Target
}

// Pool limits the number of concurrent jobs assigned to it.
type Pool struct {
	Name  lex.Identifier
	Depth uint64
}

// Declarations is an ordered, append-only list of declarations.
type Declarations struct {
	list []Declaration
}

// AddRule appends a rule declaration.
func (d *Declarations) AddRule(r Rule) {
	d.list = append(d.list, Declaration{Kind: KindRule, Rule: &r})
}

// AddBuild appends a build declaration.
func (d *Declarations) AddBuild(b Build) {
	d.list = append(d.list, Declaration{Kind: KindBuild, Build: &b})
}

// AddDefault appends a default declaration.
func (d *Declarations) AddDefault(def Default) {
	d.list = append(d.list, Declaration{Kind: KindDefault, Default: &def})
}

// AddPool appends a pool declaration.
func (d *Declarations) AddPool(p Pool) {
	d.list = append(d.list, Declaration{Kind: KindPool, Pool: &p})
}

// Len returns the number of declarations.
func (d *Declarations) Len() int { return len(d.list) }

// At returns the i'th declaration in source order.
func (d *Declarations) At(i int) Declaration { return d.list[i] }

// All returns an iterator over the declarations in source order.
func (d *Declarations) All() iter.Seq2[int, Declaration] {
	return func(yield func(int, Declaration) bool) {
		for i, decl := range d.list {
			if !yield(i, decl) {
				return
			}
		}
	}
}

// Count returns the number of declarations of each kind.
func (d *Declarations) Count() map[Kind]int {
	n := make(map[Kind]int, 4)
	for _, decl := range d.list {
		n[decl.Kind]++
	}

	return n
}
