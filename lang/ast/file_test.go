package ast

import (
	"testing"

	"github.com/ardnew/buildfile/lang/intern"
	"github.com/ardnew/buildfile/lang/lex"
)

func target(t *testing.T, table *intern.Table, s string) Target {
	t.Helper()

	v, ok, err := lex.New([]byte(s + "\n")).LexTarget(table)
	if err != nil || !ok {
		t.Fatalf("LexTarget(%q) = _, %v, %v", s, ok, err)
	}

	return Target{Value: v}
}

func TestDeclarations(t *testing.T) {
	table := intern.New()
	f := NewFile()

	cc := lex.NewIdentifierString(table, "cc")

	first, err := f.Scopes().NewScope([]Binding{bind(table, "command", "gcc")})
	if err != nil {
		t.Fatal(err)
	}

	second, err := f.Scopes().NewScope([]Binding{bind(table, "command", "clang")})
	if err != nil {
		t.Fatal(err)
	}

	edge, err := f.Scopes().NewScope(nil)
	if err != nil {
		t.Fatal(err)
	}

	decls := f.Declarations()
	decls.AddRule(Rule{Name: cc, Scope: first})
	decls.AddBuild(Build{
		Outputs:         []Target{target(t, table, "a.o")},
		ImplicitOutputs: []Target{target(t, table, "a.d")},
		Rule:            cc,
		Scope:           edge,
	})
	decls.AddDefault(Default{Targets: []Target{target(t, table, "a.o")}})
	decls.AddPool(Pool{Name: lex.NewIdentifierString(table, "link"), Depth: 4})
	decls.AddRule(Rule{Name: cc, Scope: second})

	if decls.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", decls.Len())
	}

	wantKinds := []Kind{KindRule, KindBuild, KindDefault, KindPool, KindRule}
	for i, decl := range decls.All() {
		if decl.Kind != wantKinds[i] {
			t.Errorf("At(%d).Kind = %v, want %v", i, decl.Kind, wantKinds[i])
		}
	}

	if n := decls.Count(); n[KindRule] != 2 || n[KindBuild] != 1 {
		t.Errorf("Count() = %v", n)
	}

	r, ok := f.Rule(cc)
	if !ok || r.Scope != second {
		t.Errorf("Rule(cc) = %v, %v, want last declared", r, ok)
	}

	for _, out := range []string{"a.o", "a.d"} {
		id, ok := f.BuildScope(func(tg Target) bool { return tg.Format(table) == out })
		if !ok || id != edge {
			t.Errorf("BuildScope(%q) = %v, %v, want %v", out, id, ok, edge)
		}
	}

	if _, ok := f.BuildScope(func(Target) bool { return false }); ok {
		t.Error("BuildScope() matched nothing but reported ok")
	}
}
