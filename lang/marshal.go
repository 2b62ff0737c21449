package lang

import (
	"github.com/ardnew/buildfile/lang/arena"
	"github.com/ardnew/buildfile/lang/ast"
	"github.com/ardnew/buildfile/lang/intern"
)

// ToMap converts a parsed file to native Go values suitable for JSON, YAML
// or CBOR encoding. Names are resolved through table; binding values are
// strings; targets are rendered unexpanded in build-file syntax.
//
// The result has two keys: "variables" maps each file-level variable to
// its value, and "declarations" lists the declarations in source order.
func ToMap(file *ast.File, table *intern.Table) map[string]any {
	scopes := file.Scopes()
	decls := make([]any, 0, file.Declarations().Len())

	for _, decl := range file.Declarations().All() {
		m := map[string]any{"kind": decl.Kind.String()}

		switch decl.Kind {
		case ast.KindRule:
			m["name"] = decl.Rule.Name.Name(table)
			m["bindings"] = bindingsMap(scopes, decl.Rule.Scope, table)

		case ast.KindBuild:
			b := decl.Build
			m["outputs"] = targetList(b.Outputs, table)
			m["implicit_outputs"] = targetList(b.ImplicitOutputs, table)
			m["rule"] = b.Rule.Name(table)
			m["inputs"] = targetList(b.Inputs, table)
			m["implicit_inputs"] = targetList(b.ImplicitInputs, table)
			m["order_inputs"] = targetList(b.OrderInputs, table)
			m["bindings"] = bindingsMap(scopes, b.Scope, table)

		case ast.KindDefault:
			m["targets"] = targetList(decl.Default.Targets, table)

		case ast.KindPool:
			m["name"] = decl.Pool.Name.Name(table)
			m["depth"] = decl.Pool.Depth
		}

		decls = append(decls, m)
	}

	return map[string]any{
		"variables":    bindingsMap(scopes, scopes.Top(), table),
		"declarations": decls,
	}
}

func bindingsMap(
	scopes *ast.Scopes,
	id arena.ID[ast.Scope],
	table *intern.Table,
) map[string]any {
	m := make(map[string]any)
	for b := range scopes.Scope(id).Bindings() {
		m[b.Name.Name(table)] = b.Value.String()
	}

	return m
}

func targetList(targets []ast.Target, table *intern.Table) []any {
	list := make([]any, len(targets))
	for i, t := range targets {
		list[i] = t.Format(table)
	}

	return list
}
