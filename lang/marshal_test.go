package lang

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToMap(t *testing.T) {
	input := "cflags = -O2\n" +
		"rule cc\n" +
		"  command = gcc $cflags\n" +
		"build a.o: cc a.c || gen\n" +
		"default a.o\n" +
		"pool link\n" +
		"  depth = 2\n"

	file, table := mustParse(t, input)

	want := map[string]any{
		"variables": map[string]any{"cflags": "-O2"},
		"declarations": []any{
			map[string]any{
				"kind":     "rule",
				"name":     "cc",
				"bindings": map[string]any{"command": "gcc -O2"},
			},
			map[string]any{
				"kind":             "build",
				"outputs":          []any{"a.o"},
				"implicit_outputs": []any{},
				"rule":             "cc",
				"inputs":           []any{"a.c"},
				"implicit_inputs":  []any{},
				"order_inputs":     []any{"gen"},
				"bindings":         map[string]any{},
			},
			map[string]any{
				"kind":    "default",
				"targets": []any{"a.o"},
			},
			map[string]any{
				"kind":  "pool",
				"name":  "link",
				"depth": uint64(2),
			},
		},
	}

	got := ToMap(file, table)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToMap() mismatch (-want +got):\n%s", diff)
	}

	if _, err := json.Marshal(got); err != nil {
		t.Errorf("json.Marshal(ToMap()) error = %v", err)
	}
}
