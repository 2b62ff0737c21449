package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestDump_JSON(t *testing.T) {
	env, out := newEnv(t, nil, "x = 1\npool link\n  depth = 4\n")

	d := Dump{Format: "json", Indent: 2, Source: "-"}
	if err := d.Run(context.Background(), env); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := `{
  "declarations": [
    {
      "depth": 4,
      "kind": "pool",
      "name": "link"
    }
  ],
  "variables": {
    "x": "1"
  }
}
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestDump_YAML(t *testing.T) {
	env, out := newEnv(t, map[string]string{"build.ninja": sample}, "")

	d := Dump{Format: "yaml", Indent: 2, Source: "build.ninja"}
	if err := d.Run(context.Background(), env); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var got struct {
		Variables    map[string]string `yaml:"variables"`
		Declarations []struct {
			Kind     string            `yaml:"kind"`
			Name     string            `yaml:"name"`
			Rule     string            `yaml:"rule"`
			Outputs  []string          `yaml:"outputs"`
			Targets  []string          `yaml:"targets"`
			Bindings map[string]string `yaml:"bindings"`
		} `yaml:"declarations"`
	}

	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, out.String())
	}

	if diff := cmp.Diff(map[string]string{"cflags": "-O2"}, got.Variables); diff != "" {
		t.Errorf("variables mismatch (-want +got):\n%s", diff)
	}

	if len(got.Declarations) != 3 {
		t.Fatalf("got %d declarations, want 3", len(got.Declarations))
	}

	rule, build, def := got.Declarations[0], got.Declarations[1], got.Declarations[2]

	if rule.Kind != "rule" || rule.Name != "cc" || rule.Bindings["cflags"] != "-g" {
		t.Errorf("rule = %+v", rule)
	}

	if build.Kind != "build" || build.Rule != "cc" || !cmp.Equal(build.Outputs, []string{"out/a.o"}) {
		t.Errorf("build = %+v", build)
	}

	if def.Kind != "default" || !cmp.Equal(def.Targets, []string{"out/a.o"}) {
		t.Errorf("default = %+v", def)
	}
}

func TestDump_CBOR(t *testing.T) {
	run := func() []byte {
		env, out := newEnv(t, nil, sample)

		d := Dump{Format: "cbor", Source: "-"}
		if err := d.Run(context.Background(), env); err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		return out.Bytes()
	}

	first, second := run(), run()
	if !bytes.Equal(first, second) {
		t.Error("canonical CBOR encodings differ between runs")
	}

	var got struct {
		Variables    map[string]string `cbor:"variables"`
		Declarations []map[string]any  `cbor:"declarations"`
	}

	if err := cbor.Unmarshal(first, &got); err != nil {
		t.Fatalf("cbor.Unmarshal() error = %v", err)
	}

	if got.Variables["cflags"] != "-O2" {
		t.Errorf("variables = %v", got.Variables)
	}

	if len(got.Declarations) != 3 || got.Declarations[0]["kind"] != "rule" {
		t.Errorf("declarations = %v", got.Declarations)
	}
}
