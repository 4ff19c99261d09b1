package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Frebklin/haystack/component"
	"github.com/Frebklin/haystack/pipeline"
	"github.com/Frebklin/haystack/testutil"
)

const loopDefinition = `
name: countdown
max_loops_allowed: 4
components:
  - name: multiplexer
    uses: multiplexer
  - name: remainder
    uses: remainder
    params:
      divisor: 3
  - name: add_one
    uses: add_fixed_value
    params:
      add: 1
  - name: add_two
    uses: add_fixed_value
    params:
      add: 2
connections:
  - from: multiplexer.value
    to: remainder.value
  - from: remainder.remainder_is_1
    to: add_two.value
  - from: remainder.remainder_is_2
    to: add_one.value
  - from: add_two
    to: multiplexer.value
  - from: add_one
    to: multiplexer.value
`

func sampleRegistry(t *testing.T) *component.Registry {
	t.Helper()
	reg := component.NewRegistry()
	if err := testutil.RegisterSamples(reg); err != nil {
		t.Fatalf("RegisterSamples: %v", err)
	}
	return reg
}

func TestDefinitionBuildAndRun(t *testing.T) {
	def, err := pipeline.ParseDefinition([]byte(loopDefinition))
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}
	if def.Name != "countdown" || def.MaxLoopsAllowed != 4 {
		t.Errorf("definition = %+v", def)
	}

	p, err := def.Build(sampleRegistry(t))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Name() != "countdown" || p.MaxLoopsAllowed() != 4 {
		t.Errorf("pipeline = %s/%d, want countdown/4", p.Name(), p.MaxLoopsAllowed())
	}

	got := mustRun(t, p, map[string]any{"multiplexer": map[string]any{"value": 4}})
	checkOutputs(t, got, map[string]map[string]any{"remainder": {"remainder_is_0": 6}})
}

func TestLoadDefinitionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(loopDefinition), 0o600); err != nil {
		t.Fatal(err)
	}

	def, err := pipeline.LoadDefinition(path)
	if err != nil {
		t.Fatalf("LoadDefinition: %v", err)
	}
	if len(def.Components) != 4 || len(def.Connections) != 5 {
		t.Errorf("definition has %d components and %d connections", len(def.Components), len(def.Connections))
	}
}

func TestParseDefinitionRejectsMalformedYAML(t *testing.T) {
	if _, err := pipeline.ParseDefinition([]byte("components: {")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefinitionBuildFailsOnUnknownKind(t *testing.T) {
	def := &pipeline.Definition{
		Components: []pipeline.ComponentDef{{Name: "x", Uses: "warp_drive"}},
	}
	if _, err := def.Build(sampleRegistry(t)); err == nil {
		t.Fatal("expected error for unregistered component kind")
	}
}

func TestDefinitionBuildFailsOnBadConnection(t *testing.T) {
	def := &pipeline.Definition{
		Components: []pipeline.ComponentDef{
			{Name: "a", Uses: "double"},
			{Name: "b", Uses: "double"},
		},
		Connections: []pipeline.ConnectionDef{{From: "a.nope", To: "b"}},
	}
	if _, err := def.Build(sampleRegistry(t)); err == nil {
		t.Fatal("expected error for unknown output socket")
	}
}
