package pipeline

import (
	"reflect"
	"testing"

	"github.com/Frebklin/haystack/component"
)

func loopGraph(t *testing.T, names []string, edges [][2]string) *graph {
	t.Helper()
	g := newGraph()
	for _, name := range names {
		c := component.New(component.Config{
			Inputs:  []component.InputSocket{component.VariadicInput("in", nil)},
			Outputs: []component.OutputSocket{component.Output("out", nil)},
		})
		mustAdd(t, g, name, c)
	}
	for _, e := range edges {
		if err := g.connect(e[0]+".out", e[1]+".in"); err != nil {
			t.Fatalf("connect %s -> %s: %v", e[0], e[1], err)
		}
	}
	return g
}

func TestLoopMembersLinearChain(t *testing.T) {
	g := loopGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})

	if got := g.loopMembers(); !reflect.DeepEqual(got, []bool{false, false, false}) {
		t.Errorf("loopMembers = %v, want all false", got)
	}
}

func TestLoopMembersCycle(t *testing.T) {
	g := loopGraph(t, []string{"entry", "a", "b", "exit"}, [][2]string{
		{"entry", "a"}, {"a", "b"}, {"b", "a"}, {"b", "exit"},
	})

	if got := g.loopMembers(); !reflect.DeepEqual(got, []bool{false, true, true, false}) {
		t.Errorf("loopMembers = %v, want only a and b", got)
	}
}

func TestLoopMembersSelfConnection(t *testing.T) {
	g := loopGraph(t, []string{"solo", "other"}, [][2]string{{"solo", "solo"}})

	if got := g.loopMembers(); !reflect.DeepEqual(got, []bool{true, false}) {
		t.Errorf("loopMembers = %v, want only solo", got)
	}
}

func TestLoopMembersTwoIndependentCycles(t *testing.T) {
	g := loopGraph(t, []string{"hub", "a", "b"}, [][2]string{
		{"hub", "a"}, {"a", "hub"},
		{"hub", "b"}, {"b", "hub"},
	})

	if got := g.loopMembers(); !reflect.DeepEqual(got, []bool{true, true, true}) {
		t.Errorf("loopMembers = %v, want all true", got)
	}
}
