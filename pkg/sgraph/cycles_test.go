package sgraph

import (
	"reflect"
	"testing"
)

// collectCycles materializes all cycles, copying each reported slice.
func collectCycles(g *Graph) [][]string {
	var out [][]string
	g.Cycles(func(cycle []string) bool {
		out = append(out, append([]string(nil), cycle...))
		return true
	})
	return out
}

func TestCyclesTriangle(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}})

	got := collectCycles(g)
	want := [][]string{{"a", "b", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cycles = %v, want %v", got, want)
	}
}

func TestCyclesSquare(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"a", "d"}})

	got := collectCycles(g)
	want := [][]string{{"a", "b", "c", "d"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cycles = %v, want %v", got, want)
	}
}

func TestCyclesK4(t *testing.T) {
	// K4 has 4 triangles and 3 four-cycles.
	g := build(t, [][2]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"},
		{"b", "c"}, {"b", "d"}, {"c", "d"},
	})

	if got := g.CycleCount(); got != 7 {
		t.Errorf("CycleCount = %d, want 7", got)
	}

	// Each cycle must be canonical: smallest node first, second node
	// smaller than the last.
	for _, cycle := range collectCycles(g) {
		for _, v := range cycle[1:] {
			if v <= cycle[0] {
				t.Errorf("cycle %v does not start at its smallest node", cycle)
			}
		}
		if cycle[1] >= cycle[len(cycle)-1] {
			t.Errorf("cycle %v reported in non-canonical direction", cycle)
		}
	}
}

func TestCyclesAcyclic(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}, {"b", "c"}, {"b", "d"}})
	if got := g.CycleCount(); got != 0 {
		t.Errorf("CycleCount = %d, want 0", got)
	}
}

func TestCyclesEarlyStop(t *testing.T) {
	g := build(t, [][2]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"},
		{"b", "c"}, {"b", "d"}, {"c", "d"},
	})

	calls := 0
	g.Cycles(func([]string) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("yield called %d times after returning false, want 1", calls)
	}
}
