package render

import (
	"math"
	"testing"

	"github.com/kachup1/signet/pkg/sgraph"
)

func build(t *testing.T, edges [][2]string) *sgraph.Graph {
	t.Helper()
	g := sgraph.New()
	for _, e := range edges {
		g.EnsureNode(e[0])
		g.EnsureNode(e[1])
		if err := g.AddEdge(sgraph.Edge{U: e[0], V: e[1]}); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", e[0], e[1], err)
		}
	}
	return g
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClusteringCoefficients(t *testing.T) {
	// Triangle a-b-c plus a pendant d on a. a sees neighbors {b, c, d}
	// with one link among three possible pairs; b and c sit in a closed
	// triangle; d has a single neighbor.
	g := build(t, [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}, {"a", "d"}})

	got := ClusteringCoefficients(g)
	want := map[string]float64{
		"a": 1.0 / 3.0,
		"b": 1,
		"c": 1,
		"d": 0,
	}
	for id, w := range want {
		if !approxEqual(got[id], w) {
			t.Errorf("C(%s) = %v, want %v", id, got[id], w)
		}
	}
}

func TestClusteringCoefficientsNoTriangles(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"a", "d"}})

	for id, c := range ClusteringCoefficients(g) {
		if c != 0 {
			t.Errorf("C(%s) = %v, want 0 in a triangle-free graph", id, c)
		}
	}
}

func TestNeighborhoodOverlap(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}, {"a", "d"}})

	got := NeighborhoodOverlap(g)

	// Edge (b, c): both endpoints share neighbor a and have no others.
	if !approxEqual(got[sgraph.KeyOf("b", "c")], 1) {
		t.Errorf("overlap(b, c) = %v, want 1", got[sgraph.KeyOf("b", "c")])
	}
	// Edge (a, d): d has no neighbors besides a, so nothing is shared.
	if !approxEqual(got[sgraph.KeyOf("a", "d")], 0) {
		t.Errorf("overlap(a, d) = %v, want 0", got[sgraph.KeyOf("a", "d")])
	}
	// Edge (a, b): common {c}, union {c, d}.
	if !approxEqual(got[sgraph.KeyOf("a", "b")], 0.5) {
		t.Errorf("overlap(a, b) = %v, want 0.5", got[sgraph.KeyOf("a", "b")])
	}
}

func TestNeighborhoodOverlapIsolatedEdge(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}})

	got := NeighborhoodOverlap(g)
	if !approxEqual(got[sgraph.KeyOf("a", "b")], 0) {
		t.Errorf("overlap of isolated edge = %v, want 0", got[sgraph.KeyOf("a", "b")])
	}
}
