package homophily

import (
	"testing"

	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/sgraph"
)

func build(t *testing.T, edges [][2]string, colors map[string]string) *sgraph.Graph {
	t.Helper()
	g := sgraph.New()
	for _, e := range edges {
		g.EnsureNode(e[0])
		g.EnsureNode(e[1])
		if err := g.AddEdge(sgraph.Edge{U: e[0], V: e[1]}); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", e[0], e[1], err)
		}
	}
	for id, c := range colors {
		g.EnsureNode(id).Attrs[sgraph.ColorAttr] = c
	}
	return g
}

func TestAgreementRatio(t *testing.T) {
	tests := []struct {
		name   string
		edges  [][2]string
		colors map[string]string
		want   float64
	}{
		{
			name:   "all agree",
			edges:  [][2]string{{"a", "b"}, {"b", "c"}},
			colors: map[string]string{"a": "x", "b": "x", "c": "x"},
			want:   1,
		},
		{
			name:   "none agree",
			edges:  [][2]string{{"a", "b"}},
			colors: map[string]string{"a": "x", "b": "y"},
			want:   0,
		},
		{
			name:   "half agree",
			edges:  [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"a", "d"}},
			colors: map[string]string{"a": "x", "b": "x", "c": "y", "d": "y"},
			want:   0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.edges, tt.colors)
			got, err := AgreementRatio(g, tt.colors)
			if err != nil {
				t.Fatalf("AgreementRatio: %v", err)
			}
			if got != tt.want {
				t.Errorf("AgreementRatio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAgreementRatioNoEdges(t *testing.T) {
	g := sgraph.New()
	g.EnsureNode("a")

	_, err := AgreementRatio(g, map[string]string{"a": "x"})
	if errors.GetCode(err) != errors.ErrCodeEmptyInput {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeEmptyInput)
	}
}

func TestAgreementRatioMissingReference(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}}, nil)

	_, err := AgreementRatio(g, map[string]string{"a": "x"})
	if errors.GetCode(err) != errors.ErrCodeMissingReference {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeMissingReference)
	}
}

func TestAgreementRatioExternalReference(t *testing.T) {
	// The assignment may come from a different graph than the one being
	// scored; the scored graph's own colors are irrelevant.
	g := build(t, [][2]string{{"a", "b"}}, map[string]string{"a": "x", "b": "y"})

	ratio, err := AgreementRatio(g, map[string]string{"a": "z", "b": "z"})
	if err != nil {
		t.Fatalf("AgreementRatio: %v", err)
	}
	if ratio != 1 {
		t.Errorf("AgreementRatio = %v, want 1", ratio)
	}
}

func TestNodeColors(t *testing.T) {
	g := build(t, [][2]string{{"a", "b"}, {"b", "c"}}, map[string]string{"a": "x", "b": "y"})

	colors := NodeColors(g)
	if len(colors) != 2 {
		t.Fatalf("NodeColors returned %d entries, want 2 (uncolored nodes skipped)", len(colors))
	}
	if colors["a"] != "x" || colors["b"] != "y" {
		t.Errorf("NodeColors = %v", colors)
	}
}
