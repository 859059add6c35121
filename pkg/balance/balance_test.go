package balance

import (
	"testing"

	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/sgraph"
)

// signedEdge describes one edge of a test graph.
type signedEdge struct {
	u, v  string
	color string // "" means uncolored (positive)
}

func build(t *testing.T, edges []signedEdge, nodeColors map[string]string) *sgraph.Graph {
	t.Helper()
	g := sgraph.New()
	for _, e := range edges {
		g.EnsureNode(e.u)
		g.EnsureNode(e.v)
		attrs := sgraph.Attrs{}
		if e.color != "" {
			attrs[sgraph.ColorAttr] = e.color
		}
		if err := g.AddEdge(sgraph.Edge{U: e.u, V: e.v, Attrs: attrs}); err != nil {
			t.Fatalf("AddEdge(%s, %s): %v", e.u, e.v, err)
		}
	}
	for id, c := range nodeColors {
		n := g.EnsureNode(id)
		n.Attrs[sgraph.ColorAttr] = c
	}
	sgraph.DeriveSigns(g)
	return g
}

func TestByCycles(t *testing.T) {
	tests := []struct {
		name  string
		edges []signedEdge
		want  bool
	}{
		{
			name: "all positive triangle",
			edges: []signedEdge{
				{"a", "b", "g"}, {"b", "c", "g"}, {"a", "c", "g"},
			},
			want: true,
		},
		{
			name: "one negative edge in triangle",
			edges: []signedEdge{
				{"a", "b", "r"}, {"b", "c", "g"}, {"a", "c", "g"},
			},
			want: false,
		},
		{
			name: "two negative edges in triangle",
			edges: []signedEdge{
				{"a", "b", "r"}, {"b", "c", "r"}, {"a", "c", "g"},
			},
			want: true,
		},
		{
			name: "three negative edges in triangle",
			edges: []signedEdge{
				{"a", "b", "r"}, {"b", "c", "r"}, {"a", "c", "r"},
			},
			want: false,
		},
		{
			// Even-length cycles are not evaluated, whatever their signs.
			name: "negative four-cycle",
			edges: []signedEdge{
				{"a", "b", "r"}, {"b", "c", "g"}, {"c", "d", "g"}, {"a", "d", "g"},
			},
			want: true,
		},
		{
			name: "acyclic with negative edges",
			edges: []signedEdge{
				{"a", "b", "r"}, {"b", "c", "r"},
			},
			want: true,
		},
		{
			name:  "empty graph",
			edges: nil,
			want:  true,
		},
		{
			// Balanced triangle plus an unbalanced pentagon elsewhere.
			name: "violation in larger odd cycle",
			edges: []signedEdge{
				{"a", "b", "g"}, {"b", "c", "g"}, {"a", "c", "g"},
				{"p", "q", "r"}, {"q", "s", "g"}, {"s", "t", "g"}, {"t", "u", "g"}, {"p", "u", "g"},
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.edges, nil)
			if got := ByCycles(g); got != tt.want {
				t.Errorf("ByCycles = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestByAttribute(t *testing.T) {
	tests := []struct {
		name     string
		edges    []signedEdge
		colors   map[string]string
		want     bool
		wantCode errors.Code
	}{
		{
			name:   "consistent positive edge",
			edges:  []signedEdge{{"a", "b", "g"}},
			colors: map[string]string{"a": "x", "b": "x"},
			want:   true,
		},
		{
			name:   "consistent negative edge",
			edges:  []signedEdge{{"a", "b", "r"}},
			colors: map[string]string{"a": "x", "b": "y"},
			want:   true,
		},
		{
			name:   "positive edge across different values",
			edges:  []signedEdge{{"a", "b", "g"}},
			colors: map[string]string{"a": "x", "b": "y"},
			want:   false,
		},
		{
			name:   "negative edge within same value",
			edges:  []signedEdge{{"a", "b", "r"}},
			colors: map[string]string{"a": "x", "b": "x"},
			want:   false,
		},
		{
			name:     "missing attribute",
			edges:    []signedEdge{{"a", "b", "g"}},
			colors:   map[string]string{"a": "x"},
			want:     false,
			wantCode: errors.ErrCodeMissingAttribute,
		},
		{
			name: "mixed consistent graph",
			edges: []signedEdge{
				{"a", "b", "g"}, {"b", "c", "r"}, {"a", "c", "r"},
			},
			colors: map[string]string{"a": "x", "b": "x", "c": "y"},
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(t, tt.edges, tt.colors)
			got, err := ByAttribute(g, sgraph.ColorAttr)
			if got != tt.want {
				t.Errorf("ByAttribute = %v, want %v", got, tt.want)
			}
			if tt.wantCode != "" {
				if errors.GetCode(err) != tt.wantCode {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestByAttributeEmptyName(t *testing.T) {
	g := build(t, []signedEdge{{"a", "b", "g"}}, nil)

	_, err := ByAttribute(g, "")
	if errors.GetCode(err) != errors.ErrCodeInvalidInput {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}
