package render

import (
	"strings"
	"testing"

	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/sgraph"
)

func buildSigned(t *testing.T) *sgraph.Graph {
	t.Helper()
	g := sgraph.New()
	for id, color := range map[string]string{"a": "x", "b": "x", "c": "y"} {
		if err := g.AddNode(sgraph.Node{ID: id, Attrs: sgraph.Attrs{sgraph.ColorAttr: color}}); err != nil {
			t.Fatal(err)
		}
	}
	edges := []struct {
		u, v, color string
	}{
		{"a", "b", "g"},
		{"b", "c", "r"},
		{"a", "c", "r"},
	}
	for _, e := range edges {
		err := g.AddEdge(sgraph.Edge{U: e.u, V: e.v, Attrs: sgraph.Attrs{sgraph.ColorAttr: e.color}})
		if err != nil {
			t.Fatal(err)
		}
	}
	sgraph.DeriveSigns(g)
	return g
}

func TestValidateStyle(t *testing.T) {
	for _, style := range []string{StyleAttribute, StyleClustering, StyleOverlap} {
		if err := ValidateStyle(style); err != nil {
			t.Errorf("ValidateStyle(%q) = %v", style, err)
		}
	}

	err := ValidateStyle("Z")
	if errors.GetCode(err) != errors.ErrCodeInvalidStyle {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStyle)
	}
}

func TestToDOTAttributeStyle(t *testing.T) {
	g := buildSigned(t)

	dot, err := ToDOT(g, Options{Style: StyleAttribute})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("DOT should declare an undirected graph")
	}
	for _, want := range []string{`"a" --`, `-- "b"`, `style=dashed`, `layout=neato`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	// Same attribute value, same fill.
	fillA := lineFor(dot, `  "a" [`)
	fillB := lineFor(dot, `  "b" [`)
	fillC := lineFor(dot, `  "c" [`)
	if fill(fillA) != fill(fillB) {
		t.Errorf("a and b share a value but differ in fill: %q vs %q", fillA, fillB)
	}
	if fill(fillA) == fill(fillC) {
		t.Errorf("a and c have different values but share fill: %q", fillA)
	}
}

func TestToDOTNegativeEdges(t *testing.T) {
	g := buildSigned(t)

	dot, err := ToDOT(g, Options{Style: StyleAttribute})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}

	if got := strings.Count(dot, "style=dashed"); got != 2 {
		t.Errorf("dashed edge count = %d, want 2 (the negative edges)", got)
	}
}

func TestToDOTOverlapStyle(t *testing.T) {
	g := buildSigned(t)

	dot, err := ToDOT(g, Options{Style: StyleOverlap})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}
	if !strings.Contains(dot, "penwidth=") {
		t.Error("overlap style should scale edge width")
	}
	if !strings.Contains(dot, "label=") {
		t.Error("overlap style should label edges with the overlap value")
	}
}

func TestToDOTClusteringStyle(t *testing.T) {
	g := buildSigned(t)

	dot, err := ToDOT(g, Options{Style: StyleClustering})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}
	// The triangle is fully clustered, so every node gets the hottest fill.
	if got := strings.Count(dot, `fillcolor="#ff0000"`); got != 3 {
		t.Errorf("full-heat fill count = %d, want 3:\n%s", got, dot)
	}
}

func TestToDOTDefaultStyle(t *testing.T) {
	g := buildSigned(t)

	explicit, err := ToDOT(g, Options{Style: StyleAttribute})
	if err != nil {
		t.Fatal(err)
	}
	implicit, err := ToDOT(g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if explicit != implicit {
		t.Error("empty style should default to the attribute style")
	}
}

func TestToDOTInvalidStyle(t *testing.T) {
	g := buildSigned(t)

	_, err := ToDOT(g, Options{Style: "Z"})
	if errors.GetCode(err) != errors.ErrCodeInvalidStyle {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStyle)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	g := buildSigned(t)

	a, err := ToDOT(g, Options{Style: StyleAttribute})
	if err != nil {
		t.Fatal(err)
	}
	b, err := ToDOT(g, Options{Style: StyleAttribute})
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("ToDOT output should be byte-identical across calls")
	}
}

func TestHeat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "#ffffff"},
		{1, "#ff0000"},
		{2, "#ff0000"},  // clamped
		{-1, "#ffffff"}, // clamped
	}
	for _, tt := range tests {
		if got := heat(tt.v); got != tt.want {
			t.Errorf("heat(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

// lineFor returns the first line of s starting with prefix.
func lineFor(s, prefix string) string {
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	return ""
}

// fill extracts the fillcolor attribute from a DOT node line.
func fill(line string) string {
	i := strings.Index(line, "fillcolor=")
	if i < 0 {
		return ""
	}
	return line[i:]
}
