package gml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/sgraph"
)

const sample = `# sample signed graph
graph [
  directed 0
  node [
    id 0
    label "frodo"
    color "blue"
  ]
  node [
    id 1
    label "sam"
    color "blue"
  ]
  node [
    id 2
    label "gollum"
  ]
  edge [
    source 0
    target 1
    color "g"
  ]
  edge [
    source 1
    target 2
    color "r"
    weight 2.5
  ]
]
`

func TestUnmarshal(t *testing.T) {
	g, err := Unmarshal([]byte(sample))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}

	frodo, ok := g.Node("frodo")
	if !ok {
		t.Fatal("node frodo missing (labels should name nodes)")
	}
	if frodo.Attrs["color"] != "blue" {
		t.Errorf("frodo color = %v, want blue", frodo.Attrs["color"])
	}

	// Unlabeled nodes fall back to their numeric id.
	if _, ok := g.Node("2"); !ok {
		t.Error("unlabeled node should be named by its id")
	}

	e, ok := g.Edge("sam", "2")
	if !ok {
		t.Fatal("edge sam--2 missing")
	}
	if e.Attrs["color"] != "r" {
		t.Errorf("edge color = %v, want r", e.Attrs["color"])
	}
	if e.Attrs["weight"] != 2.5 {
		t.Errorf("edge weight = %v, want 2.5", e.Attrs["weight"])
	}
}

func TestRoundTrip(t *testing.T) {
	g, err := Unmarshal([]byte(sample))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	sgraph.DeriveSigns(g)

	out := Marshal(g)
	g2, err := Unmarshal(out)
	if err != nil {
		t.Fatalf("Unmarshal of marshaled output: %v\n%s", err, out)
	}

	if g2.NodeCount() != g.NodeCount() {
		t.Errorf("NodeCount after round trip = %d, want %d", g2.NodeCount(), g.NodeCount())
	}
	if g2.EdgeCount() != g.EdgeCount() {
		t.Errorf("EdgeCount after round trip = %d, want %d", g2.EdgeCount(), g.EdgeCount())
	}

	e, ok := g2.Edge("sam", "2")
	if !ok {
		t.Fatal("edge sam--2 lost in round trip")
	}
	if e.Sign() != sgraph.SignNegative {
		t.Errorf("Sign after round trip = %d, want %d", e.Sign(), sgraph.SignNegative)
	}
	if e.Attrs["weight"] != 2.5 {
		t.Errorf("weight after round trip = %v, want 2.5", e.Attrs["weight"])
	}
}

func TestMarshalDeterministic(t *testing.T) {
	g, err := Unmarshal([]byte(sample))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	a := string(Marshal(g))
	b := string(Marshal(g))
	if a != b {
		t.Error("Marshal output should be byte-identical across calls")
	}
	if !strings.Contains(a, "directed 0") {
		t.Error("output should declare the graph undirected")
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"no graph section", `foo [ bar 1 ]`},
		{"directed graph", `graph [ directed 1 node [ id 0 ] ]`},
		{"node missing id", `graph [ node [ label "x" ] ]`},
		{"edge missing target", `graph [ node [ id 0 ] edge [ source 0 ] ]`},
		{"edge to undeclared node", `graph [ node [ id 0 ] edge [ source 0 target 9 ] ]`},
		{"unterminated string", `graph [ node [ id 0 label "x ] ]`},
		{"missing bracket", `graph [ node [ id 0 ]`},
		{"duplicate node ids", `graph [ node [ id 0 label "a" ] node [ id 1 label "a" ] ]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tt.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.gml"))
	if errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestWriteFileReadFile(t *testing.T) {
	g, err := Unmarshal([]byte(sample))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.gml")
	if err := WriteFile(g, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}

	g2, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if g2.NodeCount() != 3 || g2.EdgeCount() != 2 {
		t.Errorf("reloaded graph has %d nodes, %d edges", g2.NodeCount(), g2.EdgeCount())
	}
}

func TestQuotedNumericStaysString(t *testing.T) {
	input := `graph [ node [ id 0 label "42" zip "01234" ] ]`
	g, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	n, ok := g.Node("42")
	if !ok {
		t.Fatal("node 42 missing")
	}
	if n.Attrs["zip"] != "01234" {
		t.Errorf("zip = %v (%T), want string 01234", n.Attrs["zip"], n.Attrs["zip"])
	}
}
