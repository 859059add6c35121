package gml

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/kachup1/signet/pkg/sgraph"
)

// encode writes the deterministic GML form of g: nodes in sorted ID order
// with ids assigned by position, edges in canonical key order, attributes
// sorted by name.
func encode(g *sgraph.Graph, buf *bytes.Buffer) {
	buf.WriteString("graph [\n")
	buf.WriteString("  directed 0\n")

	ids := g.NodeIDs()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
		n, _ := g.Node(id)
		buf.WriteString("  node [\n")
		fmt.Fprintf(buf, "    id %d\n", i)
		fmt.Fprintf(buf, "    label %q\n", id)
		writeAttrs(buf, n.Attrs)
		buf.WriteString("  ]\n")
	}

	for _, key := range g.EdgeKeys() {
		e, _ := g.Edge(key.U, key.V)
		buf.WriteString("  edge [\n")
		fmt.Fprintf(buf, "    source %d\n", index[key.U])
		fmt.Fprintf(buf, "    target %d\n", index[key.V])
		writeAttrs(buf, e.Attrs)
		buf.WriteString("  ]\n")
	}

	buf.WriteString("]\n")
}

func writeAttrs(buf *bytes.Buffer, attrs sgraph.Attrs) {
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		fmt.Fprintf(buf, "    %s %s\n", k, formatValue(attrs[k]))
	}
}

// formatValue renders a scalar attribute value in GML syntax. Unknown
// types fall back to their quoted string form.
func formatValue(v any) string {
	switch t := v.(type) {
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return strconv.Quote(t)
	default:
		return strconv.Quote(fmt.Sprint(t))
	}
}
