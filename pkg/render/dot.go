// Package render turns analyzed graphs into visualizations.
//
// [ToDOT] produces Graphviz DOT for one of three plot styles: node colors
// by attribute, node shading by clustering coefficient, or edge emphasis
// by neighborhood overlap. [RenderSVG] and [RenderPNG] rasterize the DOT
// through goccy/go-graphviz. Negative edges are always drawn dashed and
// red so the sign structure stays visible in every style.
package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/sgraph"
)

// Plot styles, matching the CLI's --plot selector.
const (
	// StyleAttribute colors nodes by a categorical attribute (default "color").
	StyleAttribute = "P"
	// StyleClustering shades nodes by local clustering coefficient.
	StyleClustering = "C"
	// StyleOverlap scales edge width by neighborhood overlap.
	StyleOverlap = "N"
)

// ValidStyles is the set of supported plot styles.
var ValidStyles = map[string]bool{
	StyleAttribute:  true,
	StyleClustering: true,
	StyleOverlap:    true,
}

// ValidateStyle checks that a plot style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid plot style %q (must be one of: C, N, P)", style)
	}
	return nil
}

// Options configures DOT generation.
type Options struct {
	// Style selects the plot style (StyleAttribute, StyleClustering,
	// StyleOverlap). Empty means StyleAttribute.
	Style string

	// Attribute is the node attribute used by StyleAttribute.
	// Empty means "color".
	Attribute string
}

// categorical palette for attribute plots, cycled when values outnumber it.
var palette = []string{
	"#4e79a7", "#f28e2b", "#59a14f", "#e15759", "#b07aa1",
	"#76b7b2", "#edc948", "#ff9da7", "#9c755f", "#bab0ac",
}

// ToDOT converts a graph to Graphviz DOT according to the plot style.
// Nodes and edges are emitted in sorted order so the output is
// deterministic. Returns ErrCodeInvalidStyle for unknown styles.
func ToDOT(g *sgraph.Graph, opts Options) (string, error) {
	style := opts.Style
	if style == "" {
		style = StyleAttribute
	}
	if err := ValidateStyle(style); err != nil {
		return "", err
	}
	attribute := opts.Attribute
	if attribute == "" {
		attribute = sgraph.ColorAttr
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	fills := nodeFills(g, style, attribute)
	for _, id := range g.NodeIDs() {
		attrs := []string{fmt.Sprintf("label=%q", id)}
		if fill, ok := fills[id]; ok {
			attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	overlap := map[sgraph.EdgeKey]float64{}
	if style == StyleOverlap {
		overlap = NeighborhoodOverlap(g)
	}
	for _, key := range g.EdgeKeys() {
		e, _ := g.Edge(key.U, key.V)
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", key.U, key.V, strings.Join(edgeAttrs(e, style, overlap[key]), ", "))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// nodeFills computes the fill color per node for the given style.
// StyleOverlap leaves nodes at the default fill.
func nodeFills(g *sgraph.Graph, style, attribute string) map[string]string {
	fills := make(map[string]string, g.NodeCount())
	switch style {
	case StyleAttribute:
		// Deterministic palette assignment: distinct values in sorted order.
		values := map[string]bool{}
		for _, id := range g.NodeIDs() {
			n, _ := g.Node(id)
			if v, ok := n.Attrs[attribute]; ok {
				values[fmt.Sprint(v)] = true
			}
		}
		colors := make(map[string]string, len(values))
		for i, v := range slices.Sorted(maps.Keys(values)) {
			colors[v] = palette[i%len(palette)]
		}
		for _, id := range g.NodeIDs() {
			n, _ := g.Node(id)
			if v, ok := n.Attrs[attribute]; ok {
				fills[id] = colors[fmt.Sprint(v)]
			}
		}
	case StyleClustering:
		for id, c := range ClusteringCoefficients(g) {
			fills[id] = heat(c)
		}
	}
	return fills
}

func edgeAttrs(e *sgraph.Edge, style string, overlap float64) []string {
	var attrs []string
	if e.Sign() == sgraph.SignNegative {
		attrs = append(attrs, "style=dashed", "color=\"#e15759\"")
	} else {
		attrs = append(attrs, "color=\"#555555\"")
	}
	if style == StyleOverlap {
		attrs = append(attrs, fmt.Sprintf("penwidth=%.2f", 1+4*overlap))
		attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprintf("%.2f", overlap)), "fontsize=9")
	}
	return attrs
}

// heat maps a [0,1] value onto a white-to-red gradient.
func heat(v float64) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c := int(255 * (1 - v))
	return fmt.Sprintf("#ff%02x%02x", c, c)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
