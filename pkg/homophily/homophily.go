// Package homophily measures whether same-colored nodes connect more
// often than differently colored ones.
//
// Only the raw agreement proportion is computed. A hypothesis test over
// the proportion is an extension point, not something this package claims
// to do.
package homophily

import (
	"github.com/kachup1/signet/pkg/errors"
	"github.com/kachup1/signet/pkg/sgraph"
)

// AgreementRatio returns the fraction of edges whose endpoints share a
// color label under the supplied assignment. The assignment may come from
// a reference graph distinct from g; only nodes that appear as edge
// endpoints need entries.
//
// Returns ErrCodeEmptyInput when the graph has no edges (the ratio is
// undefined, not zero) and ErrCodeMissingReference when an endpoint has no
// entry in colors. The graph is never modified.
func AgreementRatio(g *sgraph.Graph, colors map[string]string) (float64, error) {
	total := g.EdgeCount()
	if total == 0 {
		return 0, errors.New(errors.ErrCodeEmptyInput, "graph has no edges")
	}

	same := 0
	for _, key := range g.EdgeKeys() {
		uc, uok := colors[key.U]
		vc, vok := colors[key.V]
		if !uok || !vok {
			missing := key.U
			if uok {
				missing = key.V
			}
			return 0, errors.New(errors.ErrCodeMissingReference,
				"node %q missing from color assignment", missing)
		}
		if uc == vc {
			same++
		}
	}
	return float64(same) / float64(total), nil
}

// NodeColors extracts the color attribute of every node in the graph,
// skipping nodes without one. The result is the natural assignment to
// pass to [AgreementRatio] when the graph is its own reference.
func NodeColors(g *sgraph.Graph) map[string]string {
	out := make(map[string]string, g.NodeCount())
	for _, n := range g.Nodes() {
		if c, ok := n.Attrs[sgraph.ColorAttr].(string); ok {
			out[n.ID] = c
		}
	}
	return out
}
