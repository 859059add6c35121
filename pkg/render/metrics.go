package render

import "github.com/kachup1/signet/pkg/sgraph"

// ClusteringCoefficients returns the local clustering coefficient of every
// node: the fraction of possible links among its neighbors that actually
// exist. Nodes with fewer than two neighbors score 0.
func ClusteringCoefficients(g *sgraph.Graph) map[string]float64 {
	out := make(map[string]float64, g.NodeCount())
	for _, id := range g.NodeIDs() {
		nbs := g.Neighbors(id)
		d := len(nbs)
		if d < 2 {
			out[id] = 0
			continue
		}
		links := 0
		for i := 0; i < d; i++ {
			for j := i + 1; j < d; j++ {
				if g.HasEdge(nbs[i], nbs[j]) {
					links++
				}
			}
		}
		out[id] = float64(2*links) / float64(d*(d-1))
	}
	return out
}

// NeighborhoodOverlap returns, for every edge, the ratio of neighbors
// common to both endpoints to neighbors of either endpoint, the endpoints
// themselves excluded. Edges whose endpoints have no other neighbors
// score 0.
func NeighborhoodOverlap(g *sgraph.Graph) map[sgraph.EdgeKey]float64 {
	out := make(map[sgraph.EdgeKey]float64, g.EdgeCount())
	for _, key := range g.EdgeKeys() {
		union := make(map[string]bool)
		common := 0
		for _, nb := range g.Neighbors(key.U) {
			if nb != key.V {
				union[nb] = true
			}
		}
		for _, nb := range g.Neighbors(key.V) {
			if nb == key.U {
				continue
			}
			if union[nb] {
				common++
			}
			union[nb] = true
		}
		if len(union) == 0 {
			out[key] = 0
			continue
		}
		out[key] = float64(common) / float64(len(union))
	}
	return out
}
