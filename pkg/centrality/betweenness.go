// Package centrality computes edge-betweenness centrality over signed
// graphs using Brandes' algorithm.
//
// Betweenness here follows the standard definition: for each edge, the sum
// over all node pairs of the fraction of equal-weight shortest paths
// between the pair that traverse the edge. Pairs in different components
// contribute nothing, so the computation is correct for disconnected
// graphs - the property the partitioner relies on as it splits the graph
// apart.
package centrality

import "github.com/kachup1/signet/pkg/sgraph"

// EdgeBetweenness returns the betweenness score of every edge currently in
// the graph. The graph is not modified. An edgeless graph yields an empty
// map.
//
// The implementation runs Brandes' single-source accumulation from every
// node: a BFS phase records shortest-path counts and predecessors, then a
// back-propagation phase distributes pair dependencies over edges, with
// ties among shortest paths splitting credit proportionally. Scores are
// halved at the end because the undirected sweep visits every pair from
// both sides. Runtime is O(N*E) on unweighted graphs.
func EdgeBetweenness(g *sgraph.Graph) map[sgraph.EdgeKey]float64 {
	scores := make(map[sgraph.EdgeKey]float64, g.EdgeCount())
	for _, k := range g.EdgeKeys() {
		scores[k] = 0
	}

	for _, s := range g.NodeIDs() {
		stack, sigma, pred := shortestPaths(g, s)
		accumulate(stack, sigma, pred, scores)
	}

	for k := range scores {
		scores[k] /= 2
	}
	return scores
}

// shortestPaths performs the BFS phase of Brandes' algorithm from source s.
// It returns the visit order (for reverse traversal during accumulation),
// shortest-path counts (sigma), and predecessor lists (pred).
func shortestPaths(g *sgraph.Graph, s string) ([]string, map[string]float64, map[string][]string) {
	n := g.NodeCount()
	stack := make([]string, 0, n)
	pred := make(map[string][]string, n)
	sigma := map[string]float64{s: 1}
	dist := map[string]int{s: 0}

	queue := []string{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		for _, w := range g.Neighbors(v) {
			if _, visited := dist[w]; !visited {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				pred[w] = append(pred[w], v)
			}
		}
	}

	return stack, sigma, pred
}

// accumulate performs the back-propagation phase, adding each node's pair
// dependency to the edge connecting it to its predecessors.
func accumulate(stack []string, sigma map[string]float64, pred map[string][]string, scores map[sgraph.EdgeKey]float64) {
	delta := make(map[string]float64, len(stack))

	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range pred[w] {
			c := sigma[v] / sigma[w] * (1 + delta[w])
			scores[sgraph.KeyOf(v, w)] += c
			delta[v] += c
		}
	}
}
