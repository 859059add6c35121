package sgraph

import "slices"

// Components returns the connected components of the graph. Each component
// is a sorted slice of node IDs, and components are ordered by their
// smallest member, so the result is deterministic for a given topology.
func (g *Graph) Components() [][]string {
	seen := make(map[string]bool, len(g.nodes))
	var comps [][]string

	for _, start := range g.NodeIDs() {
		if seen[start] {
			continue
		}
		comp := []string{start}
		seen[start] = true
		queue := []string{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for nb := range g.adj[v] {
				if !seen[nb] {
					seen[nb] = true
					comp = append(comp, nb)
					queue = append(queue, nb)
				}
			}
		}
		slices.Sort(comp)
		comps = append(comps, comp)
	}
	return comps
}

// ComponentCount returns the number of connected components without
// materializing the component membership.
func (g *Graph) ComponentCount() int {
	seen := make(map[string]bool, len(g.nodes))
	count := 0
	for id := range g.nodes {
		if seen[id] {
			continue
		}
		count++
		seen[id] = true
		queue := []string{id}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for nb := range g.adj[v] {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}
	return count
}
