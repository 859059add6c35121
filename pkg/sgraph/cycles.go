package sgraph

// Cycles enumerates every simple cycle in the graph exactly once, calling
// yield with the cycle's node sequence (length >= 3, start node not
// repeated at the end). Enumeration stops early when yield returns false.
//
// Each cycle is reported in canonical form: it starts at its smallest node
// and runs toward the smaller of that node's two cycle neighbors, so the
// two traversal directions collapse to one. The walk is depth-first and
// lazy - cycles are handed out as they are found, nothing is materialized.
// Simple-cycle counts grow exponentially with density, which is why
// callers get a generator rather than a slice.
//
// The slice passed to yield is reused between calls; callers that retain
// a cycle must copy it.
func (g *Graph) Cycles(yield func(cycle []string) bool) {
	path := make([]string, 0, len(g.nodes))
	onPath := make(map[string]bool, len(g.nodes))

	var walk func(start, v string) bool
	walk = func(start, v string) bool {
		path = append(path, v)
		onPath[v] = true
		defer func() {
			path = path[:len(path)-1]
			delete(onPath, v)
		}()

		for _, nb := range g.Neighbors(v) {
			if nb == start {
				// Closing edge. Length >= 3 rules out retracing the
				// first edge; path[1] < path[last] fixes the direction.
				if len(path) >= 3 && path[1] < path[len(path)-1] {
					if !yield(path) {
						return false
					}
				}
				continue
			}
			// Restricting interior nodes to IDs above the start node
			// makes the smallest node the unique cycle representative.
			if nb <= start || onPath[nb] {
				continue
			}
			if !walk(start, nb) {
				return false
			}
		}
		return true
	}

	for _, start := range g.NodeIDs() {
		if !walk(start, start) {
			return
		}
	}
}

// CycleCount counts the simple cycles in the graph. Intended for tests and
// diagnostics on modest graphs; it forces a full enumeration.
func (g *Graph) CycleCount() int {
	n := 0
	g.Cycles(func([]string) bool {
		n++
		return true
	})
	return n
}
