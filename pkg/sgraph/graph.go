package sgraph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] when either endpoint
	// does not exist in the graph.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")

	// ErrSelfLoop is returned by [Graph.AddEdge] for edges whose endpoints
	// are the same node. The model assumes a loop-free graph.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when an edge between
	// the same pair of nodes already exists, in either orientation.
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// Attrs stores arbitrary key-value pairs attached to nodes or edges.
// Attribute maps are never nil after AddNode/AddEdge - they are
// automatically initialized to empty maps when needed.
type Attrs map[string]any

// Clone returns a shallow copy of the attribute map.
// Returns nil for a nil input.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Node represents a vertex identified by a unique string ID.
//
// The zero value is not usable - ID must be set before adding to a Graph.
type Node struct {
	ID    string // Unique identifier (also used as display label)
	Attrs Attrs  // Arbitrary key-value attributes (never nil after AddNode)
}

// EdgeKey is the canonical identity of an undirected edge: the endpoint
// pair ordered so that U < V. Keys compare with < / == and sort into the
// fixed total order used for deterministic edge enumeration.
type EdgeKey struct {
	U, V string
}

// KeyOf returns the canonical key for the endpoint pair (a, b).
func KeyOf(a, b string) EdgeKey {
	if b < a {
		a, b = b, a
	}
	return EdgeKey{U: a, V: b}
}

// Compare orders keys lexicographically by U, then V.
func (k EdgeKey) Compare(o EdgeKey) int {
	if k.U != o.U {
		if k.U < o.U {
			return -1
		}
		return 1
	}
	if k.V != o.V {
		if k.V < o.V {
			return -1
		}
		return 1
	}
	return 0
}

// Edge represents an undirected connection between two distinct nodes.
// Endpoints are stored canonically with U < V.
type Edge struct {
	U, V  string
	Attrs Attrs // Arbitrary key-value attributes (never nil after AddEdge)
}

// Key returns the canonical key of the edge.
func (e *Edge) Key() EdgeKey { return EdgeKey{U: e.U, V: e.V} }

// Graph is a mutable undirected simple graph: no self-loops, at most one
// edge per node pair. Nodes and edges carry attribute maps.
//
// The zero value is not usable - use New to create a Graph.
type Graph struct {
	nodes map[string]*Node
	edges map[EdgeKey]*Edge
	adj   map[string]map[string]*Edge // node -> neighbor -> shared edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[EdgeKey]*Edge),
		adj:   make(map[string]map[string]*Edge),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID for an empty ID or ErrDuplicateNodeID if a node
// with the same ID already exists. The node's Attrs field is initialized to
// an empty map if nil.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	node := &n
	g.nodes[node.ID] = node
	g.adj[node.ID] = make(map[string]*Edge)
	return nil
}

// EnsureNode returns the node with the given ID, creating it if absent.
// An empty ID returns nil without creating anything.
func (g *Graph) EnsureNode(id string) *Node {
	if id == "" {
		return nil
	}
	if n, ok := g.nodes[id]; ok {
		return n
	}
	_ = g.AddNode(Node{ID: id})
	return g.nodes[id]
}

// AddEdge adds an undirected edge between two existing nodes.
// Returns ErrUnknownEndpoint if either node doesn't exist, ErrSelfLoop if
// the endpoints coincide, or ErrDuplicateEdge if the pair is already
// connected. The edge's Attrs field is initialized to an empty map if nil.
func (g *Graph) AddEdge(e Edge) error {
	if e.U == e.V {
		return ErrSelfLoop
	}
	if _, ok := g.nodes[e.U]; !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := g.nodes[e.V]; !ok {
		return ErrUnknownEndpoint
	}
	if e.V < e.U {
		e.U, e.V = e.V, e.U
	}
	key := EdgeKey{U: e.U, V: e.V}
	if _, exists := g.edges[key]; exists {
		return ErrDuplicateEdge
	}
	if e.Attrs == nil {
		e.Attrs = Attrs{}
	}
	edge := &e
	g.edges[key] = edge
	g.adj[e.U][e.V] = edge
	g.adj[e.V][e.U] = edge
	return nil
}

// RemoveEdge removes the edge between u and v, in either orientation.
// Reports whether an edge was removed. Nodes are never removed.
func (g *Graph) RemoveEdge(u, v string) bool {
	key := KeyOf(u, v)
	if _, ok := g.edges[key]; !ok {
		return false
	}
	delete(g.edges, key)
	delete(g.adj[key.U], key.V)
	delete(g.adj[key.V], key.U)
	return true
}

// Node returns the node with the given ID and true, or nil and false.
// The returned pointer refers to the node in the graph, so attribute
// modifications are visible to subsequent queries.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the edge between u and v (either orientation) and true,
// or nil and false if the nodes are not connected.
func (g *Graph) Edge(u, v string) (*Edge, bool) {
	e, ok := g.edges[KeyOf(u, v)]
	return e, ok
}

// HasEdge reports whether u and v are connected.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.edges[KeyOf(u, v)]
	return ok
}

// Nodes returns all nodes. The order is not guaranteed; use NodeIDs for a
// deterministic traversal order.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// NodeIDs returns all node IDs in sorted order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Edges returns all edges. The order is not guaranteed; use EdgeKeys for a
// deterministic traversal order.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e)
	}
	return edges
}

// EdgeKeys returns the keys of all edges in their canonical total order
// (lexicographic by U, then V). This is the enumeration order used for
// deterministic tie-breaking during partitioning.
func (g *Graph) EdgeKeys() []EdgeKey {
	keys := make([]EdgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, EdgeKey.Compare)
	return keys
}

// Neighbors returns the IDs of nodes adjacent to id, in sorted order.
// Returns nil if the node has no neighbors or doesn't exist.
func (g *Graph) Neighbors(id string) []string {
	adj := g.adj[id]
	if len(adj) == 0 {
		return nil
	}
	out := make([]string, 0, len(adj))
	for nb := range adj {
		out = append(out, nb)
	}
	slices.Sort(out)
	return out
}

// Degree returns the number of edges incident to the node.
// Returns 0 if the node doesn't exist.
func (g *Graph) Degree(id string) int { return len(g.adj[id]) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Clone returns a deep copy of the graph structure with shallow-copied
// attribute maps. Mutating the copy's topology or attribute keys leaves
// the original untouched.
func (g *Graph) Clone() *Graph {
	out := New()
	for id, n := range g.nodes {
		out.nodes[id] = &Node{ID: id, Attrs: n.Attrs.Clone()}
		out.adj[id] = make(map[string]*Edge, len(g.adj[id]))
	}
	for key, e := range g.edges {
		edge := &Edge{U: e.U, V: e.V, Attrs: e.Attrs.Clone()}
		out.edges[key] = edge
		out.adj[e.U][e.V] = edge
		out.adj[e.V][e.U] = edge
	}
	return out
}
