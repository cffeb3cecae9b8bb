// Package graph defines the immutable weighted undirected graph model
// consumed by the traversal engine, plus the adjacency index derived from it.
package graph

// Node is a vertex with a 2D position used by heuristic search.
// Nodes are immutable once the graph is built.
type Node struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

// Edge connects two nodes with a positive integer weight.
// Edges are undirected: traversable in both directions at the same cost.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// Graph is the immutable input to a traversal run.
// Edges may reference node ids that do not exist; such dangling
// references are tolerated downstream by omission, never by failure.
type Graph struct {
	nodes map[string]Node
	edges []Edge
}

// New builds a graph from nodes and edges. Duplicate node ids are
// resolved first-wins; edges are kept as given, dangling or not.
func New(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes: make(map[string]Node, len(nodes)),
		edges: make([]Edge, len(edges)),
	}
	for _, n := range nodes {
		if _, exists := g.nodes[n.ID]; !exists {
			g.nodes[n.ID] = n
		}
	}
	copy(g.edges, edges)
	return g
}

// Node returns the node with the given id, if present.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether the graph contains a node with the given id.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, including dangling ones.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns a copy of the node set.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// Edges returns a copy of the edge list.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}
