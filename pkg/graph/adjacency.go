package graph

// Neighbor is one entry in a node's adjacency list.
type Neighbor struct {
	ID     string
	Weight int
}

// Adjacency maps a node id to its neighbors. It is derived from a Graph
// once per traversal run and discarded afterwards; it is never shared
// between concurrent runs.
type Adjacency map[string][]Neighbor

// BuildAdjacency constructs a symmetric adjacency index in O(V+E).
// Edges referencing a missing node id on either end are skipped rather
// than reported: a dangling reference is a tolerated input, not an error.
func BuildAdjacency(g *Graph) Adjacency {
	adj := make(Adjacency, g.NodeCount())
	for id := range g.nodes {
		adj[id] = nil
	}
	for _, e := range g.edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			continue
		}
		adj[e.From] = append(adj[e.From], Neighbor{ID: e.To, Weight: e.Weight})
		adj[e.To] = append(adj[e.To], Neighbor{ID: e.From, Weight: e.Weight})
	}
	return adj
}

// Neighbors returns the adjacency list for a node id. A missing id
// yields an empty list, matching the dangling-reference policy.
func (a Adjacency) Neighbors(id string) []Neighbor {
	return a[id]
}
