package traversal

import "github.com/dd0wney/cluso-pathrace/pkg/graph"

// searchState holds the mutable traversal state shared by all four
// strategy variants. It is owned exclusively by one engine instance:
// nothing here is ever shared across runs or across the two sides of a
// race. Snapshots copy out of it at emission time.
type searchState struct {
	graph    *graph.Graph
	adj      graph.Adjacency
	startID  string
	endID    string
	strategy Strategy

	dist    map[string]float64
	parents map[string]string
	visited map[string]bool
	steps   []PathStep
	done    bool
	ready   bool
}

// initState rebuilds the adjacency index and seeds fresh state.
func (s *searchState) initState(strategy Strategy, g *graph.Graph, startID, endID string) {
	s.graph = g
	s.adj = graph.BuildAdjacency(g)
	s.startID = startID
	s.endID = endID
	s.strategy = strategy
	s.dist = make(map[string]float64)
	s.parents = make(map[string]string)
	s.visited = make(map[string]bool)
	s.steps = nil
	s.done = false
	s.ready = true
}

// resetState discards all traversal state; a new initState is required
// before the engine can step again.
func (s *searchState) resetState() {
	*s = searchState{}
}

// canStep reports whether another unit of work may be attempted.
func (s *searchState) canStep() bool {
	return s.ready && !s.done
}

// emit finalizes a node: records it as visited (the weighted and DFS
// variants mark visited here; BFS marks at push time and the map write
// is then a no-op) and appends a deep-copied snapshot. The copies are
// what make retained histories safe to replay while this state mutates.
func (s *searchState) emit(node string) PathStep {
	s.visited[node] = true

	step := PathStep{
		Index:   len(s.steps),
		Node:    node,
		Visited: copyVisited(s.visited),
		Parents: copyParents(s.parents),
		Path:    ReconstructPath(s.parents, s.startID, node),
		Done:    node == s.endID,
	}
	s.steps = append(s.steps, step)
	if step.Done {
		s.done = true
	}
	return step
}

// result assembles the outcome of the work done so far. The final path
// is rebuilt from the current parent map, so an exhausted frontier
// yields an empty path unless the chain happens to connect.
func (s *searchState) result() *Result {
	path := ReconstructPath(s.parents, s.startID, s.endID)

	completedAt := -1
	for i := range s.steps {
		if s.steps[i].Done {
			completedAt = i
			break
		}
	}

	steps := make([]PathStep, len(s.steps))
	copy(steps, s.steps)

	return &Result{
		Strategy:      s.strategy,
		Path:          path,
		Weight:        pathWeight(s.adj, path),
		Steps:         steps,
		Visited:       copyVisited(s.visited),
		CompletedStep: completedAt,
	}
}

// pathWeight sums edge weights along a path using the adjacency index.
// A broken link contributes nothing; callers only pass paths assembled
// from the same index.
func pathWeight(adj graph.Adjacency, path []string) int {
	total := 0
	for i := 1; i < len(path); i++ {
		for _, nb := range adj.Neighbors(path[i-1]) {
			if nb.ID == path[i] {
				total += nb.Weight
				break
			}
		}
	}
	return total
}

func copyVisited(visited map[string]bool) map[string]bool {
	out := make(map[string]bool, len(visited))
	for id := range visited {
		out[id] = true
	}
	return out
}

func copyParents(parents map[string]string) map[string]string {
	out := make(map[string]string, len(parents))
	for id, parent := range parents {
		out[id] = parent
	}
	return out
}

// runToCompletion drains an engine through its own Step method so the
// batch form is the incremental form by construction.
func runToCompletion(e Engine) *Result {
	for {
		if _, ok := e.Step(); !ok {
			break
		}
	}
	return e.Result()
}
