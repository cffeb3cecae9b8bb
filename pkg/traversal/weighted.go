package traversal

import (
	"math"

	"github.com/dd0wney/cluso-pathrace/pkg/graph"
)

// heuristicFunc estimates remaining cost from a node to the target.
// A nil heuristic makes the engine plain Dijkstra.
type heuristicFunc func(g *graph.Graph, nodeID, targetID string) float64

// euclideanHeuristic is the A* estimate: straight-line distance between
// node positions divided by HeuristicScale. Any uniform positive
// scaling preserves optimality as long as the scaled estimate never
// exceeds the true remaining cost. A node missing a position
// contributes zero, degrading A* toward Dijkstra rather than failing.
func euclideanHeuristic(g *graph.Graph, nodeID, targetID string) float64 {
	from, ok := g.Node(nodeID)
	if !ok {
		return 0
	}
	to, ok := g.Node(targetID)
	if !ok {
		return 0
	}
	dx := from.X - to.X
	dy := from.Y - to.Y
	return math.Sqrt(dx*dx+dy*dy) / HeuristicScale
}

// weightedEngine runs Dijkstra, or A* when a heuristic is supplied.
// The frontier holds duplicate entries instead of decrease-key;
// staleness is detected on pop by re-deriving the entry's score from
// the current best-known distance.
type weightedEngine struct {
	searchState
	heuristic heuristicFunc
	frontier  *priorityFrontier
}

func newWeightedEngine(strategy Strategy, h heuristicFunc) *weightedEngine {
	return &weightedEngine{heuristic: h, searchState: searchState{strategy: strategy}}
}

func (e *weightedEngine) Init(g *graph.Graph, startID, endID string) {
	strategy := e.strategy
	e.initState(strategy, g, startID, endID)
	e.frontier = newPriorityFrontier()

	// A missing start id leaves the frontier empty: the run never
	// finalizes anything and completes with an empty path.
	if g.HasNode(startID) {
		e.dist[startID] = 0
		e.frontier.Push(startID, e.score(startID))
	}
}

// score is the frontier key for a node: its best-known distance, plus
// the heuristic estimate for A*.
func (e *weightedEngine) score(nodeID string) float64 {
	s := e.dist[nodeID]
	if e.heuristic != nil {
		s += e.heuristic(e.graph, nodeID, e.endID)
	}
	return s
}

func (e *weightedEngine) Step() (PathStep, bool) {
	if !e.canStep() {
		return PathStep{}, false
	}

	// Pop until a live entry surfaces. Entries for already-finalized
	// nodes and entries whose score no longer matches the best-known
	// score are stale leftovers of lazy invalidation; skipping one is
	// not a unit of work. An explicit loop keeps adversarial inputs
	// from growing the stack.
	var current frontierEntry
	for {
		entry, ok := e.frontier.Pop()
		if !ok {
			return PathStep{}, false
		}
		if e.visited[entry.id] {
			continue
		}
		if entry.score != e.score(entry.id) {
			continue
		}
		current = entry
		break
	}

	step := e.emit(current.id)
	if step.Done {
		return step, true
	}

	// Relax edges out of the finalized node.
	for _, nb := range e.adj.Neighbors(current.id) {
		if e.visited[nb.ID] {
			continue
		}
		candidate := e.dist[current.id] + float64(nb.Weight)
		if best, known := e.dist[nb.ID]; !known || candidate < best {
			e.dist[nb.ID] = candidate
			e.parents[nb.ID] = current.id
			e.frontier.Push(nb.ID, e.score(nb.ID))
		}
	}

	return step, true
}

func (e *weightedEngine) RunToCompletion() *Result { return runToCompletion(e) }

func (e *weightedEngine) Result() *Result { return e.result() }

func (e *weightedEngine) Reset() {
	strategy := e.strategy
	e.resetState()
	e.strategy = strategy
	e.frontier = nil
}
