package traversal

import "github.com/dd0wney/cluso-pathrace/pkg/graph"

// bfsEngine explores in breadth-first order, ignoring edge weights.
// Unlike the weighted strategies it marks nodes visited at push time,
// so no node ever enters the queue twice and parents are fixed at
// first discovery, which for BFS is also first visit.
type bfsEngine struct {
	searchState
	frontier *fifoFrontier
}

func newBFSEngine() *bfsEngine {
	return &bfsEngine{searchState: searchState{strategy: BFS}}
}

func (e *bfsEngine) Init(g *graph.Graph, startID, endID string) {
	e.initState(BFS, g, startID, endID)
	e.frontier = &fifoFrontier{}

	if g.HasNode(startID) {
		e.visited[startID] = true
		e.frontier.Push(startID)
	}
}

func (e *bfsEngine) Step() (PathStep, bool) {
	if !e.canStep() {
		return PathStep{}, false
	}

	current, ok := e.frontier.Pop()
	if !ok {
		return PathStep{}, false
	}

	step := e.emit(current)
	if step.Done {
		return step, true
	}

	for _, nb := range e.adj.Neighbors(current) {
		if e.visited[nb.ID] {
			continue
		}
		e.visited[nb.ID] = true
		e.parents[nb.ID] = current
		e.frontier.Push(nb.ID)
	}

	return step, true
}

func (e *bfsEngine) RunToCompletion() *Result { return runToCompletion(e) }

func (e *bfsEngine) Result() *Result { return e.result() }

func (e *bfsEngine) Reset() {
	e.resetState()
	e.strategy = BFS
	e.frontier = nil
}
