package traversal

import "github.com/dd0wney/cluso-pathrace/pkg/graph"

// dfsEngine explores in depth-first order. The stack may hold the same
// node several times; popping an already-visited node is skipped
// without counting as a unit of work.
//
// Parents follow a first-discovery-wins rule: the first node to push a
// neighbor fixes that neighbor's parent, even when the neighbor is
// later actually visited through a different node. The resulting
// parent chain can disagree with the visitation order. This asymmetry
// with BFS (where first discovery and first visit coincide) is kept
// deliberately so step sequences replay identically across versions.
type dfsEngine struct {
	searchState
	frontier *lifoFrontier
}

func newDFSEngine() *dfsEngine {
	return &dfsEngine{searchState: searchState{strategy: DFS}}
}

func (e *dfsEngine) Init(g *graph.Graph, startID, endID string) {
	e.initState(DFS, g, startID, endID)
	e.frontier = &lifoFrontier{}

	// The start is seeded unvisited; it is finalized by the first Step.
	if g.HasNode(startID) {
		e.frontier.Push(startID)
	}
}

func (e *dfsEngine) Step() (PathStep, bool) {
	if !e.canStep() {
		return PathStep{}, false
	}

	var current string
	for {
		id, ok := e.frontier.Pop()
		if !ok {
			return PathStep{}, false
		}
		if e.visited[id] {
			continue
		}
		current = id
		break
	}

	step := e.emit(current)
	if step.Done {
		return step, true
	}

	for _, nb := range e.adj.Neighbors(current) {
		if e.visited[nb.ID] {
			continue
		}
		if _, discovered := e.parents[nb.ID]; !discovered && nb.ID != e.startID {
			e.parents[nb.ID] = current
		}
		e.frontier.Push(nb.ID)
	}

	return step, true
}

func (e *dfsEngine) RunToCompletion() *Result { return runToCompletion(e) }

func (e *dfsEngine) Result() *Result { return e.result() }

func (e *dfsEngine) Reset() {
	e.resetState()
	e.strategy = DFS
	e.frontier = nil
}
