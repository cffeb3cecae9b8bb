// Package traversal implements the graph-search engine: four traversal
// strategies over a weighted undirected graph, runnable either as a
// one-shot batch or one resumable step at a time with byte-identical
// results. Each emitted step carries a deep-copied snapshot of the
// search state, so retained histories stay valid while the live state
// keeps mutating.
package traversal

import (
	"encoding/json"
	"fmt"

	"github.com/dd0wney/cluso-pathrace/pkg/graph"
)

// HeuristicScale divides the straight-line distance between node
// positions to produce the A* heuristic. With grid positions spaced 20
// units apart and edge weights >= 1, the heuristic never overestimates
// the remaining cost, so A* stays optimal.
const HeuristicScale = 20.0

// Strategy selects one of the four traversal variants.
type Strategy int

const (
	Dijkstra Strategy = iota
	AStar
	BFS
	DFS
)

// ErrUnknownStrategy is returned when a strategy name does not parse.
var ErrUnknownStrategy = fmt.Errorf("unknown traversal strategy")

// String returns the canonical lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return "unknown"
	}
}

// Strategies lists all supported strategies in a fixed order.
func Strategies() []Strategy {
	return []Strategy{Dijkstra, AStar, BFS, DFS}
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// MarshalJSON encodes the strategy as its name.
func (s Strategy) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a strategy from its name.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseStrategy(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// PathStep is the snapshot emitted when a strategy finalizes a node.
// Every field is copied out of the live search state at emission time;
// a PathStep never aliases engine internals and is safe to retain for
// replay after the run has moved on or been reset.
type PathStep struct {
	// Index is the zero-based position of this step in the run.
	Index int `json:"index"`
	// Node is the id finalized by this step.
	Node string `json:"node"`
	// Visited is the set of node ids finalized so far, this step included.
	Visited map[string]bool `json:"visited"`
	// Parents maps each discovered node id to its parent id.
	Parents map[string]string `json:"parents"`
	// Path is the start-to-Node path reconstructed from Parents,
	// empty when the parent chain does not reach the start.
	Path []string `json:"path"`
	// Done is true iff Node is the traversal target.
	Done bool `json:"done"`
}

// Result is the outcome of a completed (or exhausted) traversal run.
type Result struct {
	// Strategy that produced this result.
	Strategy Strategy `json:"strategy"`
	// Path is the final start-to-target path, empty when unreachable.
	Path []string `json:"path"`
	// Weight is the total edge weight of Path, 0 when Path is empty.
	Weight int `json:"weight"`
	// Steps is the ordered sequence of every snapshot emitted.
	Steps []PathStep `json:"steps"`
	// Visited is the final visited set.
	Visited map[string]bool `json:"visited"`
	// CompletedStep is the index at which Done first became true,
	// or -1 when the target was never finalized.
	CompletedStep int `json:"completedStep"`
}

// Found reports whether the result's final path connects start to target.
func (r *Result) Found() bool {
	return len(r.Path) > 0
}

// Engine is the resumable traversal contract shared by all strategies.
//
// Init may be called with a start or end id that is missing from the
// graph; the run then degenerates to an empty outcome instead of
// failing. Step after termination is idempotent: it keeps returning
// ok=false without mutating state.
type Engine interface {
	// Init builds the adjacency index and seeds fresh traversal state.
	Init(g *graph.Graph, startID, endID string)
	// Step finalizes exactly one node and returns its snapshot.
	// ok=false signals no more work: the frontier is exhausted, the
	// target was already finalized, or Init was never called.
	Step() (step PathStep, ok bool)
	// RunToCompletion steps until termination. It is observationally
	// equivalent to calling Step in a loop and collecting the snapshots.
	RunToCompletion() *Result
	// Result assembles the outcome of the work done so far.
	Result() *Result
	// Reset discards all traversal state; the engine is reusable
	// after a new Init.
	Reset()
}

// New returns a fresh engine for the given strategy.
func New(s Strategy) (Engine, error) {
	switch s {
	case Dijkstra:
		return newWeightedEngine(Dijkstra, nil), nil
	case AStar:
		return newWeightedEngine(AStar, euclideanHeuristic), nil
	case BFS:
		return newBFSEngine(), nil
	case DFS:
		return newDFSEngine(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, s)
	}
}
