package race

import (
	"github.com/dd0wney/cluso-pathrace/pkg/graph"
	"github.com/dd0wney/cluso-pathrace/pkg/traversal"
)

// Race advances two independent engines over the same graph and
// start/end pair behind a shared replay cursor. Each side owns its
// traversal state exclusively; the sides interact only through the
// verdict. A caller may pause between StepBoth calls indefinitely, and
// stopping calls is the only cancellation there is.
type Race struct {
	left      traversal.Engine
	right     traversal.Engine
	leftDone  bool
	rightDone bool
	cursor    int
}

// NewRace initializes both sides for the same graph and endpoints.
func NewRace(g *graph.Graph, startID, endID string, leftStrategy, rightStrategy traversal.Strategy) (*Race, error) {
	left, err := traversal.New(leftStrategy)
	if err != nil {
		return nil, err
	}
	right, err := traversal.New(rightStrategy)
	if err != nil {
		return nil, err
	}
	left.Init(g, startID, endID)
	right.Init(g, startID, endID)
	return &Race{left: left, right: right}, nil
}

// StepBoth advances each unfinished side by one unit of work and moves
// the cursor. It reports whether any side still had work to do; once
// false, further calls are no-ops.
func (r *Race) StepBoth() bool {
	if r.Finished() {
		return false
	}
	if !r.leftDone {
		if _, ok := r.left.Step(); !ok {
			r.leftDone = true
		}
	}
	if !r.rightDone {
		if _, ok := r.right.Step(); !ok {
			r.rightDone = true
		}
	}
	r.cursor++
	return true
}

// Cursor returns the number of lockstep rounds taken so far.
func (r *Race) Cursor() int { return r.cursor }

// Finished reports whether both sides have reached their terminal state.
func (r *Race) Finished() bool { return r.leftDone && r.rightDone }

// Verdict judges the race, or returns Undecided while either side
// still has work. Partial comparison never produces a verdict.
func (r *Race) Verdict() Verdict {
	if !r.Finished() {
		return Undecided
	}
	return Judge(r.left.Result(), r.right.Result())
}

// Results returns both sides' outcomes so far.
func (r *Race) Results() (left, right *traversal.Result) {
	return r.left.Result(), r.right.Result()
}

// Run drives both sides to completion and returns the final verdict.
func (r *Race) Run() Verdict {
	for r.StepBoth() {
	}
	return r.Verdict()
}
