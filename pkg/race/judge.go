// Package race runs two independent traversals over the same graph and
// start/end pair and judges which side won. There is no real
// parallelism: the two engines are advanced in lockstep on one
// goroutine, and judging only happens once both sides have reached
// their own terminal state.
package race

import (
	"math"

	"github.com/dd0wney/cluso-pathrace/pkg/traversal"
)

// Verdict is the outcome of judging two traversal results.
type Verdict string

const (
	// Left wins the race.
	Left Verdict = "left"
	// Right wins the race.
	Right Verdict = "right"
	// Tie means neither side beat the other under any rule.
	Tie Verdict = "tie"
	// Undecided means at least one side has not terminated yet;
	// no meaningful comparison is possible.
	Undecided Verdict = "undecided"
)

// Judge compares two completed results for the same start/end pair.
// Rules apply in order, first match wins:
//
//  1. Exactly one side's final path connects start to target: that side.
//  2. Neither found a path: tie.
//  3. Fewer steps until the completion flag first became true.
//  4. Smaller final visited set (more efficient exploration).
//  5. Tie.
func Judge(left, right *traversal.Result) Verdict {
	leftFound, rightFound := left.Found(), right.Found()

	if leftFound != rightFound {
		if leftFound {
			return Left
		}
		return Right
	}
	if !leftFound {
		return Tie
	}

	leftAt, rightAt := completionIndex(left), completionIndex(right)
	if leftAt != rightAt {
		if leftAt < rightAt {
			return Left
		}
		return Right
	}

	if len(left.Visited) != len(right.Visited) {
		if len(left.Visited) < len(right.Visited) {
			return Left
		}
		return Right
	}

	return Tie
}

// completionIndex is the step at which a side finished. A side whose
// path connects through the parent map without the target ever being
// finalized sorts after every side that actually finished.
func completionIndex(r *traversal.Result) int {
	if r.CompletedStep < 0 {
		return math.MaxInt
	}
	return r.CompletedStep
}
