package race

import (
	"testing"

	"github.com/dd0wney/cluso-pathrace/pkg/traversal"
)

// resultWith builds a minimal completed result for judge tests
func resultWith(path []string, completedStep, visitedCount int) *traversal.Result {
	visited := make(map[string]bool, visitedCount)
	for i := 0; i < visitedCount; i++ {
		visited[string(rune('a'+i))] = true
	}
	steps := make([]traversal.PathStep, 0)
	if completedStep >= 0 {
		for i := 0; i <= completedStep; i++ {
			steps = append(steps, traversal.PathStep{Index: i, Done: i == completedStep})
		}
	}
	return &traversal.Result{
		Path:          path,
		Steps:         steps,
		Visited:       visited,
		CompletedStep: completedStep,
	}
}

// TestJudge_OnlyOneSideFoundPath verifies rule 1 beats every later rule
func TestJudge_OnlyOneSideFoundPath(t *testing.T) {
	// The left side took far more steps and visited more nodes, but it
	// is the only side with a valid path.
	left := resultWith([]string{"a", "b", "c"}, 50, 40)
	right := resultWith(nil, -1, 2)

	if v := Judge(left, right); v != Left {
		t.Errorf("Expected left, got %s", v)
	}
	if v := Judge(right, left); v != Right {
		t.Errorf("Expected right, got %s", v)
	}
}

// TestJudge_NeitherFoundPath verifies rule 2 declares a tie
func TestJudge_NeitherFoundPath(t *testing.T) {
	left := resultWith(nil, -1, 5)
	right := resultWith(nil, -1, 9)

	if v := Judge(left, right); v != Tie {
		t.Errorf("Expected tie, got %s", v)
	}
}

// TestJudge_FewerStepsWins verifies rule 3
func TestJudge_FewerStepsWins(t *testing.T) {
	left := resultWith([]string{"a", "b"}, 3, 10)
	right := resultWith([]string{"a", "b"}, 7, 4)

	if v := Judge(left, right); v != Left {
		t.Errorf("Expected left (fewer steps), got %s", v)
	}
}

// TestJudge_SmallerVisitedSetWins verifies rule 4 breaks step-count ties
func TestJudge_SmallerVisitedSetWins(t *testing.T) {
	left := resultWith([]string{"a", "b"}, 5, 12)
	right := resultWith([]string{"a", "b"}, 5, 8)

	if v := Judge(left, right); v != Right {
		t.Errorf("Expected right (smaller visited set), got %s", v)
	}
}

// TestJudge_FullTie verifies rule 5: same steps, same visited size
func TestJudge_FullTie(t *testing.T) {
	left := resultWith([]string{"a", "b"}, 5, 8)
	right := resultWith([]string{"a", "c"}, 5, 8)

	if v := Judge(left, right); v != Tie {
		t.Errorf("Expected tie, got %s", v)
	}
}

// TestJudge_PathWithoutCompletionStep verifies a side that never
// finalized the target loses rule 3 to one that did
func TestJudge_PathWithoutCompletionStep(t *testing.T) {
	finished := resultWith([]string{"a", "b"}, 9, 5)
	unfinished := resultWith([]string{"a", "b"}, -1, 5)

	if v := Judge(unfinished, finished); v != Right {
		t.Errorf("Expected right, got %s", v)
	}
}
