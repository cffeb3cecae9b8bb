package traversal

import (
	"reflect"
	"testing"
)

// TestReconstructPath_ValidChain verifies a connected chain starts at
// the start id and ends at the queried node
func TestReconstructPath_ValidChain(t *testing.T) {
	parents := map[string]string{"b": "a", "c": "b", "d": "c"}

	path := ReconstructPath(parents, "a", "d")

	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("Expected %v, got %v", want, path)
	}
}

// TestReconstructPath_BrokenChain verifies a chain that never reaches
// the start yields an empty path
func TestReconstructPath_BrokenChain(t *testing.T) {
	parents := map[string]string{"c": "b"} // b has no parent

	if path := ReconstructPath(parents, "a", "c"); path != nil {
		t.Errorf("Expected empty path, got %v", path)
	}
}

// TestReconstructPath_NoParents verifies a node with no chain at all
// yields an empty path unless it is the start itself
func TestReconstructPath_NoParents(t *testing.T) {
	if path := ReconstructPath(map[string]string{}, "a", "c"); path != nil {
		t.Errorf("Expected empty path, got %v", path)
	}

	path := ReconstructPath(map[string]string{}, "a", "a")
	if !reflect.DeepEqual(path, []string{"a"}) {
		t.Errorf("Expected [a], got %v", path)
	}
}

// TestReconstructPath_CyclicParents verifies a malformed cyclic map
// terminates with an empty path
func TestReconstructPath_CyclicParents(t *testing.T) {
	parents := map[string]string{"b": "c", "c": "b"}

	if path := ReconstructPath(parents, "a", "b"); path != nil {
		t.Errorf("Expected empty path for cyclic parents, got %v", path)
	}
}

// TestReconstructPath_EmptyNode verifies the degenerate empty query
func TestReconstructPath_EmptyNode(t *testing.T) {
	if path := ReconstructPath(map[string]string{"b": "a"}, "a", ""); path != nil {
		t.Errorf("Expected empty path, got %v", path)
	}
}

// TestReconstructPath_PureOverSnapshots verifies every snapshot's own
// parent map reproduces that snapshot's recorded path
func TestReconstructPath_PureOverSnapshots(t *testing.T) {
	e := newEngine(t, Dijkstra)
	e.Init(triangleGraph(), "a", "c")
	result := e.RunToCompletion()

	for i, step := range result.Steps {
		rebuilt := ReconstructPath(step.Parents, "a", step.Node)
		if !reflect.DeepEqual(rebuilt, step.Path) {
			t.Errorf("Step %d: rebuilt path %v differs from recorded %v", i, rebuilt, step.Path)
		}
	}
}
