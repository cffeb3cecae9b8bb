package traversal

import "testing"

// TestPriorityFrontier_OrdersByScore verifies extraction follows ascending score
func TestPriorityFrontier_OrdersByScore(t *testing.T) {
	f := newPriorityFrontier()
	f.Push("high", 9)
	f.Push("low", 1)
	f.Push("mid", 5)

	want := []string{"low", "mid", "high"}
	for _, expected := range want {
		entry, ok := f.Pop()
		if !ok {
			t.Fatalf("Expected entry %s, frontier empty", expected)
		}
		if entry.id != expected {
			t.Errorf("Expected %s, got %s", expected, entry.id)
		}
	}
}

// TestPriorityFrontier_StableTieBreak verifies equal scores pop in insertion order
func TestPriorityFrontier_StableTieBreak(t *testing.T) {
	f := newPriorityFrontier()
	f.Push("first", 3)
	f.Push("second", 3)
	f.Push("third", 3)

	for _, expected := range []string{"first", "second", "third"} {
		entry, _ := f.Pop()
		if entry.id != expected {
			t.Errorf("Expected %s, got %s", expected, entry.id)
		}
	}
}

// TestPriorityFrontier_DuplicateInsertion verifies the same id may carry
// several scores at once
func TestPriorityFrontier_DuplicateInsertion(t *testing.T) {
	f := newPriorityFrontier()
	f.Push("n", 5)
	f.Push("n", 2)

	if f.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", f.Len())
	}
	entry, _ := f.Pop()
	if entry.score != 2 {
		t.Errorf("Expected the improved score first, got %v", entry.score)
	}
}

// TestPriorityFrontier_EmptyPop verifies the empty signal
func TestPriorityFrontier_EmptyPop(t *testing.T) {
	f := newPriorityFrontier()
	if _, ok := f.Pop(); ok {
		t.Error("Expected ok=false on empty frontier")
	}
}

// TestFIFOFrontier_Order verifies queue semantics
func TestFIFOFrontier_Order(t *testing.T) {
	f := &fifoFrontier{}
	f.Push("a")
	f.Push("b")

	if id, _ := f.Pop(); id != "a" {
		t.Errorf("Expected a, got %s", id)
	}
	if id, _ := f.Pop(); id != "b" {
		t.Errorf("Expected b, got %s", id)
	}
	if _, ok := f.Pop(); ok {
		t.Error("Expected empty queue")
	}
}

// TestLIFOFrontier_Order verifies stack semantics
func TestLIFOFrontier_Order(t *testing.T) {
	f := &lifoFrontier{}
	f.Push("a")
	f.Push("b")

	if id, _ := f.Pop(); id != "b" {
		t.Errorf("Expected b, got %s", id)
	}
	if id, _ := f.Pop(); id != "a" {
		t.Errorf("Expected a, got %s", id)
	}
	if _, ok := f.Pop(); ok {
		t.Error("Expected empty stack")
	}
}
