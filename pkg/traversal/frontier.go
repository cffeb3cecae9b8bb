package traversal

import "container/heap"

// frontierEntry is one scored entry in the priority frontier. seq breaks
// score ties in insertion order, so extraction among equal scores is
// stable FIFO. Tie order affects which of several equal-cost paths is
// reported, never optimality.
type frontierEntry struct {
	id    string
	score float64
	seq   uint64
}

// entryHeap implements heap.Interface over frontier entries.
type entryHeap []frontierEntry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[i].seq < h[j].seq
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(frontierEntry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// priorityFrontier is the min-priority queue used by the weighted
// strategies. Instead of decrease-key, callers insert duplicates as
// better paths are found; stale entries are detected on extraction by
// comparing the popped score against the best-known score.
type priorityFrontier struct {
	entries entryHeap
	nextSeq uint64
}

func newPriorityFrontier() *priorityFrontier {
	return &priorityFrontier{}
}

// Push inserts an entry, O(log n). Duplicate ids are allowed.
func (f *priorityFrontier) Push(id string, score float64) {
	heap.Push(&f.entries, frontierEntry{id: id, score: score, seq: f.nextSeq})
	f.nextSeq++
}

// Pop removes and returns the lowest-score entry, O(log n).
// ok=false signals an empty frontier.
func (f *priorityFrontier) Pop() (frontierEntry, bool) {
	if f.entries.Len() == 0 {
		return frontierEntry{}, false
	}
	return heap.Pop(&f.entries).(frontierEntry), true
}

func (f *priorityFrontier) Len() int { return f.entries.Len() }

// fifoFrontier is the BFS queue.
type fifoFrontier struct {
	items []string
}

func (f *fifoFrontier) Push(id string) { f.items = append(f.items, id) }

func (f *fifoFrontier) Pop() (string, bool) {
	if len(f.items) == 0 {
		return "", false
	}
	id := f.items[0]
	f.items = f.items[1:]
	return id, true
}

func (f *fifoFrontier) Len() int { return len(f.items) }

// lifoFrontier is the DFS stack.
type lifoFrontier struct {
	items []string
}

func (f *lifoFrontier) Push(id string) { f.items = append(f.items, id) }

func (f *lifoFrontier) Pop() (string, bool) {
	if len(f.items) == 0 {
		return "", false
	}
	id := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return id, true
}

func (f *lifoFrontier) Len() int { return len(f.items) }
