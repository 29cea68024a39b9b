// Package search implements the §4.K search kernel contract: a pluggable
// best-first loop (A*, with breadth-first search as its g-only
// specialization) over a state space addressed by content-hashed state
// indices, plus the match-tree applicable-action generator.
package search

// OpenList is a binary min-heap keyed by a scalar priority (f = g+h for
// A*, g alone for BrFS), allowing re-insertion of an already-queued
// entry: the loop is expected to discard a popped entry whose node has
// since moved to Closed, rather than the open list deduplicating eagerly.
type OpenList struct {
	entries []openEntry
}

type openEntry struct {
	priority float64
	stateIdx int
}

func NewOpenList() *OpenList {
	return &OpenList{}
}

func (o *OpenList) Len() int { return len(o.entries) }

func (o *OpenList) Push(priority float64, stateIdx int) {
	o.entries = append(o.entries, openEntry{priority: priority, stateIdx: stateIdx})
	o.siftUp(len(o.entries) - 1)
}

// Pop removes and returns the lowest-priority entry's state index. Panics
// if the list is empty; callers check Len() first.
func (o *OpenList) Pop() (stateIdx int) {
	top := o.entries[0]
	last := len(o.entries) - 1
	o.entries[0] = o.entries[last]
	o.entries = o.entries[:last]
	if len(o.entries) > 0 {
		o.siftDown(0)
	}
	return top.stateIdx
}

func (o *OpenList) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if o.entries[parent].priority <= o.entries[i].priority {
			break
		}
		o.entries[parent], o.entries[i] = o.entries[i], o.entries[parent]
		i = parent
	}
}

func (o *OpenList) siftDown(i int) {
	n := len(o.entries)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && o.entries[left].priority < o.entries[smallest].priority {
			smallest = left
		}
		if right < n && o.entries[right].priority < o.entries[smallest].priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		o.entries[i], o.entries[smallest] = o.entries[smallest], o.entries[i]
		i = smallest
	}
}
