package primitives

// Queue is an insertion-ordered list of pending items.
//
// Sweep visits every item present when the sweep starts exactly once, in
// insertion order, and removes the ones the visitor accepts. Items pushed while a
// sweep is running are kept and left for the next sweep. Not safe for concurrent use.
type Queue[T any] struct {
	items []T
}

// Push appends an item to the tail of the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Items returns a copy of the pending items in insertion order.
func (q *Queue[T]) Items() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)
	return out
}

// Sweep calls visit on each pending item and drops the items for which visit
// returns true. It returns the number of dropped items.
func (q *Queue[T]) Sweep(visit func(T) bool) int {
	// Detach the current items so pushes from inside visit land on a fresh slice.
	batch := q.items
	q.items = nil

	var kept []T
	removed := 0
	for _, item := range batch {
		if visit(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}

	q.items = append(kept, q.items...)
	return removed
}
