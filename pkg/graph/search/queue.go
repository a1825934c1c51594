package search

import "container/heap"

// entry is a queued vertex with the priority it had when pushed.
// Entries go stale when the vertex is finalized through a cheaper one.
type entry struct {
	v        int
	priority float64
}

// queue is a min-heap of entries ordered by priority, then vertex id.
type queue []entry

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].v < q[j].v
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x any)   { *q = append(*q, x.(entry)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

func (q *queue) push(v int, priority float64) {
	heap.Push(q, entry{v: v, priority: priority})
}

func (q *queue) pop() entry {
	return heap.Pop(q).(entry)
}
