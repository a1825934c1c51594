package search

import "math"

// Labels stores the per-vertex results of a search: the best known distance
// from the source and the predecessor on that best path.
//
// A custom Labels lets callers keep results in their own structures, for
// example on the vertex labels of a [graph.Labeled] graph.
type Labels interface {
	Weight(v int) float64
	SetWeight(v int, w float64)
	Predecessor(v int) int
	SetPredecessor(v, u int)
	// Reset returns v to the unreached state: +Inf distance, no predecessor.
	Reset(v int)
}

// ArrayLabels is the default Labels, backed by two slices indexed by vertex id.
// Reads outside the allocated range report an unreached vertex.
type ArrayLabels struct {
	weight []float64
	pred   []int
}

// NewArrayLabels allocates labels for ids 0..size-1, all unreached.
func NewArrayLabels(size int) *ArrayLabels {
	l := &ArrayLabels{
		weight: make([]float64, size),
		pred:   make([]int, size),
	}
	for i := range l.weight {
		l.weight[i] = math.Inf(1)
	}
	return l
}

func (l *ArrayLabels) inRange(v int) bool { return v >= 0 && v < len(l.weight) }

// Weight returns the distance label of v, or +Inf if v is out of range.
func (l *ArrayLabels) Weight(v int) float64 {
	if !l.inRange(v) {
		return math.Inf(1)
	}
	return l.weight[v]
}

// SetWeight records w as the distance of v. Out-of-range ids are ignored.
func (l *ArrayLabels) SetWeight(v int, w float64) {
	if l.inRange(v) {
		l.weight[v] = w
	}
}

// Predecessor returns the predecessor of v, or 0 if none is recorded.
func (l *ArrayLabels) Predecessor(v int) int {
	if !l.inRange(v) {
		return 0
	}
	return l.pred[v]
}

// SetPredecessor records u as the predecessor of v.
func (l *ArrayLabels) SetPredecessor(v, u int) {
	if l.inRange(v) {
		l.pred[v] = u
	}
}

// Reset marks v unreached.
func (l *ArrayLabels) Reset(v int) {
	if l.inRange(v) {
		l.weight[v] = math.Inf(1)
		l.pred[v] = 0
	}
}

var _ Labels = (*ArrayLabels)(nil)
