package traverse

import (
	"errors"
	"fmt"

	"github.com/matzehuels/tripgraph/pkg/graph"
)

// ErrStopped is returned when a PostVisit or PostEdge hook returns false.
var ErrStopped = errors.New("traversal stopped")

// Hooks are the callbacks of a depth-first walk. Any of them may be nil.
type Hooks struct {
	PreVisit  func(v int) bool
	PostVisit func(v int) bool
	PreEdge   func(v, w int) bool
	PostEdge  func(v, w int) bool
}

func (h Hooks) preVisit(v int) bool    { return h.PreVisit == nil || h.PreVisit(v) }
func (h Hooks) postVisit(v int) bool   { return h.PostVisit == nil || h.PostVisit(v) }
func (h Hooks) preEdge(v, w int) bool  { return h.PreEdge == nil || h.PreEdge(v, w) }
func (h Hooks) postEdge(v, w int) bool { return h.PostEdge == nil || h.PostEdge(v, w) }

// frame is one vertex on the walk stack. child is the successor currently
// being explored, or 0.
type frame struct {
	v     int
	succ  *graph.Iteration[int]
	child int
}

// Traversal is a reusable depth-first walker over one graph.
type Traversal struct {
	g      graph.Graph
	hooks  Hooks
	marked []bool
}

// New returns a Traversal of g with no vertex marked.
func New(g graph.Graph, hooks Hooks) *Traversal {
	return &Traversal{
		g:      g,
		hooks:  hooks,
		marked: make([]bool, g.MaxVertex()+1),
	}
}

// Traverse walks depth first from start. It does nothing if start is already
// marked. Returns graph.ErrInvalidVertex if start is not live and ErrStopped
// if a post hook ends the walk early.
func (t *Traversal) Traverse(start int) error {
	if !t.g.Contains(start) || start >= len(t.marked) {
		return fmt.Errorf("traverse from %d: %w", start, graph.ErrInvalidVertex)
	}
	if t.marked[start] {
		return nil
	}

	stack := []frame{t.enter(start)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if w := top.child; w != 0 {
			top.child = 0
			if !t.hooks.postEdge(top.v, w) {
				return fmt.Errorf("after edge (%d, %d): %w", top.v, w, ErrStopped)
			}
		}

		if w, ok := t.nextChild(top); ok {
			top.child = w
			stack = append(stack, t.enter(w))
			continue
		}

		v := top.v
		stack = stack[:len(stack)-1]
		if !t.hooks.postVisit(v) {
			return fmt.Errorf("after vertex %d: %w", v, ErrStopped)
		}
	}
	return nil
}

// enter marks v and builds its frame. A pruned vertex gets no successors.
func (t *Traversal) enter(v int) frame {
	t.marked[v] = true
	if !t.hooks.preVisit(v) {
		return frame{v: v, succ: graph.Empty[int]()}
	}
	return frame{v: v, succ: t.g.Successors(v)}
}

// nextChild pulls successors of f until one is unmarked and accepted by
// PreEdge.
func (t *Traversal) nextChild(f *frame) (int, bool) {
	for w := range f.succ.All() {
		if w >= len(t.marked) || t.marked[w] {
			continue
		}
		if t.hooks.preEdge(f.v, w) {
			return w, true
		}
	}
	return 0, false
}

// TraverseAll walks from every unmarked vertex in ascending id order, covering
// the whole graph.
func (t *Traversal) TraverseAll() error {
	for v := range t.g.Vertices().All() {
		if v < len(t.marked) && !t.marked[v] {
			if err := t.Traverse(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clear unmarks every vertex.
func (t *Traversal) Clear() {
	clear(t.marked)
}

// Mark marks v so the walk will not enter it.
func (t *Traversal) Mark(v int) {
	if v > 0 && v < len(t.marked) {
		t.marked[v] = true
	}
}

// Unmark lets the walk enter v again.
func (t *Traversal) Unmark(v int) {
	if v > 0 && v < len(t.marked) {
		t.marked[v] = false
	}
}

// Marked reports whether v has been entered or marked.
func (t *Traversal) Marked(v int) bool {
	return v > 0 && v < len(t.marked) && t.marked[v]
}

// PostOrder returns the vertices reachable from start in the order their
// walk finishes.
func PostOrder(g graph.Graph, start int) ([]int, error) {
	var order []int
	t := New(g, Hooks{PostVisit: func(v int) bool {
		order = append(order, v)
		return true
	}})
	if err := t.Traverse(start); err != nil {
		return nil, err
	}
	return order, nil
}

// Reachable returns start and every vertex reachable from it, in discovery
// order.
func Reachable(g graph.Graph, start int) ([]int, error) {
	var seen []int
	t := New(g, Hooks{PreVisit: func(v int) bool {
		seen = append(seen, v)
		return true
	}})
	if err := t.Traverse(start); err != nil {
		return nil, err
	}
	return seen, nil
}
