// Package traverse walks a [graph.Graph] depth first and reports progress
// through user-supplied hooks.
//
// # Hooks
//
// A [Traversal] calls four optional [Hooks] around each vertex it visits:
//
//	PreVisit(v)      before v's successors; false prunes them
//	PreEdge(v, w)    before descending into an unmarked successor w; false skips the edge
//	PostEdge(v, w)   after w's subtree is finished; false stops the walk
//	PostVisit(v)     after all of v's successors; false stops the walk
//
// A nil hook behaves as one that always returns true. A pruned vertex is still
// marked and still gets its PostVisit call.
//
// # Marks
//
// Every vertex entered is marked and is never entered again until it is
// unmarked. Marks survive between [Traversal.Traverse] calls, so several
// calls on one Traversal cover disjoint parts of the graph. Use
// [Traversal.Clear] or [Traversal.Unmark] to re-arm vertices.
//
// The walk keeps an explicit stack and pulls successors lazily, so deep graphs
// do not grow the goroutine stack. Mark storage is sized from the graph when
// the Traversal is created.
package traverse
