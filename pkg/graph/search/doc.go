// Package search computes single-source shortest paths over a [graph.Graph].
//
// # Overview
//
// [Paths] runs best-first search from a source vertex. Edge costs come from a
// caller-supplied [EdgeWeightFunc]. With no heuristic the search is plain
// Dijkstra; with a [HeuristicFunc] that estimates the remaining cost to the
// destination it becomes A*.
//
// # Usage
//
//	p := search.New(g, src, func(u, v int) float64 { return length[u][v] },
//	    search.WithDestination(dst),
//	    search.WithHeuristic(func(v int) float64 { return straightLine(v, dst) }),
//	)
//	if err := p.SetPaths(); err != nil {
//	    return err
//	}
//	route, err := p.Path()
//
// When a destination is set the search stops as soon as that vertex is
// finalized. Without one it settles every vertex reachable from the source,
// after which [Paths.PathTo] answers for any of them.
//
// # Preconditions
//
// Edge weights must be non-negative and the heuristic must never overestimate
// the remaining cost. Neither is checked; violating them yields wrong
// distances, not an error.
//
// A Paths value sizes its result arrays from [graph.Graph.MaxVertex] when it is
// constructed. Vertices added to the graph afterwards are not covered, and the
// graph must not be mutated while SetPaths runs.
package search
