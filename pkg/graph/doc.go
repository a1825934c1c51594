// Package graph provides the vertex/edge store at the heart of tripgraph.
//
// # Overview
//
// Vertices are identified by positive integers issued by the graph itself.
// Ids are recycled: after [Graph.Remove] frees an id, the next [Graph.Add]
// returns the smallest id that is not live before growing past
// [Graph.MaxVertex]. Edges are ordered pairs of live vertices. Self-edges are
// allowed and tracked as a per-vertex flag rather than adjacency entries, so a
// self-edge shows up exactly once in successor, predecessor and edge listings.
//
// Two variants implement [Graph]:
//
//   - [Directed]: (u,v) contributes to u's successors and v's predecessors only.
//   - [Undirected]: (u,v) and (v,u) are one logical edge; successors and
//     predecessors of a vertex are the same set.
//
// Both share the same storage and differ only in how adjacency queries read it.
//
// # Basic Usage
//
//	g := graph.NewDirected()
//	a, b := g.Add(), g.Add()
//	if _, err := g.AddEdge(a, b); err != nil {
//	    return err
//	}
//	for v := range g.Successors(a).All() {
//	    fmt.Println(v)
//	}
//
// # Iteration
//
// Queries that produce many results return an [Iteration]: a lazy, finite,
// single-pass sequence. An Iteration cannot be restarted; call the query again
// for a fresh one. Use [Iteration.All] with range-over-func, or
// [Iteration.Collect] to materialize a slice.
//
// # Labels
//
// [Labeled] decorates any [Graph] with opaque vertex and edge labels. Labels
// are keyed by vertex id and by edge identity, and they are dropped when the
// vertex or edge they belong to is removed.
//
// # Concurrency
//
// Graphs are not safe for concurrent use. Callers must not mutate a graph while
// an Iteration, a search or a traversal over it is in progress.
//
// # Related Packages
//
// The [search] subpackage computes shortest paths (Dijkstra or A*), and the
// [traverse] subpackage runs hook-driven depth-first traversals.
//
// [search]: github.com/matzehuels/tripgraph/pkg/graph/search
// [traverse]: github.com/matzehuels/tripgraph/pkg/graph/traverse
package graph
