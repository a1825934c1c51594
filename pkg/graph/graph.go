package graph

// Edge is an ordered pair of vertex ids.
// For undirected graphs the orientation is the one given to AddEdge.
type Edge struct {
	From int
	To   int
}

// IsSelf reports whether the edge starts and ends at the same vertex.
func (e Edge) IsSelf() bool { return e.From == e.To }

// Graph is the capability set shared by directed and undirected graphs.
// Search and traversal code depends only on this interface, so it works the
// same over [Directed], [Undirected] and [Labeled] graphs.
//
// Vertex ids are positive; 0 never names a vertex.
type Graph interface {
	// Directed reports whether (u,v) and (v,u) are distinct edges.
	Directed() bool

	// VertexSize returns the number of live vertices.
	VertexSize() int
	// EdgeSize returns the number of live edges. An undirected edge counts once.
	EdgeSize() int
	// MaxVertex returns the greatest live vertex id, or 0 for an empty graph.
	MaxVertex() int

	// Contains reports whether v is a live vertex.
	Contains(v int) bool
	// ContainsEdge reports whether the edge (u,v) exists.
	ContainsEdge(u, v int) bool

	// Add creates a vertex and returns its id: the smallest id that is not
	// live, reusing gaps left by Remove before growing.
	Add() int
	// AddEdge inserts (u,v) and returns its edge identity. Adding an edge that
	// already exists returns its identity without changing the graph.
	// Returns ErrInvalidVertex if u or v is not live.
	AddEdge(u, v int) (int, error)
	// Remove deletes v together with every edge touching it and frees v's id.
	// It is a no-op if v is not live.
	Remove(v int)
	// RemoveEdge deletes (u,v) if present and is a no-op otherwise.
	RemoveEdge(u, v int)
	// EdgeID returns the identity of the live edge (u,v), or ErrInvalidEdge.
	// No two live edges share an identity; identities are reused after removal.
	EdgeID(u, v int) (int, error)

	// Successors yields the vertices w with an edge (v,w), including v itself
	// once if v has a self-edge. It is empty for a vertex that is not live.
	Successors(v int) *Iteration[int]
	// Predecessors yields the vertices u with an edge (u,v), including v itself
	// once if v has a self-edge. It is empty for a vertex that is not live.
	Predecessors(v int) *Iteration[int]
	// OutDegree returns the number of successors of v.
	OutDegree(v int) int
	// InDegree returns the number of predecessors of v.
	InDegree(v int) int

	// Vertices yields all live vertex ids in ascending order.
	Vertices() *Iteration[int]
	// Edges yields all live edges in identity order, each one exactly once.
	Edges() *Iteration[Edge]
}

// Directed is a graph whose edges have a direction. An edge (u,v) makes v a
// successor of u and u a predecessor of v, and nothing else.
//
// The zero value is not usable; create instances with [NewDirected].
type Directed struct {
	store
}

// NewDirected returns an empty directed graph.
func NewDirected() *Directed {
	return &Directed{store: newStore(false)}
}

// Directed always returns true.
func (g *Directed) Directed() bool { return true }

// Successors yields the out-neighbors of v, self-edge first.
func (g *Directed) Successors(v int) *Iteration[int] {
	a := g.adj(v)
	if a == nil {
		return Empty[int]()
	}
	return concat(single(v, a.self), FromSlice(a.out))
}

// Predecessors yields the in-neighbors of v, self-edge first.
func (g *Directed) Predecessors(v int) *Iteration[int] {
	a := g.adj(v)
	if a == nil {
		return Empty[int]()
	}
	return concat(single(v, a.self), FromSlice(a.in))
}

// OutDegree returns the number of edges leaving v, counting a self-edge once.
func (g *Directed) OutDegree(v int) int {
	a := g.adj(v)
	if a == nil {
		return 0
	}
	return len(a.out) + a.loops()
}

// InDegree returns the number of edges entering v, counting a self-edge once.
func (g *Directed) InDegree(v int) int {
	a := g.adj(v)
	if a == nil {
		return 0
	}
	return len(a.in) + a.loops()
}

// Undirected is a graph whose edges have no direction: adding (u,v) makes
// both ContainsEdge(u,v) and ContainsEdge(v,u) true, and removing either
// orientation removes the edge.
//
// The zero value is not usable; create instances with [NewUndirected].
type Undirected struct {
	store
}

// NewUndirected returns an empty undirected graph.
func NewUndirected() *Undirected {
	return &Undirected{store: newStore(true)}
}

// Directed always returns false.
func (g *Undirected) Directed() bool { return false }

// Successors yields every vertex sharing an edge with v, self-edge first.
func (g *Undirected) Successors(v int) *Iteration[int] {
	a := g.adj(v)
	if a == nil {
		return Empty[int]()
	}
	return concat(single(v, a.self), FromSlice(a.out), FromSlice(a.in))
}

// Predecessors is identical to Successors for undirected graphs.
func (g *Undirected) Predecessors(v int) *Iteration[int] {
	return g.Successors(v)
}

// OutDegree returns the number of edges touching v, counting a self-edge once.
func (g *Undirected) OutDegree(v int) int {
	a := g.adj(v)
	if a == nil {
		return 0
	}
	return len(a.out) + len(a.in) + a.loops()
}

// InDegree is identical to OutDegree for undirected graphs.
func (g *Undirected) InDegree(v int) int {
	return g.OutDegree(v)
}

var (
	_ Graph = (*Directed)(nil)
	_ Graph = (*Undirected)(nil)
)
