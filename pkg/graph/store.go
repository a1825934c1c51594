package graph

import (
	"container/heap"
	"fmt"
	"slices"
)

// adjacency is the per-vertex record. out holds v for every stored edge
// (owner, v) and in holds u for every stored edge (u, owner); self-edges live
// in the flag only.
type adjacency struct {
	out  []int
	in   []int
	self bool
}

func (a *adjacency) loops() int {
	if a.self {
		return 1
	}
	return 0
}

// store is the vertex and edge storage shared by Directed and Undirected.
//
// Vertices live in a slot table indexed by id (slot 0 unused, nil = free) and
// edges in a second slot table indexed by edge identity (zero Edge = free).
// Freed ids go onto min-heaps so the smallest one is reused first.
type store struct {
	symmetric bool

	slots     []*adjacency
	freeIDs   idHeap
	vertices  int
	maxVertex int

	edges     []Edge
	freeEdges idHeap
	edgeIndex map[Edge]int // canonical pair -> edge identity
}

func newStore(symmetric bool) store {
	return store{
		symmetric: symmetric,
		slots:     []*adjacency{nil},
		edges:     []Edge{{}},
		edgeIndex: make(map[Edge]int),
	}
}

// key returns the canonical index key of (u,v). Undirected pairs are stored
// smallest id first so both orientations hit the same entry.
func (s *store) key(u, v int) Edge {
	if s.symmetric && v < u {
		return Edge{From: v, To: u}
	}
	return Edge{From: u, To: v}
}

func (s *store) adj(v int) *adjacency {
	if v <= 0 || v >= len(s.slots) {
		return nil
	}
	return s.slots[v]
}

// VertexSize returns the number of live vertices.
func (s *store) VertexSize() int { return s.vertices }

// EdgeSize returns the number of live edges.
func (s *store) EdgeSize() int { return len(s.edgeIndex) }

// MaxVertex returns the greatest live vertex id, or 0 for an empty graph.
func (s *store) MaxVertex() int { return s.maxVertex }

// Contains reports whether v is a live vertex.
func (s *store) Contains(v int) bool { return s.adj(v) != nil }

// ContainsEdge reports whether the edge (u,v) exists.
func (s *store) ContainsEdge(u, v int) bool {
	_, ok := s.edgeIndex[s.key(u, v)]
	return ok
}

// Add creates a vertex, reusing the smallest free id if there is one.
func (s *store) Add() int {
	v, ok := s.freeIDs.take()
	if !ok {
		v = len(s.slots)
		s.slots = append(s.slots, nil)
	}
	s.slots[v] = &adjacency{}
	s.vertices++
	s.maxVertex = max(s.maxVertex, v)
	return v
}

// Remove deletes v and every edge touching it, then frees its id.
func (s *store) Remove(v int) {
	a := s.adj(v)
	if a == nil {
		return
	}
	for _, w := range slices.Clone(a.out) {
		s.unlink(v, w)
	}
	for _, u := range slices.Clone(a.in) {
		s.unlink(u, v)
	}
	if a.self {
		s.unlink(v, v)
	}

	s.slots[v] = nil
	s.freeIDs.release(v)
	s.vertices--
	for s.maxVertex > 0 && s.slots[s.maxVertex] == nil {
		s.maxVertex--
	}
}

// AddEdge inserts (u,v) and returns its identity.
func (s *store) AddEdge(u, v int) (int, error) {
	if s.adj(u) == nil || s.adj(v) == nil {
		return 0, fmt.Errorf("add edge (%d, %d): %w", u, v, ErrInvalidVertex)
	}
	k := s.key(u, v)
	if id, ok := s.edgeIndex[k]; ok {
		return id, nil
	}

	id, ok := s.freeEdges.take()
	if !ok {
		id = len(s.edges)
		s.edges = append(s.edges, Edge{})
	}
	s.edges[id] = Edge{From: u, To: v}
	s.edgeIndex[k] = id

	if u == v {
		s.slots[u].self = true
	} else {
		s.slots[u].out = append(s.slots[u].out, v)
		s.slots[v].in = append(s.slots[v].in, u)
	}
	return id, nil
}

// RemoveEdge deletes (u,v) if present.
func (s *store) RemoveEdge(u, v int) {
	s.unlink(u, v)
}

// EdgeID returns the identity of the edge (u,v).
func (s *store) EdgeID(u, v int) (int, error) {
	if id, ok := s.edgeIndex[s.key(u, v)]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("edge (%d, %d): %w", u, v, ErrInvalidEdge)
}

// Vertices yields live vertex ids in ascending order.
func (s *store) Vertices() *Iteration[int] {
	v := 0
	return NewIteration(func() (int, bool) {
		for v < s.maxVertex {
			v++
			if s.slots[v] != nil {
				return v, true
			}
		}
		return 0, false
	})
}

// Edges yields live edges in identity order.
func (s *store) Edges() *Iteration[Edge] {
	id := 0
	return NewIteration(func() (Edge, bool) {
		for id+1 < len(s.edges) {
			id++
			if e := s.edges[id]; e.From != 0 {
				return e, true
			}
		}
		return Edge{}, false
	})
}

// unlink removes the edge stored under key(u,v) and releases its identity.
func (s *store) unlink(u, v int) bool {
	k := s.key(u, v)
	id, ok := s.edgeIndex[k]
	if !ok {
		return false
	}
	e := s.edges[id]
	delete(s.edgeIndex, k)
	s.edges[id] = Edge{}
	s.freeEdges.release(id)

	if e.IsSelf() {
		s.slots[e.From].self = false
		return true
	}
	from, to := s.slots[e.From], s.slots[e.To]
	from.out = deleteFirst(from.out, e.To)
	to.in = deleteFirst(to.in, e.From)
	return true
}

func deleteFirst(s []int, x int) []int {
	if i := slices.Index(s, x); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}

// idHeap is a min-heap of freed ids.
type idHeap []int

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(int)) }

func (h *idHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// take pops the smallest freed id, if any.
func (h *idHeap) take() (int, bool) {
	if h.Len() == 0 {
		return 0, false
	}
	return heap.Pop(h).(int), true
}

// release makes id available for reuse.
func (h *idHeap) release(id int) {
	heap.Push(h, id)
}
