package graph

import "fmt"

// Labeled decorates a Graph with a label of type VL per vertex and a label of
// type EL per edge. Labels are opaque to the graph: they do not change any
// adjacency semantics, and they disappear together with their vertex or edge.
//
// Edge labels are keyed by edge identity, so on an undirected graph (u,v) and
// (v,u) share one label.
//
// Labeled implements [Graph] by forwarding to the wrapped graph, which it
// takes ownership of: mutating g directly after NewLabeled leaves stale labels.
type Labeled[VL, EL any] struct {
	g            Graph
	vertexLabels map[int]VL
	edgeLabels   map[int]EL
}

// NewLabeled wraps g. Existing vertices and edges of g start unlabeled.
func NewLabeled[VL, EL any](g Graph) *Labeled[VL, EL] {
	return &Labeled[VL, EL]{
		g:            g,
		vertexLabels: make(map[int]VL),
		edgeLabels:   make(map[int]EL),
	}
}

// AddLabeled adds a vertex carrying label and returns its id.
func (l *Labeled[VL, EL]) AddLabeled(label VL) int {
	v := l.Add()
	l.vertexLabels[v] = label
	return v
}

// AddLabeledEdge adds (u,v) and labels it. Returns ErrInvalidVertex if either
// endpoint is not live.
func (l *Labeled[VL, EL]) AddLabeledEdge(u, v int, label EL) (int, error) {
	id, err := l.AddEdge(u, v)
	if err != nil {
		return 0, err
	}
	l.edgeLabels[id] = label
	return id, nil
}

// SetLabel attaches label to vertex v, replacing any previous label.
// Returns ErrInvalidVertex if v is not live.
func (l *Labeled[VL, EL]) SetLabel(v int, label VL) error {
	if !l.Contains(v) {
		return fmt.Errorf("set label on %d: %w", v, ErrInvalidVertex)
	}
	l.vertexLabels[v] = label
	return nil
}

// Label returns the label of vertex v, or the zero value of VL if the vertex
// is live but unlabeled. Returns ErrInvalidVertex if v is not live.
func (l *Labeled[VL, EL]) Label(v int) (VL, error) {
	if !l.Contains(v) {
		var zero VL
		return zero, fmt.Errorf("label of %d: %w", v, ErrInvalidVertex)
	}
	return l.vertexLabels[v], nil
}

// HasLabel reports whether vertex v is live and carries a label.
func (l *Labeled[VL, EL]) HasLabel(v int) bool {
	_, ok := l.vertexLabels[v]
	return ok
}

// SetEdgeLabel attaches label to the edge (u,v), replacing any previous label.
// Returns ErrInvalidEdge if the edge does not exist.
func (l *Labeled[VL, EL]) SetEdgeLabel(u, v int, label EL) error {
	id, err := l.EdgeID(u, v)
	if err != nil {
		return err
	}
	l.edgeLabels[id] = label
	return nil
}

// EdgeLabel returns the label of the edge (u,v), or the zero value of EL if
// the edge exists but is unlabeled. Returns ErrInvalidEdge if it does not exist.
func (l *Labeled[VL, EL]) EdgeLabel(u, v int) (EL, error) {
	id, err := l.EdgeID(u, v)
	if err != nil {
		var zero EL
		return zero, err
	}
	return l.edgeLabels[id], nil
}

// Remove deletes v, its incident edges and all of their labels.
func (l *Labeled[VL, EL]) Remove(v int) {
	if !l.Contains(v) {
		return
	}
	for w := range l.Successors(v).All() {
		l.dropEdgeLabel(v, w)
	}
	for u := range l.Predecessors(v).All() {
		l.dropEdgeLabel(u, v)
	}
	delete(l.vertexLabels, v)
	l.g.Remove(v)
}

// RemoveEdge deletes (u,v) and its label.
func (l *Labeled[VL, EL]) RemoveEdge(u, v int) {
	l.dropEdgeLabel(u, v)
	l.g.RemoveEdge(u, v)
}

func (l *Labeled[VL, EL]) dropEdgeLabel(u, v int) {
	if id, err := l.EdgeID(u, v); err == nil {
		delete(l.edgeLabels, id)
	}
}

func (l *Labeled[VL, EL]) Directed() bool                     { return l.g.Directed() }
func (l *Labeled[VL, EL]) VertexSize() int                    { return l.g.VertexSize() }
func (l *Labeled[VL, EL]) EdgeSize() int                      { return l.g.EdgeSize() }
func (l *Labeled[VL, EL]) MaxVertex() int                     { return l.g.MaxVertex() }
func (l *Labeled[VL, EL]) Contains(v int) bool                { return l.g.Contains(v) }
func (l *Labeled[VL, EL]) ContainsEdge(u, v int) bool         { return l.g.ContainsEdge(u, v) }
func (l *Labeled[VL, EL]) Add() int                           { return l.g.Add() }
func (l *Labeled[VL, EL]) AddEdge(u, v int) (int, error)      { return l.g.AddEdge(u, v) }
func (l *Labeled[VL, EL]) EdgeID(u, v int) (int, error)       { return l.g.EdgeID(u, v) }
func (l *Labeled[VL, EL]) Successors(v int) *Iteration[int]   { return l.g.Successors(v) }
func (l *Labeled[VL, EL]) Predecessors(v int) *Iteration[int] { return l.g.Predecessors(v) }
func (l *Labeled[VL, EL]) OutDegree(v int) int                { return l.g.OutDegree(v) }
func (l *Labeled[VL, EL]) InDegree(v int) int                 { return l.g.InDegree(v) }
func (l *Labeled[VL, EL]) Vertices() *Iteration[int]          { return l.g.Vertices() }
func (l *Labeled[VL, EL]) Edges() *Iteration[Edge]            { return l.g.Edges() }

var _ Graph = (*Labeled[int, int])(nil)
