package graph

import "errors"

var (
	// ErrInvalidVertex is returned when an operation references a vertex id
	// that is not currently live, e.g. [Graph.AddEdge] with a removed endpoint
	// or [Labeled.SetLabel] on a vertex that was never added.
	ErrInvalidVertex = errors.New("invalid vertex")

	// ErrInvalidEdge is returned when an operation references an edge that does
	// not exist. Both endpoints may be live while the edge itself is absent.
	ErrInvalidEdge = errors.New("invalid edge")
)
