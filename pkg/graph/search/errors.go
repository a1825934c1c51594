package search

import "errors"

var (
	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("no path")

	// ErrNoDestination is returned by Path when no destination was configured.
	ErrNoDestination = errors.New("no destination")
)
