package search

import (
	"fmt"
	"slices"

	"github.com/matzehuels/tripgraph/pkg/graph"
)

// EdgeWeightFunc returns the cost of traversing the edge (u,v).
// It is only called for existing edges and must not return a negative value.
type EdgeWeightFunc func(u, v int) float64

// HeuristicFunc estimates the remaining cost from v to the destination.
// It must never overestimate that cost.
type HeuristicFunc func(v int) float64

// Option configures a Paths before it runs.
type Option func(*Paths)

// WithDestination stops the search once v is finalized. 0 means no
// destination: every reachable vertex is settled.
func WithDestination(v int) Option {
	return func(p *Paths) { p.dest = v }
}

// WithHeuristic turns the search into A* guided by h.
// A nil h keeps the default, which always estimates 0.
func WithHeuristic(h HeuristicFunc) Option {
	return func(p *Paths) {
		if h != nil {
			p.estimate = h
		}
	}
}

// WithLabels stores distances and predecessors in l instead of the default
// [ArrayLabels].
func WithLabels(l Labels) Option {
	return func(p *Paths) {
		if l != nil {
			p.labels = l
		}
	}
}

// Paths is a single-source shortest-path search and its results.
//
// Create one with [New], run it with [Paths.SetPaths], then read distances
// with [Paths.Weight] and routes with [Paths.PathTo] or [Paths.Path].
// A Paths is not safe for concurrent use.
type Paths struct {
	g        graph.Graph
	source   int
	dest     int
	weight   EdgeWeightFunc
	estimate HeuristicFunc
	labels   Labels

	visited []bool
	settled int
}

// New prepares a search of g from source. Result storage covers the vertex
// ids that exist in g at this point.
func New(g graph.Graph, source int, weight EdgeWeightFunc, opts ...Option) *Paths {
	size := g.MaxVertex() + 1
	p := &Paths{
		g:        g,
		source:   source,
		weight:   weight,
		estimate: func(int) float64 { return 0 },
		visited:  make([]bool, size),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.labels == nil {
		p.labels = NewArrayLabels(size)
	}
	return p
}

// SetPaths runs the search, replacing the results of any earlier run.
// Returns graph.ErrInvalidVertex if the source is not a live vertex.
func (p *Paths) SetPaths() error {
	if !p.g.Contains(p.source) || p.source >= len(p.visited) {
		return fmt.Errorf("search from %d: %w", p.source, graph.ErrInvalidVertex)
	}

	for v := range p.visited {
		p.visited[v] = false
		p.labels.Reset(v)
	}
	p.settled = 0

	p.labels.SetWeight(p.source, 0)
	q := &queue{}
	q.push(p.source, p.estimate(p.source))

	for q.Len() > 0 {
		cur := q.pop().v
		if p.visited[cur] {
			continue
		}
		p.visited[cur] = true
		p.settled++
		if cur == p.dest {
			return nil
		}

		d := p.labels.Weight(cur)
		for nxt := range p.g.Successors(cur).All() {
			if nxt >= len(p.visited) {
				continue
			}
			candidate := d + p.weight(cur, nxt)
			if candidate < p.labels.Weight(nxt) {
				p.labels.SetWeight(nxt, candidate)
				p.labels.SetPredecessor(nxt, cur)
				q.push(nxt, candidate+p.estimate(nxt))
			}
		}
	}
	return nil
}

// Source returns the vertex the search starts from.
func (p *Paths) Source() int { return p.source }

// Dest returns the configured destination, or 0 if there is none.
func (p *Paths) Dest() int { return p.dest }

// Weight returns the best known distance from the source to v, or +Inf if v
// was not reached.
func (p *Paths) Weight(v int) float64 { return p.labels.Weight(v) }

// Predecessor returns the vertex before v on its best known path, or 0.
func (p *Paths) Predecessor(v int) int { return p.labels.Predecessor(v) }

// Settled returns how many vertices the last run finalized.
func (p *Paths) Settled() int { return p.settled }

// PathTo returns the vertices of the best known path from the source to v,
// both ends included. Returns ErrNoPath if v was not reached.
//
// After a run that stopped early at its destination, paths to other vertices
// are valid routes but not necessarily the shortest ones.
func (p *Paths) PathTo(v int) ([]int, error) {
	if v == p.source && p.Weight(v) == 0 {
		return []int{v}, nil
	}
	if p.Predecessor(v) == 0 {
		return nil, fmt.Errorf("path %d -> %d: %w", p.source, v, ErrNoPath)
	}

	path := []int{v}
	for cur := v; cur != p.source; {
		cur = p.Predecessor(cur)
		if cur == 0 || len(path) >= len(p.visited) {
			return nil, fmt.Errorf("path %d -> %d: %w", p.source, v, ErrNoPath)
		}
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path, nil
}

// Path returns the path to the configured destination.
func (p *Paths) Path() ([]int, error) {
	if p.dest == 0 {
		return nil, ErrNoDestination
	}
	return p.PathTo(p.dest)
}
