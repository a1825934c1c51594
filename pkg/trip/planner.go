package trip

import (
	"context"
	"errors"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/tripgraph/pkg/errors"
	"github.com/matzehuels/tripgraph/pkg/graph/search"
	"github.com/matzehuels/tripgraph/pkg/graph/traverse"
	"github.com/matzehuels/tripgraph/pkg/observability"
)

// Planner finds routes on one RoadMap. It is safe to reuse for many trips but
// not for concurrent use, and the map must not change while it plans.
type Planner struct {
	m         *RoadMap
	logger    *log.Logger
	heuristic bool
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithLogger sets the logger for per-leg debug output.
func WithLogger(l *log.Logger) PlannerOption {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithHeuristic toggles the straight-line distance estimate. Without it each
// leg is a plain Dijkstra search; routes are the same, only slower to find.
func WithHeuristic(on bool) PlannerOption {
	return func(p *Planner) { p.heuristic = on }
}

// NewPlanner returns a planner for m. By default it logs nowhere and uses the
// straight-line heuristic.
func NewPlanner(m *RoadMap, opts ...PlannerOption) *Planner {
	p := &Planner{
		m:         m,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
		heuristic: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan finds the shortest trip visiting stops in order and describes it.
// The context is checked between legs.
func (p *Planner) Plan(ctx context.Context, stops []string) (*Report, error) {
	if err := errs.ValidateStops(stops); err != nil {
		return nil, err
	}
	ids := make([]int, len(stops))
	for i, name := range stops {
		v, ok := p.m.Lookup(name)
		if !ok {
			return nil, errs.New(errs.ErrCodeLocationNotFound, "no location named %s", name)
		}
		ids[i] = v
	}

	report := &Report{Start: stops[0]}
	for i := 1; i < len(ids); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, err := p.leg(ctx, ids[i-1], ids[i])
		if err != nil {
			return nil, err
		}
		if err := p.describe(report, path); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// leg returns the shortest vertex path from one stop to the next.
func (p *Planner) leg(ctx context.Context, from, to int) ([]int, error) {
	fromName, toName := p.m.Location(from).Name, p.m.Location(to).Name
	dest := p.m.Location(to)

	opts := []search.Option{search.WithDestination(to)}
	if p.heuristic {
		opts = append(opts, search.WithHeuristic(func(v int) float64 {
			return p.m.Location(v).Dist(dest)
		}))
	}
	paths := search.New(p.m.Graph(), from, p.length, opts...)

	observability.Planner().OnSearchStart(ctx, fromName, toName)
	start := time.Now()
	err := paths.SetPaths()
	var path []int
	if err == nil {
		path, err = paths.Path()
	}
	if errors.Is(err, search.ErrNoPath) {
		err = errs.Wrap(errs.ErrCodeNoRoute, err, "no route from %s to %s", fromName, toName)
	}
	observability.Planner().OnSearchComplete(ctx, fromName, toName, paths.Settled(), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("planned leg",
		"from", fromName,
		"to", toName,
		"settled", paths.Settled(),
		"distance", roundTenth(paths.Weight(to)))
	return path, nil
}

// length is the edge weight: the length of the road segment.
func (p *Planner) length(u, v int) float64 {
	r, err := p.m.Road(u, v)
	if err != nil {
		return 0
	}
	return r.Length
}

// describe appends the steps of one leg to report, merging consecutive
// segments of the same road in the same direction.
func (p *Planner) describe(report *Report, path []int) error {
	var cur *Step
	for i := 1; i < len(path); i++ {
		road, err := p.m.Road(path[i-1], path[i])
		if err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "describe route")
		}
		report.Distance += road.Length
		if cur != nil && cur.Road == road.Name && cur.Dir == road.Dir {
			cur.Length += road.Length
			continue
		}
		report.Steps = append(report.Steps, Step{
			Number: len(report.Steps) + 1,
			Road:   road.Name,
			Dir:    road.Dir,
			Length: road.Length,
		})
		cur = &report.Steps[len(report.Steps)-1]
	}
	if cur != nil {
		cur.To = p.m.Location(path[len(path)-1]).Name
	}
	return nil
}

// Reachable returns the names of all locations that can be driven to from
// the location called name, sorted, excluding name itself.
func (p *Planner) Reachable(name string) ([]string, error) {
	if err := errs.ValidateLocationName(name); err != nil {
		return nil, err
	}
	start, ok := p.m.Lookup(name)
	if !ok {
		return nil, errs.New(errs.ErrCodeLocationNotFound, "no location named %s", name)
	}
	ids, err := traverse.Reachable(p.m.Graph(), start)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "walk from %s", name)
	}

	names := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != start {
			names = append(names, p.m.Location(v).Name)
		}
	}
	slices.Sort(names)
	return names, nil
}
