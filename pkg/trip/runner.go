package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tripgraph/pkg/cache"
)

// Runner plans trips with caching. The CLI uses it so repeated queries
// against an unchanged map skip the search.
//
// A Runner holds no per-query state; it only carries the cache and logger.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default entry lifetime when positive.
	TTL time.Duration
}

// RouteOptions control a single Route call.
type RouteOptions struct {
	// Heuristic enables the straight-line estimate (A*).
	Heuristic bool
	// Refresh ignores a cached report and overwrites it.
	Refresh bool
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Route returns the rendered report for a trip through stops and whether it
// came from the cache. Maps without a digest are never cached.
func (r *Runner) Route(ctx context.Context, m *RoadMap, stops []string, opts RouteOptions) ([]byte, bool, error) {
	key := ""
	if m.Digest() != "" {
		key = r.Keyer.RouteKey(m.Digest(), stops, cache.RouteKeyOpts{Heuristic: opts.Heuristic})
	}

	if key != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			r.Logger.Debug("route cache hit", "stops", len(stops))
			return data, true, nil
		}
	}

	planner := NewPlanner(m, WithLogger(r.Logger), WithHeuristic(opts.Heuristic))
	report, err := planner.Plan(ctx, stops)
	if err != nil {
		return nil, false, err
	}
	data := []byte(report.String())

	r.Logger.Info("planned trip",
		"stops", len(stops),
		"steps", len(report.Steps),
		"miles", roundTenth(report.Distance))

	if key != "" {
		if err := r.Cache.Set(ctx, key, data, r.ttl(cache.TTLRoute)); err != nil {
			r.Logger.Warn("could not cache route", "error", err)
		}
	}
	return data, false, nil
}

// Reach returns the locations reachable from the named stop and whether the
// list came from the cache.
func (r *Runner) Reach(ctx context.Context, m *RoadMap, from string) ([]string, bool, error) {
	key := ""
	if m.Digest() != "" {
		key = r.Keyer.ReachKey(m.Digest(), from)
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var names []string
			if err := json.Unmarshal(data, &names); err == nil {
				return names, true, nil
			}
		}
	}

	names, err := NewPlanner(m, WithLogger(r.Logger)).Reachable(from)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		data, err := json.Marshal(names)
		if err != nil {
			return nil, false, fmt.Errorf("encode reachable set: %w", err)
		}
		if err := r.Cache.Set(ctx, key, data, r.ttl(cache.TTLReach)); err != nil {
			r.Logger.Warn("could not cache reachable set", "error", err)
		}
	}
	return names, false, nil
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}
