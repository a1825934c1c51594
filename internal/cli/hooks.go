package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tripgraph/pkg/observability"
)

// logHooks reports planner and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PlannerHooks = (*logHooks)(nil)
	_ observability.CacheHooks   = (*logHooks)(nil)
)

func (h *logHooks) OnMapLoaded(_ context.Context, source string, locations, roads int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("map load failed", "source", source, "error", err)
		return
	}
	h.logger.Debug("map loaded", "source", source, "locations", locations, "roads", roads, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnSearchStart(_ context.Context, from, to string) {
	h.logger.Debug("search", "from", from, "to", to)
}

func (h *logHooks) OnSearchComplete(_ context.Context, from, to string, settled int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("search failed", "from", from, "to", to, "settled", settled, "error", err)
		return
	}
	h.logger.Debug("search done", "from", from, "to", to, "settled", settled, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
