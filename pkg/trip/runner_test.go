package trip

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tripgraph/pkg/cache"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	logger := log.NewWithOptions(&bytes.Buffer{}, log.Options{})
	return NewRunner(c, nil, logger)
}

func TestRunnerRouteCaches(t *testing.T) {
	r := newTestRunner(t)
	m := loadBay(t)
	ctx := context.Background()
	stops := []string{"Albany", "San_Francisco"}

	first, hit, err := r.Route(ctx, m, stops, RouteOptions{Heuristic: true})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.True(t, strings.HasPrefix(string(first), "From Albany:\n\n"))

	second, hit, err := r.Route(ctx, m, stops, RouteOptions{Heuristic: true})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)

	_, hit, err = r.Route(ctx, m, stops, RouteOptions{Heuristic: true, Refresh: true})
	require.NoError(t, err)
	assert.False(t, hit, "refresh bypasses the cache")

	_, hit, err = r.Route(ctx, m, stops, RouteOptions{})
	require.NoError(t, err)
	assert.False(t, hit, "heuristic setting is part of the key")
}

func TestRunnerRouteKeyedByMapContents(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	stops := []string{"A", "B"}

	m1, err := ReadMap(strings.NewReader("L A 0 0 L B 0 1 R A Main 1 SN B"))
	require.NoError(t, err)
	m2, err := ReadMap(strings.NewReader("L A 0 0 L B 0 1 R A Main 2 SN B"))
	require.NoError(t, err)

	out1, _, err := r.Route(ctx, m1, stops, RouteOptions{})
	require.NoError(t, err)
	out2, hit, err := r.Route(ctx, m2, stops, RouteOptions{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Contains(t, string(out1), "for 1.0 miles")
	assert.Contains(t, string(out2), "for 2.0 miles")
}

func TestRunnerRouteWithoutDigestSkipsCache(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	m := NewRoadMap()
	_, err := m.AddLocation("A", 0, 0)
	require.NoError(t, err)
	_, err = m.AddLocation("B", 1, 0)
	require.NoError(t, err)
	require.NoError(t, m.AddRoad("A", "Main", 1, WestToEast, "B"))

	for range 2 {
		_, hit, err := r.Route(ctx, m, []string{"A", "B"}, RouteOptions{})
		require.NoError(t, err)
		assert.False(t, hit)
	}
}

func TestRunnerRouteError(t *testing.T) {
	r := newTestRunner(t)
	_, _, err := r.Route(context.Background(), loadBay(t), []string{"Albany", "Alcatraz"}, RouteOptions{})
	assert.Error(t, err)
}

func TestRunnerReach(t *testing.T) {
	r := newTestRunner(t)
	m := loadBay(t)
	ctx := context.Background()

	names, hit, err := r.Reach(ctx, m, "Oakland")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Len(t, names, 5)

	cached, hit, err := r.Reach(ctx, m, "Oakland")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, names, cached)
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	assert.IsType(t, &cache.NullCache{}, r.Cache)
	assert.NotNil(t, r.Keyer)
	assert.NotNil(t, r.Logger)
}

type ttlRecorder struct {
	cache.Cache
	ttls []time.Duration
}

func (c *ttlRecorder) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.ttls = append(c.ttls, ttl)
	return c.Cache.Set(ctx, key, data, ttl)
}

func TestRunnerTTL(t *testing.T) {
	rec := &ttlRecorder{Cache: cache.NewNullCache()}
	r := NewRunner(rec, nil, log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	m := loadBay(t)
	ctx := context.Background()

	_, _, err := r.Route(ctx, m, []string{"Albany", "Oakland"}, RouteOptions{})
	require.NoError(t, err)
	r.TTL = time.Hour
	_, _, err = r.Reach(ctx, m, "Albany")
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{cache.TTLRoute, time.Hour}, rec.ttls)
}
