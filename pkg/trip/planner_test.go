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

	errs "github.com/matzehuels/tripgraph/pkg/errors"
	"github.com/matzehuels/tripgraph/pkg/observability"
)

func TestPlanSingleLeg(t *testing.T) {
	m := loadBay(t)

	report, err := NewPlanner(m).Plan(context.Background(), []string{"Albany", "San_Francisco"})
	require.NoError(t, err)

	want := `From Albany:

1. Take San_Pablo_Ave south for 4.4 miles.
2. Take Powell_St west for 2.4 miles.
3. Take I-80 west for 5.2 miles to San_Francisco.
`
	assert.Equal(t, want, report.String())
	assert.InDelta(t, 12.0, report.Distance, 1e-9)
}

func TestPlanMultipleLegs(t *testing.T) {
	m := loadBay(t)

	report, err := NewPlanner(m).Plan(context.Background(), []string{"Albany", "Berkeley", "Oakland", "Albany"})
	require.NoError(t, err)

	want := `From Albany:

1. Take San_Pablo_Ave south for 2.1 miles to Berkeley.
2. Take Telegraph_Ave south for 3.4 miles to Oakland.
3. Take Telegraph_Ave north for 3.4 miles.
4. Take San_Pablo_Ave north for 2.1 miles to Albany.
`
	assert.Equal(t, want, report.String())
}

func TestPlanHeuristicDoesNotChangeRoute(t *testing.T) {
	m := loadBay(t)
	ctx := context.Background()

	for _, stops := range [][]string{
		{"Albany", "San_Francisco"},
		{"San_Francisco", "Oakland"},
		{"Oakland", "Emeryville", "Albany"},
	} {
		astar, err := NewPlanner(m).Plan(ctx, stops)
		require.NoError(t, err)
		dijkstra, err := NewPlanner(m, WithHeuristic(false)).Plan(ctx, stops)
		require.NoError(t, err)
		assert.Equal(t, dijkstra.String(), astar.String(), "stops %v", stops)
	}
}

func TestPlanSameStopTwice(t *testing.T) {
	m := loadBay(t)

	report, err := NewPlanner(m).Plan(context.Background(), []string{"Berkeley", "Berkeley", "Albany"})
	require.NoError(t, err)
	require.Len(t, report.Steps, 1)
	assert.Equal(t, "1. Take San_Pablo_Ave north for 2.1 miles to Albany.", report.Steps[0].String())
}

func TestPlanErrors(t *testing.T) {
	m := loadBay(t)
	p := NewPlanner(m)
	ctx := context.Background()

	tests := []struct {
		name  string
		stops []string
		code  errs.Code
	}{
		{"one stop", []string{"Albany"}, errs.ErrCodeInvalidInput},
		{"unknown first", []string{"Sacramento", "Albany"}, errs.ErrCodeLocationNotFound},
		{"unknown later", []string{"Albany", "Berkeley", "Sacramento"}, errs.ErrCodeLocationNotFound},
		{"island", []string{"Albany", "Alcatraz"}, errs.ErrCodeNoRoute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Plan(ctx, tt.stops)
			require.Error(t, err)
			assert.Equal(t, tt.code, errs.GetCode(err), "error: %v", err)
		})
	}
}

func TestPlanCancelled(t *testing.T) {
	m := loadBay(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPlanner(m).Plan(ctx, []string{"Albany", "Oakland"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanLogsLegs(t *testing.T) {
	m := loadBay(t)
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := NewPlanner(m, WithLogger(logger)).Plan(context.Background(), []string{"Albany", "Oakland"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "planned leg")
	assert.Contains(t, out, "from=Albany")
	assert.Contains(t, out, "to=Oakland")
}

type legRecorder struct {
	observability.NoopPlannerHooks
	legs []string
}

func (r *legRecorder) OnSearchComplete(_ context.Context, from, to string, settled int, _ time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = string(errs.GetCode(err))
	}
	r.legs = append(r.legs, from+">"+to+":"+status)
}

func TestPlanReportsSearchHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	rec := &legRecorder{}
	observability.SetPlannerHooks(rec)

	m := loadBay(t)
	_, err := NewPlanner(m).Plan(context.Background(), []string{"Albany", "Berkeley", "Alcatraz"})
	require.Error(t, err)
	assert.Equal(t, []string{"Albany>Berkeley:ok", "Berkeley>Alcatraz:NO_ROUTE"}, rec.legs)
}

func TestReachable(t *testing.T) {
	m := loadBay(t)
	p := NewPlanner(m)

	names, err := p.Reachable("Albany")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bay_Bridge", "Berkeley", "Emeryville", "Oakland", "San_Francisco"}, names)

	names, err = p.Reachable("Alcatraz")
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = p.Reachable("Sacramento")
	assert.True(t, errs.Is(err, errs.ErrCodeLocationNotFound))
}

func TestStepString(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Number: 1, Road: "University_Ave", Dir: EastToWest, Length: 0.14}, "1. Take University_Ave west for 0.1 miles."},
		{Step{Number: 5, Road: "I-80", Dir: EastToWest, Length: 8.36, To: "San_Francisco"}, "5. Take I-80 west for 8.4 miles to San_Francisco."},
		{Step{Number: 2, Road: "Route_1", Dir: SouthToNorth, Length: 3}, "2. Take Route_1 north for 3.0 miles."},
		{Step{Number: 3, Road: "Main", Dir: WestToEast, Length: 0.05}, "3. Take Main east for 0.1 miles."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.step.String())
	}
}

func TestReportWriteTo(t *testing.T) {
	r := &Report{Start: "A"}
	var buf strings.Builder
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "From A:\n\n", buf.String())
	assert.Equal(t, int64(len("From A:\n\n")), n)
}
