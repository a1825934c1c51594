package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/tripgraph/pkg/errors"
	"github.com/matzehuels/tripgraph/pkg/trip"
)

var errNoMap = errs.New(errs.ErrCodeInvalidInput, "no map file given; pass --map or set map in config.toml")

// routeOpts holds the flags shared by route and reach.
type routeOpts struct {
	mapPath  string
	noCache  bool
	dijkstra bool
	refresh  bool
}

// routeCommand creates the route command.
func (c *CLI) routeCommand() *cobra.Command {
	opts := &routeOpts{}

	cmd := &cobra.Command{
		Use:   "route <stop> <stop> [stop...]",
		Short: "Print directions through a list of stops",
		Long: `Plan the shortest trip that visits each stop in order and print it as
numbered turn-by-turn directions.

Stops are location names from the map file. Adjacent steps on the same road
and heading are merged.`,
		Example: `  tripgraph route --map bay.map Albany San_Francisco
  tripgraph route --map bay.map Albany Oakland Alcatraz --dijkstra`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoute(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.mapPath, "map", "m", "", "road map file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().BoolVar(&opts.dijkstra, "dijkstra", false, "search without the straight-line heuristic")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute and overwrite a cached report")

	return cmd
}

func (c *CLI) runRoute(cmd *cobra.Command, opts *routeOpts, stops []string) error {
	ctx := cmd.Context()

	m, err := c.loadMap(ctx, opts.mapPath)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	heuristic := c.Config.UseHeuristic()
	if cmd.Flags().Changed("dijkstra") {
		heuristic = !opts.dijkstra
	}

	spin := newSpinner(ctx, fmt.Sprintf("Planning %d stops...", len(stops)))
	spin.Start()
	data, cached, err := runner.Route(ctx, m, stops, trip.RouteOptions{
		Heuristic: heuristic,
		Refresh:   opts.refresh,
	})
	if spin.Interrupted() {
		spin.Stop()
		return ctx.Err()
	}
	if err != nil {
		spin.Stop()
		if errs.Is(err, errs.ErrCodeNoRoute) {
			printDetail("Run '%s reach %s' to list the stops it connects to", appName, stops[0])
		}
		return err
	}
	spin.StopWithSuccess("Planned %d legs", len(stops)-1)

	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}
	printStats(len(stops), len(stops)-1, cached)
	return nil
}
