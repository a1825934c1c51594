package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// reachCommand creates the reach command.
func (c *CLI) reachCommand() *cobra.Command {
	opts := &routeOpts{}

	cmd := &cobra.Command{
		Use:   "reach <stop>",
		Short: "List the locations reachable from a stop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			names, cached, err := runner.Reach(ctx, m, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			if len(names) == 0 {
				printInfo("Nothing reachable from %s", args[0])
				return nil
			}
			printDetail("%d of %d locations reachable", len(names), m.Locations()-1)
			if cached {
				printDetail(iconCached)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.mapPath, "map", "m", "", "road map file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the cache")

	return cmd
}
