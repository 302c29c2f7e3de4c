package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/masonry/pkg/server"
)

// serveCommand creates the HTTP API command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		caching cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP.

Every endpoint takes a JSON scenario as its request body:

  POST /v1/layout               geometry document
  POST /v1/query/rect           ?x=&y=&w=&h=
  POST /v1/query/point          ?x=&y=
  POST /v1/query/header         ?section=
  POST /v1/query/next           ?section=&item=&dir=
  POST /v1/query/scroll         ?section=&item=

Layouts are cached like the CLI's; use --redis to share a cache between
instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, caching)
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Listening on %s", StyleHighlight.Render(addr))
			return server.New(runner, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	caching.register(cmd)
	return cmd
}
