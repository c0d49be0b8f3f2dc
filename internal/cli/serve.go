package cli

import (
	"github.com/spf13/cobra"

	"github.com/vizlens/vizlens/internal/server"
)

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the vizlens HTTP API",
		Long: `Serve exposes resolution and discovery over HTTP:

  POST /v1/resolve        resolve an output-metadata document
  GET  /v1/discover/{pod} discover and render a step's visualizations
  GET  /v1/lineage/{pod}  render the step's metadata graph as SVG
  GET  /healthz           liveness probe
  GET  /metrics           Prometheus metrics

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			srv, err := server.New(cmd.Context(), cfg, c.Logger)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
