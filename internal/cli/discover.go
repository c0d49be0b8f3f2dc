package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vizlens/vizlens/pkg/discovery"
	"github.com/vizlens/vizlens/pkg/mlmd"
	"github.com/vizlens/vizlens/pkg/viewer"
	"github.com/vizlens/vizlens/pkg/vizrender"
)

// discoverCommand finds and renders a pipeline step's visualizations.
func (c *CLI) discoverCommand() *cobra.Command {
	var (
		output     string
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "discover <pod>",
		Short: "Discover and render a pipeline step's visualizations",
		Long: `Discover walks the metadata store for the given step pod name, finds
the artifacts the step produced, and asks the rendering service to
produce a visualization for each recognized artifact kind. A run the
store has never seen yields an empty list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			resolver := discovery.NewResolver(
				mlmd.NewClient(cfg.Metadata.Endpoint),
				vizrender.NewClient(cfg.Renderer.Endpoint),
				c.Logger,
			)

			ch := make(chan int, 8)
			var (
				configs []viewer.Config
				runErr  error
			)
			go func() {
				defer close(ch)
				configs, runErr = resolver.Discover(cmd.Context(), args[0], func(p int) {
					ch <- p
				})
			}()

			if noProgress {
				for range ch {
				}
			} else {
				prog := tea.NewProgram(
					newProgressModel("discovering "+args[0], ch),
					tea.WithOutput(os.Stderr),
				)
				if _, err := prog.Run(); err != nil {
					// Fall back to draining silently, e.g. when not a TTY.
					for range ch {
					}
				}
			}

			if runErr != nil {
				return runErr
			}
			if len(configs) == 0 {
				printInfo("No visualizations recorded for %s", args[0])
			} else {
				printSuccess("Discovered %d visualizations", len(configs))
			}
			return writeViews(configs, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to a file instead of stdout")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
	return cmd
}
