package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vizlens/vizlens/pkg/discovery"
	"github.com/vizlens/vizlens/pkg/lineage"
	"github.com/vizlens/vizlens/pkg/mlmd"
)

// lineageCommand draws the metadata graph around a pipeline step.
func (c *CLI) lineageCommand() *cobra.Command {
	var (
		output  string
		dotOnly bool
	)

	cmd := &cobra.Command{
		Use:   "lineage <pod>",
		Short: "Draw the metadata graph around a pipeline step",
		Long: `Lineage walks the metadata store for the given step pod name and draws
the execution together with the artifacts it consumed and produced.
The graph is rendered as SVG, or emitted as Graphviz DOT with --dot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			resolver := discovery.NewResolver(mlmd.NewClient(cfg.Metadata.Endpoint), nil, c.Logger)

			spin := newSpinner(cmd.Context(), "tracing "+args[0])
			spin.Start()
			trace, err := resolver.Trace(cmd.Context(), args[0], nil)
			if err != nil {
				spin.StopWithError("Trace failed")
				return err
			}
			if trace.Empty() {
				spin.StopWithError("No recorded run for " + args[0])
				return nil
			}
			spin.StopWithSuccess(fmt.Sprintf("Traced %d artifacts", len(trace.Artifacts)))

			dot := lineage.ToDOT(trace)
			if dotOnly {
				fmt.Println(dot)
				return nil
			}

			svg, err := lineage.RenderSVG(dot)
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0] + ".svg"
			}
			if err := os.WriteFile(output, svg, 0o644); err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "SVG output path (default <pod>.svg)")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "print Graphviz DOT instead of rendering SVG")
	return cmd
}
