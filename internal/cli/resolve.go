package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vizlens/vizlens/pkg/viewer"
)

// resolveCommand turns an output-metadata document into viewer configs.
func (c *CLI) resolveCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve an output-metadata document into viewer configs",
		Long: `Resolve reads the output-metadata document at the given path (a local
file, gs://bucket/key, or minio://bucket/key) and prints the resolved
viewer configurations as JSON. Records that fail to resolve are logged
and dropped; a missing or malformed document yields an empty list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			reader, err := cfg.Reader()
			if err != nil {
				return err
			}

			track := newTracker(c.Logger)
			resolver := viewer.NewResolver(reader, c.Logger)
			configs := resolver.Resolve(cmd.Context(), args[0])
			track.done(fmt.Sprintf("Resolved %d views", len(configs)))

			return writeViews(configs, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to a file instead of stdout")
	return cmd
}

// writeViews emits the tagged config list as indented JSON.
func writeViews(configs []viewer.Config, output string) error {
	tagged := viewer.Tag(configs)
	if tagged == nil {
		tagged = []viewer.TaggedConfig{}
	}
	data, err := json.MarshalIndent(tagged, "", "  ")
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	printFile(output)
	return nil
}
