package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-graph",
		Short: "Build the dictionary graph and store it in the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.GenerateGraph(cmd.Context(), options(cmd), cmd.OutOrStdout())
		},
	}
}
