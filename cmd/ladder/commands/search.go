package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ladder/internal/app"
	"go.trai.ch/ladder/internal/core/domain"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <start> <end>",
		Short: "Print the shortest word ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			allShortest, _ := flags.GetBool("all-shortest")
			all, _ := flags.GetBool("all")

			search := app.SearchOptions{Mode: app.ModeShortest}
			switch {
			case allShortest:
				search.Mode = app.ModeAllShortest
			case all:
				search.Mode = app.ModeAll
			}
			if flags.Changed("max-paths") {
				n, _ := flags.GetInt("max-paths")
				search.MaxPaths = &n
			}
			if flags.Changed("max-depth") {
				n, _ := flags.GetInt("max-depth")
				search.MaxDepth = &n
			}

			return c.app.Search(cmd.Context(), options(cmd), args[0], args[1], search, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("all-shortest", false, "Print every shortest ladder")
	cmd.Flags().Bool("all", false, "Print every ladder within --max-paths and --max-depth")
	cmd.Flags().Int("max-paths", domain.DefaultMaxPaths, "Maximum number of ladders printed by --all")
	cmd.Flags().Int("max-depth", domain.DefaultMaxDepth, "Maximum ladder length for --all, 0 for no limit")
	cmd.MarkFlagsMutuallyExclusive("all-shortest", "all")
	return cmd
}
