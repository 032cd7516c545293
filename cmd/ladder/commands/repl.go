package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/ladder/internal/app"
	"golang.org/x/term"
)

func (c *CLI) newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Answer ladder queries read from stdin",
		Long: "Reads one \"start end\" pair per line and prints the shortest ladder. " +
			"Type :quit or :q to exit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			in := cmd.InOrStdin()
			return c.app.Repl(cmd.Context(), options(cmd), app.ReplOptions{
				Watch:  watch,
				Styled: isTerminal(in),
			}, in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Reload the graph when the dictionary file changes")
	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
