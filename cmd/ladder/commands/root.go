// Package commands implements the CLI commands for ladder.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ladder/internal/app"
	"go.trai.ch/ladder/internal/build"
	"go.trai.ch/ladder/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	Search(ctx context.Context, opts app.Options, start, end string, search app.SearchOptions, out io.Writer) error
	Repl(ctx context.Context, opts app.Options, repl app.ReplOptions, in io.Reader, out io.Writer) error
	GenerateGraph(ctx context.Context, opts app.Options, out io.Writer) error
}

// MetricsWriter renders collected metrics.
type MetricsWriter interface {
	WriteText(w io.Writer) error
}

// CLI represents the command line interface for ladder.
type CLI struct {
	app     Application
	metrics MetricsWriter
	rootCmd *cobra.Command
}

// New creates a new CLI instance. metrics may be nil, which disables the
// --metrics flag's output.
func New(a Application, metrics MetricsWriter) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ladder",
		Short:         "Find word ladders in a dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("dictionary-path", "d", "", "Word list to build the graph from (overrides config)")
	flags.String("cache-dir", "", "Directory holding cached graphs (overrides config)")
	flags.String("cache-backend", "", "Graph cache backend: file or badger (overrides config)")
	flags.StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	flags.Bool("rebuild", false, "Ignore cached graphs and rebuild")
	flags.Bool("metrics", false, "Print collected metrics to stderr on exit")

	c := &CLI{
		app:     a,
		metrics: metrics,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPostRunE = c.dumpMetrics

	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newReplCmd())
	rootCmd.AddCommand(c.newGenerateGraphCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	dictionary, _ := flags.GetString("dictionary-path")
	cacheDir, _ := flags.GetString("cache-dir")
	backend, _ := flags.GetString("cache-backend")
	config, _ := flags.GetString("config")
	rebuild, _ := flags.GetBool("rebuild")

	return app.Options{
		ConfigPath:     config,
		DictionaryPath: dictionary,
		CacheDir:       cacheDir,
		CacheBackend:   backend,
		Rebuild:        rebuild,
	}
}

func (c *CLI) dumpMetrics(cmd *cobra.Command, _ []string) error {
	enabled, _ := cmd.Flags().GetBool("metrics")
	if !enabled || c.metrics == nil {
		return nil
	}
	return c.metrics.WriteText(cmd.ErrOrStderr())
}
