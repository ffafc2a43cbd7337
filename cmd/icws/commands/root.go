// Package commands implements the CLI commands for icws.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/risteon/ic-workspace/internal/app"
	"github.com/risteon/ic-workspace/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for icws.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	root    string
	verbose bool
}

// Application represents the application logic interface.
type Application interface {
	Status(ctx context.Context, opts app.Options) error
	Add(ctx context.Context, ids []string, opts app.Options) error
	Check(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "icws",
		Short:         "Fetch and order the packages of a multi-repository workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v belongs to --verbose, so the version flag gets no shorthand.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultVersionFlag()

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.root, "root", "f", "", "Workspace root (defaults to the current directory)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Print debug output and the full status after add and check")

	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) options() app.Options {
	return app.Options{Root: c.root, Verbose: c.verbose}
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
