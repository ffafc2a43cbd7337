package commands

import "github.com/spf13/cobra"

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Fetch missing dependencies, then rewrite the build file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Check(cmd.Context(), c.options())
		},
	}
}
