package commands

import "github.com/spf13/cobra"

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [packages...]",
		Short: "Fetch packages and their dependencies, then rewrite the build file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Add(cmd.Context(), args, c.options())
		},
	}
}
