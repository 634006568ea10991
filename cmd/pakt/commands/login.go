package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <token>",
		Short: "Save an API token from the registry locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _ := cmd.Flags().GetString("index")
			return c.app.Login(cmd.Context(), args[0], index)
		},
	}
	cmd.Flags().String("index", "", "Registry index")
	return cmd
}
