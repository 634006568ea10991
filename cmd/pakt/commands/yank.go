package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pakt/internal/app"
)

func (c *CLI) newYankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yank [package]",
		Short: "Remove a published version from the index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pkg string
			if len(args) == 1 {
				pkg = args[0]
			}
			version, _ := cmd.Flags().GetString("vers")
			undo, _ := cmd.Flags().GetBool("undo")
			token, _ := cmd.Flags().GetString("token")
			index, _ := cmd.Flags().GetString("index")

			return c.app.Yank(cmd.Context(), app.YankOptions{
				Package: pkg,
				Version: version,
				Undo:    undo,
				Token:   token,
				Index:   index,
				Offline: offline(cmd),
			})
		},
	}
	cmd.Flags().String("vers", "", "Version to yank or unyank")
	cmd.Flags().Bool("undo", false, "Undo a yank, putting a version back into the index")
	cmd.Flags().String("token", "", "Token to use when yanking")
	cmd.Flags().String("index", "", "Registry index")
	return cmd
}
