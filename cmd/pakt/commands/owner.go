package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pakt/internal/app"
)

func (c *CLI) newOwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner [package]",
		Short: "Manage the owners of a package on the registry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pkg string
			if len(args) == 1 {
				pkg = args[0]
			}
			add, _ := cmd.Flags().GetStringSlice("add")
			remove, _ := cmd.Flags().GetStringSlice("remove")
			list, _ := cmd.Flags().GetBool("list")
			token, _ := cmd.Flags().GetString("token")
			index, _ := cmd.Flags().GetString("index")

			if len(add) == 0 && len(remove) == 0 && !list {
				return cmd.Help()
			}

			return c.app.ModifyOwners(cmd.Context(), app.OwnersOptions{
				Package: pkg,
				Add:     add,
				Remove:  remove,
				List:    list,
				Token:   token,
				Index:   index,
				Offline: offline(cmd),
			})
		},
	}
	cmd.Flags().StringSliceP("add", "a", nil, "Login of a user or team to invite as an owner")
	cmd.Flags().StringSliceP("remove", "r", nil, "Login of a user or team to remove as an owner")
	cmd.Flags().BoolP("list", "l", false, "List owners of a package")
	cmd.Flags().String("token", "", "Token to use when managing owners")
	cmd.Flags().String("index", "", "Registry index")
	return cmd
}
