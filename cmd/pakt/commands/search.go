package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pakt/internal/app"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search packages on the registry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			index, _ := cmd.Flags().GetString("index")

			return c.app.Search(cmd.Context(), app.SearchOptions{
				Query:   strings.Join(args, " "),
				Limit:   limit,
				Index:   index,
				Offline: offline(cmd),
			})
		},
	}
	cmd.Flags().Int("limit", 10, "Limit the number of results (max 100)")
	cmd.Flags().String("index", "", "Registry index")
	return cmd
}
