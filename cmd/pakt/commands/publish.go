package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pakt/internal/app"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the workspace package to the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, _ := cmd.Flags().GetString("token")
			index, _ := cmd.Flags().GetString("index")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			allowDirty, _ := cmd.Flags().GetBool("allow-dirty")
			noVerify, _ := cmd.Flags().GetBool("no-verify")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Publish(cmd.Context(), app.PublishOptions{
				Token:      token,
				Index:      index,
				DryRun:     dryRun,
				AllowDirty: allowDirty,
				Verify:     !noVerify,
				Jobs:       jobs,
				Offline:    offline(cmd),
			})
		},
	}
	cmd.Flags().String("token", "", "Token to use when uploading")
	cmd.Flags().String("index", "", "Registry index to upload the package to")
	cmd.Flags().Bool("dry-run", false, "Perform all checks without uploading")
	cmd.Flags().Bool("allow-dirty", false, "Allow dirty working directories to be packaged")
	cmd.Flags().Bool("no-verify", false, "Don't verify the contents by building them")
	cmd.Flags().IntP("jobs", "j", 0, "Number of parallel jobs for the verify build")
	return cmd
}
