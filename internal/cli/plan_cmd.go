package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amandalowe/creditcoach/internal/app"
	"github.com/amandalowe/creditcoach/internal/cli/formatter"
	"github.com/amandalowe/creditcoach/internal/profileio"
)

func newPlanCmd(a *App) *cobra.Command {
	var profilePath string
	var save bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a study plan from your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := profilePath
			if path == "" {
				path = a.Config.ProfilePath
			}

			profile, err := profileio.Load(path)
			if err != nil {
				return fmt.Errorf("loading profile %s (run `creditcoach profile init` to create one): %w", path, err)
			}

			resp, err := a.Plan.BuildPlan(context.Background(), app.PlanRequest{
				Profile: profile,
				Save:    save,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp.Plan))
			if resp.SnapshotID != "" {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("saved as "+resp.SnapshotID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Profile JSON file (defaults to the configured path)")
	cmd.Flags().BoolVar(&save, "save", false, "Save this plan to history")

	return cmd
}
