package cli

import (
	"github.com/spf13/cobra"

	"github.com/amandalowe/creditcoach/internal/config"
	"github.com/amandalowe/creditcoach/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan    service.PlanService
	History service.HistoryService
	Catalog service.CatalogService

	Config config.Config

	// IsInteractive reports whether stdin is a terminal; the profile
	// wizard refuses to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "creditcoach" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "creditcoach",
		Short: "Personalized credit curriculum planner",
		Long: `creditcoach builds a week-by-week study plan from your credit profile:
which modules apply to you, in what order, and why.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newHistoryCmd(app),
		newCatalogCmd(app),
		newProfileCmd(app),
	)

	return root
}
