package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amandalowe/creditcoach/internal/catalog"
	"github.com/amandalowe/creditcoach/internal/cli/formatter"
)

func newCatalogCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the curriculum catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := a.Catalog.Describe(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalogSummary(summary))
			return nil
		},
	}

	cmd.AddCommand(newCatalogValidateCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Validate a catalog file and list every schema problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := catalog.LoadSchema(args[0])
			if err != nil {
				return err
			}
			errs := catalog.ValidateSchema(schema)
			if len(errs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s valid: %d modules, version %s\n",
					args[0], len(schema.Modules), schema.Version)
				return nil
			}
			for _, e := range errs {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("✗ ")+e.Error())
			}
			return fmt.Errorf("%s: %d validation errors", args[0], len(errs))
		},
	}
}
