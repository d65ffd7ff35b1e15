package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/supplyplan/core/pkg/domain/services/validate"
)

// newValidateCommand builds `validate`: loads the catalog (surfacing any
// CatalogValidationError as exit code 3) and reports non-fatal recipe
// diagnostics found by the validate package. A duplicate design name
// already fails catalog loading with exit code 3, so the diagnostics
// printed here are recipe cycles.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog document and report recipe diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return newExitError(ExitCatalogInvalid, err)
			}

			result := validate.ValidateDesigns(catalog.Designs())
			if len(result.Warnings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog OK, no diagnostics")
				return nil
			}
			for _, w := range result.Warnings {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}
