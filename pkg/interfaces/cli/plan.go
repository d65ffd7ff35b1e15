package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/supplyplan/core/pkg/application/services/enumeration"
	"github.com/supplyplan/core/pkg/domain/entities"
)

// newPlanCommand builds `plan <product-identifier>`: prints every complete
// SupplyTree for the product, one JSON line each (spec.md §6).
func newPlanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <product-identifier>",
		Short: "Print every complete supply tree for a product, one JSON line each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return newExitError(ExitCatalogInvalid, err)
			}

			product := entities.Atom{Identifier: entities.Identifier(args[0])}
			found := false
			for tree := range enumeration.Enumerate(catalog, product) {
				if !enumeration.IsComplete(tree) {
					continue
				}
				found = true
				line, err := json.Marshal(entities.ToJSON(tree))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(line))
			}
			if !found {
				return newExitError(ExitProductNotFound, fmt.Errorf("no complete supply tree for %s", product.Identifier))
			}
			return nil
		},
	}
}
