package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/supplyplan/core/pkg/application/services/costing"
	"github.com/supplyplan/core/pkg/domain/entities"
)

// newPriceCommand builds `price <product-identifier>`: prints the optimum
// tree over the catalog's price map, and its score (spec.md §6).
func newPriceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "price <product-identifier>",
		Short: "Print the lowest-cost complete supply tree and its score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return newExitError(ExitCatalogInvalid, err)
			}

			product := entities.Atom{Identifier: entities.Identifier(args[0])}
			score := costing.PriceScore(catalog.PriceValues())
			best, bestScore, ok, err := costing.Optimum(catalog, product, score)
			if err != nil {
				return err
			}
			if !ok {
				return newExitError(ExitProductNotFound, fmt.Errorf("no complete supply tree for %s", product.Identifier))
			}

			line, err := json.Marshal(entities.ToJSON(best))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(line))
			fval, _ := bestScore.Float64()
			fmt.Fprintf(cmd.OutOrStdout(), "score: %s\n", humanize.CommafWithDigits(fval, 2))
			return nil
		},
	}
}
