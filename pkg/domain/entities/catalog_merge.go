package entities

import "github.com/shopspring/decimal"

// MergeCatalogs combines two catalogs' parties and designs into one,
// unioning their price maps (b's price wins on a collision). This is test
// and demo scaffolding for spec.md §8 property 7 (bifurcation-repair: for
// disjoint A, B with C = A ∪ B, repairing A-scratched graphs against A
// restores the original set of complete graphs over C) — not a general
// catalog-editing API, since runtime catalog mutation is out of scope. It
// mirrors original_source/src/supply.py's unionSupplyNetworks, which
// concatenates two SupplyNetworks' supplies the same way.
//
// MergeCatalogs rejects a duplicate design name across a and b, the same
// check CatalogValidationError enforces at single-catalog assembly time.
func MergeCatalogs(a, b Catalog) (Catalog, error) {
	seen := make(map[string]bool, len(a.designs))
	for _, d := range a.designs {
		seen[d.Name] = true
	}
	for _, d := range b.designs {
		if seen[d.Name] {
			return Catalog{}, &ValidationError{Reason: "duplicate design name across merged catalogs: " + d.Name}
		}
	}

	prices := make(map[Identifier]decimal.Decimal, len(a.priceMap)+len(b.priceMap))
	for id, v := range a.priceMap {
		prices[id] = v
	}
	for id, v := range b.priceMap {
		prices[id] = v
	}

	parties := append(append([]Party(nil), a.parties...), b.parties...)
	designs := append(append([]Design(nil), a.designs...), b.designs...)
	return NewCatalog(parties, designs, prices), nil
}
