package entities

import (
	"github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"
)

// compatibleMakersCacheSize bounds the memo of CompatibleMakers results.
// Catalogs in practice have far fewer distinct designs than this, but the
// cache keeps CompatibleMakers cheap to call repeatedly from deep inside
// the enumerator's recursion without re-scanning all parties per call.
const compatibleMakersCacheSize = 256

// Catalog is an immutable snapshot of Parties, Designs, and a price map
// that the planner queries. It contains no mutable state during planning;
// iteration order is the insertion order of parties and designs — the
// stable source of determinism for the enumerator's output ordering
// (spec.md §4.1).
//
// Catalog values come from NewCatalog. pkg/infrastructure/repositories/
// memory's CatalogBuilder calls it after performing the validation spec.md
// §7 requires; NewCatalog itself validates nothing, and tests and
// MergeCatalogs call it directly.
type Catalog struct {
	parties  []Party
	designs  []Design
	priceMap map[Identifier]decimal.Decimal

	suppliersByAtom map[Identifier][]int // party index, in catalog order
	inventoryByAtom map[Identifier][]int
	designsByAtom   map[Identifier][]int // design index, in catalog order

	makerCache *lru.Cache[string, []Party]
}

// NewCatalog builds a Catalog from already-validated parties and designs.
// It is exported for use by CatalogBuilder and by tests that want a
// Catalog without going through full record ingestion; it performs no
// validation of its own beyond the index construction — callers are
// expected to have already run the spec.md §7 checks (self-referential
// design rejected, duplicate names rejected, required fields present).
func NewCatalog(parties []Party, designs []Design, priceMap map[Identifier]decimal.Decimal) Catalog {
	c := Catalog{
		parties:         append([]Party(nil), parties...),
		designs:         append([]Design(nil), designs...),
		priceMap:        priceMap,
		suppliersByAtom: make(map[Identifier][]int),
		inventoryByAtom: make(map[Identifier][]int),
		designsByAtom:   make(map[Identifier][]int),
	}
	if c.priceMap == nil {
		c.priceMap = map[Identifier]decimal.Decimal{}
	}
	for i, p := range c.parties {
		for id := range p.Supplies {
			c.suppliersByAtom[id] = append(c.suppliersByAtom[id], i)
		}
		for id := range p.Inventory {
			c.inventoryByAtom[id] = append(c.inventoryByAtom[id], i)
		}
	}
	for i, d := range c.designs {
		c.designsByAtom[d.Product.Identifier] = append(c.designsByAtom[d.Product.Identifier], i)
	}
	c.makerCache, _ = lru.New[string, []Party](compatibleMakersCacheSize)
	return c
}

// Parties returns the catalog's parties in insertion order.
func (c Catalog) Parties() []Party { return c.parties }

// Designs returns the catalog's designs in insertion order.
func (c Catalog) Designs() []Design { return c.designs }

// Price looks up the numeric price of an atom identifier.
func (c Catalog) Price(id Identifier) (decimal.Decimal, bool) {
	v, ok := c.priceMap[id]
	return v, ok
}

// PriceValues returns the full price map, suitable for costalg.Eval.
func (c Catalog) PriceValues() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(c.priceMap))
	for id, v := range c.priceMap {
		out[string(id)] = v
	}
	return out
}

// SuppliersOf returns every party whose Supplies contains atom, in catalog
// order.
func (c Catalog) SuppliersOf(atom Atom) []Party {
	idxs := c.suppliersByAtom[atom.Identifier]
	out := make([]Party, len(idxs))
	for i, idx := range idxs {
		out[i] = c.parties[idx]
	}
	return out
}

// InventoriesOf returns every party whose Inventory contains atom, in
// catalog order.
func (c Catalog) InventoriesOf(atom Atom) []Party {
	idxs := c.inventoryByAtom[atom.Identifier]
	out := make([]Party, len(idxs))
	for i, idx := range idxs {
		out[i] = c.parties[idx]
	}
	return out
}

// DesignsFor returns every design whose Product equals atom, in catalog
// order.
func (c Catalog) DesignsFor(atom Atom) []Design {
	idxs := c.designsByAtom[atom.Identifier]
	out := make([]Design, len(idxs))
	for i, idx := range idxs {
		out[i] = c.designs[idx]
	}
	return out
}

// CompatibleMakers returns every party whose tools are a superset of
// design.Tools, in catalog order, provided design.Tools is non-empty. A
// design with no tools at all has no compatible maker (spec.md §4.1/§3):
// makers exist to operate tooling, and a toolless design gives nothing to
// match against.
func (c Catalog) CompatibleMakers(design Design) []Party {
	if len(design.Tools) == 0 {
		return nil
	}
	if c.makerCache != nil {
		if cached, ok := c.makerCache.Get(design.Name); ok {
			return cached
		}
	}
	var out []Party
	for _, p := range c.parties {
		if p.HasAllTools(design.Tools) {
			out = append(out, p)
		}
	}
	if c.makerCache != nil {
		c.makerCache.Add(design.Name, out)
	}
	return out
}
