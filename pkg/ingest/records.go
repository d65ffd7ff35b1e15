// Package ingest defines the plain record shapes an ingestion
// collaborator produces (spec.md §6): "shape, not format" — these structs
// say nothing about where the data came from (YAML, JSON, a parser over
// OKH/OKW documents); that decision belongs to the collaborator, not the
// core.
package ingest

// AtomRecord is one atom reference within a Party or Design record.
// Identifier is required; Description is optional.
type AtomRecord struct {
	Identifier  string
	Description string
}

// PartyRecord is the ingestion shape for an OKW-equivalent entity.
type PartyRecord struct {
	Title          string
	SupplyAtoms    []AtomRecord
	ToolListAtoms  []AtomRecord
	InventoryAtoms []AtomRecord
}

// DesignRecord is the ingestion shape for an OKH-equivalent recipe.
// CostExpression is optional; an empty string means the design carries no
// cost model: Characteristic yields no expression for it, and Price fails
// on any tree that uses it.
type DesignRecord struct {
	Title          string
	ProductAtom    AtomRecord
	BOMAtoms       []AtomRecord
	ToolListAtoms  []AtomRecord
	BOMOutputAtoms []AtomRecord
	CostExpression string
}

// PriceRecord binds an atom identifier to a numeric price, the shape
// CatalogBuilder's price map is built from.
type PriceRecord struct {
	Identifier string
	Price      string
}
