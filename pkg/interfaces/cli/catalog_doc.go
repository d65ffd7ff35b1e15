package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/supplyplan/core/pkg/domain/entities"
	"github.com/supplyplan/core/pkg/ingest"
	"github.com/supplyplan/core/pkg/infrastructure/repositories/memory"
)

// catalogDoc is the CLI's own small JSON fixture format — not the OKH/OKW
// ingestion spec.md §1 marks out of scope, but a flat test-catalog shape
// this binary reads directly so plan/price/validate have something to run
// against (spec.md §6's "CLI surface (of the core, illustrative)").
type catalogDoc struct {
	Parties []atomRecordsDoc `json:"parties"`
	Designs []designDoc      `json:"designs"`
	Prices  []priceDoc       `json:"prices"`
}

type atomDoc struct {
	ID   string `json:"id"`
	Desc string `json:"desc"`
}

func (a atomDoc) toRecord() ingest.AtomRecord {
	return ingest.AtomRecord{Identifier: a.ID, Description: a.Desc}
}

type atomRecordsDoc struct {
	Name      string    `json:"name"`
	Supplies  []atomDoc `json:"supplies"`
	Tools     []atomDoc `json:"tools"`
	Inventory []atomDoc `json:"inventory"`
}

type designDoc struct {
	Name       string    `json:"name"`
	Product    atomDoc   `json:"product"`
	BOM        []atomDoc `json:"bom"`
	Tools      []atomDoc `json:"tools"`
	Byproducts []atomDoc `json:"byproducts"`
	CostExpr   string    `json:"cost_expr"`
}

type priceDoc struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}

func toAtomRecords(in []atomDoc) []ingest.AtomRecord {
	out := make([]ingest.AtomRecord, len(in))
	for i, a := range in {
		out[i] = a.toRecord()
	}
	return out
}

// loadCatalog reads path as a catalogDoc and builds an entities.Catalog,
// returning a *memory.CatalogValidationError on any fatal defect.
func loadCatalog(path string) (entities.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Catalog{}, fmt.Errorf("reading catalog file: %w", err)
	}
	var doc catalogDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return entities.Catalog{}, fmt.Errorf("parsing catalog file: %w", err)
	}

	builder := memory.NewCatalogBuilder()
	for _, p := range doc.Parties {
		builder.AddParty(ingest.PartyRecord{
			Title:          p.Name,
			SupplyAtoms:    toAtomRecords(p.Supplies),
			ToolListAtoms:  toAtomRecords(p.Tools),
			InventoryAtoms: toAtomRecords(p.Inventory),
		})
	}
	for _, d := range doc.Designs {
		builder.AddDesign(ingest.DesignRecord{
			Title:          d.Name,
			ProductAtom:    d.Product.toRecord(),
			BOMAtoms:       toAtomRecords(d.BOM),
			ToolListAtoms:  toAtomRecords(d.Tools),
			BOMOutputAtoms: toAtomRecords(d.Byproducts),
			CostExpression: d.CostExpr,
		})
	}
	for _, p := range doc.Prices {
		builder.AddPrice(ingest.PriceRecord{Identifier: p.ID, Price: p.Price})
	}
	return builder.Build()
}
