package memory

import (
	"testing"

	"github.com/supplyplan/core/pkg/ingest"
)

func atomRec(id string) ingest.AtomRecord {
	return ingest.AtomRecord{Identifier: id}
}

func TestCatalogBuilder_Build_Success(t *testing.T) {
	b := NewCatalogBuilder().
		AddParty(ingest.PartyRecord{
			Title:       "Raw",
			SupplyAtoms: []ingest.AtomRecord{atomRec("N")},
		}).
		AddParty(ingest.PartyRecord{
			Title:         "J",
			ToolListAtoms: []ingest.AtomRecord{atomRec("tool")},
		}).
		AddDesign(ingest.DesignRecord{
			Title:          "D",
			ProductAtom:    atomRec("M"),
			BOMAtoms:       []ingest.AtomRecord{atomRec("N")},
			ToolListAtoms:  []ingest.AtomRecord{atomRec("tool")},
			CostExpression: "3 + N",
		}).
		AddPrice(ingest.PriceRecord{Identifier: "N", Price: "2.5"})

	catalog, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(catalog.Designs()) != 1 {
		t.Errorf("got %d designs, want 1", len(catalog.Designs()))
	}
	prices := catalog.PriceValues()
	if got := prices["N"].String(); got != "2.5" {
		t.Errorf("price[N] = %s, want 2.5", got)
	}
}

func TestCatalogBuilder_Build_RejectsEmptyDesignName(t *testing.T) {
	b := NewCatalogBuilder().AddDesign(ingest.DesignRecord{ProductAtom: atomRec("M")})
	_, err := b.Build()
	if _, ok := err.(*CatalogValidationError); !ok {
		t.Fatalf("error = %v (%T), want *CatalogValidationError", err, err)
	}
}

func TestCatalogBuilder_Build_RejectsDuplicateDesignName(t *testing.T) {
	b := NewCatalogBuilder().
		AddDesign(ingest.DesignRecord{Title: "D", ProductAtom: atomRec("M")}).
		AddDesign(ingest.DesignRecord{Title: "D", ProductAtom: atomRec("M2")})
	_, err := b.Build()
	if _, ok := err.(*CatalogValidationError); !ok {
		t.Fatalf("error = %v (%T), want *CatalogValidationError", err, err)
	}
}

func TestCatalogBuilder_Build_RejectsSelfReferentialDesign(t *testing.T) {
	b := NewCatalogBuilder().AddDesign(ingest.DesignRecord{
		Title:       "D",
		ProductAtom: atomRec("M"),
		BOMAtoms:    []ingest.AtomRecord{atomRec("M")},
	})
	_, err := b.Build()
	if _, ok := err.(*CatalogValidationError); !ok {
		t.Fatalf("error = %v (%T), want *CatalogValidationError", err, err)
	}
}

func TestCatalogBuilder_Build_RejectsNonNumericPrice(t *testing.T) {
	b := NewCatalogBuilder().AddPrice(ingest.PriceRecord{Identifier: "N", Price: "not-a-number"})
	_, err := b.Build()
	if _, ok := err.(*CatalogValidationError); !ok {
		t.Fatalf("error = %v (%T), want *CatalogValidationError", err, err)
	}
}

func TestCatalogBuilder_Build_RejectsMissingAtomIdentifier(t *testing.T) {
	b := NewCatalogBuilder().AddParty(ingest.PartyRecord{
		Title:       "Raw",
		SupplyAtoms: []ingest.AtomRecord{{Identifier: ""}},
	})
	_, err := b.Build()
	if _, ok := err.(*CatalogValidationError); !ok {
		t.Fatalf("error = %v (%T), want *CatalogValidationError", err, err)
	}
}

func TestCatalogBuilder_Build_RejectsBadCostExpression(t *testing.T) {
	b := NewCatalogBuilder().AddDesign(ingest.DesignRecord{
		Title:          "D",
		ProductAtom:    atomRec("M"),
		CostExpression: "3 + (",
	})
	_, err := b.Build()
	if _, ok := err.(*CatalogValidationError); !ok {
		t.Fatalf("error = %v (%T), want *CatalogValidationError", err, err)
	}
}
