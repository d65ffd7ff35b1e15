package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustAtom(t *testing.T, id string) Atom {
	t.Helper()
	a, err := NewAtom(id, "")
	if err != nil {
		t.Fatalf("NewAtom(%q): %v", id, err)
	}
	return a
}

// buildChairCatalog is the S2-style fixture this package's catalog tests
// share: Raw supplies N; Design D makes M from {N}; maker J holds D's tool.
func buildChairCatalog(t *testing.T) (Catalog, Atom, Atom) {
	t.Helper()
	m := mustAtom(t, "M")
	n := mustAtom(t, "N")
	tool := mustAtom(t, "tool")

	raw, err := NewParty("Raw", []Atom{n}, nil, nil)
	if err != nil {
		t.Fatalf("NewParty(Raw): %v", err)
	}
	maker, err := NewParty("J", nil, []Atom{tool}, nil)
	if err != nil {
		t.Fatalf("NewParty(J): %v", err)
	}

	design, err := NewDesign("D", m, []Atom{n}, []Atom{tool}, nil, nil)
	if err != nil {
		t.Fatalf("NewDesign(D): %v", err)
	}

	catalog := NewCatalog([]Party{raw, maker}, []Design{design}, map[Identifier]decimal.Decimal{})
	return catalog, m, n
}

func TestCatalog_SuppliersOf(t *testing.T) {
	catalog, _, n := buildChairCatalog(t)
	suppliers := catalog.SuppliersOf(n)
	if len(suppliers) != 1 || suppliers[0].Name != "Raw" {
		t.Fatalf("SuppliersOf(N) = %v, want [Raw]", suppliers)
	}
}

func TestCatalog_CompatibleMakers(t *testing.T) {
	catalog, m, _ := buildChairCatalog(t)
	design := catalog.DesignsFor(m)[0]

	makers := catalog.CompatibleMakers(design)
	if len(makers) != 1 || makers[0].Name != "J" {
		t.Fatalf("CompatibleMakers(D) = %v, want [J]", makers)
	}

	// Raw has no tools at all, and a toolless design has no makers.
	toollessDesign, err := NewDesign("Free", m, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewDesign(Free): %v", err)
	}
	if makers := catalog.CompatibleMakers(toollessDesign); makers != nil {
		t.Errorf("CompatibleMakers(toolless) = %v, want nil", makers)
	}
}

func TestCatalog_CompatibleMakers_CacheConsistency(t *testing.T) {
	catalog, m, _ := buildChairCatalog(t)
	design := catalog.DesignsFor(m)[0]

	first := catalog.CompatibleMakers(design)
	second := catalog.CompatibleMakers(design)
	if len(first) != len(second) {
		t.Fatalf("cached result differs: %v vs %v", first, second)
	}
}

func TestMergeCatalogs_RejectsDuplicateDesignNames(t *testing.T) {
	catalog, _, _ := buildChairCatalog(t)
	_, err := MergeCatalogs(catalog, catalog)
	if err == nil {
		t.Fatalf("expected duplicate design name error")
	}
}

func TestMergeCatalogs_UnionsParties(t *testing.T) {
	a, _, _ := buildChairCatalog(t)

	other := mustAtom(t, "X")
	supplier, err := NewParty("Sx", []Atom{other}, nil, nil)
	if err != nil {
		t.Fatalf("NewParty(Sx): %v", err)
	}
	b := NewCatalog([]Party{supplier}, nil, nil)

	merged, err := MergeCatalogs(a, b)
	if err != nil {
		t.Fatalf("MergeCatalogs: %v", err)
	}
	if len(merged.Parties()) != 3 {
		t.Errorf("merged parties = %d, want 3", len(merged.Parties()))
	}
}
