package execution

import (
	"testing"

	"github.com/supplyplan/core/pkg/application/services/enumeration"
	"github.com/supplyplan/core/pkg/domain/entities"
)

func mustAtom(t *testing.T, id string) entities.Atom {
	t.Helper()
	a, err := entities.NewAtom(id, "")
	if err != nil {
		t.Fatalf("NewAtom(%q): %v", id, err)
	}
	return a
}

// buildChairStageGraph implements spec.md S6's fixture: a chair tree with
// seat supplied by "seat_1".
func buildChairStageGraph(t *testing.T) (*entities.StageGraph, entities.Catalog, entities.Atom) {
	t.Helper()
	chair := mustAtom(t, "chair")
	seat := mustAtom(t, "seat")
	tool := mustAtom(t, "tool")

	seat1, _ := entities.NewParty("seat_1", []entities.Atom{seat}, nil, nil)
	seat2, _ := entities.NewParty("seat_2", []entities.Atom{seat}, nil, nil)
	maker, _ := entities.NewParty("J", nil, []entities.Atom{tool}, nil)
	design, _ := entities.NewDesign("chairDesign", chair, []entities.Atom{seat}, []entities.Atom{tool}, nil, nil)

	catalog := entities.NewCatalog([]entities.Party{seat1, seat2, maker}, []entities.Design{design}, nil)

	tree, ok := enumeration.First(catalog, chair, true)
	if !ok {
		t.Fatalf("expected a complete tree")
	}
	sg, ok := entities.NewStageGraph(chair, tree)
	if !ok {
		t.Fatalf("expected NewStageGraph to succeed on a complete tree")
	}
	return sg, catalog, chair
}

// TestOrder_S6_RepairRestoration implements spec.md S6: scratch seat_1,
// find a substitution, repair, and advance to completion.
func TestOrder_S6_RepairRestoration(t *testing.T) {
	sg, catalog, chair := buildChairStageGraph(t)
	order := NewOrder(chair, sg)

	if !sg.Scratch("seat_1") {
		t.Fatalf("expected to scratch seat_1")
	}

	subs := order.FindSubstitutions(catalog)
	if len(subs) == 0 {
		t.Fatalf("expected at least one substitution")
	}

	if err := order.RepairBy(subs[0], catalog); err != nil {
		t.Fatalf("RepairBy: %v", err)
	}

	for {
		if _, ok := order.AdvanceOne(); !ok {
			break
		}
	}
	if !sg.IsComplete() {
		t.Errorf("expected StageGraph to be complete after repair and advance")
	}
}

func TestOrder_AdvanceOne_PostOrderDeepestFirst(t *testing.T) {
	sg, _, chair := buildChairStageGraph(t)
	order := NewOrder(chair, sg)

	first, ok := order.AdvanceOne()
	if !ok {
		t.Fatalf("expected a node to advance")
	}
	if first.CurrentSupplyName != "seat_1" {
		t.Errorf("first advanced node = %s, want seat_1 (leaf before parent)", first.CurrentSupplyName)
	}

	second, ok := order.AdvanceOne()
	if !ok {
		t.Fatalf("expected a second node to advance")
	}
	if second.CurrentSupplyName != "J|chairDesign" {
		t.Errorf("expected second advanced node to be the root maker|design node")
	}

	if _, ok := order.AdvanceOne(); ok {
		t.Errorf("expected no more Open nodes")
	}
	if !sg.IsComplete() {
		t.Errorf("expected StageGraph to be complete")
	}
}

func TestRepairBy_InfeasibleWhenNodeNotFound(t *testing.T) {
	sg, catalog, chair := buildChairStageGraph(t)
	order := NewOrder(chair, sg)

	err := order.RepairBy(entities.Substitution{Scratched: "does-not-exist"}, catalog)
	if err == nil {
		t.Fatalf("expected RepairInfeasibleError")
	}
	if _, ok := err.(*RepairInfeasibleError); !ok {
		t.Errorf("error type = %T, want *RepairInfeasibleError", err)
	}
}

// TestScratchAllRepairAll_Bifurcation exercises the property 7 operators
// at the smallest scale: scratching every name of the chair catalog and
// repairing against that same catalog leaves no Failed node. It does not
// split the catalog into two sub-networks.
func TestScratchAllRepairAll_Bifurcation(t *testing.T) {
	sg, catalog, chair := buildChairStageGraph(t)
	graphs := []*entities.StageGraph{sg}

	ScratchAll(graphs, catalog)
	if !sg.NeedsRepair() {
		t.Fatalf("expected ScratchAll to fail every node present in the network")
	}

	repaired := RepairAll(graphs, catalog)
	if len(repaired) != 1 {
		t.Fatalf("got %d repaired graphs, want 1", len(repaired))
	}
	if repaired[0].NeedsRepair() {
		t.Errorf("expected RepairAll to resolve every Failed node back to Open")
	}
}
