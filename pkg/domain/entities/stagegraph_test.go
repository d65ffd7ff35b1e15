package entities

import "testing"

func buildChairTree(t *testing.T) (Atom, SupplyTree) {
	t.Helper()
	m := mustAtom(t, "chair")
	n := mustAtom(t, "seat")
	tool := mustAtom(t, "saw")
	raw, _ := NewParty("seat_1", []Atom{n}, nil, nil)
	maker, _ := NewParty("J", nil, []Atom{tool}, nil)
	design, _ := NewDesign("chairDesign", m, []Atom{n}, []Atom{tool}, nil, nil)

	tree := Made{
		ProductAtom: m,
		Design:      design,
		Maker:       maker,
		Children:    map[Identifier]SupplyTree{"seat": Supplied{ProductAtom: n, Supplier: raw}},
	}
	return m, tree
}

func TestNewStageGraph_RejectsIncompleteTree(t *testing.T) {
	n := mustAtom(t, "seat")
	if _, ok := NewStageGraph(n, Missing{ProductAtom: n}); ok {
		t.Errorf("expected incomplete tree to produce no StageGraph")
	}
}

func TestStageGraph_AdvanceLifecycle(t *testing.T) {
	good, tree := buildChairTree(t)
	sg, ok := NewStageGraph(good, tree)
	if !ok {
		t.Fatalf("expected complete tree to build a StageGraph")
	}
	if sg.IsComplete() {
		t.Errorf("fresh StageGraph should not be complete")
	}

	if !sg.AssertStatus("seat_1", Succeeded) {
		t.Fatalf("expected to find node seat_1")
	}
	if !sg.AssertStatus("J|chairDesign", Succeeded) {
		t.Fatalf("expected to find node J|chairDesign")
	}
	if !sg.IsComplete() {
		t.Errorf("expected StageGraph to be complete once all nodes succeeded")
	}
}

func TestStageGraph_ScratchAndRepair(t *testing.T) {
	good, tree := buildChairTree(t)
	sg, _ := NewStageGraph(good, tree)

	if !sg.Scratch("seat_1") {
		t.Fatalf("expected to scratch seat_1")
	}
	if !sg.NeedsRepair() {
		t.Errorf("expected NeedsRepair after scratch")
	}
	failed := sg.NamesOfFailed()
	if len(failed) != 1 || failed[0] != "seat_1" {
		t.Fatalf("NamesOfFailed = %v, want [seat_1]", failed)
	}

	seat := mustAtom(t, "seat")
	newSupplier, _ := NewParty("seat_2", []Atom{seat}, nil, nil)
	replacement := Supplied{ProductAtom: seat, Supplier: newSupplier}

	if !sg.Repair("seat_1", replacement) {
		t.Fatalf("expected to repair seat_1")
	}
	if sg.NeedsRepair() {
		t.Errorf("expected NeedsRepair to clear after repair")
	}
	if node := sg.FindByName("seat_2"); node == nil {
		t.Fatalf("expected to find repaired node seat_2")
	}
	if got := len(sg.Children["seat"].RepairHistory); got != 1 {
		t.Fatalf("RepairHistory length = %d, want 1", got)
	}
}

func TestStageGraph_NamesOfFailedDoesNotDescend(t *testing.T) {
	good, tree := buildChairTree(t)
	sg, _ := NewStageGraph(good, tree)

	sg.Scratch("J|chairDesign")
	failed := sg.NamesOfFailed()
	if len(failed) != 1 || failed[0] != "J|chairDesign" {
		t.Fatalf("NamesOfFailed = %v, want [J|chairDesign] (children of a Failed node must not be reported)", failed)
	}
}
