package entities

import "github.com/google/uuid"

// Status is a StageGraph node's execution state.
type Status int

const (
	// Open is the initial status: neither succeeded nor failed yet.
	Open Status = iota
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Open:
		return "Open"
	case Succeeded:
		return "Succeeded"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// RepairRecord is one entry in a node's repair audit trail: the
// current_supply_name that was replaced, tagged with a uuid for
// correlation in logs. The uuid is audit metadata only — it never
// participates in tree shape, ordering, or equality, so its randomness
// does not threaten the determinism properties spec.md §8 requires of
// enumeration.
type RepairRecord struct {
	PreviousSupplyName string
	AuditID            uuid.UUID
}

// StageGraph parallels a SupplyTree but adds the mutable execution state
// spec.md §3/§4.4 describes: a current supply name, a product ("good"), a
// status, child graphs, and a repair history.
type StageGraph struct {
	CurrentSupplyName string
	Good              Atom
	Status            Status
	Children          map[Identifier]*StageGraph
	RepairHistory     []RepairRecord
}

// SupplyName derives the node name a StageGraph would assign to tree, for
// callers outside this package that need to describe a candidate tree
// (e.g. execution.FindSubstitutions) without building a StageGraph for it.
func SupplyName(tree SupplyTree) string { return supplyName(tree) }

// supplyName derives the "identifier of the recipe/supplier used at this
// node" spec.md §3 calls for: the supplier's name for a Supplied leaf, the
// maker's name for a FromInventory leaf, and "maker|design" for a Made
// node — the same "party|design" naming original_source/src/okf.py's OKF
// uses when it builds a Supply name from an OKW/OKH pair
// (`name = w.name + "|" + h.name`).
func supplyName(tree SupplyTree) string {
	switch t := tree.(type) {
	case Supplied:
		return t.Supplier.Name
	case FromInventory:
		return t.Maker.Name
	case Made:
		return t.Maker.Name + "|" + t.Design.Name
	default:
		return ""
	}
}

// NewStageGraph deep-copies tree's shape into a fresh StageGraph with every
// node's Status set to Open and an empty RepairHistory. It returns
// (nil, false) if tree is incomplete: a Missing subtree produces no
// StageGraph, since an incomplete tree cannot be executed (spec.md §4.4).
func NewStageGraph(good Atom, tree SupplyTree) (*StageGraph, bool) {
	if !IsComplete(tree) {
		return nil, false
	}
	return buildStageGraph(good, tree), true
}

func buildStageGraph(good Atom, tree SupplyTree) *StageGraph {
	sg := &StageGraph{
		CurrentSupplyName: supplyName(tree),
		Good:              good,
		Status:            Open,
	}
	if made, ok := tree.(Made); ok {
		sg.Children = make(map[Identifier]*StageGraph, len(made.Children))
		for key, child := range made.Children {
			sg.Children[key] = buildStageGraph(child.Product(), child)
		}
	}
	return sg
}

// IsComplete reports whether the root and every descendant is Succeeded.
func (sg *StageGraph) IsComplete() bool {
	if sg.Status != Succeeded {
		return false
	}
	for _, key := range sg.sortedChildKeys() {
		if !sg.Children[key].IsComplete() {
			return false
		}
	}
	return true
}

// NeedsRepair reports whether any descendant (or self) is Failed.
func (sg *StageGraph) NeedsRepair() bool {
	if sg.Status == Failed {
		return true
	}
	for _, child := range sg.Children {
		if child.NeedsRepair() {
			return true
		}
	}
	return false
}

// AssertStatus sets the status of the first matching node (pre-order) to
// status, returning whether a node was found.
func (sg *StageGraph) AssertStatus(supplyName string, status Status) bool {
	if sg.CurrentSupplyName == supplyName {
		sg.Status = status
		return true
	}
	for _, key := range sg.sortedChildKeys() {
		if sg.Children[key].AssertStatus(supplyName, status) {
			return true
		}
	}
	return false
}

// Scratch is shorthand for AssertStatus(name, Failed).
func (sg *StageGraph) Scratch(name string) bool {
	return sg.AssertStatus(name, Failed)
}

// NamesOfFailed collects, in pre-order, the CurrentSupplyName of every
// Failed node. Descendants of a Failed node are not traversed: failure is
// reported at the highest point, and below-line nodes are moot until
// repair (spec.md §4.4).
func (sg *StageGraph) NamesOfFailed() []string {
	var out []string
	var walk func(*StageGraph)
	walk = func(n *StageGraph) {
		if n.Status == Failed {
			out = append(out, n.CurrentSupplyName)
			return
		}
		for _, key := range n.sortedChildKeys() {
			walk(n.Children[key])
		}
	}
	walk(sg)
	return out
}

// FindByName returns the first node (pre-order) whose CurrentSupplyName
// equals name, or nil.
func (sg *StageGraph) FindByName(name string) *StageGraph {
	if sg.CurrentSupplyName == name {
		return sg
	}
	for _, key := range sg.sortedChildKeys() {
		if found := sg.Children[key].FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// Repair locates the node named name, pushes its previous
// CurrentSupplyName onto RepairHistory, and replaces its
// CurrentSupplyName/Good/Children from newSubtree, resetting Status to
// Open. Reports whether a node was found.
func (sg *StageGraph) Repair(name string, newSubtree SupplyTree) bool {
	if sg.CurrentSupplyName == name {
		sg.RepairHistory = append(sg.RepairHistory, RepairRecord{
			PreviousSupplyName: sg.CurrentSupplyName,
			AuditID:            uuid.New(),
		})
		sg.CurrentSupplyName = supplyName(newSubtree)
		sg.Good = newSubtree.Product()
		if made, ok := newSubtree.(Made); ok {
			sg.Children = make(map[Identifier]*StageGraph, len(made.Children))
			for key, child := range made.Children {
				sg.Children[key] = buildStageGraph(child.Product(), child)
			}
		} else {
			sg.Children = nil
		}
		sg.Status = Open
		return true
	}
	for _, key := range sg.sortedChildKeys() {
		if sg.Children[key].Repair(name, newSubtree) {
			return true
		}
	}
	return false
}

func (sg *StageGraph) sortedChildKeys() []Identifier {
	keys := make([]Identifier, 0, len(sg.Children))
	for k := range sg.Children {
		keys = append(keys, k)
	}
	sortIdentifiers(keys)
	return keys
}

// SortedChildKeys exposes sortedChildKeys to callers outside this package
// (e.g. execution.AdvanceOne) that must walk Children in the same
// deterministic order every other StageGraph traversal here uses.
func (sg *StageGraph) SortedChildKeys() []Identifier { return sg.sortedChildKeys() }
