// Package execution implements the Order execution-and-repair lifecycle
// (spec.md §4.4/§4.5): advancing a StageGraph leaf by leaf, scratching and
// repairing failed nodes, and the global bifurcated-network repair
// operators.
package execution

import (
	"go.uber.org/zap"

	"github.com/supplyplan/core/pkg/application/services/enumeration"
	"github.com/supplyplan/core/pkg/domain/entities"
)

// logger receives this package's advance/repair audit log lines. It
// defaults to a no-op sink so callers that never wire a real logger (most
// tests) pay nothing; cli.Execute calls SetLogger once at startup.
var logger = zap.NewNop()

// SetLogger installs l as the destination for this package's audit log
// lines.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Order drives the execution of a single StageGraph toward completion.
type Order struct {
	Good       entities.Atom
	StageGraph *entities.StageGraph
}

// NewOrder wraps an already-built StageGraph. Construction of the
// StageGraph itself (from a chosen SupplyTree) is entities.NewStageGraph.
func NewOrder(good entities.Atom, sg *entities.StageGraph) *Order {
	return &Order{Good: good, StageGraph: sg}
}

// AdvanceOne finds the deepest Open node in post-order, marks it Succeeded,
// and returns it. It returns (nil, false) when no Open node remains —
// the normal end-of-work signal, not an error (spec.md §7).
func (o *Order) AdvanceOne() (*entities.StageGraph, bool) {
	return advanceDeepestOpen(o.StageGraph)
}

// advanceDeepestOpen walks to the leaves first (post-order): a node's
// children are searched before the node itself, so "the leaf operations
// must finish before the parent can start" (spec.md §4.4) holds for every
// call, not just the first.
func advanceDeepestOpen(sg *entities.StageGraph) (*entities.StageGraph, bool) {
	for _, key := range sg.SortedChildKeys() {
		if found, ok := advanceDeepestOpen(sg.Children[key]); ok {
			return found, true
		}
	}
	if sg.Status == entities.Open {
		sg.Status = entities.Succeeded
		logger.Debug("advanced node to succeeded",
			zap.String("supply_name", sg.CurrentSupplyName),
			zap.String("good", string(sg.Good.Identifier)),
		)
		return sg, true
	}
	return nil, false
}

// RepairInfeasibleError reports that no complete subtree exists for a
// scratched node's good over the given catalog (spec.md §7).
type RepairInfeasibleError struct {
	SupplyName string
}

func (e *RepairInfeasibleError) Error() string {
	return "execution: no complete subtree available to repair " + e.SupplyName
}

// RepairBy locates the node named sub.Scratched, enumerates complete
// subtrees for that node's good over catalog, and repairs the StageGraph
// with the first one in enumeration order (spec.md §4.4's determinism
// requirement, §4.2). It returns RepairInfeasibleError if the node does
// not exist or no complete subtree can be found.
func (o *Order) RepairBy(sub entities.Substitution, catalog entities.Catalog) error {
	node := o.StageGraph.FindByName(sub.Scratched)
	if node == nil {
		logger.Warn("repair infeasible: node not found", zap.String("scratched", sub.Scratched))
		return &RepairInfeasibleError{SupplyName: sub.Scratched}
	}
	tree, ok := enumeration.First(catalog, node.Good, true)
	if !ok {
		logger.Warn("repair infeasible: no complete subtree",
			zap.String("scratched", sub.Scratched),
			zap.String("good", string(node.Good.Identifier)),
		)
		return &RepairInfeasibleError{SupplyName: sub.Scratched}
	}
	o.StageGraph.Repair(sub.Scratched, tree)
	logger.Info("repaired node",
		zap.String("scratched", sub.Scratched),
		zap.String("replacement", entities.SupplyName(tree)),
	)
	return nil
}

// FindSubstitutions enumerates, for every currently Failed node, every
// complete subtree available for that node's good over catalog, one
// Substitution per subtree (spec.md §4.4).
func (o *Order) FindSubstitutions(catalog entities.Catalog) []entities.Substitution {
	var out []entities.Substitution
	for _, name := range o.StageGraph.NamesOfFailed() {
		node := o.StageGraph.FindByName(name)
		if node == nil {
			continue
		}
		for tree := range enumeration.Enumerate(catalog, node.Good) {
			if !enumeration.IsComplete(tree) {
				continue
			}
			out = append(out, entities.Substitution{
				Scratched:   name,
				Replacement: entities.SupplyName(tree),
			})
		}
	}
	return out
}

// namesInNetwork collects every supply/maker name a StageGraph could ever
// present if it were built entirely from network: every party's name
// (covers Supplied/FromInventory leaves), plus "maker|design" for every
// design and its compatible makers (covers Made nodes).
func namesInNetwork(network entities.Catalog) []string {
	var names []string
	for _, p := range network.Parties() {
		names = append(names, p.Name)
	}
	for _, d := range network.Designs() {
		for _, m := range network.CompatibleMakers(d) {
			names = append(names, m.Name+"|"+d.Name)
		}
	}
	return names
}

// ScratchAll calls Scratch(name) on every graph, for every supply/maker
// name present in network (spec.md §4.4). It simulates the total loss of
// a sub-network within a larger combined network.
func ScratchAll(graphs []*entities.StageGraph, network entities.Catalog) {
	for _, name := range namesInNetwork(network) {
		for _, sg := range graphs {
			sg.Scratch(name)
		}
	}
}

// RepairAll applies one RepairBy per currently Failed node of each graph,
// over network, so each such node gets the first complete subtree in
// enumeration order (the first substitution FindSubstitutions would list
// for it); it returns the repaired graphs (spec.md §4.4). A node with no feasible substitution is left
// Failed; NeedsRepair reports whether any such node remains.
func RepairAll(graphs []*entities.StageGraph, network entities.Catalog) []*entities.StageGraph {
	out := make([]*entities.StageGraph, len(graphs))
	for i, sg := range graphs {
		order := NewOrder(sg.Good, sg)
		for _, name := range sg.NamesOfFailed() {
			_ = order.RepairBy(entities.Substitution{Scratched: name}, network)
		}
		out[i] = order.StageGraph
	}
	return out
}
