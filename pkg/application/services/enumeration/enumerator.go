// Package enumeration implements the AND/OR SupplyTree enumerator
// (spec.md §4.2), the largest single component of the engine. It replaces
// original_source/src/pd_sc.py's SupplyProblem — an exception-driven,
// hand-rolled Python iterator whose own comments admit its bookkeeping is
// not fully understood ("I don't believe this can be correct", pd_sc.py
// line 142) — with Go's native lazy-sequence primitive, iter.Seq. Nested
// range-over-func loops are themselves the "advance the rightmost child
// first, roll over" state machine spec.md §4.2's Cartesian product policy
// calls for: the innermost loop (the last BOM atom in sorted order) always
// completes before an outer loop advances, and range-over-func suspends
// between yields with no goroutines and no background work, matching the
// suspension/cancellation requirements of spec.md §5.
package enumeration

import (
	"iter"

	"go.uber.org/zap"

	"github.com/supplyplan/core/pkg/domain/entities"
)

// logger receives this package's cycle-cut diagnostics. It defaults to a
// no-op sink so callers that never wire a real logger (most tests) pay
// nothing; cli.Execute calls SetLogger once at startup.
var logger = zap.NewNop()

// SetLogger installs l as the destination for this package's log lines.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Enumerate produces every SupplyTree realizing product over catalog, in
// the deterministic order spec.md §4.2 pins: supplier emissions in
// catalog-party order, then (design × maker) in design-then-maker order,
// then per-BOM-atom in identifier order, then per-child in that child's
// own enumeration order. The sequence is finite when the recipe graph
// reachable from product is acyclic; a cycle is cut to a single Missing
// leaf at the point the cycle reappears on the current expansion path
// (spec.md §8 property 5).
func Enumerate(catalog entities.Catalog, product entities.Atom) iter.Seq[entities.SupplyTree] {
	return func(yield func(entities.SupplyTree) bool) {
		enumerate(catalog, product, nil, yield)
	}
}

// enumerate drives one subproblem. path is the stack of atom identifiers
// currently under expansion, used for cycle detection. It returns whether
// the caller should keep pulling (false once the consumer has asked to
// stop via yield).
func enumerate(
	catalog entities.Catalog,
	product entities.Atom,
	path []entities.Identifier,
	yield func(entities.SupplyTree) bool,
) bool {
	for _, id := range path {
		if id == product.Identifier {
			logger.Debug("cycle cut",
				zap.String("atom", string(product.Identifier)),
				zap.Int("path_depth", len(path)),
			)
			return yield(entities.Missing{ProductAtom: product})
		}
	}
	// Each recursive call gets its own copy of path: siblings in a
	// Cartesian product must not see each other's expansion frames.
	childPath := append(append([]entities.Identifier(nil), path...), product.Identifier)

	found := false

	for _, supplier := range catalog.SuppliersOf(product) {
		found = true
		if !yield(entities.Supplied{ProductAtom: product, Supplier: supplier}) {
			return false
		}
	}

	for _, design := range catalog.DesignsFor(product) {
		for _, maker := range catalog.CompatibleMakers(design) {
			found = true
			if !enumerateMade(catalog, design, maker, childPath, yield) {
				return false
			}
		}
	}

	if !found {
		return yield(entities.Missing{ProductAtom: product})
	}
	return true
}

// enumerateMade emits every Made(product, design, maker, ...) combination,
// including those whose children contain Missing leaves: the Cartesian
// product of each BOM atom's choice set
// (a singleton FromInventory if the maker already holds it, otherwise the
// recursive Enumerate of that atom).
func enumerateMade(
	catalog entities.Catalog,
	design entities.Design,
	maker entities.Party,
	path []entities.Identifier,
	yield func(entities.SupplyTree) bool,
) bool {
	keys := design.BOM.SortedIdentifiers()
	children := make(map[entities.Identifier]entities.SupplyTree, len(keys))
	return cartesian(catalog, design, maker, keys, 0, children, path, yield)
}

// cartesian assigns a choice to keys[idx..] and, once every key is
// assigned, emits the resulting Made node. idx+1 is driven to exhaustion
// before idx advances, so the last key (design.BOM's highest identifier)
// is the one that varies fastest — the "rightmost first" rollover order.
func cartesian(
	catalog entities.Catalog,
	design entities.Design,
	maker entities.Party,
	keys []entities.Identifier,
	idx int,
	children map[entities.Identifier]entities.SupplyTree,
	path []entities.Identifier,
	yield func(entities.SupplyTree) bool,
) bool {
	if idx == len(keys) {
		snapshot := make(map[entities.Identifier]entities.SupplyTree, len(children))
		for k, v := range children {
			snapshot[k] = v
		}
		return yield(entities.Made{
			ProductAtom: design.Product,
			Design:      design,
			Maker:       maker,
			Children:    snapshot,
		})
	}

	key := keys[idx]
	bomAtom := design.BOM[key]

	if maker.Inventory.ContainsIdentifier(key) {
		children[key] = entities.FromInventory{ProductAtom: bomAtom, Maker: maker}
		ok := cartesian(catalog, design, maker, keys, idx+1, children, path, yield)
		delete(children, key)
		return ok
	}

	childSeq := func(yield2 func(entities.SupplyTree) bool) {
		enumerate(catalog, bomAtom, path, yield2)
	}
	keepGoing := true
	for childTree := range childSeq {
		children[key] = childTree
		if !cartesian(catalog, design, maker, keys, idx+1, children, path, yield) {
			keepGoing = false
			break
		}
	}
	delete(children, key)
	return keepGoing
}

// IsConsistent re-exports entities.IsConsistent for callers that only
// import the enumeration package.
func IsConsistent(tree entities.SupplyTree) bool { return entities.IsConsistent(tree) }

// IsComplete re-exports entities.IsComplete.
func IsComplete(tree entities.SupplyTree) bool { return entities.IsComplete(tree) }

// MissingAtoms re-exports entities.MissingAtoms.
func MissingAtoms(tree entities.SupplyTree) []entities.Atom { return entities.MissingAtoms(tree) }

// First returns the first tree Enumerate would produce, and whether one
// exists. Used by execution.Order when a repair needs only the
// first-in-enumeration-order complete subtree (spec.md §4.5).
func First(catalog entities.Catalog, product entities.Atom, complete bool) (entities.SupplyTree, bool) {
	for tree := range Enumerate(catalog, product) {
		if complete && !IsComplete(tree) {
			continue
		}
		return tree, true
	}
	return nil, false
}

// Complete returns every complete tree Enumerate would produce for
// product, in enumeration order. It materializes the full sequence, so
// callers that only need the first match or a running optimum should pull
// from Enumerate directly instead.
func Complete(catalog entities.Catalog, product entities.Atom) []entities.SupplyTree {
	var out []entities.SupplyTree
	for tree := range Enumerate(catalog, product) {
		if IsComplete(tree) {
			out = append(out, tree)
		}
	}
	return out
}
