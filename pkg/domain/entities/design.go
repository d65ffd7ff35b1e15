package entities

import "github.com/supplyplan/core/pkg/domain/services/costalg"

// Design is a recipe: a product plus the atoms it consumes (BOM), the
// tools required to make it, the byproducts it also yields, and a symbolic
// cost expression whose free variables are exactly the BOM's identifiers
// plus one recipe-private constant symbol (the design's own intrinsic
// cost).
type Design struct {
	Name       string
	Product    Atom
	BOM        AtomSet
	Tools      AtomSet
	Byproducts AtomSet
	CostExpr   costalg.Expr
}

// NewDesign validates and constructs a Design. Invariants enforced here
// (spec.md §3): product ∉ bom; bom ∩ byproducts = ∅; name non-empty; the
// design's own product does not appear in its own BOM (the direct-cycle
// check spec.md §4.2 requires be rejected at assembly time, before the
// enumerator ever has to reason about it).
func NewDesign(
	name string,
	product Atom,
	bom, tools, byproducts []Atom,
	costExpr costalg.Expr,
) (Design, error) {
	if name == "" {
		return Design{}, &ValidationError{Reason: "design name must not be empty"}
	}

	bomSet := NewAtomSet(bom...)
	if bomSet.Contains(product) {
		return Design{}, &ValidationError{
			Reason: "design " + name + ": product " + string(product.Identifier) + " appears in its own BOM",
		}
	}

	byproductSet := NewAtomSet(byproducts...)
	if bomSet.Intersects(byproductSet) {
		return Design{}, &ValidationError{
			Reason: "design " + name + ": bom and byproducts overlap",
		}
	}

	return Design{
		Name:       name,
		Product:    product,
		BOM:        bomSet,
		Tools:      NewAtomSet(tools...),
		Byproducts: byproductSet,
		CostExpr:   costExpr,
	}, nil
}
