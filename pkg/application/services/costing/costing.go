// Package costing implements spec.md §4.3's Compose/Reduce/Optimize
// cost model on top of costalg's symbolic expression tree.
package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/supplyplan/core/pkg/application/services/enumeration"
	"github.com/supplyplan/core/pkg/domain/entities"
	"github.com/supplyplan/core/pkg/domain/services/costalg"
)

// MissingCharacteristicError reports that Characteristic was asked for the
// cost of an incomplete tree (spec.md §4.3: "for Missing, the expression
// is undefined; scoring requires a complete tree").
type MissingCharacteristicError struct {
	Atom entities.Atom
}

func (e *MissingCharacteristicError) Error() string {
	return fmt.Sprintf("costing: cannot characterize incomplete tree, missing %s", e.Atom.Identifier)
}

// Characteristic builds the symbolic cost expression for tree (spec.md
// §4.3 "Compose"). A Supplied or FromInventory leaf becomes the variable
// named after its product atom's identifier; a Made node takes its
// design's cost expression and substitutes each BOM variable with the
// Characteristic of the corresponding child.
func Characteristic(tree entities.SupplyTree) (costalg.Expr, error) {
	switch t := tree.(type) {
	case entities.Supplied:
		return costalg.Var{Name: string(t.ProductAtom.Identifier)}, nil
	case entities.FromInventory:
		return costalg.Var{Name: string(t.ProductAtom.Identifier)}, nil
	case entities.Made:
		bindings := make(map[string]costalg.Expr, len(t.Children))
		for key, child := range t.Children {
			childExpr, err := Characteristic(child)
			if err != nil {
				return nil, err
			}
			bindings[string(key)] = childExpr
		}
		return costalg.SubstituteAll(t.Design.CostExpr, bindings), nil
	case entities.Missing:
		return nil, &MissingCharacteristicError{Atom: t.ProductAtom}
	default:
		return nil, fmt.Errorf("costing: unknown SupplyTree variant %T", tree)
	}
}

// Price evaluates tree's Characteristic against priceMap (spec.md §4.3
// "Reduce"): priceMap maps an atom identifier to its numeric price, the
// same keying Catalog.PriceValues produces.
func Price(tree entities.SupplyTree, priceMap map[string]decimal.Decimal) (decimal.Decimal, error) {
	expr, err := Characteristic(tree)
	if err != nil {
		return decimal.Zero, err
	}
	return costalg.Eval(expr, priceMap)
}

// ScoreFunc scores a complete SupplyTree. Price against a fixed price map
// is the common case, but any function respecting this signature can
// drive Optimum (e.g. a weighted score mixing price and lead time).
type ScoreFunc func(entities.SupplyTree) (decimal.Decimal, error)

// PriceScore returns a ScoreFunc that evaluates Price against priceMap.
func PriceScore(priceMap map[string]decimal.Decimal) ScoreFunc {
	return func(tree entities.SupplyTree) (decimal.Decimal, error) {
		return Price(tree, priceMap)
	}
}

// Optimum returns the argmin over every complete tree enumeration.Enumerate
// produces for product, scored by score (spec.md §4.3 "Optimize"). Ties
// are broken by enumeration order: the first tree to reach a score is kept
// and a later tree must strictly improve on it to replace it. This fixes
// the reference implementation's defect of returning the last-iterated
// tree (spec.md §9) instead of the true minimum.
//
// Optimum reports ok=false if product has no complete realization.
func Optimum(catalog entities.Catalog, product entities.Atom, score ScoreFunc) (best entities.SupplyTree, bestScore decimal.Decimal, ok bool, err error) {
	for tree := range enumeration.Enumerate(catalog, product) {
		if !enumeration.IsComplete(tree) {
			continue
		}
		s, scoreErr := score(tree)
		if scoreErr != nil {
			return nil, decimal.Zero, false, scoreErr
		}
		if !ok || s.LessThan(bestScore) {
			best, bestScore, ok = tree, s, true
		}
	}
	return best, bestScore, ok, nil
}
