package entities

// IsConsistent reports whether every Made node's children cover exactly its
// design's BOM, and each child's produced atom equals its BOM key — the
// standalone check spec.md §4.2 names as `is_consistent`, kept separate
// from tree construction so a hand-built or deserialized tree can be
// checked independently (matching the separation in
// original_source/src/supply.py's standalone checkConsistency).
func IsConsistent(tree SupplyTree) bool {
	switch t := tree.(type) {
	case Made:
		if len(t.Children) != len(t.Design.BOM) {
			return false
		}
		for key, child := range t.Children {
			if !t.Design.BOM.ContainsIdentifier(key) {
				return false
			}
			if child.Product().Identifier != key {
				return false
			}
			if !IsConsistent(child) {
				return false
			}
		}
		return true
	case Supplied, FromInventory, Missing:
		return true
	default:
		return false
	}
}

// IsComplete reports whether tree contains no reachable Missing node.
func IsComplete(tree SupplyTree) bool {
	return len(MissingAtoms(tree)) == 0
}

// MissingAtoms collects every atom for which the tree contains a Missing
// leaf, in pre-order.
func MissingAtoms(tree SupplyTree) []Atom {
	var out []Atom
	var walk func(SupplyTree)
	walk = func(t SupplyTree) {
		switch v := t.(type) {
		case Missing:
			out = append(out, v.ProductAtom)
		case Made:
			for _, key := range v.SortedChildKeys() {
				walk(v.Children[key])
			}
		}
	}
	walk(tree)
	return out
}

// atomJSON is the stable {"id", "desc"} encoding spec.md §6 pins for Atom.
type atomJSON struct {
	ID   string `json:"id"`
	Desc string `json:"desc"`
}

func (a Atom) toJSON() atomJSON {
	return atomJSON{ID: string(a.Identifier), Desc: a.Description}
}

// TreeJSON is the stable wire shape for a SupplyTree (spec.md §6). Exactly
// one of the typed fields is populated, selected by Type.
type TreeJSON struct {
	Product    atomJSON   `json:"product"`
	Type       string     `json:"type"`
	Party      string     `json:"party,omitempty"`
	Design     string     `json:"design,omitempty"`
	BOM        []TreeJSON `json:"bom,omitempty"`
	Byproducts []atomJSON `json:"byproducts,omitempty"`
}

// ToJSON renders tree into the stable wire shape spec.md §6 pins.
func ToJSON(tree SupplyTree) TreeJSON {
	switch t := tree.(type) {
	case Supplied:
		return TreeJSON{Product: t.ProductAtom.toJSON(), Type: "supplied", Party: t.Supplier.Name}
	case FromInventory:
		// original_source/src/atoms.py's InventorySupplyTree.print
		// dereferences a field called `supplier` that the type never
		// defines (spec.md §9's known defect); the wire shape here uses
		// maker.Name, the field that actually exists.
		return TreeJSON{Product: t.ProductAtom.toJSON(), Type: "inventory", Party: t.Maker.Name}
	case Made:
		keys := t.SortedChildKeys()
		bom := make([]TreeJSON, len(keys))
		for i, k := range keys {
			bom[i] = ToJSON(t.Children[k])
		}
		var byproducts []atomJSON
		for _, b := range t.Design.Byproducts.Slice() {
			byproducts = append(byproducts, b.toJSON())
		}
		return TreeJSON{
			Product:    t.ProductAtom.toJSON(),
			Type:       "made",
			Party:      t.Maker.Name,
			Design:     t.Design.Name,
			BOM:        bom,
			Byproducts: byproducts,
		}
	case Missing:
		return TreeJSON{Product: t.ProductAtom.toJSON(), Type: "missing"}
	default:
		return TreeJSON{}
	}
}
