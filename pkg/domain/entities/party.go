package entities

// Party is an entity that either stocks raw supplies, owns tools and
// inventory to act as a maker, or both. Supplies are atoms it sells from
// outside; Inventory is atoms it already holds on-hand, letting a maker
// shortcut BOM resolution; Tools are the tool atoms it owns.
type Party struct {
	Name      string
	Supplies  AtomSet
	Tools     AtomSet
	Inventory AtomSet
}

// NewParty constructs a Party from slices, deduplicating into sets.
func NewParty(name string, supplies, tools, inventory []Atom) (Party, error) {
	if name == "" {
		return Party{}, &ValidationError{Reason: "party name must not be empty"}
	}
	return Party{
		Name:      name,
		Supplies:  NewAtomSet(supplies...),
		Tools:     NewAtomSet(tools...),
		Inventory: NewAtomSet(inventory...),
	}, nil
}

// HasAllTools reports whether this party's Tools is a superset of
// requiredTools. The separate "a design with no tools has no compatible
// maker" rule (spec.md §3/§4.1) is enforced by the caller
// (Catalog.CompatibleMakers), not here: it is a property of the design
// being matched, not of this party.
func (p Party) HasAllTools(requiredTools AtomSet) bool {
	for id := range requiredTools {
		if !p.Tools.ContainsIdentifier(id) {
			return false
		}
	}
	return true
}
