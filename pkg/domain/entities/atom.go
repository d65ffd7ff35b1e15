// Package entities defines the pure value types of the supply planning
// domain: Atom, Party, Design, Catalog, SupplyTree, StageGraph, and
// Substitution. None of these types perform I/O; they are built and
// validated by the infrastructure layer and consumed by the application
// services.
package entities

import "sort"

// Identifier is the map/set key type for an Atom. Identity is
// identifier-only: two atoms with the same Identifier are equal and hash
// equal regardless of Description.
type Identifier string

// Atom is an opaque identifier paired with a human description. It is the
// universal currency of the domain: products, materials, and tools are all
// Atoms.
type Atom struct {
	Identifier  Identifier
	Description string
}

// NewAtom constructs an Atom, rejecting an empty identifier per the
// ingestion invariant in spec.md §6 ("missing identifier is a fatal
// ingestion error").
func NewAtom(identifier, description string) (Atom, error) {
	if identifier == "" {
		return Atom{}, &ValidationError{Reason: "atom identifier must not be empty"}
	}
	return Atom{Identifier: Identifier(identifier), Description: description}, nil
}

// Equal reports whether two atoms share the same identifier, ignoring
// Description.
func (a Atom) Equal(other Atom) bool {
	return a.Identifier == other.Identifier
}

// AtomSet is a set of Atoms keyed by Identifier, preserving set semantics
// (membership, union, intersection) without requiring Atom to be Go-map
// comparable on its full value.
type AtomSet map[Identifier]Atom

// NewAtomSet builds an AtomSet from a slice of Atoms.
func NewAtomSet(atoms ...Atom) AtomSet {
	set := make(AtomSet, len(atoms))
	for _, a := range atoms {
		set[a.Identifier] = a
	}
	return set
}

// Contains reports whether the set holds an atom with the given identifier.
func (s AtomSet) Contains(a Atom) bool {
	_, ok := s[a.Identifier]
	return ok
}

// ContainsIdentifier reports whether the set holds the given identifier.
func (s AtomSet) ContainsIdentifier(id Identifier) bool {
	_, ok := s[id]
	return ok
}

// Intersects reports whether s and other share any identifier.
func (s AtomSet) Intersects(other AtomSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for id := range small {
		if _, ok := big[id]; ok {
			return true
		}
	}
	return false
}

// SortedIdentifiers returns the set's identifiers sorted lexicographically,
// the deterministic per-BOM-atom order spec.md §4.2 requires for AND-layer
// expansion.
func (s AtomSet) SortedIdentifiers() []Identifier {
	ids := make([]Identifier, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sortIdentifiers(ids)
	return ids
}

// Slice returns the set's atoms in the order of SortedIdentifiers.
func (s AtomSet) Slice() []Atom {
	ids := s.SortedIdentifiers()
	out := make([]Atom, len(ids))
	for i, id := range ids {
		out[i] = s[id]
	}
	return out
}

func sortIdentifiers(ids []Identifier) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
