package entities

import "fmt"

// ValidationError reports a catalog-assembly-time failure: a self-referential
// recipe, an empty design name, a duplicate design name, or a missing
// required field on an ingested record. It is always fatal, per spec.md §7.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation: %s", e.Reason)
}

// RepairInfeasibleError reports that no complete subtree exists for a
// failed StageGraph node over the remaining catalog (spec.md §7). Callers
// may widen the catalog, downgrade status, or give up.
type RepairInfeasibleError struct {
	SupplyName string
}

func (e *RepairInfeasibleError) Error() string {
	return fmt.Sprintf("repair infeasible: no complete subtree available for %q", e.SupplyName)
}
