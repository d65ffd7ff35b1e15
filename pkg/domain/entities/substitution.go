package entities

// Substitution is a repair intent: replace the node currently identified
// by Scratched with Replacement. execution.Order.RepairBy reads only
// Scratched: it repairs with the first complete subtree in enumeration
// order, whatever Replacement names.
type Substitution struct {
	Scratched   string
	Replacement string
}
