// Package validate provides non-fatal diagnostics over a catalog's
// designs, beyond the fatal checks CatalogValidationError enforces at
// assembly time (spec.md §6/§7). A recipe cycle is not itself fatal — the
// enumerator already terminates safely on one, emitting Missing at the
// cycle boundary (spec.md §8 property 5) — but surfacing it early helps a
// caller notice an unintended catalog shape before planning. The
// adjacency-map-then-DFS structure mirrors
// pkg/domain/services/bom_validator's detectCycles.
package validate

import (
	"fmt"

	"github.com/supplyplan/core/pkg/domain/entities"
)

// Result collects the diagnostics ValidateDesigns finds.
type Result struct {
	HasCycles      bool
	CyclePaths     [][]entities.Identifier
	DuplicateNames []string
	Warnings       []string
}

// ValidateDesigns reports recipe cycles (product -> BOM atom -> ... ->
// same product) and duplicate design names across designs. Neither
// condition prevents a Catalog from being built; both are surfaced as
// warnings for the caller to act on.
func ValidateDesigns(designs []entities.Design) *Result {
	result := &Result{}

	adjacency := buildProductAdjacency(designs)
	cycles := detectCycles(adjacency)
	result.HasCycles = len(cycles) > 0
	result.CyclePaths = cycles
	for _, cycle := range cycles {
		result.Warnings = append(result.Warnings, fmt.Sprintf("recipe cycle detected: %v", cycle))
	}

	seen := make(map[string]bool, len(designs))
	for _, d := range designs {
		if seen[d.Name] {
			result.DuplicateNames = append(result.DuplicateNames, d.Name)
			result.Warnings = append(result.Warnings, "duplicate design name: "+d.Name)
		}
		seen[d.Name] = true
	}

	return result
}

// buildProductAdjacency maps a design's product to the identifiers of
// every BOM atom that some design (in designs) also produces — the edges
// a cycle walk needs to follow.
func buildProductAdjacency(designs []entities.Design) map[entities.Identifier][]entities.Identifier {
	producedBy := make(map[entities.Identifier]bool, len(designs))
	for _, d := range designs {
		producedBy[d.Product.Identifier] = true
	}

	adjacency := make(map[entities.Identifier][]entities.Identifier)
	for _, d := range designs {
		for _, id := range d.BOM.SortedIdentifiers() {
			if producedBy[id] {
				adjacency[d.Product.Identifier] = append(adjacency[d.Product.Identifier], id)
			}
		}
	}
	return adjacency
}

// detectCycles walks the adjacency map with a recursion-stack DFS,
// reporting each distinct cycle found as the path from its first
// recurrence to its close.
func detectCycles(adjacency map[entities.Identifier][]entities.Identifier) [][]entities.Identifier {
	visited := make(map[entities.Identifier]bool)
	onStack := make(map[entities.Identifier]bool)
	var cycles [][]entities.Identifier

	var walk func(node entities.Identifier, path []entities.Identifier)
	walk = func(node entities.Identifier, path []entities.Identifier) {
		visited[node] = true
		onStack[node] = true
		path = append(path, node)

		for _, next := range adjacency[node] {
			if !visited[next] {
				walk(next, path)
				continue
			}
			if !onStack[next] {
				continue
			}
			start := -1
			for i, id := range path {
				if id == next {
					start = i
					break
				}
			}
			if start >= 0 {
				cycle := append([]entities.Identifier(nil), path[start:]...)
				cycle = append(cycle, next)
				cycles = append(cycles, cycle)
			}
		}

		onStack[node] = false
	}

	for node := range adjacency {
		if !visited[node] {
			walk(node, nil)
		}
	}
	return cycles
}
