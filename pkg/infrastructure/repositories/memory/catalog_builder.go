// Package memory holds the in-memory Catalog construction used by the CLI
// and by tests: it turns ingest records into a validated entities.Catalog,
// the same index-building role
// pkg/infrastructure/repositories/memory/bom_repository.go's
// NewBOMRepository plays for the teacher's BOM lines, generalized from a
// single flat slice to the Party/Design/price shapes this domain needs.
package memory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/supplyplan/core/pkg/domain/entities"
	"github.com/supplyplan/core/pkg/domain/services/costalg"
	"github.com/supplyplan/core/pkg/ingest"
)

// logger receives this package's validation-rejection diagnostics. It
// defaults to a no-op sink so callers that never wire a real logger (most
// tests) pay nothing; cli.Execute calls SetLogger once at startup.
var logger = zap.NewNop()

// SetLogger installs l as the destination for this package's log lines.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// CatalogValidationError reports a fatal defect found while assembling a
// Catalog from ingestion records (spec.md §6: "surfaced at assembly, not
// at plan time").
type CatalogValidationError struct {
	Reason string
}

func (e *CatalogValidationError) Error() string {
	return "catalog validation: " + e.Reason
}

// CatalogBuilder accumulates ingestion records and produces an immutable
// entities.Catalog, rejecting a partially-built catalog on any fatal error
// (spec.md §7 IngestionError policy: "the core refuses to accept a
// partially-built catalog").
type CatalogBuilder struct {
	parties []ingest.PartyRecord
	designs []ingest.DesignRecord
	prices  []ingest.PriceRecord
}

// NewCatalogBuilder returns an empty builder.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{}
}

// AddParty queues a party record.
func (b *CatalogBuilder) AddParty(rec ingest.PartyRecord) *CatalogBuilder {
	b.parties = append(b.parties, rec)
	return b
}

// AddDesign queues a design record.
func (b *CatalogBuilder) AddDesign(rec ingest.DesignRecord) *CatalogBuilder {
	b.designs = append(b.designs, rec)
	return b
}

// AddPrice queues a price record.
func (b *CatalogBuilder) AddPrice(rec ingest.PriceRecord) *CatalogBuilder {
	b.prices = append(b.prices, rec)
	return b
}

// Build validates every queued record and constructs a Catalog. It
// returns *CatalogValidationError for: a design whose product ∈ its own
// BOM; an empty design name; a duplicate design name; a missing required
// atom identifier (spec.md §6/§7).
func (b *CatalogBuilder) Build() (entities.Catalog, error) {
	parties := make([]entities.Party, 0, len(b.parties))
	for _, rec := range b.parties {
		p, err := buildParty(rec)
		if err != nil {
			logger.Error("catalog validation rejected party", zap.String("party", rec.Title), zap.Error(err))
			return entities.Catalog{}, err
		}
		parties = append(parties, p)
	}

	seenNames := make(map[string]bool, len(b.designs))
	designs := make([]entities.Design, 0, len(b.designs))
	for _, rec := range b.designs {
		if rec.Title == "" {
			err := &CatalogValidationError{Reason: "design has empty name"}
			logger.Error("catalog validation rejected design", zap.Error(err))
			return entities.Catalog{}, err
		}
		if seenNames[rec.Title] {
			err := &CatalogValidationError{Reason: "duplicate design name: " + rec.Title}
			logger.Error("catalog validation rejected design", zap.String("design", rec.Title), zap.Error(err))
			return entities.Catalog{}, err
		}
		seenNames[rec.Title] = true

		d, err := buildDesign(rec)
		if err != nil {
			logger.Error("catalog validation rejected design", zap.String("design", rec.Title), zap.Error(err))
			return entities.Catalog{}, err
		}
		designs = append(designs, d)
	}

	prices := make(map[entities.Identifier]decimal.Decimal, len(b.prices))
	for _, rec := range b.prices {
		if rec.Identifier == "" {
			err := &CatalogValidationError{Reason: "price record missing atom identifier"}
			logger.Error("catalog validation rejected price", zap.Error(err))
			return entities.Catalog{}, err
		}
		v, err := decimal.NewFromString(rec.Price)
		if err != nil {
			verr := &CatalogValidationError{Reason: fmt.Sprintf("price for %s is not numeric: %v", rec.Identifier, err)}
			logger.Error("catalog validation rejected price", zap.String("atom", rec.Identifier), zap.Error(verr))
			return entities.Catalog{}, verr
		}
		prices[entities.Identifier(rec.Identifier)] = v
	}

	return entities.NewCatalog(parties, designs, prices), nil
}

func buildAtom(rec ingest.AtomRecord) (entities.Atom, error) {
	a, err := entities.NewAtom(rec.Identifier, rec.Description)
	if err != nil {
		return entities.Atom{}, &CatalogValidationError{Reason: err.Error()}
	}
	return a, nil
}

func buildAtoms(recs []ingest.AtomRecord) ([]entities.Atom, error) {
	out := make([]entities.Atom, 0, len(recs))
	for _, rec := range recs {
		a, err := buildAtom(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func buildParty(rec ingest.PartyRecord) (entities.Party, error) {
	supplies, err := buildAtoms(rec.SupplyAtoms)
	if err != nil {
		return entities.Party{}, err
	}
	tools, err := buildAtoms(rec.ToolListAtoms)
	if err != nil {
		return entities.Party{}, err
	}
	inventory, err := buildAtoms(rec.InventoryAtoms)
	if err != nil {
		return entities.Party{}, err
	}
	p, err := entities.NewParty(rec.Title, supplies, tools, inventory)
	if err != nil {
		return entities.Party{}, &CatalogValidationError{Reason: err.Error()}
	}
	return p, nil
}

func buildDesign(rec ingest.DesignRecord) (entities.Design, error) {
	product, err := buildAtom(rec.ProductAtom)
	if err != nil {
		return entities.Design{}, err
	}
	bom, err := buildAtoms(rec.BOMAtoms)
	if err != nil {
		return entities.Design{}, err
	}
	tools, err := buildAtoms(rec.ToolListAtoms)
	if err != nil {
		return entities.Design{}, err
	}
	byproducts, err := buildAtoms(rec.BOMOutputAtoms)
	if err != nil {
		return entities.Design{}, err
	}

	var costExpr costalg.Expr
	if rec.CostExpression != "" {
		costExpr, err = costalg.ParseExpr(rec.CostExpression)
		if err != nil {
			return entities.Design{}, &CatalogValidationError{Reason: fmt.Sprintf("design %s: %v", rec.Title, err)}
		}
	}

	d, err := entities.NewDesign(rec.Title, product, bom, tools, byproducts, costExpr)
	if err != nil {
		return entities.Design{}, &CatalogValidationError{Reason: err.Error()}
	}
	return d, nil
}
