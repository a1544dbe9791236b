package queries

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type InventoryReadStore interface {
	PharmacyExists(ctx context.Context, pharmacyID uuid.UUID) (bool, error)
	ListByPharmacy(ctx context.Context, pharmacyID uuid.UUID, filter InventoryFilter) ([]*InventoryView, error)
	Search(ctx context.Context, terms []string) ([]*InventorySearchView, error)
	CountByPharmacy(ctx context.Context, filter StockCountFilter) ([]*InventoryCountView, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/inventory.go -package=queriesmock phantom-mask/internal/usecase/queries InventoryQueries
type InventoryQueries interface {
	ListByPharmacy(ctx context.Context, pharmacyID uuid.UUID, filter InventoryFilter) ([]*InventoryView, error)
	Search(ctx context.Context, search string) ([]*InventorySearchView, error)
	CountByPharmacy(ctx context.Context, filter StockCountFilter) ([]*InventoryCountView, error)
}

type inventoryQueriesImpl struct {
	readStore InventoryReadStore
}

func NewInventoryQueries(readStore InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{readStore: readStore}
}

func (q *inventoryQueriesImpl) ListByPharmacy(ctx context.Context, pharmacyID uuid.UUID, filter InventoryFilter) ([]*InventoryView, error) {
	exists, err := q.readStore.PharmacyExists(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPharmacyNotFound
	}

	filter.Names = splitTerms(filter.Names, ",")
	return q.readStore.ListByPharmacy(ctx, pharmacyID, filter)
}

// Search ranks inventories whose name or pharmacy name matches any term.
// An empty search lists everything with rank 0.
func (q *inventoryQueriesImpl) Search(ctx context.Context, search string) ([]*InventorySearchView, error) {
	terms := strings.Fields(search)
	if len(terms) == 0 {
		terms = nil
	}
	return q.readStore.Search(ctx, terms)
}

func (q *inventoryQueriesImpl) CountByPharmacy(ctx context.Context, filter StockCountFilter) ([]*InventoryCountView, error) {
	return q.readStore.CountByPharmacy(ctx, filter)
}

// splitTerms flattens comma separated values and drops blanks.
func splitTerms(values []string, sep string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, sep) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
