package readstore

import (
	"context"
	"strings"

	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/usecase/queries"

	"github.com/google/uuid"
)

const searchDocument = `to_tsvector('simple', i.name || ' ' || p.name)`

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(db db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: db}
}

func (r *InventoryReadStore) PharmacyExists(ctx context.Context, pharmacyID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pharmacies WHERE id = $1)`, pharmacyID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check pharmacy", err)
	}
	return exists, nil
}

func (r *InventoryReadStore) ListByPharmacy(ctx context.Context, pharmacyID uuid.UUID, f queries.InventoryFilter) ([]*queries.InventoryView, error) {
	var w whereBuilder
	w.add("i.pharmacy_id = $%d", pharmacyID)
	if len(f.Names) > 0 {
		w.add("i.name = ANY($%d)", f.Names)
	}
	w.addPrice("i.price", f.Price)

	query := `SELECT i.id, i.pharmacy_id, i.name, i.color, i.count_per_pack, i.price, i.stock_quantity, i.created_at, i.updated_at
		FROM inventories i` +
		w.where() +
		` ORDER BY i.name, i.price, i.id`

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventories", err)
	}
	defer rows.Close()

	views := []*queries.InventoryView{}
	for rows.Next() {
		var v queries.InventoryView
		if err := rows.Scan(&v.ID, &v.PharmacyID, &v.Name, &v.Color, &v.CountPerPack, &v.Price, &v.StockQuantity, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list inventories", err)
	}
	return views, nil
}

// Search matches any of terms against inventory and pharmacy names.
func (r *InventoryReadStore) Search(ctx context.Context, terms []string) ([]*queries.InventorySearchView, error) {
	var w whereBuilder
	rank := `0::float8`
	order := ` ORDER BY i.name, i.id`
	if len(terms) > 0 {
		tsq := `websearch_to_tsquery('simple', ` + w.arg(strings.Join(terms, " or ")) + `)`
		rank = `ts_rank(` + searchDocument + `, ` + tsq + `)::float8`
		w.conds = append(w.conds, searchDocument+` @@ `+tsq)
		order = ` ORDER BY rank DESC, i.name, i.id`
	}

	query := `SELECT i.id, i.pharmacy_id, p.name, i.name, i.color, i.count_per_pack, i.price, i.stock_quantity, ` + rank + ` AS rank
		FROM inventories i
		JOIN pharmacies p ON p.id = i.pharmacy_id` +
		w.where() + order

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search inventories", err)
	}
	defer rows.Close()

	views := []*queries.InventorySearchView{}
	for rows.Next() {
		var v queries.InventorySearchView
		if err := rows.Scan(&v.ID, &v.PharmacyID, &v.PharmacyName, &v.Name, &v.Color, &v.CountPerPack, &v.Price, &v.StockQuantity, &v.Rank); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to search inventories", err)
	}
	return views, nil
}

// CountByPharmacy sums stock per pharmacy over inventories in the price range.
func (r *InventoryReadStore) CountByPharmacy(ctx context.Context, f queries.StockCountFilter) ([]*queries.InventoryCountView, error) {
	var w whereBuilder
	w.addPrice("i.price", f.Price)
	where := w.where()

	having := whereBuilder{args: w.args}
	if f.CountGt != nil {
		having.add("SUM(i.stock_quantity) > $%d", *f.CountGt)
	}
	if f.CountLt != nil {
		having.add("SUM(i.stock_quantity) < $%d", *f.CountLt)
	}

	query := `SELECT p.id, p.name, COALESCE(SUM(i.stock_quantity), 0)::bigint AS inventory_count
		FROM pharmacies p
		JOIN inventories i ON i.pharmacy_id = p.id` +
		where +
		` GROUP BY p.id, p.name` +
		having.clause("HAVING") +
		` ORDER BY p.name, p.id`

	rows, err := r.db.Query(ctx, query, having.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count inventories", err)
	}
	defer rows.Close()

	views := []*queries.InventoryCountView{}
	for rows.Next() {
		var v queries.InventoryCountView
		if err := rows.Scan(&v.PharmacyID, &v.PharmacyName, &v.InventoryCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory count", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to count inventories", err)
	}
	return views, nil
}
