package readstore

import (
	"context"

	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/usecase/queries"

	"github.com/google/uuid"
)

// MemberReadStore runs on the connection handed in by the caller so several
// reads can share one read-only transaction.
type MemberReadStore struct{}

func NewMemberReadStore() *MemberReadStore {
	return &MemberReadStore{}
}

func (r *MemberReadStore) MemberExists(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID) (bool, error) {
	var exists bool
	if err := dbtx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM members WHERE id = $1)`, memberID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check member", err)
	}
	return exists, nil
}

func (r *MemberReadStore) ListPurchaseHistories(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID, page queries.PurchaseHistoryPage) ([]*queries.PurchaseHistoryView, error) {
	var w whereBuilder
	w.add("ph.member_id = $%d", memberID)
	if page.AfterTime != nil && page.AfterID != nil {
		w.conds = append(w.conds, "(ph.purchased_at, ph.id) < ("+w.arg(*page.AfterTime)+", "+w.arg(*page.AfterID)+")")
	}

	query := `SELECT ph.id, ph.member_id, s.id, s.pharmacy_id, s.inventory_id, s.pharmacy_name, s.inventory_name,
			s.color, s.count_per_pack, s.price, ph.amount, ph.quantity, ph.purchased_at
		FROM purchase_histories ph
		JOIN inventory_snapshots s ON s.id = ph.snapshot_id` +
		w.where() +
		` ORDER BY ph.purchased_at DESC, ph.id DESC LIMIT ` + w.arg(page.Limit)

	rows, err := dbtx.Query(ctx, query, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchase histories", err)
	}
	defer rows.Close()

	views := []*queries.PurchaseHistoryView{}
	for rows.Next() {
		var v queries.PurchaseHistoryView
		if err := rows.Scan(
			&v.ID, &v.MemberID, &v.SnapshotID, &v.PharmacyID, &v.InventoryID, &v.PharmacyName, &v.InventoryName,
			&v.Color, &v.CountPerPack, &v.Price, &v.Amount, &v.Quantity, &v.PurchasedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan purchase history", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list purchase histories", err)
	}
	return views, nil
}

// PurchaseRanking orders members by total spend, highest first.
func (r *MemberReadStore) PurchaseRanking(ctx context.Context, dbtx db.DBTX, f queries.RankingFilter) ([]*queries.PurchaseRankingView, error) {
	var w whereBuilder
	if f.From != nil {
		w.add("ph.purchased_at >= $%d", *f.From)
	}
	if f.To != nil {
		w.add("ph.purchased_at <= $%d", *f.To)
	}

	query := `SELECT m.id, m.name, SUM(ph.amount) AS accumulated_amount
		FROM purchase_histories ph
		JOIN members m ON m.id = ph.member_id` +
		w.where() +
		` GROUP BY m.id, m.name
		ORDER BY accumulated_amount DESC, m.id`
	if f.Top > 0 {
		query += ` LIMIT ` + w.arg(f.Top)
	}

	rows, err := dbtx.Query(ctx, query, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank members", err)
	}
	defer rows.Close()

	views := []*queries.PurchaseRankingView{}
	for rows.Next() {
		var v queries.PurchaseRankingView
		if err := rows.Scan(&v.MemberID, &v.MemberName, &v.AccumulatedAmount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ranking row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to rank members", err)
	}
	return views, nil
}
