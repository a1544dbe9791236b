package repository

import (
	"context"

	"phantom-mask/internal/domain/member"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
)

type PurchaseHistoryRepository struct {
	db db.DBTX
}

func NewPurchaseHistoryRepository(db db.DBTX) *PurchaseHistoryRepository {
	return &PurchaseHistoryRepository{db: db}
}

// Create expects the snapshot row to exist already.
func (r *PurchaseHistoryRepository) Create(ctx context.Context, h *member.PurchaseHistory) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO purchase_histories (id, member_id, snapshot_id, amount, quantity, purchased_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		h.ID(), h.MemberID(), h.Snapshot().ID(), h.Amount(), h.Quantity(), h.PurchasedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create purchase history", err)
	}
	return nil
}
