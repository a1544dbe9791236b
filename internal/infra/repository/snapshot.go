package repository

import (
	"context"

	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
)

type SnapshotRepository struct {
	db db.DBTX
}

func NewSnapshotRepository(db db.DBTX) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Create(ctx context.Context, s *inventory.Snapshot) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO inventory_snapshots
		   (id, pharmacy_id, inventory_id, pharmacy_name, inventory_name, color, count_per_pack, price, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID(), s.PharmacyID(), s.InventoryID(), s.PharmacyName(), s.InventoryName(),
		s.Color(), s.CountPerPack(), s.Price(), s.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create inventory snapshot", err)
	}
	return nil
}
