package repository

import (
	"context"
	"time"

	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const inventoryColumns = `id, pharmacy_id, name, color, count_per_pack, price, stock_quantity, created_at, updated_at`

const defaultBatchSize = 100

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(db db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func scanInventory(s rowScanner) (*inventory.Inventory, error) {
	var (
		id, pharmacyID      uuid.UUID
		name, color         string
		countPerPack, stock int
		price               decimal.Decimal
		createdAt           time.Time
		updatedAt           time.Time
	)
	if err := s.Scan(&id, &pharmacyID, &name, &color, &countPerPack, &price, &stock, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return inventory.ReconstructInventory(id, pharmacyID, name, color, countPerPack, price, stock, createdAt, updatedAt), nil
}

func (r *InventoryRepository) LockByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventories WHERE id = $1 FOR UPDATE`,
		id,
	)
	inv, err := scanInventory(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock inventory", err)
	}
	return inv, nil
}

func (r *InventoryRepository) LockByIDs(ctx context.Context, ids []uuid.UUID, pharmacyID *uuid.UUID) (map[uuid.UUID]*inventory.Inventory, error) {
	locked := make(map[uuid.UUID]*inventory.Inventory, len(ids))
	if len(ids) == 0 {
		return locked, nil
	}

	query := `SELECT ` + inventoryColumns + ` FROM inventories WHERE id = ANY($1)`
	args := []any{uniqueSorted(ids)}
	if pharmacyID != nil {
		query += ` AND pharmacy_id = $2`
		args = append(args, *pharmacyID)
	}
	query += ` ORDER BY id FOR UPDATE`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock inventories", err)
	}
	defer rows.Close()

	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory", err)
		}
		locked[inv.ID()] = inv
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to lock inventories", err)
	}
	return locked, nil
}

func (r *InventoryRepository) FindByKey(ctx context.Context, pharmacyID uuid.UUID, key inventory.Key) (*inventory.Inventory, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventories
		 WHERE pharmacy_id = $1 AND name = $2 AND color = $3 AND count_per_pack = $4`,
		pharmacyID, key.Name, key.Color, key.CountPerPack,
	)
	inv, err := scanInventory(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inventory not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inventory by key", err)
	}
	return inv, nil
}

// ExistingKeys reports which of keys already exist for the pharmacy.
func (r *InventoryRepository) ExistingKeys(ctx context.Context, pharmacyID uuid.UUID, keys []inventory.Key) ([]inventory.Key, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	names := make([]string, len(keys))
	colors := make([]string, len(keys))
	counts := make([]int32, len(keys))
	for i, k := range keys {
		names[i] = k.Name
		colors[i] = k.Color
		counts[i] = int32(k.CountPerPack) // #nosec G115 -- bounded by the int4 column
	}

	rows, err := r.db.Query(ctx,
		`SELECT i.name, i.color, i.count_per_pack
		 FROM inventories i
		 JOIN unnest($2::text[], $3::text[], $4::int4[]) AS k(name, color, count_per_pack)
		   ON i.name = k.name AND i.color = k.color AND i.count_per_pack = k.count_per_pack
		 WHERE i.pharmacy_id = $1`,
		pharmacyID, names, colors, counts,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check existing inventories", err)
	}
	defer rows.Close()

	var existing []inventory.Key
	for rows.Next() {
		var k inventory.Key
		if err := rows.Scan(&k.Name, &k.Color, &k.CountPerPack); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inventory key", err)
		}
		existing = append(existing, k)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to check existing inventories", err)
	}
	return existing, nil
}

// CreateBatch inserts items in round trips of at most batchSize statements.
func (r *InventoryRepository) CreateBatch(ctx context.Context, items []*inventory.Inventory, batchSize int) error {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	for start := 0; start < len(items); start += batchSize {
		end := min(start+batchSize, len(items))

		batch := &pgx.Batch{}
		for _, inv := range items[start:end] {
			batch.Queue(
				`INSERT INTO inventories (`+inventoryColumns+`)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				inv.ID(), inv.PharmacyID(), inv.Name(), inv.Color(), inv.CountPerPack(),
				inv.Price(), inv.StockQuantity(), inv.CreatedAt(), inv.UpdatedAt(),
			)
		}
		if err := execBatch(ctx, r.db, batch); err != nil {
			return infra.WrapRepoErr("failed to create inventories", err)
		}
	}
	return nil
}

func (r *InventoryRepository) UpdateBatch(ctx context.Context, items []*inventory.Inventory) error {
	batch := &pgx.Batch{}
	for _, inv := range items {
		batch.Queue(
			`UPDATE inventories
			 SET name = $2, color = $3, count_per_pack = $4, price = $5, stock_quantity = $6, updated_at = $7
			 WHERE id = $1`,
			inv.ID(), inv.Name(), inv.Color(), inv.CountPerPack(), inv.Price(), inv.StockQuantity(), inv.UpdatedAt(),
		)
	}
	if err := execBatch(ctx, r.db, batch); err != nil {
		return infra.WrapRepoErr("failed to update inventories", err)
	}
	return nil
}

func (r *InventoryRepository) UpdateStocks(ctx context.Context, items []*inventory.Inventory) error {
	batch := &pgx.Batch{}
	for _, inv := range items {
		batch.Queue(
			`UPDATE inventories SET stock_quantity = $2, updated_at = $3 WHERE id = $1`,
			inv.ID(), inv.StockQuantity(), inv.UpdatedAt(),
		)
	}
	if err := execBatch(ctx, r.db, batch); err != nil {
		return infra.WrapRepoErr("failed to update inventory stock", err)
	}
	return nil
}
