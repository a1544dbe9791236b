package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const duplicateInventoryDetail = "Duplicate inventory entries detected. item must be unique by name, color, and count_per_pack for a pharmacy."

var (
	ErrInvalidInventory         = errs.New("invalid inventory")
	ErrDuplicateInventory       = errs.New("duplicate inventory")
	ErrPharmacyBalanceNotEnough = errs.New("pharmacy balance not enough")
	ErrInventoryNotFound        = errs.New("inventory not found")
	ErrInventoryNotInPharmacy   = errs.New("inventory not in pharmacy")
	ErrPharmacyNotFound         = errs.New("pharmacy not found")
)

type NewInventoryItem struct {
	Name          string
	Color         string
	CountPerPack  int
	Price         decimal.Decimal
	StockQuantity int
}

type InventoryUpdate struct {
	ID    uuid.UUID
	Patch inventory.Patch
}

//go:generate mockgen -destination=../../../tests/mock/commands/inventory.go -package=commandsmock phantom-mask/internal/usecase/commands InventoryCommands
type InventoryCommands interface {
	BulkCreate(ctx context.Context, pharmacyID uuid.UUID, items []NewInventoryItem) ([]*inventory.Inventory, error)
	BulkUpdate(ctx context.Context, pharmacyID uuid.UUID, updates []InventoryUpdate) ([]*inventory.Inventory, error)
	UpdateQuantity(ctx context.Context, inventoryID uuid.UUID, delta int) (*inventory.Inventory, error)
}

type inventoryCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	batchSize int
}

func NewInventoryCommands(uow shared.UnitOfWork, clk clock.Clock, batchSize int) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow, clock: clk, batchSize: batchSize}
}

// BulkCreate pays for the new stock out of the pharmacy balance.
func (c *inventoryCommandsImpl) BulkCreate(
	ctx context.Context,
	pharmacyID uuid.UUID,
	items []NewInventoryItem,
) ([]*inventory.Inventory, error) {
	if len(items) == 0 {
		return nil, errs.WithDetail(ErrInvalidInventory, "inventory list must not be empty")
	}

	now := c.clock.Now()
	created := make([]*inventory.Inventory, 0, len(items))
	keys := make([]inventory.Key, 0, len(items))
	seen := make(map[inventory.Key]struct{}, len(items))
	total := decimal.Zero

	for i, item := range items {
		inv, err := inventory.NewInventory(pharmacyID, item.Name, item.Color, item.CountPerPack, item.Price, item.StockQuantity, now)
		if err != nil {
			return nil, errs.WithDetail(errs.Mark(err, ErrInvalidInventory), fmt.Sprintf("item %d: %s", i, err.Error()))
		}
		if _, dup := seen[inv.Key()]; dup {
			return nil, errs.WithDetail(ErrDuplicateInventory, duplicateInventoryDetail)
		}
		seen[inv.Key()] = struct{}{}
		keys = append(keys, inv.Key())
		created = append(created, inv)
		total = total.Add(inv.StockValue())
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ph, err := c.lockPharmacy(ctx, tx, pharmacyID)
		if err != nil {
			return err
		}

		existing, err := tx.Inventories().ExistingKeys(ctx, pharmacyID, keys)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return errs.WithDetail(ErrDuplicateInventory, duplicateInventoryDetail)
		}

		if err := ph.Debit(total); err != nil {
			return errs.WithDetail(errs.Mark(err, ErrPharmacyBalanceNotEnough), fmt.Sprintf(
				"pharmacy cash balance is not enough: balance %s, required %s",
				ph.CashBalance().StringFixed(2), total.StringFixed(2),
			))
		}

		if err := tx.Inventories().CreateBatch(ctx, created, c.batchSize); err != nil {
			return duplicateOr(err)
		}
		return tx.Pharmacies().UpdateBalances(ctx, []*pharmacy.Pharmacy{ph})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("inventories created", "pharmacy_id", pharmacyID, "count", len(created), "cost", total.String())
	return created, nil
}

func (c *inventoryCommandsImpl) BulkUpdate(
	ctx context.Context,
	pharmacyID uuid.UUID,
	updates []InventoryUpdate,
) ([]*inventory.Inventory, error) {
	if len(updates) == 0 {
		return nil, errs.WithDetail(ErrInvalidInventory, "inventory list must not be empty")
	}

	ids := make([]uuid.UUID, 0, len(updates))
	for _, u := range updates {
		ids = append(ids, u.ID)
	}

	var updated []*inventory.Inventory
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated = nil

		locked, err := tx.Inventories().LockByIDs(ctx, sortedUnique(ids), &pharmacyID)
		if err != nil {
			return err
		}
		if _, err := c.lockPharmacy(ctx, tx, pharmacyID); err != nil {
			return err
		}

		now := c.clock.Now()
		applied := make(map[uuid.UUID]struct{}, len(updates))
		for i, u := range updates {
			inv, ok := locked[u.ID]
			if !ok {
				return errs.WithDetail(ErrInventoryNotInPharmacy, fmt.Sprintf(
					"Inventory with id %s for Pharmacy %s does not exist.", u.ID, pharmacyID,
				))
			}
			if err := inv.Apply(u.Patch, now); err != nil {
				return errs.WithDetail(errs.Mark(err, ErrInvalidInventory), fmt.Sprintf("item %d: %s", i, err.Error()))
			}
			if _, done := applied[u.ID]; !done {
				applied[u.ID] = struct{}{}
				updated = append(updated, inv)
			}
		}

		if err := checkUniqueKeys(updated); err != nil {
			return err
		}
		if err := tx.Inventories().UpdateBatch(ctx, updated); err != nil {
			return duplicateOr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("inventories updated", "pharmacy_id", pharmacyID, "count", len(updated))
	return updated, nil
}

func (c *inventoryCommandsImpl) UpdateQuantity(ctx context.Context, inventoryID uuid.UUID, delta int) (*inventory.Inventory, error) {
	var inv *inventory.Inventory
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inv, err = tx.Inventories().LockByID(ctx, inventoryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.WithDetail(errs.Mark(err, ErrInventoryNotFound), fmt.Sprintf("Inventory with id %s does not exist.", inventoryID))
			}
			return err
		}

		before := inv.StockQuantity()
		if err := inv.AdjustStock(delta, c.clock.Now()); err != nil {
			reason := "cannot go below zero"
			if delta > 0 {
				reason = fmt.Sprintf("cannot exceed %d", math.MaxInt32)
			}
			return errs.WithDetail(errs.Mark(err, ErrInvalidInventory), fmt.Sprintf(
				"stock quantity %s (current %d, delta %d)", reason, before, delta,
			))
		}
		return tx.Inventories().UpdateStocks(ctx, []*inventory.Inventory{inv})
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (c *inventoryCommandsImpl) lockPharmacy(ctx context.Context, tx shared.Tx, pharmacyID uuid.UUID) (*pharmacy.Pharmacy, error) {
	ph, err := tx.Pharmacies().LockByID(ctx, pharmacyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetail(errs.Mark(err, ErrPharmacyNotFound), fmt.Sprintf("Pharmacy with id %s does not exist.", pharmacyID))
		}
		return nil, err
	}
	return ph, nil
}

// checkUniqueKeys rejects updates that would give two rows of the batch the same key.
func checkUniqueKeys(items []*inventory.Inventory) error {
	seen := make(map[inventory.Key]struct{}, len(items))
	for _, inv := range items {
		if _, dup := seen[inv.Key()]; dup {
			return errs.WithDetail(ErrDuplicateInventory, duplicateInventoryDetail)
		}
		seen[inv.Key()] = struct{}{}
	}
	return nil
}

func duplicateOr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.WithDetail(errs.Mark(err, ErrDuplicateInventory), duplicateInventoryDetail)
	}
	return err
}
