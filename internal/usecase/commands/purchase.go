package commands

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/domain/member"
	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidPurchase     = errs.New("invalid purchase request")
	ErrOutOfStock          = errs.New("inventory out of stock")
	ErrInsufficientBalance = errs.New("insufficient balance")
	ErrMemberNotFound      = errs.New("member not found")
)

type PurchaseLine struct {
	InventoryID uuid.UUID
	Quantity    int
}

//go:generate mockgen -destination=../../../tests/mock/commands/purchase.go -package=commandsmock phantom-mask/internal/usecase/commands PurchaseCommands
type PurchaseCommands interface {
	// CreatePurchases charges every line against the member in one transaction.
	// Histories come back in request order.
	CreatePurchases(ctx context.Context, memberID uuid.UUID, lines []PurchaseLine) ([]*member.PurchaseHistory, error)
}

type purchaseCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPurchaseCommands(uow shared.UnitOfWork, clk clock.Clock) PurchaseCommands {
	return &purchaseCommandsImpl{uow: uow, clock: clk}
}

func (p *purchaseCommandsImpl) CreatePurchases(
	ctx context.Context,
	memberID uuid.UUID,
	lines []PurchaseLine,
) ([]*member.PurchaseHistory, error) {
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	var histories []*member.PurchaseHistory
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		histories = nil

		locked, err := p.lockAll(ctx, tx, memberID, lines)
		if err != nil {
			return err
		}

		now := p.clock.Now()
		touchedInv := map[uuid.UUID]struct{}{}
		touchedPharm := map[uuid.UUID]struct{}{}

		for _, line := range lines {
			inv := locked.inventories[line.InventoryID]
			ph := locked.pharmacies[inv.PharmacyID()]

			if inv.StockQuantity() < line.Quantity {
				return errs.WithDetail(ErrOutOfStock, fmt.Sprintf(
					"inventory %s is out of stock (requested %d, available %d)",
					inv.ID(), line.Quantity, inv.StockQuantity(),
				))
			}

			snap := inventory.NewSnapshot(inv, ph.Name(), now)
			if err := tx.Snapshots().Create(ctx, snap); err != nil {
				return err
			}

			amount := snap.Amount(line.Quantity)
			if amount.GreaterThan(locked.member.CashBalance()) {
				return errs.WithDetail(ErrInsufficientBalance, fmt.Sprintf(
					"member cash balance is not enough: balance %s, required %s",
					locked.member.CashBalance().StringFixed(2), amount.StringFixed(2),
				))
			}

			history, err := member.NewPurchaseHistory(locked.member.ID(), snap, line.Quantity, now)
			if err != nil {
				return errs.Mark(err, ErrInvalidPurchase)
			}
			if err := tx.PurchaseHistories().Create(ctx, history); err != nil {
				return err
			}

			if err := inv.Withdraw(line.Quantity, now); err != nil {
				return errs.Mark(err, ErrOutOfStock)
			}
			if err := locked.member.Charge(amount, now); err != nil {
				return errs.Mark(err, ErrInsufficientBalance)
			}
			if err := ph.Credit(amount); err != nil {
				return errs.Mark(err, ErrInvalidPurchase)
			}

			touchedInv[inv.ID()] = struct{}{}
			touchedPharm[ph.ID()] = struct{}{}
			histories = append(histories, history)
		}

		if err := tx.Inventories().UpdateStocks(ctx, pick(locked.inventories, touchedInv)); err != nil {
			return err
		}
		if err := tx.Pharmacies().UpdateBalances(ctx, pick(locked.pharmacies, touchedPharm)); err != nil {
			return err
		}
		return tx.Members().UpdateBalance(ctx, locked.member)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("purchases created", "member_id", memberID, "lines", len(histories))
	return histories, nil
}

type lockedPurchase struct {
	inventories map[uuid.UUID]*inventory.Inventory
	pharmacies  map[uuid.UUID]*pharmacy.Pharmacy
	member      *member.Member
}

// lockAll always takes inventories, then pharmacies, then the member.
func (p *purchaseCommandsImpl) lockAll(
	ctx context.Context,
	tx shared.Tx,
	memberID uuid.UUID,
	lines []PurchaseLine,
) (*lockedPurchase, error) {
	invIDs := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		invIDs = append(invIDs, line.InventoryID)
	}

	inventories, err := tx.Inventories().LockByIDs(ctx, sortedUnique(invIDs), nil)
	if err != nil {
		return nil, err
	}
	for _, id := range invIDs {
		if _, ok := inventories[id]; !ok {
			return nil, errs.WithDetail(ErrInvalidPurchase, fmt.Sprintf("Inventory with id %s does not exist.", id))
		}
	}

	pharmIDs := make([]uuid.UUID, 0, len(inventories))
	for _, inv := range inventories {
		pharmIDs = append(pharmIDs, inv.PharmacyID())
	}
	pharmacies, err := tx.Pharmacies().LockByIDs(ctx, sortedUnique(pharmIDs))
	if err != nil {
		return nil, err
	}

	m, err := tx.Members().LockByID(ctx, memberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithDetail(errs.Mark(err, ErrMemberNotFound), fmt.Sprintf("Member with id %s does not exist.", memberID))
		}
		return nil, err
	}

	return &lockedPurchase{inventories: inventories, pharmacies: pharmacies, member: m}, nil
}

func validateLines(lines []PurchaseLine) error {
	if len(lines) == 0 {
		return errs.WithDetail(ErrInvalidPurchase, "purchase list must not be empty")
	}
	for i, line := range lines {
		if line.InventoryID == uuid.Nil {
			return errs.WithDetail(ErrInvalidPurchase, fmt.Sprintf("item %d: inventory id is required", i))
		}
		if line.Quantity <= 0 {
			return errs.WithDetail(ErrInvalidPurchase, fmt.Sprintf("item %d: quantity must be positive", i))
		}
	}
	return nil
}

func sortedUnique(ids []uuid.UUID) []uuid.UUID {
	out := slices.Clone(ids)
	slices.SortFunc(out, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return slices.Compact(out)
}

// pick returns the touched values in ascending id order.
func pick[T any](all map[uuid.UUID]T, touched map[uuid.UUID]struct{}) []T {
	ids := make([]uuid.UUID, 0, len(touched))
	for id := range touched {
		ids = append(ids, id)
	}
	ids = sortedUnique(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, all[id])
	}
	return out
}
