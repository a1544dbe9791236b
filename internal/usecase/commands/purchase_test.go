//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"slices"
	"testing"
	"time"

	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/domain/member"
	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/usecase/commands"
	"phantom-mask/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var purchaseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type purchaseFixture struct {
	uow       *fakeUoW
	cmd       commands.PurchaseCommands
	pharmacy  *pharmacy.Pharmacy
	inventory *inventory.Inventory
	member    *member.Member
}

func newPurchaseFixture(t *testing.T, memberBalance int64, price int64, stock int) *purchaseFixture {
	t.Helper()
	uow := newFakeUoW()

	ph := builder.NewPharmacyBuilder().WithBalance(500).MustBuild()
	inv := builder.NewInventoryBuilder(ph.ID()).WithPrice(price).WithStock(stock).MustBuild()
	m := builder.NewMemberBuilder().WithBalance(memberBalance).MustBuild()

	uow.db.pharmacies[ph.ID()] = ph
	uow.db.inventories[inv.ID()] = inv
	uow.db.members[m.ID()] = m

	return &purchaseFixture{
		uow:       uow,
		cmd:       commands.NewPurchaseCommands(uow, clock.NewFixedClock(purchaseTime)),
		pharmacy:  ph,
		inventory: inv,
		member:    m,
	}
}

func TestCreatePurchases_Success(t *testing.T) {
	f := newPurchaseFixture(t, 1000, 10, 100)

	histories, err := f.cmd.CreatePurchases(context.Background(), f.member.ID(), []commands.PurchaseLine{
		{InventoryID: f.inventory.ID(), Quantity: 2},
	})

	require.NoError(t, err)
	require.Len(t, histories, 1)
	h := histories[0]
	assert.True(t, decimal.NewFromInt(20).Equal(h.Amount()))
	assert.Equal(t, 2, h.Quantity())
	assert.Equal(t, purchaseTime, h.PurchasedAt())
	assert.Equal(t, f.pharmacy.Name(), h.Snapshot().PharmacyName())
	assert.Equal(t, f.inventory.Name(), h.Snapshot().InventoryName())

	assert.True(t, decimal.NewFromInt(980).Equal(f.uow.db.members[f.member.ID()].CashBalance()))
	assert.Equal(t, 98, f.uow.db.inventories[f.inventory.ID()].StockQuantity())
	assert.True(t, decimal.NewFromInt(520).Equal(f.uow.db.pharmacies[f.pharmacy.ID()].CashBalance()))
	assert.Len(t, f.uow.db.histories, 1)
	assert.Len(t, f.uow.db.snapshots, 1)
	assert.Equal(t, 1, f.uow.commits)
}

func TestCreatePurchases_SplitsProceedsPerPharmacy(t *testing.T) {
	f := newPurchaseFixture(t, 1000, 10, 100)
	other := builder.NewPharmacyBuilder().WithName("Carepoint").WithBalance(0).MustBuild()
	otherInv := builder.NewInventoryBuilder(other.ID()).WithName("Masquerade").WithPrice(25).WithStock(5).MustBuild()
	f.uow.db.pharmacies[other.ID()] = other
	f.uow.db.inventories[otherInv.ID()] = otherInv

	histories, err := f.cmd.CreatePurchases(context.Background(), f.member.ID(), []commands.PurchaseLine{
		{InventoryID: otherInv.ID(), Quantity: 2},
		{InventoryID: f.inventory.ID(), Quantity: 3},
	})

	require.NoError(t, err)
	require.Len(t, histories, 2)
	// request order is kept
	assert.Equal(t, otherInv.Name(), histories[0].Snapshot().InventoryName())
	assert.Equal(t, f.inventory.Name(), histories[1].Snapshot().InventoryName())

	total := histories[0].Amount().Add(histories[1].Amount())
	assert.True(t, decimal.NewFromInt(80).Equal(total))
	assert.True(t, decimal.NewFromInt(920).Equal(f.uow.db.members[f.member.ID()].CashBalance()))
	assert.True(t, decimal.NewFromInt(530).Equal(f.uow.db.pharmacies[f.pharmacy.ID()].CashBalance()))
	assert.True(t, decimal.NewFromInt(50).Equal(f.uow.db.pharmacies[other.ID()].CashBalance()))
}

func TestCreatePurchases_LockOrder(t *testing.T) {
	f := newPurchaseFixture(t, 1000, 10, 100)
	other := builder.NewPharmacyBuilder().WithName("Carepoint").MustBuild()
	otherInv := builder.NewInventoryBuilder(other.ID()).WithName("Masquerade").MustBuild()
	f.uow.db.pharmacies[other.ID()] = other
	f.uow.db.inventories[otherInv.ID()] = otherInv

	_, err := f.cmd.CreatePurchases(context.Background(), f.member.ID(), []commands.PurchaseLine{
		{InventoryID: otherInv.ID(), Quantity: 1},
		{InventoryID: f.inventory.ID(), Quantity: 1},
		{InventoryID: otherInv.ID(), Quantity: 1},
	})
	require.NoError(t, err)

	invIDs := sortIDs(f.inventory.ID(), otherInv.ID())
	phIDs := sortIDs(f.pharmacy.ID(), other.ID())
	want := []string{
		"inventory:" + invIDs[0].String(),
		"inventory:" + invIDs[1].String(),
		"pharmacy:" + phIDs[0].String(),
		"pharmacy:" + phIDs[1].String(),
		"member:" + f.member.ID().String(),
	}
	assert.Equal(t, want, f.uow.locks)
}

func TestCreatePurchases_DuplicateLinesAreIndependent(t *testing.T) {
	f := newPurchaseFixture(t, 1000, 10, 10)

	histories, err := f.cmd.CreatePurchases(context.Background(), f.member.ID(), []commands.PurchaseLine{
		{InventoryID: f.inventory.ID(), Quantity: 3},
		{InventoryID: f.inventory.ID(), Quantity: 4},
	})

	require.NoError(t, err)
	require.Len(t, histories, 2)
	assert.NotEqual(t, histories[0].Snapshot().ID(), histories[1].Snapshot().ID())
	assert.Equal(t, 3, f.uow.db.inventories[f.inventory.ID()].StockQuantity())
	assert.Len(t, f.uow.db.snapshots, 2)
}

func TestCreatePurchases_Failures(t *testing.T) {
	tests := []struct {
		name          string
		memberBalance int64
		stock         int
		quantities    []int
		wantErr       error
		wantDetail    string
	}{
		{
			name:          "balance below the line amount",
			memberBalance: 10,
			stock:         100,
			quantities:    []int{2},
			wantErr:       commands.ErrInsufficientBalance,
			wantDetail:    "not enough",
		},
		{
			name:          "running balance runs out on the second line",
			memberBalance: 30,
			stock:         100,
			quantities:    []int{2, 2},
			wantErr:       commands.ErrInsufficientBalance,
			wantDetail:    "balance 10.00, required 20.00",
		},
		{
			name:          "quantity above stock",
			memberBalance: 1000,
			stock:         1,
			quantities:    []int{2},
			wantErr:       commands.ErrOutOfStock,
			wantDetail:    "out of stock",
		},
		{
			name:          "duplicate lines exceed stock together",
			memberBalance: 1000,
			stock:         5,
			quantities:    []int{3, 3},
			wantErr:       commands.ErrOutOfStock,
			wantDetail:    "requested 3, available 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPurchaseFixture(t, tt.memberBalance, 10, tt.stock)
			var lines []commands.PurchaseLine
			for _, q := range tt.quantities {
				lines = append(lines, commands.PurchaseLine{InventoryID: f.inventory.ID(), Quantity: q})
			}

			histories, err := f.cmd.CreatePurchases(context.Background(), f.member.ID(), lines)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, errs.Detail(err), tt.wantDetail)
			assert.Nil(t, histories)

			// nothing was committed
			assert.Equal(t, 0, f.uow.commits)
			assert.True(t, decimal.NewFromInt(tt.memberBalance).Equal(f.uow.db.members[f.member.ID()].CashBalance()))
			assert.Equal(t, tt.stock, f.uow.db.inventories[f.inventory.ID()].StockQuantity())
			assert.Empty(t, f.uow.db.histories)
			assert.False(t, f.uow.called("Inventories.UpdateStocks"))
			assert.False(t, f.uow.called("Members.UpdateBalance"))
		})
	}
}

func TestCreatePurchases_UnknownInventory(t *testing.T) {
	f := newPurchaseFixture(t, 1000, 10, 100)
	missing := uuid.New()

	_, err := f.cmd.CreatePurchases(context.Background(), f.member.ID(), []commands.PurchaseLine{
		{InventoryID: f.inventory.ID(), Quantity: 1},
		{InventoryID: missing, Quantity: 1},
	})

	require.ErrorIs(t, err, commands.ErrInvalidPurchase)
	assert.Contains(t, errs.Detail(err), missing.String())
	assert.Equal(t, 0, f.uow.commits)
}

func TestCreatePurchases_UnknownMember(t *testing.T) {
	f := newPurchaseFixture(t, 1000, 10, 100)
	missing := uuid.New()

	_, err := f.cmd.CreatePurchases(context.Background(), missing, []commands.PurchaseLine{
		{InventoryID: f.inventory.ID(), Quantity: 1},
	})

	require.ErrorIs(t, err, commands.ErrMemberNotFound)
	assert.Equal(t, "Member with id "+missing.String()+" does not exist.", errs.Detail(err))
	assert.Equal(t, 100, f.uow.db.inventories[f.inventory.ID()].StockQuantity())
}

func TestCreatePurchases_InvalidInput(t *testing.T) {
	f := newPurchaseFixture(t, 1000, 10, 100)

	tests := []struct {
		name  string
		lines []commands.PurchaseLine
	}{
		{name: "empty batch", lines: nil},
		{name: "zero quantity", lines: []commands.PurchaseLine{{InventoryID: f.inventory.ID(), Quantity: 0}}},
		{name: "negative quantity", lines: []commands.PurchaseLine{{InventoryID: f.inventory.ID(), Quantity: -1}}},
		{name: "missing inventory id", lines: []commands.PurchaseLine{{Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.cmd.CreatePurchases(context.Background(), f.member.ID(), tt.lines)

			require.ErrorIs(t, err, commands.ErrInvalidPurchase)
			assert.Empty(t, f.uow.locks)
		})
	}
}

func TestCreatePurchases_PersistFailureRollsBack(t *testing.T) {
	f := newPurchaseFixture(t, 1000, 10, 100)
	f.uow.failOn["Pharmacies.UpdateBalances"] = errs.New("connection reset")

	_, err := f.cmd.CreatePurchases(context.Background(), f.member.ID(), []commands.PurchaseLine{
		{InventoryID: f.inventory.ID(), Quantity: 2},
	})

	require.Error(t, err)
	assert.Equal(t, 0, f.uow.commits)
	assert.Equal(t, 100, f.uow.db.inventories[f.inventory.ID()].StockQuantity())
	assert.Empty(t, f.uow.db.histories)
}

func sortIDs(ids ...uuid.UUID) []uuid.UUID {
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	return ids
}
