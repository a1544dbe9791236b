package member

import (
	"errors"
	"strings"
	"time"

	"phantom-mask/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName         = errors.New("member name must not be empty")
	ErrNegativeBalance     = errors.New("cash balance must not be negative")
	ErrInvalidAmount       = errors.New("amount must not be negative")
	ErrInsufficientBalance = errors.New("member cash balance is not enough")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
)

type Member struct {
	id          uuid.UUID
	name        string
	cashBalance decimal.Decimal
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMember(name string, cashBalance decimal.Decimal, now time.Time) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if cashBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	return &Member{
		id:          uuid.New(),
		name:        name,
		cashBalance: cashBalance,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructMember(id uuid.UUID, name string, cashBalance decimal.Decimal, createdAt, updatedAt time.Time) *Member {
	return &Member{
		id:          id,
		name:        name,
		cashBalance: cashBalance,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (m *Member) ID() uuid.UUID                { return m.id }
func (m *Member) Name() string                 { return m.name }
func (m *Member) CashBalance() decimal.Decimal { return m.cashBalance }
func (m *Member) CreatedAt() time.Time         { return m.createdAt }
func (m *Member) UpdatedAt() time.Time         { return m.updatedAt }

// Charge deducts amount from the balance, which must stay non-negative.
func (m *Member) Charge(amount decimal.Decimal, now time.Time) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(m.cashBalance) {
		return ErrInsufficientBalance
	}
	m.cashBalance = m.cashBalance.Sub(amount)
	m.updatedAt = now
	return nil
}

// PurchaseHistory is written once per purchased line and never changes.
type PurchaseHistory struct {
	id          uuid.UUID
	memberID    uuid.UUID
	snapshot    *inventory.Snapshot
	amount      decimal.Decimal
	quantity    int
	purchasedAt time.Time
}

func NewPurchaseHistory(memberID uuid.UUID, snapshot *inventory.Snapshot, quantity int, purchasedAt time.Time) (*PurchaseHistory, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &PurchaseHistory{
		id:          uuid.New(),
		memberID:    memberID,
		snapshot:    snapshot,
		amount:      snapshot.Amount(quantity),
		quantity:    quantity,
		purchasedAt: purchasedAt,
	}, nil
}

// ImportPurchaseHistory records a purchase whose amount was settled elsewhere.
func ImportPurchaseHistory(
	memberID uuid.UUID,
	snapshot *inventory.Snapshot,
	amount decimal.Decimal,
	quantity int,
	purchasedAt time.Time,
) (*PurchaseHistory, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	return &PurchaseHistory{
		id:          uuid.New(),
		memberID:    memberID,
		snapshot:    snapshot,
		amount:      amount,
		quantity:    quantity,
		purchasedAt: purchasedAt,
	}, nil
}

func ReconstructPurchaseHistory(
	id, memberID uuid.UUID,
	snapshot *inventory.Snapshot,
	amount decimal.Decimal,
	quantity int,
	purchasedAt time.Time,
) *PurchaseHistory {
	return &PurchaseHistory{
		id:          id,
		memberID:    memberID,
		snapshot:    snapshot,
		amount:      amount,
		quantity:    quantity,
		purchasedAt: purchasedAt,
	}
}

func (h *PurchaseHistory) ID() uuid.UUID                 { return h.id }
func (h *PurchaseHistory) MemberID() uuid.UUID           { return h.memberID }
func (h *PurchaseHistory) Snapshot() *inventory.Snapshot { return h.snapshot }
func (h *PurchaseHistory) Amount() decimal.Decimal       { return h.amount }
func (h *PurchaseHistory) Quantity() int                 { return h.quantity }
func (h *PurchaseHistory) PurchasedAt() time.Time        { return h.purchasedAt }
