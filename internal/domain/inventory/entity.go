package inventory

import (
	"errors"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"phantom-mask/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName         = errors.New("inventory name must be 1 to 50 characters")
	ErrInvalidColor        = errors.New("inventory color must be 1 to 50 characters")
	ErrInvalidCountPerPack = errors.New("count per pack must be between 1 and 2147483647")
	ErrInvalidPrice        = errors.New("price must be between 0 and 9999999999.99 with at most 2 decimal places")
	ErrInvalidStock        = errors.New("stock quantity must be between 0 and 2147483647")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrOutOfStock          = errors.New("inventory is out of stock")
)

const (
	maxTextLength = 50
	// columns are INTEGER and NUMERIC(12,2)
	maxCount      = math.MaxInt32
	priceDecimals = 2
)

var maxPrice = decimal.RequireFromString("9999999999.99")

// Key identifies an item within one pharmacy.
type Key struct {
	Name         string
	Color        string
	CountPerPack int
}

type Inventory struct {
	id            uuid.UUID
	pharmacyID    uuid.UUID
	name          string
	color         string
	countPerPack  int
	price         decimal.Decimal
	stockQuantity int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewInventory(
	pharmacyID uuid.UUID,
	name, color string,
	countPerPack int,
	price decimal.Decimal,
	stockQuantity int,
	now time.Time,
) (*Inventory, error) {
	inv := &Inventory{
		id:            uuid.New(),
		pharmacyID:    pharmacyID,
		name:          strings.TrimSpace(name),
		color:         strings.TrimSpace(color),
		countPerPack:  countPerPack,
		price:         price,
		stockQuantity: stockQuantity,
		createdAt:     now,
		updatedAt:     now,
	}
	if err := inv.validate(); err != nil {
		return nil, err
	}
	return inv, nil
}

func ReconstructInventory(
	id, pharmacyID uuid.UUID,
	name, color string,
	countPerPack int,
	price decimal.Decimal,
	stockQuantity int,
	createdAt, updatedAt time.Time,
) *Inventory {
	return &Inventory{
		id:            id,
		pharmacyID:    pharmacyID,
		name:          name,
		color:         color,
		countPerPack:  countPerPack,
		price:         price,
		stockQuantity: stockQuantity,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (i *Inventory) ID() uuid.UUID          { return i.id }
func (i *Inventory) PharmacyID() uuid.UUID  { return i.pharmacyID }
func (i *Inventory) Name() string           { return i.name }
func (i *Inventory) Color() string          { return i.color }
func (i *Inventory) CountPerPack() int      { return i.countPerPack }
func (i *Inventory) Price() decimal.Decimal { return i.price }
func (i *Inventory) StockQuantity() int     { return i.stockQuantity }
func (i *Inventory) CreatedAt() time.Time   { return i.createdAt }
func (i *Inventory) UpdatedAt() time.Time   { return i.updatedAt }

func (i *Inventory) Key() Key {
	return Key{Name: i.name, Color: i.color, CountPerPack: i.countPerPack}
}

// StockValue is what the pharmacy pays to hold the current stock.
func (i *Inventory) StockValue() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.stockQuantity)))
}

// Withdraw removes sold units.
func (i *Inventory) Withdraw(quantity int, now time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i.stockQuantity < quantity {
		return ErrOutOfStock
	}
	i.stockQuantity -= quantity
	i.updatedAt = now
	return nil
}

// AdjustStock applies a signed correction to the stock level.
func (i *Inventory) AdjustStock(delta int, now time.Time) error {
	next := int64(i.stockQuantity) + int64(delta)
	if next < 0 || next > maxCount {
		return ErrInvalidStock
	}
	i.stockQuantity += delta
	i.updatedAt = now
	return nil
}

// Apply merges the non-nil fields of p. The entity is untouched on error.
func (i *Inventory) Apply(p Patch, now time.Time) error {
	next := *i
	next.name = strings.TrimSpace(patch.Coalesce(p.Name, i.name))
	next.color = strings.TrimSpace(patch.Coalesce(p.Color, i.color))
	next.countPerPack = patch.Coalesce(p.CountPerPack, i.countPerPack)
	next.price = patch.Coalesce(p.Price, i.price)
	next.stockQuantity = patch.Coalesce(p.StockQuantity, i.stockQuantity)
	if err := next.validate(); err != nil {
		return err
	}
	next.updatedAt = now
	*i = next
	return nil
}

func (i *Inventory) validate() error {
	if i.name == "" || utf8.RuneCountInString(i.name) > maxTextLength {
		return ErrInvalidName
	}
	if i.color == "" || utf8.RuneCountInString(i.color) > maxTextLength {
		return ErrInvalidColor
	}
	if i.countPerPack <= 0 || i.countPerPack > maxCount {
		return ErrInvalidCountPerPack
	}
	if i.price.IsNegative() || i.price.GreaterThan(maxPrice) || !i.price.Equal(i.price.Round(priceDecimals)) {
		return ErrInvalidPrice
	}
	if i.stockQuantity < 0 || i.stockQuantity > maxCount {
		return ErrInvalidStock
	}
	return nil
}

// Patch lists the mutable fields of an inventory; nil means unchanged.
type Patch struct {
	Name          *string
	Color         *string
	CountPerPack  *int
	Price         *decimal.Decimal
	StockQuantity *int
}
