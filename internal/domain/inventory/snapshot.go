package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot freezes the priceable attributes of an inventory at purchase time.
// The source references are weak and become nil once the source rows are deleted.
type Snapshot struct {
	id            uuid.UUID
	pharmacyID    *uuid.UUID
	inventoryID   *uuid.UUID
	pharmacyName  string
	inventoryName string
	color         string
	countPerPack  int
	price         decimal.Decimal
	createdAt     time.Time
}

func NewSnapshot(inv *Inventory, pharmacyName string, now time.Time) *Snapshot {
	pharmacyID := inv.PharmacyID()
	inventoryID := inv.ID()
	return &Snapshot{
		id:            uuid.New(),
		pharmacyID:    &pharmacyID,
		inventoryID:   &inventoryID,
		pharmacyName:  pharmacyName,
		inventoryName: inv.Name(),
		color:         inv.Color(),
		countPerPack:  inv.CountPerPack(),
		price:         inv.Price(),
		createdAt:     now,
	}
}

func ReconstructSnapshot(
	id uuid.UUID,
	pharmacyID, inventoryID *uuid.UUID,
	pharmacyName, inventoryName, color string,
	countPerPack int,
	price decimal.Decimal,
	createdAt time.Time,
) *Snapshot {
	return &Snapshot{
		id:            id,
		pharmacyID:    pharmacyID,
		inventoryID:   inventoryID,
		pharmacyName:  pharmacyName,
		inventoryName: inventoryName,
		color:         color,
		countPerPack:  countPerPack,
		price:         price,
		createdAt:     createdAt,
	}
}

func (s *Snapshot) ID() uuid.UUID           { return s.id }
func (s *Snapshot) PharmacyID() *uuid.UUID  { return s.pharmacyID }
func (s *Snapshot) InventoryID() *uuid.UUID { return s.inventoryID }
func (s *Snapshot) PharmacyName() string    { return s.pharmacyName }
func (s *Snapshot) InventoryName() string   { return s.inventoryName }
func (s *Snapshot) Color() string           { return s.color }
func (s *Snapshot) CountPerPack() int       { return s.countPerPack }
func (s *Snapshot) Price() decimal.Decimal  { return s.price }
func (s *Snapshot) CreatedAt() time.Time    { return s.createdAt }

// Amount charges quantity units at the frozen price.
func (s *Snapshot) Amount(quantity int) decimal.Decimal {
	return s.price.Mul(decimal.NewFromInt(int64(quantity)))
}
