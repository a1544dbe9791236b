//go:build unit || e2e

package builder

import (
	"time"

	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InventoryBuilder struct {
	PharmacyID    uuid.UUID
	Name          string
	Color         string
	CountPerPack  int
	Price         decimal.Decimal
	StockQuantity int
	Now           time.Time
}

func NewInventoryBuilder(pharmacyID uuid.UUID) *InventoryBuilder {
	return &InventoryBuilder{
		PharmacyID:    pharmacyID,
		Name:          "True Barrier",
		Color:         "green",
		CountPerPack:  3,
		Price:         decimal.NewFromInt(10),
		StockQuantity: 100,
		Now:           time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (i *InventoryBuilder) With(mutate func(*InventoryBuilder)) *InventoryBuilder {
	mutate(i)
	return i
}

func (i *InventoryBuilder) WithName(name string) *InventoryBuilder {
	i.Name = name
	return i
}

func (i *InventoryBuilder) WithPrice(price int64) *InventoryBuilder {
	i.Price = decimal.NewFromInt(price)
	return i
}

func (i *InventoryBuilder) WithStock(stock int) *InventoryBuilder {
	i.StockQuantity = stock
	return i
}

func (i *InventoryBuilder) BuildDomain() (*inventory.Inventory, error) {
	return inventory.NewInventory(i.PharmacyID, i.Name, i.Color, i.CountPerPack, i.Price, i.StockQuantity, i.Now)
}

func (i *InventoryBuilder) MustBuild() *inventory.Inventory {
	inv, err := i.BuildDomain()
	if err != nil {
		panic(err)
	}
	return inv
}

func (i *InventoryBuilder) BuildCreateDTO() request.BulkCreateItem {
	price, stock := i.Price, i.StockQuantity
	return request.BulkCreateItem{
		Name:          i.Name,
		Color:         i.Color,
		CountPerPack:  i.CountPerPack,
		Price:         &price,
		StockQuantity: &stock,
	}
}
