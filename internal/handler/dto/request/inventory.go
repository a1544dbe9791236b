package request

import (
	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BulkCreateItem struct {
	Name          string           `json:"name" binding:"required,max=50"`
	Color         string           `json:"color" binding:"required,max=50"`
	CountPerPack  int              `json:"count_per_pack" binding:"required,gt=0"`
	Price         *decimal.Decimal `json:"price" binding:"required"`
	StockQuantity *int             `json:"stock_quantity" binding:"required,gte=0"`
}

type BulkCreateRequest []BulkCreateItem

func (r BulkCreateRequest) Validate() error {
	return checkBatch(len(r))
}

func (r BulkCreateRequest) ToItems() []commands.NewInventoryItem {
	items := make([]commands.NewInventoryItem, len(r))
	for i, it := range r {
		items[i] = commands.NewInventoryItem{
			Name:          it.Name,
			Color:         it.Color,
			CountPerPack:  it.CountPerPack,
			Price:         *it.Price,
			StockQuantity: *it.StockQuantity,
		}
	}
	return items
}

// BulkUpdateItem leaves a field untouched when it is absent.
type BulkUpdateItem struct {
	ID            uuid.UUID        `json:"uuid" binding:"required"`
	Name          *string          `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color         *string          `json:"color,omitempty" binding:"omitempty,min=1,max=50"`
	CountPerPack  *int             `json:"count_per_pack,omitempty" binding:"omitempty,gt=0"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty" binding:"omitempty,gte=0"`
}

type BulkUpdateRequest []BulkUpdateItem

func (r BulkUpdateRequest) Validate() error {
	return checkBatch(len(r))
}

func (r BulkUpdateRequest) ToUpdates() []commands.InventoryUpdate {
	updates := make([]commands.InventoryUpdate, len(r))
	for i, it := range r {
		updates[i] = commands.InventoryUpdate{
			ID: it.ID,
			Patch: inventory.Patch{
				Name:          it.Name,
				Color:         it.Color,
				CountPerPack:  it.CountPerPack,
				Price:         it.Price,
				StockQuantity: it.StockQuantity,
			},
		}
	}
	return updates
}

type UpdateQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}
