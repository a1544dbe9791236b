package request

import (
	"phantom-mask/internal/usecase/commands"

	"github.com/google/uuid"
)

type PurchaseItem struct {
	InventoryID uuid.UUID `json:"inventory_uuid" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,gt=0"`
}

type CreatePurchasesRequest []PurchaseItem

func (r CreatePurchasesRequest) Validate() error {
	return checkBatch(len(r))
}

func (r CreatePurchasesRequest) ToLines() []commands.PurchaseLine {
	lines := make([]commands.PurchaseLine, len(r))
	for i, it := range r {
		lines[i] = commands.PurchaseLine{InventoryID: it.InventoryID, Quantity: it.Quantity}
	}
	return lines
}
