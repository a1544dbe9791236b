package response

import (
	"time"

	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InventoryResponse struct {
	ID            uuid.UUID       `json:"id"`
	PharmacyID    uuid.UUID       `json:"pharmacy_id"`
	Name          string          `json:"name"`
	Color         string          `json:"color"`
	CountPerPack  int             `json:"count_per_pack"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromInventory(i *inventory.Inventory) *InventoryResponse {
	return &InventoryResponse{
		ID:            i.ID(),
		PharmacyID:    i.PharmacyID(),
		Name:          i.Name(),
		Color:         i.Color(),
		CountPerPack:  i.CountPerPack(),
		Price:         i.Price(),
		StockQuantity: i.StockQuantity(),
		CreatedAt:     i.CreatedAt(),
		UpdatedAt:     i.UpdatedAt(),
	}
}

func FromInventories(items []*inventory.Inventory) []*InventoryResponse {
	res := make([]*InventoryResponse, len(items))
	for i, it := range items {
		res[i] = FromInventory(it)
	}
	return res
}

func FromInventoryViews(views []*queries.InventoryView) ([]*InventoryResponse, error) {
	return copyList[InventoryResponse](views)
}

type InventorySearchResponse struct {
	ID            uuid.UUID       `json:"id"`
	PharmacyID    uuid.UUID       `json:"pharmacy_id"`
	PharmacyName  string          `json:"pharmacy_name"`
	Name          string          `json:"name"`
	Color         string          `json:"color"`
	CountPerPack  int             `json:"count_per_pack"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Rank          float64         `json:"rank"`
}

func FromInventorySearchViews(views []*queries.InventorySearchView) ([]*InventorySearchResponse, error) {
	return copyList[InventorySearchResponse](views)
}

type InventoryCountResponse struct {
	PharmacyID     uuid.UUID `json:"pharmacy_id"`
	PharmacyName   string    `json:"pharmacy_name"`
	InventoryCount int64     `json:"inventory_count"`
}

func FromInventoryCountViews(views []*queries.InventoryCountView) ([]*InventoryCountResponse, error) {
	return copyList[InventoryCountResponse](views)
}
