package response

import (
	"time"

	"phantom-mask/internal/domain/member"
	"phantom-mask/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseHistoryResponse struct {
	ID            uuid.UUID       `json:"id"`
	MemberID      uuid.UUID       `json:"member_id"`
	SnapshotID    uuid.UUID       `json:"snapshot_id"`
	PharmacyID    *uuid.UUID      `json:"pharmacy_id,omitempty"`
	InventoryID   *uuid.UUID      `json:"inventory_id,omitempty"`
	PharmacyName  string          `json:"pharmacy_name"`
	InventoryName string          `json:"inventory_name"`
	Color         string          `json:"color"`
	CountPerPack  int             `json:"count_per_pack"`
	Price         decimal.Decimal `json:"price"`
	Amount        decimal.Decimal `json:"amount"`
	Quantity      int             `json:"quantity"`
	PurchasedAt   time.Time       `json:"purchased_at"`
}

func FromPurchaseHistory(h *member.PurchaseHistory) *PurchaseHistoryResponse {
	snap := h.Snapshot()
	return &PurchaseHistoryResponse{
		ID:            h.ID(),
		MemberID:      h.MemberID(),
		SnapshotID:    snap.ID(),
		PharmacyID:    snap.PharmacyID(),
		InventoryID:   snap.InventoryID(),
		PharmacyName:  snap.PharmacyName(),
		InventoryName: snap.InventoryName(),
		Color:         snap.Color(),
		CountPerPack:  snap.CountPerPack(),
		Price:         snap.Price(),
		Amount:        h.Amount(),
		Quantity:      h.Quantity(),
		PurchasedAt:   h.PurchasedAt(),
	}
}

func FromPurchaseHistories(hs []*member.PurchaseHistory) []*PurchaseHistoryResponse {
	res := make([]*PurchaseHistoryResponse, len(hs))
	for i, h := range hs {
		res[i] = FromPurchaseHistory(h)
	}
	return res
}

type PurchaseHistoryPageResponse struct {
	Results    []*PurchaseHistoryResponse `json:"results"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func FromPurchaseHistoryPage(views []*queries.PurchaseHistoryView, next *queries.Cursor) (*PurchaseHistoryPageResponse, error) {
	rows, err := copyList[PurchaseHistoryResponse](views)
	if err != nil {
		return nil, err
	}
	page := &PurchaseHistoryPageResponse{Results: rows}
	if next != nil {
		page.NextCursor = next.After
	}
	return page, nil
}

type PurchaseRankingResponse struct {
	MemberID          uuid.UUID       `json:"member_id"`
	MemberName        string          `json:"member_name"`
	AccumulatedAmount decimal.Decimal `json:"accumulated_amount"`
}

func FromPurchaseRankingViews(views []*queries.PurchaseRankingView) ([]*PurchaseRankingResponse, error) {
	return copyList[PurchaseRankingResponse](views)
}
