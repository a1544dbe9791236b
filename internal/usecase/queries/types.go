package queries

import (
	"time"

	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPharmacyNotFound = errs.New("pharmacy not found")
	ErrMemberNotFound   = errs.New("member not found")
	ErrInvalidFilter    = errs.New("invalid filter")
	ErrInvalidCursor    = errs.New("invalid cursor")
)

// OpeningHourView is one opening window joined with its pharmacy.
type OpeningHourView struct {
	ID                  uuid.UUID       `json:"id"`
	PharmacyID          uuid.UUID       `json:"pharmacy_id"`
	PharmacyName        string          `json:"pharmacy_name"`
	PharmacyCashBalance decimal.Decimal `json:"pharmacy_cash_balance"`
	Weekday             string          `json:"weekday"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time"`
}

type InventoryView struct {
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

type InventorySearchView struct {
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

type InventoryCountView struct {
	PharmacyID     uuid.UUID `json:"pharmacy_id"`
	PharmacyName   string    `json:"pharmacy_name"`
	InventoryCount int64     `json:"inventory_count"`
}

type PurchaseRankingView struct {
	MemberID          uuid.UUID       `json:"member_id"`
	MemberName        string          `json:"member_name"`
	AccumulatedAmount decimal.Decimal `json:"accumulated_amount"`
}

// PurchaseHistoryView carries the frozen snapshot data of a purchase.
type PurchaseHistoryView struct {
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

// PriceFilter bounds are combined with AND; nil means unbounded.
type PriceFilter struct {
	Exact *decimal.Decimal
	Gt    *decimal.Decimal
	Gte   *decimal.Decimal
	Lt    *decimal.Decimal
	Lte   *decimal.Decimal
}

// OpeningHourFilter holds raw query values; empty strings are ignored.
type OpeningHourFilter struct {
	Weekday      string
	StartTime    string
	StartTimeGte string
	EndTime      string
	EndTimeLte   string
}

// OpeningHourCriteria is the validated form of OpeningHourFilter.
type OpeningHourCriteria struct {
	Weekday      *pharmacy.Weekday
	StartTime    *pharmacy.TimeOfDay
	StartTimeGte *pharmacy.TimeOfDay
	EndTime      *pharmacy.TimeOfDay
	EndTimeLte   *pharmacy.TimeOfDay
}

type InventoryFilter struct {
	Names []string
	Price PriceFilter
}

type StockCountFilter struct {
	Price   PriceFilter
	CountGt *int64
	CountLt *int64
}

// RankingFilter limits the ranking to Top rows when Top > 0.
type RankingFilter struct {
	Top  int
	From *time.Time
	To   *time.Time
}

type PurchaseHistoryPage struct {
	AfterTime *time.Time
	AfterID   *uuid.UUID
	Limit     int
}
