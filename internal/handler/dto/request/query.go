package request

import (
	"time"

	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuery = errs.New("invalid query parameter")

const dateLayout = "2006-01-02"

type OpeningHourQuery struct {
	Weekday      string `form:"weekday"`
	StartTime    string `form:"start_time"`
	StartTimeGte string `form:"start_time_gte"`
	EndTime      string `form:"end_time"`
	EndTimeLte   string `form:"end_time_lte"`
}

func (q OpeningHourQuery) ToFilter() queries.OpeningHourFilter {
	return queries.OpeningHourFilter(q)
}

type PriceQuery struct {
	Price    string `form:"price"`
	PriceGt  string `form:"price_gt"`
	PriceGte string `form:"price_gte"`
	PriceLt  string `form:"price_lt"`
	PriceLte string `form:"price_lte"`
}

func (q PriceQuery) toFilter() (queries.PriceFilter, error) {
	var f queries.PriceFilter
	bounds := []struct {
		name string
		raw  string
		dst  **decimal.Decimal
	}{
		{"price", q.Price, &f.Exact},
		{"price_gt", q.PriceGt, &f.Gt},
		{"price_gte", q.PriceGte, &f.Gte},
		{"price_lt", q.PriceLt, &f.Lt},
		{"price_lte", q.PriceLte, &f.Lte},
	}
	for _, b := range bounds {
		if b.raw == "" {
			continue
		}
		d, err := decimal.NewFromString(b.raw)
		if err != nil {
			return f, errs.WithDetail(errs.Mark(err, ErrInvalidQuery), "invalid "+b.name+": "+b.raw)
		}
		*b.dst = &d
	}
	return f, nil
}

type InventoryListQuery struct {
	PriceQuery
	Name []string `form:"name"`
}

func (q InventoryListQuery) ToFilter() (queries.InventoryFilter, error) {
	price, err := q.toFilter()
	if err != nil {
		return queries.InventoryFilter{}, err
	}
	return queries.InventoryFilter{Names: q.Name, Price: price}, nil
}

type StockCountQuery struct {
	PriceQuery
	CountGt *int64 `form:"count_gt"`
	CountLt *int64 `form:"count_lt"`
}

func (q StockCountQuery) ToFilter() (queries.StockCountFilter, error) {
	price, err := q.toFilter()
	if err != nil {
		return queries.StockCountFilter{}, err
	}
	return queries.StockCountFilter{Price: price, CountGt: q.CountGt, CountLt: q.CountLt}, nil
}

type SearchQuery struct {
	Search string `form:"search"`
}

type RankingQuery struct {
	Top           int    `form:"top"`
	PurchasedFrom string `form:"purchased_from"`
	PurchasedTo   string `form:"purchased_to"`
}

// ToFilter accepts RFC3339 or a bare date. A bare purchased_to covers the whole day.
func (q RankingQuery) ToFilter() (queries.RankingFilter, error) {
	f := queries.RankingFilter{Top: q.Top}
	if q.PurchasedFrom != "" {
		t, _, err := parseInstant(q.PurchasedFrom)
		if err != nil {
			return f, errs.WithDetail(errs.Mark(err, ErrInvalidQuery), "invalid purchased_from: "+q.PurchasedFrom)
		}
		f.From = &t
	}
	if q.PurchasedTo != "" {
		t, dateOnly, err := parseInstant(q.PurchasedTo)
		if err != nil {
			return f, errs.WithDetail(errs.Mark(err, ErrInvalidQuery), "invalid purchased_to: "+q.PurchasedTo)
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
		}
		f.To = &t
	}
	return f, nil
}

func parseInstant(raw string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

type PurchaseHistoryQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,gte=0"`
	Cursor string `form:"cursor"`
}

func (q PurchaseHistoryQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}
