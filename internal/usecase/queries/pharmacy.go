package queries

import (
	"context"

	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/pkg/errs"
)

type PharmacyReadStore interface {
	ListOpeningHours(ctx context.Context, criteria OpeningHourCriteria) ([]*OpeningHourView, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/pharmacy.go -package=queriesmock phantom-mask/internal/usecase/queries PharmacyQueries
type PharmacyQueries interface {
	ListOpeningHours(ctx context.Context, filter OpeningHourFilter) ([]*OpeningHourView, error)
}

type pharmacyQueriesImpl struct {
	readStore PharmacyReadStore
}

func NewPharmacyQueries(readStore PharmacyReadStore) PharmacyQueries {
	return &pharmacyQueriesImpl{readStore: readStore}
}

func (q *pharmacyQueriesImpl) ListOpeningHours(ctx context.Context, filter OpeningHourFilter) ([]*OpeningHourView, error) {
	criteria, err := filter.criteria()
	if err != nil {
		return nil, err
	}
	return q.readStore.ListOpeningHours(ctx, criteria)
}

func (f OpeningHourFilter) criteria() (OpeningHourCriteria, error) {
	var c OpeningHourCriteria

	if f.Weekday != "" {
		w, err := pharmacy.ParseWeekday(f.Weekday)
		if err != nil {
			return c, errs.WithDetail(errs.Mark(err, ErrInvalidFilter), "invalid weekday: "+f.Weekday)
		}
		c.Weekday = &w
	}

	clocks := []struct {
		name string
		raw  string
		dst  **pharmacy.TimeOfDay
	}{
		{"start_time", f.StartTime, &c.StartTime},
		{"start_time_gte", f.StartTimeGte, &c.StartTimeGte},
		{"end_time", f.EndTime, &c.EndTime},
		{"end_time_lte", f.EndTimeLte, &c.EndTimeLte},
	}
	for _, clk := range clocks {
		if clk.raw == "" {
			continue
		}
		t, err := pharmacy.ParseTimeOfDay(clk.raw)
		if err != nil {
			return c, errs.WithDetail(errs.Mark(err, ErrInvalidFilter), "invalid "+clk.name+": "+clk.raw)
		}
		*clk.dst = &t
	}

	return c, nil
}
