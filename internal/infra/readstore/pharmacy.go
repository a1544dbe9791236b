package readstore

import (
	"context"

	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/pkg/pgconv"
	"phantom-mask/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const weekdayOrderExpr = `array_position(ARRAY['Mon','Tue','Wed','Thur','Fri','Sat','Sun']::text[], oh.weekday)`

type PharmacyReadStore struct {
	db db.DBTX
}

func NewPharmacyReadStore(db db.DBTX) *PharmacyReadStore {
	return &PharmacyReadStore{db: db}
}

func (r *PharmacyReadStore) ListOpeningHours(ctx context.Context, c queries.OpeningHourCriteria) ([]*queries.OpeningHourView, error) {
	var w whereBuilder
	if c.Weekday != nil {
		w.add("oh.weekday = $%d", c.Weekday.String())
	}
	clocks := []struct {
		format string
		value  interface{ String() string }
		set    bool
	}{
		{"oh.start_time = $%d", c.StartTime, c.StartTime != nil},
		{"oh.start_time >= $%d", c.StartTimeGte, c.StartTimeGte != nil},
		{"oh.end_time = $%d", c.EndTime, c.EndTime != nil},
		{"oh.end_time <= $%d", c.EndTimeLte, c.EndTimeLte != nil},
	}
	for _, clk := range clocks {
		if !clk.set {
			continue
		}
		pt, err := pgconv.ClockToPgtype(clk.value.String())
		if err != nil {
			return nil, infra.WrapRepoErr("invalid time filter", err, infra.KindCheckViolated)
		}
		w.add(clk.format, pt)
	}

	query := `SELECT oh.id, p.id, p.name, p.cash_balance, oh.weekday, oh.start_time, oh.end_time
		FROM opening_hours oh
		JOIN pharmacies p ON p.id = oh.pharmacy_id` +
		w.where() +
		` ORDER BY p.name, ` + weekdayOrderExpr + `, oh.start_time, oh.id`

	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list opening hours", err)
	}
	defer rows.Close()

	views := []*queries.OpeningHourView{}
	for rows.Next() {
		var (
			v          queries.OpeningHourView
			start, end pgtype.Time
		)
		if err := rows.Scan(&v.ID, &v.PharmacyID, &v.PharmacyName, &v.PharmacyCashBalance, &v.Weekday, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan opening hour", err)
		}
		v.StartTime = pgconv.ClockFromPgtype(start)
		v.EndTime = pgconv.ClockFromPgtype(end)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list opening hours", err)
	}
	return views, nil
}
