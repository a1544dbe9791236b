package repository

import (
	"context"
	"time"

	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const pharmacyColumns = `id, name, cash_balance, created_at, updated_at`

type PharmacyRepository struct {
	db db.DBTX
}

func NewPharmacyRepository(db db.DBTX) *PharmacyRepository {
	return &PharmacyRepository{db: db}
}

func scanPharmacy(s rowScanner) (*pharmacy.Pharmacy, error) {
	var (
		id        uuid.UUID
		name      string
		balance   decimal.Decimal
		createdAt time.Time
		updatedAt time.Time
	)
	if err := s.Scan(&id, &name, &balance, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return pharmacy.ReconstructPharmacy(id, name, balance, createdAt, updatedAt), nil
}

// Create inserts the pharmacy together with its opening hours.
func (r *PharmacyRepository) Create(ctx context.Context, p *pharmacy.Pharmacy) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO pharmacies (id, name, cash_balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID(), p.Name(), p.CashBalance(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create pharmacy", err)
	}

	batch := &pgx.Batch{}
	for _, oh := range p.OpeningHours() {
		start, err := pgconv.ClockToPgtype(oh.Start().String())
		if err != nil {
			return infra.WrapRepoErr("invalid opening hour start", err, infra.KindCheckViolated)
		}
		end, err := pgconv.ClockToPgtype(oh.End().String())
		if err != nil {
			return infra.WrapRepoErr("invalid opening hour end", err, infra.KindCheckViolated)
		}
		batch.Queue(
			`INSERT INTO opening_hours (id, pharmacy_id, weekday, start_time, end_time)
			 VALUES ($1, $2, $3, $4, $5)`,
			oh.ID(), p.ID(), oh.Weekday().String(), start, end,
		)
	}

	if err := execBatch(ctx, r.db, batch); err != nil {
		return infra.WrapRepoErr("failed to create opening hours", err)
	}
	return nil
}

func (r *PharmacyRepository) FindByName(ctx context.Context, name string) (*pharmacy.Pharmacy, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+pharmacyColumns+` FROM pharmacies WHERE name = $1 ORDER BY created_at, id LIMIT 1`,
		name,
	)
	p, err := scanPharmacy(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pharmacy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pharmacy by name", err)
	}
	return p, nil
}

func (r *PharmacyRepository) LockByID(ctx context.Context, id uuid.UUID) (*pharmacy.Pharmacy, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+pharmacyColumns+` FROM pharmacies WHERE id = $1 FOR UPDATE`,
		id,
	)
	p, err := scanPharmacy(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pharmacy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock pharmacy", err)
	}
	return p, nil
}

// LockByIDs returns the locked rows keyed by id. Missing ids are absent from the map.
func (r *PharmacyRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*pharmacy.Pharmacy, error) {
	locked := make(map[uuid.UUID]*pharmacy.Pharmacy, len(ids))
	if len(ids) == 0 {
		return locked, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+pharmacyColumns+` FROM pharmacies WHERE id = ANY($1) ORDER BY id FOR UPDATE`,
		uniqueSorted(ids),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pharmacies", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPharmacy(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pharmacy", err)
		}
		locked[p.ID()] = p
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to lock pharmacies", err)
	}
	return locked, nil
}

func (r *PharmacyRepository) UpdateBalances(ctx context.Context, pharmacies []*pharmacy.Pharmacy) error {
	batch := &pgx.Batch{}
	for _, p := range pharmacies {
		batch.Queue(
			`UPDATE pharmacies SET cash_balance = $2, updated_at = NOW() WHERE id = $1`,
			p.ID(), p.CashBalance(),
		)
	}
	if err := execBatch(ctx, r.db, batch); err != nil {
		return infra.WrapRepoErr("failed to update pharmacy balances", err)
	}
	return nil
}
