package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/domain/member"
	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/pkg/clock"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var ErrInvalidFixture = errs.New("invalid fixture")

// naive timestamps in member fixtures are read in the loader's location
var fixtureTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

type PharmacyRecord struct {
	Name         string          `json:"name"`
	CashBalance  decimal.Decimal `json:"cashBalance"`
	OpeningHours string          `json:"openingHours"`
	Masks        []MaskRecord    `json:"masks"`
}

type MaskRecord struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
}

type MemberRecord struct {
	Name              string           `json:"name"`
	CashBalance       decimal.Decimal  `json:"cashBalance"`
	PurchaseHistories []PurchaseRecord `json:"purchaseHistories"`
}

type PurchaseRecord struct {
	PharmacyName        string          `json:"pharmacyName"`
	MaskName            string          `json:"maskName"`
	TransactionAmount   decimal.Decimal `json:"transactionAmount"`
	TransactionQuantity int             `json:"transactionQuantity"`
	TransactionDatetime string          `json:"transactionDatetime"`
}

type LoadResult struct {
	Created   int
	Children  int
	Histories int
}

// FixtureCommands imports the JSON seed files. Each call is one transaction.
type FixtureCommands interface {
	LoadPharmacies(ctx context.Context, records []PharmacyRecord) (LoadResult, error)
	LoadMembers(ctx context.Context, records []MemberRecord) (LoadResult, error)
}

type fixtureCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	location  *time.Location
	batchSize int
}

func NewFixtureCommands(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location, batchSize int) FixtureCommands {
	if loc == nil {
		loc = time.UTC
	}
	return &fixtureCommandsImpl{uow: uow, clock: clk, location: loc, batchSize: batchSize}
}

// LoadPharmacies creates pharmacies with their opening hours and stock.
// Balances are taken as given; the stock is not paid for.
func (c *fixtureCommandsImpl) LoadPharmacies(ctx context.Context, records []PharmacyRecord) (LoadResult, error) {
	now := c.clock.Now()

	var res LoadResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = LoadResult{}
		for i, rec := range records {
			ph, err := pharmacy.NewPharmacy(rec.Name, rec.CashBalance, now)
			if err != nil {
				return fixtureErr(err, "pharmacy %d (%s): %s", i, rec.Name, err.Error())
			}

			shifts, err := pharmacy.ParseSchedule(rec.OpeningHours)
			if err != nil {
				return fixtureErr(err, "pharmacy %d (%s): %s", i, rec.Name, err.Error())
			}
			for _, s := range shifts {
				if _, err := ph.AddOpeningHour(s.Weekday, s.Start, s.End); err != nil {
					return fixtureErr(err, "pharmacy %d (%s): %s", i, rec.Name, err.Error())
				}
			}
			if err := tx.Pharmacies().Create(ctx, ph); err != nil {
				return err
			}

			items := make([]*inventory.Inventory, 0, len(rec.Masks))
			for j, mask := range rec.Masks {
				key, err := inventory.ParseLabel(mask.Name)
				if err != nil {
					return fixtureErr(err, "pharmacy %d mask %d (%s): %s", i, j, mask.Name, err.Error())
				}
				inv, err := inventory.NewInventory(ph.ID(), key.Name, key.Color, key.CountPerPack, mask.Price, mask.StockQuantity, now)
				if err != nil {
					return fixtureErr(err, "pharmacy %d mask %d (%s): %s", i, j, mask.Name, err.Error())
				}
				items = append(items, inv)
			}
			if err := checkUniqueKeys(items); err != nil {
				return errs.WithDetail(errs.Mark(err, ErrInvalidFixture), fmt.Sprintf("pharmacy %d (%s): duplicate mask", i, rec.Name))
			}
			if len(items) > 0 {
				if err := tx.Inventories().CreateBatch(ctx, items, c.batchSize); err != nil {
					return err
				}
			}

			res.Created++
			res.Children += len(items)
		}
		return nil
	})
	if err != nil {
		return LoadResult{}, err
	}

	slog.Info("pharmacies loaded", "pharmacies", res.Created, "inventories", res.Children)
	return res, nil
}

// LoadMembers creates members and their recorded purchases. An inventory
// named by a purchase but missing from the pharmacy is created empty.
func (c *fixtureCommandsImpl) LoadMembers(ctx context.Context, records []MemberRecord) (LoadResult, error) {
	now := c.clock.Now()

	var res LoadResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = LoadResult{}
		pharmacies := map[string]*pharmacy.Pharmacy{}

		for i, rec := range records {
			m, err := member.NewMember(rec.Name, rec.CashBalance, now)
			if err != nil {
				return fixtureErr(err, "member %d (%s): %s", i, rec.Name, err.Error())
			}
			if err := tx.Members().Create(ctx, m); err != nil {
				return err
			}

			for j, p := range rec.PurchaseHistories {
				h, err := c.importPurchase(ctx, tx, pharmacies, m, p, now)
				if err != nil {
					if errors.Is(err, ErrInvalidFixture) {
						return errs.WithDetail(err, fmt.Sprintf("member %d (%s) purchase %d", i, rec.Name, j))
					}
					return err
				}
				if err := tx.PurchaseHistories().Create(ctx, h); err != nil {
					return err
				}
				res.Histories++
			}
			res.Created++
		}
		return nil
	})
	if err != nil {
		return LoadResult{}, err
	}

	slog.Info("members loaded", "members", res.Created, "purchase_histories", res.Histories)
	return res, nil
}

func (c *fixtureCommandsImpl) importPurchase(
	ctx context.Context,
	tx shared.Tx,
	pharmacies map[string]*pharmacy.Pharmacy,
	m *member.Member,
	p PurchaseRecord,
	now time.Time,
) (*member.PurchaseHistory, error) {
	ph, ok := pharmacies[p.PharmacyName]
	if !ok {
		var err error
		ph, err = tx.Pharmacies().FindByName(ctx, p.PharmacyName)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.WithDetail(errs.Mark(err, ErrInvalidFixture), fmt.Sprintf("unknown pharmacy %q", p.PharmacyName))
			}
			return nil, err
		}
		pharmacies[p.PharmacyName] = ph
	}

	key, err := inventory.ParseLabel(p.MaskName)
	if err != nil {
		return nil, fixtureErr(err, "%s: %s", p.MaskName, err.Error())
	}
	purchasedAt, err := c.parseTime(p.TransactionDatetime)
	if err != nil {
		return nil, fixtureErr(err, "transaction datetime %q: %s", p.TransactionDatetime, err.Error())
	}

	inv, err := tx.Inventories().FindByKey(ctx, ph.ID(), key)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		inv, err = inventory.NewInventory(ph.ID(), key.Name, key.Color, key.CountPerPack, decimal.Zero, 0, now)
		if err != nil {
			return nil, fixtureErr(err, "%s: %s", p.MaskName, err.Error())
		}
		if err := tx.Inventories().CreateBatch(ctx, []*inventory.Inventory{inv}, c.batchSize); err != nil {
			return nil, err
		}
	}

	snap := inventory.NewSnapshot(inv, ph.Name(), now)
	if err := tx.Snapshots().Create(ctx, snap); err != nil {
		return nil, err
	}

	h, err := member.ImportPurchaseHistory(m.ID(), snap, p.TransactionAmount, p.TransactionQuantity, purchasedAt)
	if err != nil {
		return nil, fixtureErr(err, "%s", err.Error())
	}
	return h, nil
}

func (c *fixtureCommandsImpl) parseTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range fixtureTimeLayouts {
		t, err := time.ParseInLocation(layout, s, c.location)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func fixtureErr(err error, format string, args ...any) error {
	return errs.WithDetail(errs.Mark(err, ErrInvalidFixture), fmt.Sprintf(format, args...))
}
