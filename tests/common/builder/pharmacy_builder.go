//go:build unit || e2e

package builder

import (
	"time"

	"phantom-mask/internal/domain/pharmacy"

	"github.com/shopspring/decimal"
)

type OpeningHourSpec struct {
	Weekday pharmacy.Weekday
	Start   string
	End     string
}

type PharmacyBuilder struct {
	Name         string
	CashBalance  decimal.Decimal
	OpeningHours []OpeningHourSpec
	Now          time.Time
}

func NewPharmacyBuilder() *PharmacyBuilder {
	return &PharmacyBuilder{
		Name:        "DFW Wellness",
		CashBalance: decimal.NewFromInt(1000),
		OpeningHours: []OpeningHourSpec{
			{Weekday: pharmacy.Monday, Start: "08:00", End: "12:00"},
		},
		Now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *PharmacyBuilder) With(mutate func(*PharmacyBuilder)) *PharmacyBuilder {
	mutate(p)
	return p
}

func (p *PharmacyBuilder) WithName(name string) *PharmacyBuilder {
	p.Name = name
	return p
}

func (p *PharmacyBuilder) WithBalance(balance int64) *PharmacyBuilder {
	p.CashBalance = decimal.NewFromInt(balance)
	return p
}

func (p *PharmacyBuilder) BuildDomain() (*pharmacy.Pharmacy, error) {
	ph, err := pharmacy.NewPharmacy(p.Name, p.CashBalance, p.Now)
	if err != nil {
		return nil, err
	}
	for _, oh := range p.OpeningHours {
		start, err := pharmacy.ParseTimeOfDay(oh.Start)
		if err != nil {
			return nil, err
		}
		end, err := pharmacy.ParseTimeOfDay(oh.End)
		if err != nil {
			return nil, err
		}
		if _, err := ph.AddOpeningHour(oh.Weekday, start, end); err != nil {
			return nil, err
		}
	}
	return ph, nil
}

// MustBuild is for fixtures whose values are known to be valid.
func (p *PharmacyBuilder) MustBuild() *pharmacy.Pharmacy {
	ph, err := p.BuildDomain()
	if err != nil {
		panic(err)
	}
	return ph
}
