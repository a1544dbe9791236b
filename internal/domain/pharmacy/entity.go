package pharmacy

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName         = errors.New("pharmacy name must be 1 to 50 characters")
	ErrNegativeBalance     = errors.New("cash balance must not be negative")
	ErrInvalidAmount       = errors.New("amount must not be negative")
	ErrInsufficientBalance = errors.New("pharmacy cash balance is not enough")
	ErrInvalidWeekday      = errors.New("invalid weekday")
	ErrInvalidTimeOfDay    = errors.New("invalid time of day")
)

const maxNameLength = 50

// Pharmacy cash balance accumulates purchase proceeds and pays for new stock.
type Pharmacy struct {
	id           uuid.UUID
	name         string
	cashBalance  decimal.Decimal
	openingHours []OpeningHour
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPharmacy(name string, cashBalance decimal.Decimal, now time.Time) (*Pharmacy, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrInvalidName
	}
	if cashBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	return &Pharmacy{
		id:          uuid.New(),
		name:        name,
		cashBalance: cashBalance,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPharmacy(id uuid.UUID, name string, cashBalance decimal.Decimal, createdAt, updatedAt time.Time) *Pharmacy {
	return &Pharmacy{
		id:          id,
		name:        name,
		cashBalance: cashBalance,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Pharmacy) ID() uuid.UUID                { return p.id }
func (p *Pharmacy) Name() string                 { return p.name }
func (p *Pharmacy) CashBalance() decimal.Decimal { return p.cashBalance }
func (p *Pharmacy) OpeningHours() []OpeningHour  { return p.openingHours }
func (p *Pharmacy) CreatedAt() time.Time         { return p.createdAt }
func (p *Pharmacy) UpdatedAt() time.Time         { return p.updatedAt }

// Credit adds sale proceeds. No upper bound applies.
func (p *Pharmacy) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	p.cashBalance = p.cashBalance.Add(amount)
	return nil
}

// Debit pays for newly stocked inventory and never leaves the balance negative.
func (p *Pharmacy) Debit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(p.cashBalance) {
		return ErrInsufficientBalance
	}
	p.cashBalance = p.cashBalance.Sub(amount)
	return nil
}

func (p *Pharmacy) AddOpeningHour(weekday Weekday, start, end TimeOfDay) (OpeningHour, error) {
	oh, err := NewOpeningHour(p.id, weekday, start, end)
	if err != nil {
		return OpeningHour{}, err
	}
	p.openingHours = append(p.openingHours, oh)
	return oh, nil
}

type OpeningHour struct {
	id         uuid.UUID
	pharmacyID uuid.UUID
	weekday    Weekday
	start      TimeOfDay
	end        TimeOfDay
}

// end may precede start for shifts running past midnight
func NewOpeningHour(pharmacyID uuid.UUID, weekday Weekday, start, end TimeOfDay) (OpeningHour, error) {
	if !weekday.IsValid() {
		return OpeningHour{}, ErrInvalidWeekday
	}
	return OpeningHour{
		id:         uuid.New(),
		pharmacyID: pharmacyID,
		weekday:    weekday,
		start:      start,
		end:        end,
	}, nil
}

func (o OpeningHour) ID() uuid.UUID         { return o.id }
func (o OpeningHour) PharmacyID() uuid.UUID { return o.pharmacyID }
func (o OpeningHour) Weekday() Weekday      { return o.weekday }
func (o OpeningHour) Start() TimeOfDay      { return o.start }
func (o OpeningHour) End() TimeOfDay        { return o.end }
