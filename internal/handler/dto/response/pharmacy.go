package response

import (
	"phantom-mask/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OpeningHourResponse struct {
	ID                  uuid.UUID       `json:"id"`
	PharmacyID          uuid.UUID       `json:"pharmacy_id"`
	PharmacyName        string          `json:"pharmacy_name"`
	PharmacyCashBalance decimal.Decimal `json:"pharmacy_cash_balance"`
	Weekday             string          `json:"weekday"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time"`
}

func FromOpeningHourViews(views []*queries.OpeningHourView) ([]*OpeningHourResponse, error) {
	return copyList[OpeningHourResponse](views)
}
