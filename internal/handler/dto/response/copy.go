package response

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

func init() {
	// money renders as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// copyList maps read models onto response rows field by field.
func copyList[T any, S any](src []S) ([]*T, error) {
	out := make([]*T, 0, len(src))
	if err := copier.Copy(&out, &src); err != nil {
		return nil, err
	}
	return out, nil
}
