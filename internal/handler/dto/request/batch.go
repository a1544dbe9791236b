package request

import (
	"fmt"

	"phantom-mask/internal/pkg/errs"
)

const MaxBatchItems = 500

var ErrInvalidBatch = errs.New("invalid batch")

func checkBatch(n int) error {
	if n < 1 || n > MaxBatchItems {
		return errs.WithDetail(ErrInvalidBatch,
			fmt.Sprintf("expected between 1 and %d items, got %d", MaxBatchItems, n))
	}
	return nil
}
