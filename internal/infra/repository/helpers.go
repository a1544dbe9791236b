package repository

import (
	"bytes"
	"context"
	"slices"

	"phantom-mask/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// uniqueSorted returns ids deduplicated in ascending byte order, which is the
// order PostgreSQL compares uuid values in.
func uniqueSorted(ids []uuid.UUID) []uuid.UUID {
	out := slices.Clone(ids)
	slices.SortFunc(out, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return slices.Compact(out)
}

// execBatch sends every queued statement and reports the first failure.
func execBatch(ctx context.Context, dbtx db.DBTX, b *pgx.Batch) (err error) {
	if b.Len() == 0 {
		return nil
	}

	br := dbtx.SendBatch(ctx, b)
	defer func() {
		if closeErr := br.Close(); err == nil {
			err = closeErr
		}
	}()

	for i := 0; i < b.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
