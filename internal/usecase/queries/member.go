package queries

import (
	"context"

	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/pkg/errs"
	"phantom-mask/internal/usecase/shared"

	"github.com/google/uuid"
)

type MemberReadStore interface {
	MemberExists(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID) (bool, error)
	ListPurchaseHistories(ctx context.Context, dbtx db.DBTX, memberID uuid.UUID, page PurchaseHistoryPage) ([]*PurchaseHistoryView, error)
	PurchaseRanking(ctx context.Context, dbtx db.DBTX, filter RankingFilter) ([]*PurchaseRankingView, error)
}

//go:generate mockgen -destination=../../../tests/mock/queries/member.go -package=queriesmock phantom-mask/internal/usecase/queries MemberQueries
type MemberQueries interface {
	PurchaseRanking(ctx context.Context, filter RankingFilter) ([]*PurchaseRankingView, error)
	ListPurchaseHistories(ctx context.Context, memberID uuid.UUID, cursor *Cursor, limit int) ([]*PurchaseHistoryView, *Cursor, error)
}

type memberQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore MemberReadStore
}

func NewMemberQueries(uow shared.UnitOfWork, readStore MemberReadStore) MemberQueries {
	return &memberQueriesImpl{uow: uow, readStore: readStore}
}

func (q *memberQueriesImpl) PurchaseRanking(ctx context.Context, filter RankingFilter) ([]*PurchaseRankingView, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, errs.WithDetail(ErrInvalidFilter, "purchased_to must not be earlier than purchased_from")
	}

	var rows []*PurchaseRankingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		rows, err = q.readStore.PurchaseRanking(ctx, dbtx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPurchaseHistories pages newest first using a (purchased_at, id) keyset.
func (q *memberQueriesImpl) ListPurchaseHistories(ctx context.Context, memberID uuid.UUID, cursor *Cursor, limit int) ([]*PurchaseHistoryView, *Cursor, error) {
	page := PurchaseHistoryPage{Limit: ValidateLimit(limit) + 1}
	if cursor != nil && cursor.After != "" {
		at, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.WithDetail(errs.Mark(err, ErrInvalidCursor), "invalid cursor: "+cursor.After)
		}
		page.AfterTime, page.AfterID = &at, &id
	}

	var rows []*PurchaseHistoryView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		exists, err := q.readStore.MemberExists(ctx, dbtx, memberID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.WithDetail(ErrMemberNotFound, "Member with id "+memberID.String()+" does not exist.")
		}
		rows, err = q.readStore.ListPurchaseHistories(ctx, dbtx, memberID, page)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if limit = page.Limit - 1; len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.PurchasedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
