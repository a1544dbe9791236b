package repository

import (
	"context"
	"time"

	"phantom-mask/internal/domain/member"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MemberRepository struct {
	db db.DBTX
}

func NewMemberRepository(db db.DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO members (id, name, cash_balance, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		m.ID(), m.Name(), m.CashBalance(), m.CreatedAt(), m.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create member", err)
	}
	return nil
}

func (r *MemberRepository) LockByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	var (
		memberID  uuid.UUID
		name      string
		balance   decimal.Decimal
		createdAt time.Time
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, cash_balance, created_at, updated_at FROM members WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&memberID, &name, &balance, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock member", err)
	}
	return member.ReconstructMember(memberID, name, balance, createdAt, updatedAt), nil
}

func (r *MemberRepository) UpdateBalance(ctx context.Context, m *member.Member) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE members SET cash_balance = $2, updated_at = $3 WHERE id = $1`,
		m.ID(), m.CashBalance(), m.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update member balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("member not found", nil, infra.KindNotFound)
	}
	return nil
}
