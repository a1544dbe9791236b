//go:build unit || e2e

package builder

import (
	"time"

	"phantom-mask/internal/domain/member"

	"github.com/shopspring/decimal"
)

type MemberBuilder struct {
	Name        string
	CashBalance decimal.Decimal
	Now         time.Time
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		Name:        "Yvonne Guerrero",
		CashBalance: decimal.NewFromInt(1000),
		Now:         time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (m *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(m)
	return m
}

func (m *MemberBuilder) WithBalance(balance int64) *MemberBuilder {
	m.CashBalance = decimal.NewFromInt(balance)
	return m
}

func (m *MemberBuilder) BuildDomain() (*member.Member, error) {
	return member.NewMember(m.Name, m.CashBalance, m.Now)
}

func (m *MemberBuilder) MustBuild() *member.Member {
	mem, err := m.BuildDomain()
	if err != nil {
		panic(err)
	}
	return mem
}
