//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPharmacyRepository_Create(t *testing.T) {
	ctx := context.Background()
	p, err := pharmacy.NewPharmacy("DFW Wellness", decimal.RequireFromString("328.41"), time.Now())
	require.NoError(t, err)
	_, err = p.AddOpeningHour(pharmacy.Monday, pharmacy.MustTimeOfDay("08:00"), pharmacy.MustTimeOfDay("12:00"))
	require.NoError(t, err)
	_, err = p.AddOpeningHour(pharmacy.Friday, pharmacy.MustTimeOfDay("20:00"), pharmacy.MustTimeOfDay("02:00"))
	require.NoError(t, err)

	t.Run("inserts pharmacy and opening hours", func(t *testing.T) {
		mockDB := new(MockDBTX)
		results := &fakeBatchResults{}
		mockDB.On("Exec", ctx, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("INSERT 0 1"), nil)
		mockDB.On("SendBatch", ctx, batchOfLen(2)).Return(results)

		require.NoError(t, NewPharmacyRepository(mockDB).Create(ctx, p))
		assert.Equal(t, 2, results.execs)
		mockDB.AssertExpectations(t)
	})

	t.Run("insert failure stops before opening hours", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("Exec", ctx, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, assert.AnError)

		err := NewPharmacyRepository(mockDB).Create(ctx, p)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		mockDB.AssertNotCalled(t, "SendBatch", mock.Anything, mock.Anything)
	})
}

func TestPharmacyRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mockDB := new(MockDBTX)
	mockDB.On("QueryRow", ctx, mock.MatchedBy(func(q string) bool { return containsAll(q, "FOR UPDATE") }), []interface{}{id}).
		Return(&fakeRow{err: pgx.ErrNoRows})

	_, err := NewPharmacyRepository(mockDB).LockByID(ctx, id)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestPharmacyRepository_UpdateBalances(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	pharmacies := []*pharmacy.Pharmacy{
		pharmacy.ReconstructPharmacy(uuid.New(), "A", decimal.NewFromInt(10), now, now),
		pharmacy.ReconstructPharmacy(uuid.New(), "B", decimal.NewFromInt(20), now, now),
	}

	mockDB := new(MockDBTX)
	results := &fakeBatchResults{}
	mockDB.On("SendBatch", ctx, batchOfLen(2)).Return(results)

	require.NoError(t, NewPharmacyRepository(mockDB).UpdateBalances(ctx, pharmacies))
	assert.Equal(t, 2, results.execs)
	assert.True(t, results.closed)
}
