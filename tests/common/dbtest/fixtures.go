//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"phantom-mask/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

// CreateTestUser inserts a user whose password is TestPassword.
func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	hashOnce.Do(func() {
		var err error
		passwordHash, err = password.HashPassword(TestPassword)
		require.NoError(t, err)
	})

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, username, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, strings.ToLower(email), strings.Split(email, "@")[0], passwordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", strings.ToLower(email)).Scan(&userID)
	}
	return userID
}

func CreatePharmacy(t *testing.T, db DBLike, name, balance string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO pharmacies (id, name, cash_balance) VALUES ($1, $2, $3)",
		id, name, decimal.RequireFromString(balance))
	require.NoError(t, err)
	return id
}

func CreateOpeningHour(t *testing.T, db DBLike, pharmacyID uuid.UUID, weekday, start, end string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO opening_hours (id, pharmacy_id, weekday, start_time, end_time) VALUES ($1, $2, $3, $4::time, $5::time)",
		uuid.New(), pharmacyID, weekday, start, end)
	require.NoError(t, err)
}

func CreateInventory(t *testing.T, db DBLike, pharmacyID uuid.UUID, name, price string, stock int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO inventories (id, pharmacy_id, name, color, count_per_pack, price, stock_quantity)
		 VALUES ($1, $2, $3, 'green', 3, $4, $5)`,
		id, pharmacyID, name, decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	return id
}

func CreateMember(t *testing.T, db DBLike, name, balance string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO members (id, name, cash_balance) VALUES ($1, $2, $3)",
		id, name, decimal.RequireFromString(balance))
	require.NoError(t, err)
	return id
}

// CreatePurchaseHistory writes a snapshot of inventoryID plus one history row
// without moving any balance.
func CreatePurchaseHistory(t *testing.T, db DBLike, memberID, inventoryID uuid.UUID, amount string, quantity int, at time.Time) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	snapshotID := uuid.New()
	_, err := db.Exec(ctx,
		`INSERT INTO inventory_snapshots
		   (id, pharmacy_id, inventory_id, pharmacy_name, inventory_name, color, count_per_pack, price)
		 SELECT $1, p.id, i.id, p.name, i.name, i.color, i.count_per_pack, i.price
		 FROM inventories i JOIN pharmacies p ON p.id = i.pharmacy_id
		 WHERE i.id = $2`,
		snapshotID, inventoryID)
	require.NoError(t, err)

	id := uuid.New()
	_, err = db.Exec(ctx,
		"INSERT INTO purchase_histories (id, member_id, snapshot_id, amount, quantity, purchased_at) VALUES ($1, $2, $3, $4, $5, $6)",
		id, memberID, snapshotID, decimal.RequireFromString(amount), quantity, at)
	require.NoError(t, err)
	return id
}

func StockOf(t *testing.T, db DBLike, inventoryID uuid.UUID) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock_quantity FROM inventories WHERE id = $1", inventoryID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// BalanceOf reads cash_balance from table, which must be pharmacies or members.
func BalanceOf(t *testing.T, db DBLike, table string, id uuid.UUID) decimal.Decimal {
	t.Helper()
	require.Contains(t, []string{"pharmacies", "members"}, table)

	var balance decimal.Decimal
	err := db.QueryRow(context.Background(), "SELECT cash_balance FROM "+table+" WHERE id = $1", id).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
