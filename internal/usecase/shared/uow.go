package shared

import (
	"context"
	"time"

	"phantom-mask/internal/domain/captcha"
	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/domain/member"
	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/domain/user"
	"phantom-mask/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Pharmacies() PharmacyRepository
	Inventories() InventoryRepository
	Snapshots() SnapshotRepository
	Members() MemberRepository
	PurchaseHistories() PurchaseHistoryRepository
	Users() UserRepository
	Captchas() CaptchaRepository
	DB() db.DBTX
}

// Lock methods take row locks (SELECT ... FOR UPDATE) held until the
// transaction ends. Multi-row variants lock in ascending id order.

type PharmacyRepository interface {
	Create(ctx context.Context, p *pharmacy.Pharmacy) error
	FindByName(ctx context.Context, name string) (*pharmacy.Pharmacy, error)
	LockByID(ctx context.Context, id uuid.UUID) (*pharmacy.Pharmacy, error)
	LockByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*pharmacy.Pharmacy, error)
	UpdateBalances(ctx context.Context, pharmacies []*pharmacy.Pharmacy) error
}

type InventoryRepository interface {
	LockByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error)
	// LockByIDs restricts the locked rows to pharmacyID when it is non-nil.
	LockByIDs(ctx context.Context, ids []uuid.UUID, pharmacyID *uuid.UUID) (map[uuid.UUID]*inventory.Inventory, error)
	FindByKey(ctx context.Context, pharmacyID uuid.UUID, key inventory.Key) (*inventory.Inventory, error)
	ExistingKeys(ctx context.Context, pharmacyID uuid.UUID, keys []inventory.Key) ([]inventory.Key, error)
	CreateBatch(ctx context.Context, items []*inventory.Inventory, batchSize int) error
	UpdateBatch(ctx context.Context, items []*inventory.Inventory) error
	UpdateStocks(ctx context.Context, items []*inventory.Inventory) error
}

type SnapshotRepository interface {
	Create(ctx context.Context, s *inventory.Snapshot) error
}

type MemberRepository interface {
	Create(ctx context.Context, m *member.Member) error
	LockByID(ctx context.Context, id uuid.UUID) (*member.Member, error)
	UpdateBalance(ctx context.Context, m *member.Member) error
}

type PurchaseHistoryRepository interface {
	Create(ctx context.Context, h *member.PurchaseHistory) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type CaptchaRepository interface {
	Create(ctx context.Context, c *captcha.Challenge) error
	FindByHashKey(ctx context.Context, hashKey string) (*captcha.Challenge, error)
	Delete(ctx context.Context, hashKey string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
