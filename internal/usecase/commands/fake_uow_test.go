//go:build unit

package commands_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"phantom-mask/internal/domain/captcha"
	"phantom-mask/internal/domain/inventory"
	"phantom-mask/internal/domain/member"
	"phantom-mask/internal/domain/pharmacy"
	"phantom-mask/internal/domain/user"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRow = errors.New("no rows in result set")

// memDB is the committed state behind fakeUoW. Entities handed to a
// transaction are copies, so a rolled back closure leaves it untouched.
type memDB struct {
	pharmacies  map[uuid.UUID]*pharmacy.Pharmacy
	inventories map[uuid.UUID]*inventory.Inventory
	members     map[uuid.UUID]*member.Member
	users       map[uuid.UUID]*user.User
	captchas    map[string]*captcha.Challenge
	hours       map[uuid.UUID][]pharmacy.OpeningHour
	snapshots   []*inventory.Snapshot
	histories   []*member.PurchaseHistory
}

func newMemDB() *memDB {
	return &memDB{
		pharmacies:  map[uuid.UUID]*pharmacy.Pharmacy{},
		inventories: map[uuid.UUID]*inventory.Inventory{},
		members:     map[uuid.UUID]*member.Member{},
		users:       map[uuid.UUID]*user.User{},
		captchas:    map[string]*captcha.Challenge{},
		hours:       map[uuid.UUID][]pharmacy.OpeningHour{},
	}
}

func (d *memDB) clone() *memDB {
	return &memDB{
		pharmacies:  maps.Clone(d.pharmacies),
		inventories: maps.Clone(d.inventories),
		members:     maps.Clone(d.members),
		users:       maps.Clone(d.users),
		captchas:    maps.Clone(d.captchas),
		hours:       maps.Clone(d.hours),
		snapshots:   slices.Clone(d.snapshots),
		histories:   slices.Clone(d.histories),
	}
}

func copyPharmacy(p *pharmacy.Pharmacy) *pharmacy.Pharmacy {
	return pharmacy.ReconstructPharmacy(p.ID(), p.Name(), p.CashBalance(), p.CreatedAt(), p.UpdatedAt())
}

func copyInventory(i *inventory.Inventory) *inventory.Inventory {
	return inventory.ReconstructInventory(
		i.ID(), i.PharmacyID(), i.Name(), i.Color(), i.CountPerPack(),
		i.Price(), i.StockQuantity(), i.CreatedAt(), i.UpdatedAt(),
	)
}

func copyMember(m *member.Member) *member.Member {
	return member.ReconstructMember(m.ID(), m.Name(), m.CashBalance(), m.CreatedAt(), m.UpdatedAt())
}

type fakeUoW struct {
	db      *memDB
	locks   []string
	calls   []string
	failOn  map[string]error
	commits int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{db: newMemDB(), failOn: map[string]error{}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &fakeTx{uow: u, db: u.db.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	u.db = tx.db
	u.commits++
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) record(call string) error {
	u.calls = append(u.calls, call)
	return u.failOn[call]
}

func (u *fakeUoW) called(call string) bool {
	return slices.Contains(u.calls, call)
}

type fakeTx struct {
	uow *fakeUoW
	db  *memDB
}

func (t *fakeTx) Pharmacies() shared.PharmacyRepository               { return fakePharmacies{t} }
func (t *fakeTx) Inventories() shared.InventoryRepository             { return fakeInventories{t} }
func (t *fakeTx) Snapshots() shared.SnapshotRepository                { return fakeSnapshots{t} }
func (t *fakeTx) Members() shared.MemberRepository                    { return fakeMembers{t} }
func (t *fakeTx) PurchaseHistories() shared.PurchaseHistoryRepository { return fakeHistories{t} }
func (t *fakeTx) Users() shared.UserRepository                        { return fakeUsers{t} }
func (t *fakeTx) Captchas() shared.CaptchaRepository                  { return fakeCaptchas{t} }
func (t *fakeTx) DB() db.DBTX                                         { return nil }

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errNoRow, infra.KindNotFound)
}

type fakePharmacies struct{ tx *fakeTx }

func (r fakePharmacies) Create(_ context.Context, p *pharmacy.Pharmacy) error {
	if err := r.tx.uow.record("Pharmacies.Create"); err != nil {
		return err
	}
	r.tx.db.pharmacies[p.ID()] = copyPharmacy(p)
	r.tx.db.hours[p.ID()] = slices.Clone(p.OpeningHours())
	return nil
}

func (r fakePharmacies) FindByName(_ context.Context, name string) (*pharmacy.Pharmacy, error) {
	for _, p := range r.tx.db.pharmacies {
		if p.Name() == name {
			return copyPharmacy(p), nil
		}
	}
	return nil, notFound("pharmacy not found")
}

func (r fakePharmacies) LockByID(_ context.Context, id uuid.UUID) (*pharmacy.Pharmacy, error) {
	r.tx.uow.locks = append(r.tx.uow.locks, "pharmacy:"+id.String())
	p, ok := r.tx.db.pharmacies[id]
	if !ok {
		return nil, notFound("pharmacy not found")
	}
	return copyPharmacy(p), nil
}

func (r fakePharmacies) LockByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*pharmacy.Pharmacy, error) {
	out := map[uuid.UUID]*pharmacy.Pharmacy{}
	for _, id := range ids {
		r.tx.uow.locks = append(r.tx.uow.locks, "pharmacy:"+id.String())
		if p, ok := r.tx.db.pharmacies[id]; ok {
			out[id] = copyPharmacy(p)
		}
	}
	return out, nil
}

func (r fakePharmacies) UpdateBalances(_ context.Context, ps []*pharmacy.Pharmacy) error {
	if err := r.tx.uow.record("Pharmacies.UpdateBalances"); err != nil {
		return err
	}
	for _, p := range ps {
		r.tx.db.pharmacies[p.ID()] = copyPharmacy(p)
	}
	return nil
}

type fakeInventories struct{ tx *fakeTx }

func (r fakeInventories) LockByID(_ context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	r.tx.uow.locks = append(r.tx.uow.locks, "inventory:"+id.String())
	inv, ok := r.tx.db.inventories[id]
	if !ok {
		return nil, notFound("inventory not found")
	}
	return copyInventory(inv), nil
}

func (r fakeInventories) LockByIDs(_ context.Context, ids []uuid.UUID, pharmacyID *uuid.UUID) (map[uuid.UUID]*inventory.Inventory, error) {
	out := map[uuid.UUID]*inventory.Inventory{}
	for _, id := range ids {
		r.tx.uow.locks = append(r.tx.uow.locks, "inventory:"+id.String())
		inv, ok := r.tx.db.inventories[id]
		if !ok || (pharmacyID != nil && inv.PharmacyID() != *pharmacyID) {
			continue
		}
		out[id] = copyInventory(inv)
	}
	return out, nil
}

func (r fakeInventories) FindByKey(_ context.Context, pharmacyID uuid.UUID, key inventory.Key) (*inventory.Inventory, error) {
	for _, inv := range r.tx.db.inventories {
		if inv.PharmacyID() == pharmacyID && inv.Key() == key {
			return copyInventory(inv), nil
		}
	}
	return nil, notFound("inventory not found")
}

func (r fakeInventories) ExistingKeys(_ context.Context, pharmacyID uuid.UUID, keys []inventory.Key) ([]inventory.Key, error) {
	var found []inventory.Key
	for _, inv := range r.tx.db.inventories {
		if inv.PharmacyID() == pharmacyID && slices.Contains(keys, inv.Key()) {
			found = append(found, inv.Key())
		}
	}
	return found, nil
}

func (r fakeInventories) CreateBatch(_ context.Context, items []*inventory.Inventory, _ int) error {
	if err := r.tx.uow.record("Inventories.CreateBatch"); err != nil {
		return err
	}
	if err := r.checkUnique(items); err != nil {
		return err
	}
	for _, inv := range items {
		r.tx.db.inventories[inv.ID()] = copyInventory(inv)
	}
	return nil
}

// checkUnique mirrors the (pharmacy_id, name, color, count_per_pack) constraint.
func (r fakeInventories) checkUnique(items []*inventory.Inventory) error {
	next := maps.Clone(r.tx.db.inventories)
	for _, inv := range items {
		next[inv.ID()] = inv
	}
	type rowKey struct {
		pharmacyID uuid.UUID
		key        inventory.Key
	}
	seen := make(map[rowKey]struct{}, len(next))
	for _, inv := range next {
		k := rowKey{inv.PharmacyID(), inv.Key()}
		if _, dup := seen[k]; dup {
			return infra.WrapRepoErr("duplicate key value violates unique constraint", errNoRow, infra.KindDuplicateKey)
		}
		seen[k] = struct{}{}
	}
	return nil
}

func (r fakeInventories) UpdateBatch(_ context.Context, items []*inventory.Inventory) error {
	if err := r.tx.uow.record("Inventories.UpdateBatch"); err != nil {
		return err
	}
	if err := r.checkUnique(items); err != nil {
		return err
	}
	for _, inv := range items {
		r.tx.db.inventories[inv.ID()] = copyInventory(inv)
	}
	return nil
}

func (r fakeInventories) UpdateStocks(_ context.Context, items []*inventory.Inventory) error {
	if err := r.tx.uow.record("Inventories.UpdateStocks"); err != nil {
		return err
	}
	for _, inv := range items {
		r.tx.db.inventories[inv.ID()] = copyInventory(inv)
	}
	return nil
}

type fakeSnapshots struct{ tx *fakeTx }

func (r fakeSnapshots) Create(_ context.Context, s *inventory.Snapshot) error {
	if err := r.tx.uow.record("Snapshots.Create"); err != nil {
		return err
	}
	r.tx.db.snapshots = append(r.tx.db.snapshots, s)
	return nil
}

type fakeMembers struct{ tx *fakeTx }

func (r fakeMembers) Create(_ context.Context, m *member.Member) error {
	r.tx.db.members[m.ID()] = copyMember(m)
	return nil
}

func (r fakeMembers) LockByID(_ context.Context, id uuid.UUID) (*member.Member, error) {
	r.tx.uow.locks = append(r.tx.uow.locks, "member:"+id.String())
	m, ok := r.tx.db.members[id]
	if !ok {
		return nil, notFound("member not found")
	}
	return copyMember(m), nil
}

func (r fakeMembers) UpdateBalance(_ context.Context, m *member.Member) error {
	if err := r.tx.uow.record("Members.UpdateBalance"); err != nil {
		return err
	}
	r.tx.db.members[m.ID()] = copyMember(m)
	return nil
}

type fakeHistories struct{ tx *fakeTx }

func (r fakeHistories) Create(_ context.Context, h *member.PurchaseHistory) error {
	if err := r.tx.uow.record("PurchaseHistories.Create"); err != nil {
		return err
	}
	r.tx.db.histories = append(r.tx.db.histories, h)
	return nil
}

type fakeUsers struct{ tx *fakeTx }

func (r fakeUsers) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.tx.db.users {
		if existing.Email() == u.Email() {
			return infra.WrapRepoErr("failed to create user", errors.New("unique violation"), infra.KindDuplicateKey)
		}
	}
	r.tx.db.users[u.ID()] = u
	return nil
}

func (r fakeUsers) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.tx.db.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, notFound("user not found")
}

func (r fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.tx.db.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return u, nil
}

func (r fakeUsers) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	if err := r.tx.uow.record("Users.UpdateLastLogin"); err != nil {
		return err
	}
	u, ok := r.tx.db.users[id]
	if !ok {
		return notFound("user not found")
	}
	r.tx.db.users[id] = user.ReconstructUser(u.ID(), u.Email(), u.Username(), u.PasswordHash(), &at, u.CreatedAt(), at)
	return nil
}

type fakeCaptchas struct{ tx *fakeTx }

func (r fakeCaptchas) Create(_ context.Context, c *captcha.Challenge) error {
	r.tx.db.captchas[c.HashKey()] = c
	return nil
}

func (r fakeCaptchas) FindByHashKey(_ context.Context, hashKey string) (*captcha.Challenge, error) {
	c, ok := r.tx.db.captchas[hashKey]
	if !ok {
		return nil, notFound("captcha not found")
	}
	return c, nil
}

func (r fakeCaptchas) Delete(_ context.Context, hashKey string) error {
	delete(r.tx.db.captchas, hashKey)
	return nil
}

func (r fakeCaptchas) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for key, c := range r.tx.db.captchas {
		if c.Expired(now) {
			delete(r.tx.db.captchas, key)
			n++
		}
	}
	return n, nil
}
