package components

import (
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/infra/readstore"
	"phantom-mask/internal/infra/uow"
	"phantom-mask/internal/usecase/queries"
	"phantom-mask/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	NewTxBeginner,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Pharmacy
		fx.Annotate(
			readstore.NewPharmacyReadStore,
			fx.As(new(queries.PharmacyReadStore)),
		),
		// Inventory
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryReadStore)),
		),
		// Member runs inside the UoW read-only transaction
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
	),
)

// Write repositories are bound per transaction inside the UoW.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) uow.TxBeginner {
	return pool
}
