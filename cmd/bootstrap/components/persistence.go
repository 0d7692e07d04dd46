package components

import (
	"booking-calendar-sync/internal/infra/cache"
	"booking-calendar-sync/internal/infra/db"
	"booking-calendar-sync/internal/infra/lock"
	"booking-calendar-sync/internal/infra/readstore"
	"booking-calendar-sync/internal/infra/uow"
	"booking-calendar-sync/internal/usecase/queries"
	"booking-calendar-sync/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceViewRepo)),
		),
	),
)

// Write-side repositories are reached through the unit of work only.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			cache.NewRedisCache,
			fx.As(new(shared.Cache)),
		),
		fx.Annotate(
			lock.NewRedisLocker,
			fx.As(new(shared.Locker)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
