package components

import (
	"restro-api/internal/infra/db"
	"restro-api/internal/infra/readstore"
	repo_impl "restro-api/internal/infra/repository"
	"restro-api/internal/usecase/commands"
	"restro-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repo_impl.NewOfferRepository,
			fx.As(new(commands.OfferWriteRepository)),
			fx.As(new(commands.OfferListRepository)),
		),
		fx.Annotate(
			repo_impl.NewMenuItemRepository,
			fx.As(new(commands.MenuItemRepository)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(commands.SettingsWriteRepository)),
			fx.As(new(commands.SettingsReadRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserWriteRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferViewRepo)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuViewRepo)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(queries.SettingsViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
