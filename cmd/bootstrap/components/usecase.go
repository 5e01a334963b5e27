package components

import (
	"restro-api/internal/domain/offer"
	"restro-api/internal/domain/pricing"
	"restro-api/internal/pkg/clock"
	"restro-api/internal/usecase/commands"
	"restro-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

// The single validator instance feeds both the checkout coupon path and
// the per-item resolver, so the two surfaces cannot drift apart.
var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	offer.NewValidator,
	pricing.NewCalculator,
	pricing.NewItemOfferResolver,
	commands.NewTokenValidator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMenuQueries,
		queries.NewOfferQueries,
		queries.NewOrderQueries,
		queries.NewSettingsQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCheckoutCommands,
		commands.NewMenuCommands,
		commands.NewOfferCommands,
		commands.NewSettingsCommands,
	),
)
