package components

import (
	"bakery-preorder/internal/pkg/clock"
	"bakery-preorder/internal/usecase/commands"
	"bakery-preorder/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewNewsQueries,
		queries.NewFeedQueries,
		queries.NewCatalogQueries,
	),
)
