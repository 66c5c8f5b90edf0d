package components

import (
	"go.uber.org/fx"

	"wallet-console/internal/pkg/clock"
	"wallet-console/internal/usecase"
	"wallet-console/internal/usecase/commands"
	"wallet-console/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() queries.ErrorReporter { return queries.SlogReporter{} },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProfileCommands,
		commands.NewEnterpriseCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProfileQueries,
		queries.NewEnterpriseQueries,
		queries.NewWalletQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
