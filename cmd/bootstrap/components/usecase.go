package components

import (
	"stay-picker/internal/handler/middleware"
	"stay-picker/internal/usecase"
	"stay-picker/internal/usecase/commands"
	"stay-picker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewStayPickerUseCase,
		commands.NewLocationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStayPickerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		fx.Annotate(
			usecase.NewTokenValidator,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)
