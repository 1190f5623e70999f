package components

import (
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/pkg/clock"
	"event-registration/internal/pkg/config"
	"event-registration/internal/pkg/jwt"
	"event-registration/internal/usecase"
	"event-registration/internal/usecase/commands"
	"event-registration/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		registration.NewRandomCodeGenerator,
		fx.As(new(registration.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAdmissionCommands,
		commands.NewCancellationCommands,
		commands.NewAdminCommands,
		NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewCapacityQueries,
		func(rs queries.RegistrationReadStore, events *event.Registry, loc *time.Location) queries.RegistrationQueries {
			return queries.NewRegistrationQueries(rs, events, loc)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) commands.AuthCommands {
	return commands.NewAuthCommands(commands.AdminCredentials{
		Username:     cfg.Admin.Username,
		PasswordHash: cfg.Admin.PasswordHash,
	}, jwtService)
}

func NewCapacityQueries(
	reader queries.OccupancyReader,
	events *event.Registry,
	recorder queries.CapacityRecorder,
	clk clock.Clock,
	cfg config.Config,
) queries.CapacityQueries {
	return queries.NewCapacityQueries(reader, events, recorder, clk, cfg.Events.FallbackRemaining)
}
