package components

import (
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/config"
	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/queries"
	"limited-drop-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCheckoutConfig,
	NewSweepConfig,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutUseCase,
		commands.NewOrderUseCase,
		commands.NewCartUseCase,
		commands.NewWaitlistUseCase,
		commands.NewEchoUseCase,
		commands.NewPressUseCase,
		commands.NewPhaseUseCase,
		commands.NewOwnerTagUseCase,
		commands.NewSettingsUseCase,
		NewRelayUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewOrderQueries,
		queries.NewEchoQueries,
		queries.NewCartQueries,
		queries.NewSettingsQueries,
	),
)

func NewCheckoutConfig(cfg config.Config) commands.CheckoutConfig {
	return commands.CheckoutConfig{
		TaxFlat:        cfg.Order.TaxFlat,
		ShippingFlat:   cfg.Order.ShippingFlat,
		IdempotencyTTL: cfg.Order.IdempotencyTTL,
	}
}

func NewSweepConfig(cfg config.Config) commands.SweepConfig {
	return commands.SweepConfig{
		ReservationTTL: cfg.Order.ReservationTTL,
		Batch:          cfg.Order.SweepBatch,
	}
}

func NewRelayUseCase(uow shared.UnitOfWork, clk clock.Clock, publisher shared.EventPublisher, cfg config.Config) commands.RelayCommands {
	return commands.NewRelayUseCase(uow, clk, publisher, cfg.Kafka.RelayBatch)
}
