package bootstrap

import (
	"context"

	"limited-drop-api/internal/infra/messaging"
	"limited-drop-api/internal/pkg/config"
	"limited-drop-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) *messaging.KafkaPublisher {
	publisher := messaging.NewKafkaPublisher(messaging.NewWriter(cfg.Kafka), cfg.Kafka.WriteTimeout)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
