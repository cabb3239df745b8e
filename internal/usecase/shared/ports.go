package shared

import (
	"context"
)

// EventPublisher hands outbox payloads to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

// RefundGateway returns escrowed funds to the payer.
type RefundGateway interface {
	Refund(ctx context.Context, paymentIntentID string, amount int64) error
}

// SettingsCache is a read-through cache in front of the settings table.
type SettingsCache interface {
	GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (string, error)) (string, error)
	Invalidate(ctx context.Context, key string) error
}

type AllocationMetrics interface {
	CheckoutOutcome(result string)
	PhaseTransition(from, to string)
	EscrowProcessed(action string, requests int)
	WaitlistJoined()
}
