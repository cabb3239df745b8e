package bootstrap

import (
	"log/slog"

	"limited-drop-api/internal/infra/payment"
	"limited-drop-api/internal/pkg/config"
	"limited-drop-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewRefundGateway,
	),
)

func NewRefundGateway(cfg config.Config) shared.RefundGateway {
	if cfg.Stripe.SecretKey == "" {
		slog.Warn("STRIPE_SECRET_KEY is not set; escrow refunds will be skipped")
		return payment.NoopGateway{}
	}
	return payment.NewStripeGateway(cfg.Stripe.SecretKey)
}
