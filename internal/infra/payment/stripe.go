package payment

import (
	"context"
	"log/slog"

	"limited-drop-api/internal/pkg/errs"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/refund"
)

// RefundCreator matches refund.Client.New.
type RefundCreator interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type StripeGateway struct {
	refunds RefundCreator
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{
		refunds: &refund.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
	}
}

func NewStripeGatewayWithClient(refunds RefundCreator) *StripeGateway {
	return &StripeGateway{refunds: refunds}
}

// Refund returns amount (minor units) of the intent; zero refunds the full charge.
func (g *StripeGateway) Refund(ctx context.Context, paymentIntentID string, amount int64) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	if amount > 0 {
		params.Amount = stripe.Int64(amount)
	}
	params.Context = ctx

	r, err := g.refunds.New(params)
	if err != nil {
		return errs.Wrapf(err, "failed to refund payment intent %s", paymentIntentID)
	}
	slog.Info("refund issued", "payment_intent", paymentIntentID, "refund_id", r.ID, "status", string(r.Status))
	return nil
}

// NoopGateway is used when no stripe key is configured.
type NoopGateway struct{}

func (NoopGateway) Refund(ctx context.Context, paymentIntentID string, amount int64) error {
	slog.Info("refund skipped: payment gateway not configured", "payment_intent", paymentIntentID, "amount", amount)
	return nil
}
