//go:build unit

package payment_test

import (
	"context"
	"errors"
	"testing"

	"limited-drop-api/internal/infra/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
)

type fakeRefunds struct {
	params *stripe.RefundParams
	err    error
}

func (f *fakeRefunds) New(params *stripe.RefundParams) (*stripe.Refund, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.Refund{ID: "re_1", Status: stripe.RefundStatusSucceeded}, nil
}

func TestStripeGateway_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("partial amount", func(t *testing.T) {
		f := &fakeRefunds{}
		g := payment.NewStripeGatewayWithClient(f)

		require.NoError(t, g.Refund(ctx, "pi_123", 45000))
		require.NotNil(t, f.params)
		assert.Equal(t, "pi_123", *f.params.PaymentIntent)
		require.NotNil(t, f.params.Amount)
		assert.Equal(t, int64(45000), *f.params.Amount)
	})

	t.Run("zero amount refunds the full charge", func(t *testing.T) {
		f := &fakeRefunds{}
		g := payment.NewStripeGatewayWithClient(f)

		require.NoError(t, g.Refund(ctx, "pi_123", 0))
		assert.Nil(t, f.params.Amount)
	})

	t.Run("stripe error", func(t *testing.T) {
		stripeErr := errors.New("card_declined")
		g := payment.NewStripeGatewayWithClient(&fakeRefunds{err: stripeErr})

		err := g.Refund(ctx, "pi_123", 100)
		require.ErrorIs(t, err, stripeErr)
	})
}

func TestNoopGateway(t *testing.T) {
	assert.NoError(t, payment.NoopGateway{}.Refund(context.Background(), "pi_1", 1))
}
