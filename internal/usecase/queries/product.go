package queries

import (
	"context"
	"fmt"

	"limited-drop-api/internal/domain/pricing"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	CountWaitlist(ctx context.Context, productID uuid.UUID) (int, error)
	CountPaidOrders(ctx context.Context, productID uuid.UUID) (int, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByOwnerTag(ctx context.Context, tag user.OwnerTag) (*OwnerVerificationView, error)
}

type ProductQueries interface {
	Stock(ctx context.Context, productID uuid.UUID) (*ProductStockView, error)
	// Quote prices the product for userID, or for an anonymous visitor when nil.
	Quote(ctx context.Context, productID uuid.UUID, userID *uuid.UUID) (*PriceQuoteView, error)
}

type productQueriesImpl struct {
	products ProductReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewProductQueries(products ProductReadStore, users UserReadStore, clk clock.Clock) ProductQueries {
	return &productQueriesImpl{products: products, users: users, clock: clk}
}

func (q *productQueriesImpl) Stock(ctx context.Context, productID uuid.UUID) (*ProductStockView, error) {
	p, err := q.products.FindByID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrProductNotFound)
	}

	waitlisted, err := q.products.CountWaitlist(ctx, productID)
	if err != nil {
		return nil, err
	}
	paid, err := q.products.CountPaidOrders(ctx, productID)
	if err != nil {
		return nil, err
	}

	maxQty := p.Cap(p.Phase())
	remaining := p.RemainingSlots()

	// Waitlisted buyers take their slots first on drop day.
	dropDay := 0
	if p.Phase() == product.PhaseOriginals {
		dropDay = max(0, maxQty-min(waitlisted, maxQty))
	}

	msg := fmt.Sprintf("%d units remaining", remaining)
	if remaining == 0 {
		msg = "Sales cap reached"
	}

	return &ProductStockView{
		ProductID:       p.ID(),
		Phase:           p.Phase().String(),
		MaxQuantity:     maxQty,
		AllocatedCount:  p.AllocatedCount(),
		RemainingSlots:  remaining,
		WaitlistCount:   waitlisted,
		DropDaySlots:    dropDay,
		ConfirmedOrders: paid,
		SalesStopped:    remaining == 0,
		Message:         msg,
	}, nil
}

func (q *productQueriesImpl) Quote(ctx context.Context, productID uuid.UUID, userID *uuid.UUID) (*PriceQuoteView, error) {
	p, err := q.products.FindByID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrProductNotFound)
	}

	var attrs pricing.UserAttributes
	if userID != nil {
		u, err := q.users.FindByID(ctx, *userID)
		if err != nil {
			return nil, notFoundAs(err, errs.ErrUserNotFound)
		}
		attrs.PriorityClub = u.PriorityClub()
	}

	surcharge := p.PressSurchargePercent()
	quote := pricing.Compute(p.BasePrice(), p.Phase(), attrs, p.LaunchDate(), q.clock.Now(),
		pricing.Options{SurchargePercent: &surcharge})

	return &PriceQuoteView{
		ProductID:       p.ID(),
		Phase:           p.Phase().String(),
		BasePrice:       quote.BasePrice,
		DiscountPercent: quote.DiscountPercent,
		FinalPrice:      quote.FinalPrice,
		DiscountReason:  string(quote.DiscountReason),
		Purchasable:     quote.Purchasable,
	}, nil
}

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
