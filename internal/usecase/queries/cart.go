package queries

import (
	"context"

	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]shared.CartItemSnapshot, error)
}

type CartQueries interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	cart CartReadStore
}

func NewCartQueries(cart CartReadStore) CartQueries {
	return &cartQueriesImpl{cart: cart}
}

func (q *cartQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	items, err := q.cart.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: make([]CartItemView, 0, len(items))}
	for _, it := range items {
		line := it.PriceSnapshot * int64(it.Quantity)
		view.Items = append(view.Items, CartItemView{
			ID:            it.ID,
			ProductID:     it.ProductID,
			VariantRef:    it.VariantRef,
			Quantity:      it.Quantity,
			PriceSnapshot: it.PriceSnapshot,
			LineTotal:     line,
		})
		view.Subtotal += line
	}
	return view, nil
}
