package commands

import (
	"context"

	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/pricing"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID  uuid.UUID
	VariantRef string
	Quantity   int
}

type CartCommands interface {
	AddItem(ctx context.Context, req AddCartItemRequest, userID uuid.UUID) (uuid.UUID, error)
	RemoveItem(ctx context.Context, itemID, userID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCartUseCase(uow shared.UnitOfWork, clk clock.Clock) CartCommands {
	return &cartUseCaseImpl{uow: uow, clock: clk}
}

// AddItem stores the line with the price the user would pay now. Adding the
// same variant again replaces the quantity.
func (uc *cartUseCaseImpl) AddItem(ctx context.Context, req AddCartItemRequest, userID uuid.UUID) (uuid.UUID, error) {
	if req.Quantity <= 0 {
		return uuid.Nil, validationErr(order.ErrInvalidQuantity)
	}

	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProductByID(ctx, req.ProductID)
		if err != nil {
			return lookupErr(err, errs.ErrProductNotFound)
		}
		if p.Phase() != product.PhaseOriginals {
			return errs.ErrPhaseNotPurchasable
		}

		v, err := p.FindVariant(req.VariantRef)
		if err != nil {
			return errs.Mark(err, errs.ErrVariantNotFound)
		}
		if v.Available() < req.Quantity {
			return errs.InsufficientStock(v.Available())
		}

		u, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return lookupErr(err, errs.ErrUserNotFound)
		}

		quote := pricing.Compute(p.BasePrice(), p.Phase(),
			pricing.UserAttributes{PriorityClub: u.PriorityClub()},
			p.LaunchDate(), uc.clock.Now(), pricing.Options{})

		id, err = tx.Cart().Upsert(ctx, tx.DB(), shared.CartItemParams{
			UserID:        userID,
			ProductID:     p.ID(),
			VariantRef:    v.ID.String(),
			Quantity:      req.Quantity,
			PriceSnapshot: quote.FinalPrice,
		})
		return dbErr(err)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, itemID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Cart().Delete(ctx, tx.DB(), userID, itemID)
		if err != nil {
			return dbErr(err)
		}
		if !ok {
			return errs.ErrCartItemNotFound
		}
		return nil
	})
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return dbErr(tx.Cart().Clear(ctx, tx.DB(), userID))
	})
}
