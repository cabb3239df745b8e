package repository

import (
	"context"

	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) (uuid.UUID, error)
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error)
	ClearCart(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert adds quantity to an existing line for the same product and variant.
func (r *CartRepository) Upsert(ctx context.Context, tx sqlc.DBTX, item shared.CartItemParams) (uuid.UUID, error) {
	id, err := r.queries.UpsertCartItem(ctx, tx, sqlc.UpsertCartItemParams{
		UserID:        item.UserID,
		ProductID:     item.ProductID,
		VariantRef:    item.VariantRef,
		Quantity:      int32(item.Quantity), // #nosec G115 -- validated to 1..max_per_user upstream
		PriceSnapshot: item.PriceSnapshot,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert cart item", err)
	}
	return id, nil
}

func (r *CartRepository) Delete(ctx context.Context, tx sqlc.DBTX, userID, itemID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteCartItem(ctx, tx, sqlc.DeleteCartItemParams{
		ID:     itemID,
		UserID: userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete cart item", err)
	}
	return n == 1, nil
}

func (r *CartRepository) Clear(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.ClearCart(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
