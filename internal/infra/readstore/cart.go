package readstore

import (
	"context"

	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartReadQueries interface {
	ListCartItems(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.CartItems, error)
}

type CartReadStore struct {
	queries CartReadQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartReadQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]shared.CartItemSnapshot, error) {
	rows, err := r.queries.ListCartItems(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}

	items := make([]shared.CartItemSnapshot, len(rows))
	for i, row := range rows {
		items[i] = shared.CartItemSnapshot{
			ID:            row.ID,
			ProductID:     row.ProductID,
			VariantRef:    row.VariantRef,
			Quantity:      int(row.Quantity),
			PriceSnapshot: row.PriceSnapshot,
		}
	}
	return items, nil
}
