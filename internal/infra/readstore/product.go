package readstore

import (
	"context"

	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/infra/repository/converter"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ProductReadQueries interface {
	GetProduct(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	GetProductVariant(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ProductVariants, error)
	ListProductPhaseConfigs(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) ([]sqlc.ProductPhaseConfigs, error)
	ListProductVariants(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) ([]sqlc.ProductVariants, error)
	CountWaitlistEntries(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (int64, error)
	CountPaidOrdersForProduct(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (int64, error)
	CountPaidOrdersForProductPhase(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPaidOrdersForProductPhaseParams) (int64, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row, err := r.queries.GetProduct(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get product", err)
	}

	configs, err := r.queries.ListProductPhaseConfigs(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product phase configs", err)
	}

	variants, err := r.queries.ListProductVariants(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product variants", err)
	}

	return converter.ProductToDomain(row, configs, variants), nil
}

func (r *ProductReadStore) FindVariant(ctx context.Context, id uuid.UUID) (*product.Variant, error) {
	row, err := r.queries.GetProductVariant(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get product variant", err)
	}
	v := converter.VariantToDomain(row)
	return &v, nil
}

func (r *ProductReadStore) CountWaitlist(ctx context.Context, productID uuid.UUID) (int, error) {
	n, err := r.queries.CountWaitlistEntries(ctx, r.db, productID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count waitlist entries", err)
	}
	return int(n), nil
}

func (r *ProductReadStore) CountPaidOrders(ctx context.Context, productID uuid.UUID) (int, error) {
	n, err := r.queries.CountPaidOrdersForProduct(ctx, r.db, productID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count paid orders", err)
	}
	return int(n), nil
}

func (r *ProductReadStore) CountPaidOrdersInPhase(ctx context.Context, productID uuid.UUID, phase product.Phase) (int, error) {
	n, err := r.queries.CountPaidOrdersForProductPhase(ctx, r.db, sqlc.CountPaidOrdersForProductPhaseParams{
		ProductID: productID,
		Phase:     phase.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count paid orders in phase", err)
	}
	return int(n), nil
}
