package repository

import (
	"context"
	"time"

	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/infra/repository/converter"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductWriteQueries interface {
	GetProductForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	ListProductPhaseConfigs(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) ([]sqlc.ProductPhaseConfigs, error)
	ListProductVariants(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) ([]sqlc.ProductVariants, error)
	ReserveVariantStock(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveVariantStockParams) (int64, error)
	CommitVariantStock(ctx context.Context, db sqlc.DBTX, arg sqlc.CommitVariantStockParams) (int64, error)
	ReleaseVariantStock(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseVariantStockParams) (int64, error)
	AllocateProductSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.AllocateProductSlotsParams) (sqlc.AllocateProductSlotsRow, error)
	ReleaseProductSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseProductSlotsParams) (int64, error)
	TransitionProductPhase(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionProductPhaseParams) (int64, error)
	StartProductProduction(ctx context.Context, db sqlc.DBTX, arg sqlc.StartProductProductionParams) (int64, error)
	SetProductAllocatedCount(ctx context.Context, db sqlc.DBTX, arg sqlc.SetProductAllocatedCountParams) error
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

// FindForUpdate locks the product row for the rest of the transaction.
func (r *ProductRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*product.Product, error) {
	row, err := r.queries.GetProductForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}

	configs, err := r.queries.ListProductPhaseConfigs(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product phase configs", err)
	}

	variants, err := r.queries.ListProductVariants(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product variants", err)
	}

	return converter.ProductToDomain(row, configs, variants), nil
}

func (r *ProductRepository) ReserveStock(ctx context.Context, tx sqlc.DBTX, variantID uuid.UUID, qty int) (bool, error) {
	n, err := r.queries.ReserveVariantStock(ctx, tx, sqlc.ReserveVariantStockParams{
		Quantity: int32(qty), // #nosec G115 -- bounded by request validation
		ID:       variantID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve stock", err)
	}
	return n == 1, nil
}

func (r *ProductRepository) CommitStock(ctx context.Context, tx sqlc.DBTX, variantID uuid.UUID, qty int) (bool, error) {
	n, err := r.queries.CommitVariantStock(ctx, tx, sqlc.CommitVariantStockParams{
		Quantity: int32(qty), // #nosec G115 -- bounded by request validation
		ID:       variantID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to commit stock", err)
	}
	return n == 1, nil
}

func (r *ProductRepository) ReleaseStock(ctx context.Context, tx sqlc.DBTX, variantID uuid.UUID, qty int) (bool, error) {
	n, err := r.queries.ReleaseVariantStock(ctx, tx, sqlc.ReleaseVariantStockParams{
		Quantity: int32(qty), // #nosec G115 -- bounded by request validation
		ID:       variantID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to release stock", err)
	}
	return n == 1, nil
}

// AllocateSlots increments allocated_count only while it stays within cap and
// the product is still in phase. Reaching cap flips the phase to ended in the
// same statement.
func (r *ProductRepository) AllocateSlots(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, phase product.Phase, qty, cap int) (shared.AllocationResult, error) {
	row, err := r.queries.AllocateProductSlots(ctx, tx, sqlc.AllocateProductSlotsParams{
		Quantity: int32(qty), // #nosec G115 -- bounded by request validation
		Cap:      int32(cap), // #nosec G115 -- configured per phase
		ID:       productID,
		Phase:    phase.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.AllocationResult{Allocated: false}, nil
		}
		return shared.AllocationResult{}, infra.WrapRepoErr("failed to allocate product slots", err)
	}

	return shared.AllocationResult{
		Allocated:      true,
		AllocatedCount: int(row.AllocatedCount),
		Phase:          product.Phase(row.Phase),
	}, nil
}

func (r *ProductRepository) ReleaseSlots(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, phase product.Phase, qty int) (bool, error) {
	n, err := r.queries.ReleaseProductSlots(ctx, tx, sqlc.ReleaseProductSlotsParams{
		Quantity: int32(qty), // #nosec G115 -- bounded by request validation
		ID:       productID,
		Phase:    phase.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to release product slots", err)
	}
	return n == 1, nil
}

// TransitionPhase is a compare-and-set on the current phase.
func (r *ProductRepository) TransitionPhase(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, from, to product.Phase) (bool, error) {
	n, err := r.queries.TransitionProductPhase(ctx, tx, sqlc.TransitionProductPhaseParams{
		ToPhase:   to.String(),
		ID:        productID,
		FromPhase: from.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition product phase", err)
	}
	return n == 1, nil
}

func (r *ProductRepository) StartProduction(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.StartProductProduction(ctx, tx, sqlc.StartProductProductionParams{
		ID:                  productID,
		ProductionStartDate: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to start production", err)
	}
	return n == 1, nil
}

func (r *ProductRepository) SetAllocatedCount(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, count int) error {
	err := r.queries.SetProductAllocatedCount(ctx, tx, sqlc.SetProductAllocatedCountParams{
		ID:             productID,
		AllocatedCount: int32(count), // #nosec G115 -- bounded by the escrow batch size
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set allocated count", err)
	}
	return nil
}
