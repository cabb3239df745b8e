package repository

import (
	"context"
	"time"

	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/infra/repository/converter"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	UpdateOrderPaymentState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderPaymentStateParams) (int64, error)
	ListStalePendingOrderIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStalePendingOrderIDsParams) ([]uuid.UUID, error)
	MarkOrderCoaGenerated(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToInfra(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, it := range o.Items() {
		if err := r.queries.CreateOrderItem(ctx, tx, converter.OrderItemToInfra(o, it)); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.OrderSnapshot, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	items, err := r.queries.ListOrderItems(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	return converter.OrderToSnapshot(row, items), nil
}

// UpdatePaymentState moves the order only if it still has the expected status.
func (r *OrderRepository) UpdatePaymentState(
	ctx context.Context,
	tx sqlc.DBTX,
	id uuid.UUID,
	expected, status order.Status,
	payment order.PaymentStatus,
	paymentIntentID *string,
) (bool, error) {
	n, err := r.queries.UpdateOrderPaymentState(ctx, tx, sqlc.UpdateOrderPaymentStateParams{
		ID:              id,
		Status:          status.String(),
		PaymentStatus:   payment.String(),
		PaymentIntentID: pgconv.StringPtrToPgtype(paymentIntentID),
		ExpectedStatus:  expected.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update order payment state", err)
	}
	return n == 1, nil
}

func (r *OrderRepository) ListStalePending(ctx context.Context, tx sqlc.DBTX, createdBefore time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListStalePendingOrderIDs(ctx, tx, sqlc.ListStalePendingOrderIDsParams{
		CreatedBefore: pgconv.TimeToPgtype(createdBefore),
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending orders", err)
	}
	return ids, nil
}

func (r *OrderRepository) MarkCoaGenerated(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOrderCoaGenerated(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark certificate generated", err)
	}
	return nil
}
