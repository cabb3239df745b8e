package readstore

import (
	"context"
	"time"

	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	"limited-drop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadQueries interface {
	GetOrder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	GetCertificateSequence(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCertificateSequenceParams) (int64, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrder(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order", err)
	}

	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	view := &queries.OrderView{
		ID:                row.ID,
		OrderNumber:       row.OrderNumber,
		UserID:            pgconv.UUIDPtrFromPgtype(row.UserID),
		Phase:             row.Phase,
		Status:            row.Status,
		PaymentStatus:     row.PaymentStatus,
		FulfillmentStatus: row.FulfillmentStatus,
		Subtotal:          row.Subtotal,
		Tax:               row.Tax,
		Shipping:          row.Shipping,
		Total:             row.Total,
		PaymentIntentID:   pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		CoaGenerated:      row.CoaGenerated,
		Items:             make([]queries.OrderItemView, 0, len(items)),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, it := range items {
		view.Items = append(view.Items, queries.OrderItemView{
			ProductID: it.ProductID,
			VariantID: pgconv.UUIDPtrFromPgtype(it.VariantID),
			Quantity:  int(it.Quantity),
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}
	return view, nil
}

// CertificateSequence is the 1-based position of the order among the paid
// orders for productID, ordered by (created_at, id).
func (r *OrderReadStore) CertificateSequence(ctx context.Context, orderID, productID uuid.UUID, createdAt time.Time) (int, error) {
	n, err := r.queries.GetCertificateSequence(ctx, r.db, sqlc.GetCertificateSequenceParams{
		ProductID: productID,
		CreatedAt: pgconv.TimeToPgtype(createdAt),
		OrderID:   orderID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get certificate sequence", err)
	}
	return int(n), nil
}
