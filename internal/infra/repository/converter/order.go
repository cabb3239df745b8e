package converter

import (
	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/product"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	"limited-drop-api/internal/usecase/shared"
)

func OrderToInfra(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		ID:              o.ID(),
		OrderNumber:     o.Number(),
		UserID:          pgconv.UUIDPtrToPgtype(o.UserID()),
		Phase:           o.Phase().String(),
		Status:          o.Status().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		Subtotal:        o.Subtotal(),
		Tax:             o.Tax(),
		Shipping:        o.Shipping(),
		Total:           o.Total(),
		PaymentIntentID: pgconv.StringPtrToPgtype(o.PaymentIntentID()),
		CreatedAt:       pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderItemToInfra(o *order.Order, it order.Item) sqlc.CreateOrderItemParams {
	return sqlc.CreateOrderItemParams{
		OrderID:   o.ID(),
		ProductID: it.ProductID,
		VariantID: pgconv.UUIDPtrToPgtype(it.VariantID),
		Quantity:  int32(it.Quantity), // #nosec G115 -- validated positive and small
		UnitPrice: it.UnitPrice,
		LineTotal: it.LineTotal(),
	}
}

func OrderToSnapshot(row sqlc.Orders, items []sqlc.OrderItems) *shared.OrderSnapshot {
	snap := &shared.OrderSnapshot{
		ID:              row.ID,
		Number:          row.OrderNumber,
		UserID:          pgconv.UUIDPtrFromPgtype(row.UserID),
		Phase:           product.Phase(row.Phase),
		Status:          order.Status(row.Status),
		PaymentStatus:   order.PaymentStatus(row.PaymentStatus),
		Total:           row.Total,
		PaymentIntentID: pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		Items:           make([]shared.OrderItemSnapshot, 0, len(items)),
	}
	for _, it := range items {
		snap.Items = append(snap.Items, shared.OrderItemSnapshot{
			ProductID: it.ProductID,
			VariantID: pgconv.UUIDPtrFromPgtype(it.VariantID),
			Quantity:  int(it.Quantity),
			UnitPrice: it.UnitPrice,
		})
	}
	return snap
}
