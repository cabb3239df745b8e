package request

import (
	"limited-drop-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutItemRequest struct {
	ProductID  uuid.UUID `json:"productId" binding:"required"`
	VariantRef string    `json:"variantRef" binding:"max=100"`
	Quantity   int       `json:"quantity" binding:"required,min=1,max=10"`
}

// CheckoutRequest takes explicit items, or the caller's cart when FromCart is set.
// An empty item list is rejected by the usecase.
type CheckoutRequest struct {
	Items    []CheckoutItemRequest `json:"items" binding:"max=20,dive"`
	FromCart bool                  `json:"fromCart"`
}

func (r CheckoutRequest) ToCommand() commands.CreateOrderRequest {
	items := make([]commands.CheckoutItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.CheckoutItem{
			ProductID:  it.ProductID,
			VariantRef: it.VariantRef,
			Quantity:   it.Quantity,
		})
	}
	return commands.CreateOrderRequest{Items: items, FromCart: r.FromCart}
}

type ConfirmPaymentRequest struct {
	OrderID         uuid.UUID `json:"orderId" binding:"required"`
	PaymentStatus   string    `json:"paymentStatus" binding:"required,oneof=paid failed"`
	PaymentIntentID *string   `json:"paymentIntentId,omitempty" binding:"omitempty,max=255"`
}

func (r ConfirmPaymentRequest) ToCommand() commands.ConfirmPaymentRequest {
	return commands.ConfirmPaymentRequest{
		OrderID:         r.OrderID,
		PaymentStatus:   r.PaymentStatus,
		PaymentIntentID: r.PaymentIntentID,
	}
}

type AddCartItemRequest struct {
	ProductID  uuid.UUID `json:"productId" binding:"required"`
	VariantRef string    `json:"variantRef" binding:"max=100"`
	Quantity   int       `json:"quantity" binding:"required,min=1,max=10"`
}

func (r AddCartItemRequest) ToCommand() commands.AddCartItemRequest {
	return commands.AddCartItemRequest{ProductID: r.ProductID, VariantRef: r.VariantRef, Quantity: r.Quantity}
}
