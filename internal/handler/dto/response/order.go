package response

import (
	"time"

	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CheckoutResponse struct {
	OrderID         uuid.UUID `json:"orderId"`
	OrderNumber     string    `json:"orderNumber"`
	Total           int64     `json:"total"`
	PaymentRequired bool      `json:"paymentRequired"`
}

func FromCreateOrderResult(r *commands.CreateOrderResult) *CheckoutResponse {
	out := &CheckoutResponse{}
	_ = copier.Copy(out, r)
	return out
}

type PaymentResponse struct {
	OrderID       uuid.UUID `json:"orderId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	Replayed      bool      `json:"replayed"`
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentResponse {
	out := &PaymentResponse{}
	_ = copier.Copy(out, r)
	return out
}

type OrderItemResponse struct {
	ProductID uuid.UUID  `json:"productId"`
	VariantID *uuid.UUID `json:"variantId,omitempty"`
	Quantity  int        `json:"quantity"`
	UnitPrice int64      `json:"unitPrice"`
	LineTotal int64      `json:"lineTotal"`
}

type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	OrderNumber       string              `json:"orderNumber"`
	UserID            *uuid.UUID          `json:"userId,omitempty"`
	Phase             string              `json:"phase"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"paymentStatus"`
	FulfillmentStatus string              `json:"fulfillmentStatus"`
	Subtotal          int64               `json:"subtotal"`
	Tax               int64               `json:"tax"`
	Shipping          int64               `json:"shipping"`
	Total             int64               `json:"total"`
	CoaGenerated      bool                `json:"coaGenerated"`
	Items             []OrderItemResponse `json:"items"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	out := &OrderResponse{}
	_ = copier.CopyWithOption(out, v, copier.Option{DeepCopy: true})
	if out.Items == nil {
		out.Items = []OrderItemResponse{}
	}
	return out
}

type CertificateResponse struct {
	OrderID       uuid.UUID `json:"orderId"`
	OrderNumber   string    `json:"orderNumber"`
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	SerialNumber  string    `json:"serialNumber"`
	PieceNumber   int       `json:"pieceNumber"`
	Phase         string    `json:"phase"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	OwnerTag      *string   `json:"ownerTag,omitempty"`
	Signature     string    `json:"signature"`
	Hash          string    `json:"hash"`
	DisplayHash   string    `json:"displayHash"`
	IssuedAt      time.Time `json:"issuedAt"`
}

func FromCertificateView(v *queries.CertificateView) *CertificateResponse {
	out := &CertificateResponse{}
	_ = copier.Copy(out, v)
	return out
}

type CartItemResponse struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	VariantRef    string    `json:"variantRef"`
	Quantity      int       `json:"quantity"`
	PriceSnapshot int64     `json:"priceSnapshot"`
	LineTotal     int64     `json:"lineTotal"`
}

type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal int64              `json:"subtotal"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	out := &CartResponse{}
	_ = copier.CopyWithOption(out, v, copier.Option{DeepCopy: true})
	if out.Items == nil {
		out.Items = []CartItemResponse{}
	}
	return out
}
