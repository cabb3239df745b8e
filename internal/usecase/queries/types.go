package queries

import (
	"time"

	"github.com/google/uuid"
)

// ProductStockView is the public allocation state of a product.
type ProductStockView struct {
	ProductID       uuid.UUID `json:"product_id"`
	Phase           string    `json:"phase"`
	MaxQuantity     int       `json:"max_quantity"`
	AllocatedCount  int       `json:"allocated_count"`
	RemainingSlots  int       `json:"remaining_slots"`
	WaitlistCount   int       `json:"waitlist_count"`
	DropDaySlots    int       `json:"drop_day_slots"`
	ConfirmedOrders int       `json:"confirmed_orders"`
	SalesStopped    bool      `json:"sales_stopped"`
	Message         string    `json:"message"`
}

type PriceQuoteView struct {
	ProductID       uuid.UUID `json:"product_id"`
	Phase           string    `json:"phase"`
	BasePrice       int64     `json:"base_price"`
	DiscountPercent int       `json:"discount_percent"`
	FinalPrice      int64     `json:"final_price"`
	DiscountReason  string    `json:"discount_reason"`
	Purchasable     bool      `json:"purchasable"`
}

type OrderItemView struct {
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity"`
	UnitPrice int64      `json:"unit_price"`
	LineTotal int64      `json:"line_total"`
}

type OrderView struct {
	ID                uuid.UUID       `json:"id"`
	OrderNumber       string          `json:"order_number"`
	UserID            *uuid.UUID      `json:"user_id,omitempty"`
	Phase             string          `json:"phase"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	FulfillmentStatus string          `json:"fulfillment_status"`
	Subtotal          int64           `json:"subtotal"`
	Tax               int64           `json:"tax"`
	Shipping          int64           `json:"shipping"`
	Total             int64           `json:"total"`
	PaymentIntentID   *string         `json:"payment_intent_id,omitempty"`
	CoaGenerated      bool            `json:"coa_generated"`
	Items             []OrderItemView `json:"items"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type CertificateView struct {
	OrderID       uuid.UUID `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	SerialNumber  string    `json:"serial_number"`
	PieceNumber   int       `json:"piece_number"`
	Phase         string    `json:"phase"`
	PurchaseDate  time.Time `json:"purchase_date"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	OwnerTag      *string   `json:"owner_tag,omitempty"`
	Signature     string    `json:"signature"`
	Hash          string    `json:"hash"`
	DisplayHash   string    `json:"display_hash"`
	IssuedAt      time.Time `json:"issued_at"`
	// Recorded is true once the order has been flagged coa_generated.
	Recorded bool `json:"-"`
}

type EchoStatusView struct {
	ProductID     uuid.UUID `json:"product_id"`
	EscrowedCount int       `json:"escrowed_count"`
	MinRequests   int       `json:"min_requests"`
	ThresholdMet  bool      `json:"threshold_met"`
	// TimeRemainingMs is nil until the first request is escrowed.
	TimeRemainingMs *int64 `json:"time_remaining_ms"`
	WindowDays      int    `json:"window_days"`
	Status          string `json:"status"`
}

type CartItemView struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"product_id"`
	VariantRef    string    `json:"variant_ref"`
	Quantity      int       `json:"quantity"`
	PriceSnapshot int64     `json:"price_snapshot"`
	LineTotal     int64     `json:"line_total"`
}

type CartView struct {
	Items    []CartItemView `json:"items"`
	Subtotal int64          `json:"subtotal"`
}

type OwnerVerificationView struct {
	OwnerTag       string    `json:"owner_tag"`
	OwnerName      string    `json:"owner_name"`
	RegisteredDate time.Time `json:"registered_date"`
	Verified       bool      `json:"verified"`
}

type ContactSettingsView struct {
	WhatsAppNumber string `json:"whatsapp_number"`
}
