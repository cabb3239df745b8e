package shared

import (
	"time"

	"limited-drop-api/internal/domain/echo"
	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/press"
	"limited-drop-api/internal/domain/product"

	"github.com/google/uuid"
)

type AllocationResult struct {
	Allocated      bool
	AllocatedCount int
	Phase          product.Phase
}

// Minimal snapshot for command read operations
type OrderSnapshot struct {
	ID              uuid.UUID
	Number          string
	UserID          *uuid.UUID
	Phase           product.Phase
	Status          order.Status
	PaymentStatus   order.PaymentStatus
	Total           int64
	PaymentIntentID *string
	CreatedAt       time.Time
	Items           []OrderItemSnapshot
}

type OrderItemSnapshot struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
	UnitPrice int64
}

type IdempotencyRecord struct {
	Key           uuid.UUID
	UserID        uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

type CartItemSnapshot struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	VariantRef    string
	Quantity      int
	PriceSnapshot int64
}

type CartItemParams struct {
	UserID        uuid.UUID
	ProductID     uuid.UUID
	VariantRef    string
	Quantity      int
	PriceSnapshot int64
}

type WaitlistEntryParams struct {
	UserID     uuid.UUID
	ProductID  uuid.UUID
	VariantID  *uuid.UUID
	VariantKey string
	Position   int
}

type WaitlistEntryRecord struct {
	ID       uuid.UUID
	Position int
	JoinedAt time.Time
}

type NotifiedEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	VariantKey string
	Position   int
}

type EchoRequestParams struct {
	UserID          *uuid.UUID
	ProductID       uuid.UUID
	VariantID       *uuid.UUID
	VariantKey      string
	RequesterKey    string
	ContactEmail    *string
	ContactPhone    *string
	Amount          int64
	PaymentStatus   echo.PaymentStatus
	PaymentIntentID *string
	ReleaseDate     time.Time
}

type EchoRequestSnapshot struct {
	ID              uuid.UUID
	UserID          *uuid.UUID
	ProductID       uuid.UUID
	VariantID       *uuid.UUID
	ContactEmail    *string
	Amount          int64
	PaymentStatus   echo.PaymentStatus
	PaymentIntentID *string
	ReleaseDate     time.Time
	CreatedAt       time.Time
}

type PressRequestParams struct {
	UserID            uuid.UUID
	ProductID         uuid.UUID
	VariantID         *uuid.UUID
	VariantKey        string
	RequestType       press.RequestType
	InfluencerDetails []byte
	Amount            int64
}

type PressRequestSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ProductID     uuid.UUID
	VariantID     *uuid.UUID
	RequestType   press.RequestType
	Amount        int64
	Status        press.Status
	PaymentLinkID *string
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
}
