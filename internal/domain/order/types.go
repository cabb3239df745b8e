package order

import "limited-drop-api/internal/domain/product"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

func (s Status) String() string { return string(s) }

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string { return string(s) }

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch p := PaymentStatus(s); p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return p, nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

type FulfillmentStatus string

const (
	FulfillmentPending    FulfillmentStatus = "pending"
	FulfillmentProcessing FulfillmentStatus = "processing"
	FulfillmentPacked     FulfillmentStatus = "packed"
	FulfillmentShipped    FulfillmentStatus = "shipped"
	FulfillmentDelivered  FulfillmentStatus = "delivered"
)

// NumberPrefix identifies the channel an order was created through.
type NumberPrefix string

const (
	PrefixCheckout NumberPrefix = "ORD"
	PrefixEcho     NumberPrefix = "ECO"
	PrefixPress    NumberPrefix = "PRE"
)

// IsOrderPhase reports whether orders may be frozen with phase p.
func IsOrderPhase(p product.Phase) bool {
	return p == product.PhaseOriginals || p == product.PhaseEcho || p == product.PhasePress
}
