package order

import (
	"time"

	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder           = errs.New("order has no items")
	ErrInvalidQuantity      = errs.New("quantity must be positive")
	ErrNegativeAmount       = errs.New("amount cannot be negative")
	ErrInvalidOrderPhase    = errs.New("order phase must be originals, echo or press")
	ErrInvalidPaymentStatus = errs.New("invalid payment status")
)

type Item struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
	UnitPrice int64
}

func (i Item) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// Charges are the per-order amounts added on top of the item subtotal.
type Charges struct {
	Tax      int64
	Shipping int64
}

type NewParams struct {
	Number          string
	UserID          *uuid.UUID
	Phase           product.Phase
	Items           []Item
	Charges         Charges
	Status          Status
	PaymentStatus   PaymentStatus
	PaymentIntentID *string
	Now             time.Time
}

type Order struct {
	id                uuid.UUID
	number            string
	userID            *uuid.UUID
	phase             product.Phase
	items             []Item
	subtotal          int64
	tax               int64
	shipping          int64
	total             int64
	status            Status
	paymentStatus     PaymentStatus
	fulfillmentStatus FulfillmentStatus
	paymentIntentID   *string
	createdAt         time.Time
}

// New validates the items and fixes total = subtotal + tax + shipping.
// Status defaults to pending/pending when left empty.
func New(p NewParams) (*Order, error) {
	if len(p.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !IsOrderPhase(p.Phase) {
		return nil, ErrInvalidOrderPhase
	}
	if p.Charges.Tax < 0 || p.Charges.Shipping < 0 {
		return nil, ErrNegativeAmount
	}

	var subtotal int64
	for _, it := range p.Items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if it.UnitPrice < 0 {
			return nil, ErrNegativeAmount
		}
		subtotal += it.LineTotal()
	}

	status := p.Status
	if status == "" {
		status = StatusPending
	}
	payment := p.PaymentStatus
	if payment == "" {
		payment = PaymentPending
	}

	return &Order{
		id:                uuid.New(),
		number:            p.Number,
		userID:            p.UserID,
		phase:             p.Phase,
		items:             p.Items,
		subtotal:          subtotal,
		tax:               p.Charges.Tax,
		shipping:          p.Charges.Shipping,
		total:             subtotal + p.Charges.Tax + p.Charges.Shipping,
		status:            status,
		paymentStatus:     payment,
		fulfillmentStatus: FulfillmentPending,
		paymentIntentID:   p.PaymentIntentID,
		createdAt:         p.Now,
	}, nil
}

func (o *Order) ID() uuid.UUID                        { return o.id }
func (o *Order) Number() string                       { return o.number }
func (o *Order) UserID() *uuid.UUID                   { return o.userID }
func (o *Order) Phase() product.Phase                 { return o.phase }
func (o *Order) Items() []Item                        { return o.items }
func (o *Order) Subtotal() int64                      { return o.subtotal }
func (o *Order) Tax() int64                           { return o.tax }
func (o *Order) Shipping() int64                      { return o.shipping }
func (o *Order) Total() int64                         { return o.total }
func (o *Order) Status() Status                       { return o.status }
func (o *Order) PaymentStatus() PaymentStatus         { return o.paymentStatus }
func (o *Order) FulfillmentStatus() FulfillmentStatus { return o.fulfillmentStatus }
func (o *Order) PaymentIntentID() *string             { return o.paymentIntentID }
func (o *Order) CreatedAt() time.Time                 { return o.createdAt }
