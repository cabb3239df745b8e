package queries

import (
	"context"
	"time"

	"limited-drop-api/internal/domain/certificate"
	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	CertificateSequence(ctx context.Context, orderID, productID uuid.UUID, createdAt time.Time) (int, error)
}

type OrderQueries interface {
	Get(ctx context.Context, orderID, actorID uuid.UUID, actorRole user.Role) (*OrderView, error)
	Certificate(ctx context.Context, orderID, actorID uuid.UUID, actorRole user.Role) (*CertificateView, error)
}

type orderQueriesImpl struct {
	orders   OrderReadStore
	products ProductReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewOrderQueries(orders OrderReadStore, products ProductReadStore, users UserReadStore, clk clock.Clock) OrderQueries {
	return &orderQueriesImpl{orders: orders, products: products, users: users, clock: clk}
}

func (q *orderQueriesImpl) Get(ctx context.Context, orderID, actorID uuid.UUID, actorRole user.Role) (*OrderView, error) {
	o, err := q.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrOrderNotFound)
	}
	if !canView(o, actorID, actorRole) {
		return nil, errs.ErrForbidden
	}
	return o, nil
}

// Certificate builds the certificate of authenticity for a paid order. The
// serial follows the first item's product.
func (q *orderQueriesImpl) Certificate(ctx context.Context, orderID, actorID uuid.UUID, actorRole user.Role) (*CertificateView, error) {
	o, err := q.Get(ctx, orderID, actorID, actorRole)
	if err != nil {
		return nil, err
	}
	if o.PaymentStatus != string(order.PaymentPaid) || len(o.Items) == 0 {
		return nil, errs.ErrCertificateUnavailable
	}

	productID := o.Items[0].ProductID
	p, err := q.products.FindByID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrProductNotFound)
	}

	seq, err := q.orders.CertificateSequence(ctx, o.ID, productID, o.CreatedAt)
	if err != nil {
		return nil, err
	}

	in := certificate.Input{
		OrderID:      o.ID,
		ProductID:    productID,
		ProductName:  p.Name(),
		Phase:        product.Phase(o.Phase),
		Sequence:     seq,
		PurchaseDate: o.CreatedAt,
	}
	if o.UserID != nil {
		owner, err := q.users.FindByID(ctx, *o.UserID)
		if err != nil {
			return nil, notFoundAs(err, errs.ErrUserNotFound)
		}
		in.CustomerName = owner.FullName()
		in.CustomerEmail = owner.Email().Value()
		if tag := owner.OwnerTag(); tag != nil {
			s := tag.String()
			in.OwnerTag = &s
		}
	}

	cert, err := certificate.Generate(in, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCertificateUnavailable)
	}

	return &CertificateView{
		OrderID:       cert.OrderID,
		OrderNumber:   o.OrderNumber,
		ProductID:     cert.ProductID,
		ProductName:   cert.ProductName,
		SerialNumber:  cert.SerialNumber,
		PieceNumber:   cert.PieceNumber,
		Phase:         cert.Phase.String(),
		PurchaseDate:  cert.PurchaseDate,
		CustomerName:  cert.CustomerName,
		CustomerEmail: cert.CustomerEmail,
		OwnerTag:      cert.OwnerTag,
		Signature:     cert.Signature,
		Hash:          cert.Hash,
		DisplayHash:   cert.DisplayHash,
		IssuedAt:      cert.IssuedAt,
		Recorded:      o.CoaGenerated,
	}, nil
}

func canView(o *OrderView, actorID uuid.UUID, actorRole user.Role) bool {
	if actorRole.IsAdmin() {
		return true
	}
	return o.UserID != nil && *o.UserID == actorID
}
