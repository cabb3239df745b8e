//go:build unit

package queries_test

import (
	"testing"
	"time"

	"limited-drop-api/internal/domain/certificate"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/queries"
	"limited-drop-api/tests/common/builder"
	queriesmock "limited-drop-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type orderFixture struct {
	orders   *queriesmock.MockOrderReadStore
	products *queriesmock.MockProductReadStore
	users    *queriesmock.MockUserReadStore
	q        queries.OrderQueries
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &orderFixture{
		orders:   queriesmock.NewMockOrderReadStore(ctrl),
		products: queriesmock.NewMockProductReadStore(ctrl),
		users:    queriesmock.NewMockUserReadStore(ctrl),
	}
	f.q = queries.NewOrderQueries(f.orders, f.products, f.users, clock.NewMockClock(queryNow))
	return f
}

func paidOrder(ownerID uuid.UUID, productID uuid.UUID) *queries.OrderView {
	return &queries.OrderView{
		ID:            uuid.New(),
		OrderNumber:   "LD-20250301-0001",
		UserID:        &ownerID,
		Phase:         "originals",
		Status:        "confirmed",
		PaymentStatus: "paid",
		Total:         91500,
		Items:         []queries.OrderItemView{{ProductID: productID, Quantity: 1, UnitPrice: 45000, LineTotal: 45000}},
		CreatedAt:     queryNow.Add(-time.Hour),
	}
}

func TestOrderQueries_Get(t *testing.T) {
	ownerID := uuid.New()

	cases := []struct {
		name  string
		actor uuid.UUID
		role  user.Role
		errIs error
	}{
		{name: "owner", actor: ownerID, role: user.RoleCustomer},
		{name: "admin", actor: uuid.New(), role: user.RoleAdmin},
		{name: "他人の注文は閲覧不可", actor: uuid.New(), role: user.RoleCustomer, errIs: errs.ErrForbidden},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newOrderFixture(t)
			o := paidOrder(ownerID, uuid.New())
			f.orders.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)

			got, err := f.q.Get(t.Context(), o.ID, c.actor, c.role)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, o, got)
		})
	}

	t.Run("unknown order", func(t *testing.T) {
		f := newOrderFixture(t)
		f.orders.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := f.q.Get(t.Context(), uuid.New(), ownerID, user.RoleCustomer)
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})
}

func TestOrderQueries_Certificate(t *testing.T) {
	t.Run("paid order gets a serial numbered certificate", func(t *testing.T) {
		f := newOrderFixture(t)
		owner, err := builder.NewUserBuilder().WithOwnerTag("ADB-23-78").BuildDomain()
		require.NoError(t, err)
		p := builder.NewProductBuilder().Build()
		o := paidOrder(owner.ID(), p.ID())

		f.orders.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)
		f.products.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)
		f.orders.EXPECT().CertificateSequence(gomock.Any(), o.ID, p.ID(), o.CreatedAt).Return(7, nil)
		f.users.EXPECT().FindByID(gomock.Any(), owner.ID()).Return(owner, nil)

		got, err := f.q.Certificate(t.Context(), o.ID, owner.ID(), user.RoleCustomer)
		require.NoError(t, err)
		assert.False(t, got.Recorded)

		serial, err := certificate.Serial(product.PhaseOriginals, p.ID(), 7)
		require.NoError(t, err)
		assert.Equal(t, serial, got.SerialNumber)
		assert.Equal(t, 7, got.PieceNumber)
		assert.Equal(t, o.OrderNumber, got.OrderNumber)
		assert.Equal(t, "Adaeze Bakare", got.CustomerName)
		assert.Equal(t, "test@example.com", got.CustomerEmail)
		require.NotNil(t, got.OwnerTag)
		assert.Equal(t, "ADB-23-78", *got.OwnerTag)
		assert.Equal(t, certificate.Hash(o.ID, p.ID(), serial, o.CreatedAt), got.Hash)
		assert.Equal(t, queryNow, got.IssuedAt)
	})

	t.Run("already issued certificate reports it was recorded", func(t *testing.T) {
		f := newOrderFixture(t)
		owner, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		p := builder.NewProductBuilder().Build()
		o := paidOrder(owner.ID(), p.ID())
		o.CoaGenerated = true

		f.orders.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)
		f.products.EXPECT().FindByID(gomock.Any(), p.ID()).Return(p, nil)
		f.orders.EXPECT().CertificateSequence(gomock.Any(), o.ID, p.ID(), o.CreatedAt).Return(1, nil)
		f.users.EXPECT().FindByID(gomock.Any(), owner.ID()).Return(owner, nil)

		got, err := f.q.Certificate(t.Context(), o.ID, uuid.New(), user.RoleAdmin)
		require.NoError(t, err)
		assert.Nil(t, got.OwnerTag)
		assert.True(t, got.Recorded)
	})

	t.Run("unpaid order has no certificate", func(t *testing.T) {
		f := newOrderFixture(t)
		ownerID := uuid.New()
		o := paidOrder(ownerID, uuid.New())
		o.PaymentStatus = "pending"
		f.orders.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)

		_, err := f.q.Certificate(t.Context(), o.ID, ownerID, user.RoleCustomer)
		assert.ErrorIs(t, err, errs.ErrCertificateUnavailable)
	})

	t.Run("other customer is forbidden", func(t *testing.T) {
		f := newOrderFixture(t)
		o := paidOrder(uuid.New(), uuid.New())
		f.orders.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)

		_, err := f.q.Certificate(t.Context(), o.ID, uuid.New(), user.RoleCustomer)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
