//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/infra/repository"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	repositorymock "limited-drop-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	userID := uuid.New()
	variantID := uuid.New()
	o, err := order.New(order.NewParams{
		Number: "ORD-1735689600-AB12CD",
		UserID: &userID,
		Phase:  product.PhaseOriginals,
		Items: []order.Item{
			{ProductID: uuid.New(), VariantID: &variantID, Quantity: 2, UnitPrice: 45000},
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: 1000},
		},
		Charges: order.Charges{Tax: 500, Shipping: 1000},
		Now:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockOrderWriteQueries, *order.Order, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: order and every item inserted",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, tx sqlc.DBTX) {
				mock.EXPECT().CreateOrder(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderParams) error {
						assert.Equal(t, o.ID(), arg.ID)
						assert.Equal(t, int64(92500), arg.Total)
						assert.Equal(t, "pending", arg.Status)
						return nil
					})
				mock.EXPECT().CreateOrderItem(ctx, tx, gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name: "error: order insert fails",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, tx sqlc.DBTX) {
				mock.EXPECT().CreateOrder(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: item insert fails",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, tx sqlc.DBTX) {
				mock.EXPECT().CreateOrder(ctx, tx, gomock.Any()).Return(nil)
				mock.EXPECT().CreateOrderItem(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)

			o := newTestOrder(t)
			tc.setupMock(mockQueries, o, mockDB)

			err := repo.Create(ctx, mockDB, o)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()
	variantID := uuid.New()

	t.Run("success: snapshot includes items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetOrderForUpdate(ctx, mockDB, orderID).Return(sqlc.Orders{
			ID:            orderID,
			OrderNumber:   "ORD-1",
			Phase:         "echo",
			Status:        "pending",
			PaymentStatus: "pending",
			Total:         1500,
		}, nil)
		mockQueries.EXPECT().ListOrderItems(ctx, mockDB, orderID).Return([]sqlc.OrderItems{
			{OrderID: orderID, ProductID: productID, VariantID: pgconv.UUIDToPgtype(variantID), Quantity: 3, UnitPrice: 500},
		}, nil)

		snap, err := repo.FindForUpdate(ctx, mockDB, orderID)
		require.NoError(t, err)
		assert.Equal(t, product.PhaseEcho, snap.Phase)
		assert.Equal(t, order.StatusPending, snap.Status)
		require.Len(t, snap.Items, 1)
		assert.Equal(t, 3, snap.Items[0].Quantity)
		require.NotNil(t, snap.Items[0].VariantID)
		assert.Equal(t, variantID, *snap.Items[0].VariantID)
		assert.Nil(t, snap.UserID)
	})

	t.Run("error: order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetOrderForUpdate(ctx, mockDB, orderID).Return(sqlc.Orders{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, mockDB, orderID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOrderRepository_UpdatePaymentState(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	intent := "pi_123"

	testCases := []struct {
		name string
		rows int64
		want bool
	}{
		{name: "success: pending order confirmed", rows: 1, want: true},
		{name: "guard failed: order no longer pending", rows: 0, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateOrderPaymentState(ctx, mockDB, sqlc.UpdateOrderPaymentStateParams{
				ID:              orderID,
				Status:          "confirmed",
				PaymentStatus:   "paid",
				PaymentIntentID: pgconv.StringToPgtype(intent),
				ExpectedStatus:  "pending",
			}).Return(tc.rows, nil)

			ok, err := repo.UpdatePaymentState(ctx, mockDB, orderID, order.StatusPending, order.StatusConfirmed, order.PaymentPaid, &intent)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
