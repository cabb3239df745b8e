//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/infra/readstore"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	readstoremock "limited-drop-api/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	userID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	t.Run("success: order with items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetOrder(ctx, gomock.Any(), orderID).Return(sqlc.Orders{
			ID:            orderID,
			OrderNumber:   "ORD-1760000000000-AB12CD",
			UserID:        pgtype.UUID{Bytes: userID, Valid: true},
			Phase:         "originals",
			Status:        "confirmed",
			PaymentStatus: "paid",
			Subtotal:      90000,
			Total:         90000,
			CreatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
			UpdatedAt:     pgtype.Timestamptz{Time: now, Valid: true},
		}, nil)
		mockQueries.EXPECT().ListOrderItems(ctx, gomock.Any(), orderID).Return([]sqlc.OrderItems{
			{ID: uuid.New(), OrderID: orderID, ProductID: productID, Quantity: 2, UnitPrice: 45000, LineTotal: 90000},
		}, nil)

		view, err := store.FindByID(ctx, orderID)
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, orderID, view.ID)
		require.NotNil(t, view.UserID)
		assert.Equal(t, userID, *view.UserID)
		require.Len(t, view.Items, 1)
		assert.Equal(t, productID, view.Items[0].ProductID)
		assert.Nil(t, view.Items[0].VariantID)
		assert.Equal(t, int64(90000), view.Items[0].LineTotal)
	})

	t.Run("error: order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetOrder(ctx, gomock.Any(), orderID).Return(sqlc.Orders{}, pgx.ErrNoRows)

		view, err := store.FindByID(ctx, orderID)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}

func TestOrderReadStore_CertificateSequence(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	productID := uuid.New()
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockOrderReadQueries(ctrl)
	store := readstore.NewOrderReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().GetCertificateSequence(ctx, gomock.Any(), sqlc.GetCertificateSequenceParams{
		ProductID: productID,
		CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
		OrderID:   orderID,
	}).Return(int64(7), nil)

	seq, err := store.CertificateSequence(ctx, orderID, productID, createdAt)
	require.NoError(t, err)
	assert.Equal(t, 7, seq)
}
