//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/product"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/shared"
	"limited-drop-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var checkoutNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

var checkoutCfg = commands.CheckoutConfig{TaxFlat: 500, ShippingFlat: 1000, IdempotencyTTL: time.Hour}

func TestCheckoutCommands_CreateOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	type fixture struct {
		pb   *builder.ProductBuilder
		req  commands.CreateOrderRequest
		mock *txMocks
	}

	testCases := []struct {
		name        string
		product     func(*builder.ProductBuilder)
		qty         int
		setupMock   func(f fixture)
		expectErr   error
		remaining   int
		outcome     string
		transitions []string
		check       func(t *testing.T, res *commands.CreateOrderResult, topics []string)
	}{
		{
			name: "success: slots allocated, stock reserved and order priced",
			qty:  2,
			setupMock: func(f fixture) {
				p := f.pb.Build()
				v := f.pb.Variant(0)
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(p, nil)
				f.mock.products.EXPECT().AllocateSlots(gomock.Any(), gomock.Any(), p.ID(), product.PhaseOriginals, 2, 100).
					Return(shared.AllocationResult{Allocated: true, AllocatedCount: 2, Phase: product.PhaseOriginals}, nil)
				f.mock.products.EXPECT().ReserveStock(gomock.Any(), gomock.Any(), v.ID, 2).Return(true, nil)
				f.mock.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
						assert.Equal(t, int64(90000), o.Subtotal())
						assert.Equal(t, product.PhaseOriginals, o.Phase())
						assert.Equal(t, order.StatusPending, o.Status())
						return nil
					})
			},
			outcome: "success",
			check: func(t *testing.T, res *commands.CreateOrderResult, topics []string) {
				assert.Equal(t, int64(91500), res.Total)
				assert.True(t, res.PaymentRequired)
				assert.False(t, res.IsReplayed)
				assert.Regexp(t, `^ORD[0-9A-Z]{12,}$`, res.OrderNumber)
				assert.Equal(t, []string{commands.TopicCoaRequested}, topics)
			},
		},
		{
			name:    "success: last slot ends the phase and starts production",
			product: func(b *builder.ProductBuilder) { b.WithCap(product.PhaseOriginals, 2).WithAllocated(1) },
			qty:     1,
			setupMock: func(f fixture) {
				p := f.pb.Build()
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(p, nil)
				f.mock.products.EXPECT().AllocateSlots(gomock.Any(), gomock.Any(), p.ID(), product.PhaseOriginals, 1, 2).
					Return(shared.AllocationResult{Allocated: true, AllocatedCount: 2, Phase: product.PhaseEnded}, nil)
				f.mock.products.EXPECT().StartProduction(gomock.Any(), gomock.Any(), p.ID(), checkoutNow).Return(true, nil)
				f.mock.products.EXPECT().ReserveStock(gomock.Any(), gomock.Any(), f.pb.Variant(0).ID, 1).Return(true, nil)
				f.mock.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			outcome:     "success",
			transitions: []string{"originals->ended"},
		},
		{
			name:    "error: sales cap reached reports remaining slots",
			product: func(b *builder.ProductBuilder) { b.WithCap(product.PhaseOriginals, 2).WithAllocated(1) },
			qty:     2,
			setupMock: func(f fixture) {
				p := f.pb.Build()
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(p, nil).Times(2)
				f.mock.products.EXPECT().AllocateSlots(gomock.Any(), gomock.Any(), p.ID(), product.PhaseOriginals, 2, 2).
					Return(shared.AllocationResult{}, nil)
			},
			expectErr: errs.ErrSalesCapReached,
			remaining: 1,
			outcome:   "sales_cap_reached",
		},
		{
			name:    "error: product ended by a concurrent checkout",
			product: func(b *builder.ProductBuilder) { b.WithCap(product.PhaseOriginals, 2) },
			qty:     1,
			setupMock: func(f fixture) {
				p := f.pb.Build()
				ended := f.pb.WithPhase(product.PhaseEnded).WithAllocated(2).Build()
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(p, nil)
				f.mock.products.EXPECT().AllocateSlots(gomock.Any(), gomock.Any(), p.ID(), product.PhaseOriginals, 1, 2).
					Return(shared.AllocationResult{}, nil)
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(ended, nil)
			},
			expectErr: errs.ErrSalesCapReached,
			remaining: 0,
			outcome:   "sales_cap_reached",
		},
		{
			name:    "error: variant stock short before any allocation",
			product: func(b *builder.ProductBuilder) { b.WithStock(3, 2) },
			qty:     2,
			setupMock: func(f fixture) {
				p := f.pb.Build()
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(p, nil)
			},
			expectErr: errs.ErrInsufficientStock,
			remaining: 1,
			outcome:   "insufficient_stock",
		},
		{
			name: "error: conditional reserve lost the race",
			qty:  2,
			setupMock: func(f fixture) {
				p := f.pb.Build()
				v := f.pb.Variant(0)
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(p, nil)
				f.mock.products.EXPECT().AllocateSlots(gomock.Any(), gomock.Any(), p.ID(), product.PhaseOriginals, 2, 100).
					Return(shared.AllocationResult{Allocated: true, AllocatedCount: 2, Phase: product.PhaseOriginals}, nil)
				f.mock.products.EXPECT().ReserveStock(gomock.Any(), gomock.Any(), v.ID, 2).Return(false, nil)
				v.Reserved = 4
				f.mock.reads.EXPECT().VariantByID(gomock.Any(), v.ID).Return(&v, nil)
			},
			expectErr: errs.ErrInsufficientStock,
			remaining: 1,
			outcome:   "insufficient_stock",
		},
		{
			name: "error: checkout after the cap ended the phase",
			product: func(b *builder.ProductBuilder) {
				b.WithPhase(product.PhaseEnded).WithCap(product.PhaseOriginals, 2).WithAllocated(2)
			},
			qty: 1,
			setupMock: func(f fixture) {
				p := f.pb.Build()
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(p, nil)
			},
			expectErr: errs.ErrSalesCapReached,
			remaining: 0,
			outcome:   "sales_cap_reached",
		},
		{
			name:    "error: press products cannot be checked out",
			product: func(b *builder.ProductBuilder) { b.WithPhase(product.PhasePress) },
			qty:     1,
			setupMock: func(f fixture) {
				p := f.pb.Build()
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(p, nil)
			},
			expectErr: errs.ErrPhaseNotPurchasable,
			outcome:   "phase_not_purchasable",
		},
		{
			name:    "error: waitlist products cannot be checked out",
			product: func(b *builder.ProductBuilder) { b.WithPhase(product.PhaseWaitlist) },
			qty:     1,
			setupMock: func(f fixture) {
				p := f.pb.Build()
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), p.ID()).Return(p, nil)
			},
			expectErr: errs.ErrPhaseNotPurchasable,
			outcome:   "phase_not_purchasable",
		},
		{
			name: "error: unknown product",
			qty:  1,
			setupMock: func(f fixture) {
				f.mock.reads.EXPECT().ProductByID(gomock.Any(), f.pb.ID).Return(nil, notFound())
			},
			expectErr: errs.ErrProductNotFound,
			outcome:   "error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			metrics := newRecordingMetrics()
			topics := m.expectJobs()

			pb := builder.NewProductBuilder()
			if tc.product != nil {
				pb.With(tc.product)
			}
			req := commands.CreateOrderRequest{Items: []commands.CheckoutItem{
				{ProductID: pb.ID, VariantRef: pb.Variant(0).ID.String(), Quantity: tc.qty},
			}}

			buyer, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.ID = userID }).BuildDomain()
			require.NoError(t, err)
			m.reads.EXPECT().UserByID(gomock.Any(), userID).Return(buyer, nil)

			tc.setupMock(fixture{pb: pb, req: req, mock: m})

			uc := commands.NewCheckoutUseCase(m.uow, clock.NewMockClock(checkoutNow), metrics, checkoutCfg)
			res, err := uc.CreateOrder(ctx, req, userID, nil)

			assert.Equal(t, []string{tc.outcome}, metrics.outcomes)
			assert.Equal(t, tc.transitions, metrics.transitions)

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectErr)
				if remaining, ok := errs.Remaining(err); ok {
					assert.Equal(t, tc.remaining, remaining)
				}
				assert.Nil(t, res)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)
			if tc.check != nil {
				tc.check(t, res, *topics)
			}
		})
	}
}

func TestCheckoutCommands_CreateOrder_Idempotency(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := uuid.New()
	orderID := uuid.New()

	req := commands.CreateOrderRequest{Items: []commands.CheckoutItem{
		{ProductID: uuid.New(), VariantRef: "indigo-aso-oke", Quantity: 1},
	}}
	body, _ := json.Marshal(req)
	sum := sha256.Sum256(body)
	hash := hex.EncodeToString(sum[:])

	testCases := []struct {
		name      string
		record    shared.IdempotencyRecord
		setupMock func(m *txMocks)
		expectErr error
		outcome   string
	}{
		{
			name:   "completed key replays the stored order",
			record: shared.IdempotencyRecord{Status: "completed", RequestHash: hash, ResultOrderID: &orderID, ExpiresAt: checkoutNow.Add(time.Minute)},
			setupMock: func(m *txMocks) {
				m.orders.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), orderID).Return(&shared.OrderSnapshot{
					ID: orderID, Number: "ORD-1-ABCDEF", Total: 46500,
					Status: order.StatusPending, PaymentStatus: order.PaymentPending,
				}, nil)
			},
			outcome: "replayed",
		},
		{
			name:      "same key with another body",
			record:    shared.IdempotencyRecord{Status: "completed", RequestHash: "other", ResultOrderID: &orderID, ExpiresAt: checkoutNow.Add(time.Minute)},
			setupMock: func(m *txMocks) {},
			expectErr: errs.ErrIdempotencyMismatch,
			outcome:   "idempotency_conflict",
		},
		{
			name:      "key still processing",
			record:    shared.IdempotencyRecord{Status: "processing", RequestHash: hash, ExpiresAt: checkoutNow.Add(time.Minute)},
			setupMock: func(m *txMocks) {},
			expectErr: errs.ErrIdempotencyInProgress,
			outcome:   "idempotency_conflict",
		},
		{
			name:   "expired key taken over by another request",
			record: shared.IdempotencyRecord{Status: "processing", RequestHash: hash, ExpiresAt: checkoutNow.Add(-time.Minute)},
			setupMock: func(m *txMocks) {
				m.idempotency.EXPECT().ClaimExpiredIdempotencyKey(gomock.Any(), gomock.Any(), key, userID, hash, checkoutNow.Add(time.Hour)).
					Return(int64(0), nil)
			},
			expectErr: errs.ErrIdempotencyInProgress,
			outcome:   "idempotency_conflict",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			metrics := newRecordingMetrics()

			m.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, userID, "POST /api/checkout", hash, checkoutNow.Add(time.Hour)).
				Return(false, nil)
			record := tc.record
			m.reads.EXPECT().IdempotencyByKey(gomock.Any(), key, userID).Return(&record, nil)
			tc.setupMock(m)

			uc := commands.NewCheckoutUseCase(m.uow, clock.NewMockClock(checkoutNow), metrics, checkoutCfg)
			res, err := uc.CreateOrder(ctx, req, userID, &key)

			assert.Equal(t, []string{tc.outcome}, metrics.outcomes)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, res.IsReplayed)
			assert.Equal(t, orderID, res.OrderID)
			assert.Equal(t, int64(46500), res.Total)
		})
	}
}

func TestCheckoutCommands_CreateOrder_FromEmptyCart(t *testing.T) {
	m := newTxMocks(t)
	userID := uuid.New()
	m.reads.EXPECT().CartItems(gomock.Any(), userID).Return(nil, nil)

	uc := commands.NewCheckoutUseCase(m.uow, clock.NewMockClock(checkoutNow), newRecordingMetrics(), checkoutCfg)
	_, err := uc.CreateOrder(context.Background(), commands.CreateOrderRequest{FromCart: true}, userID, nil)

	assert.ErrorIs(t, err, errs.ErrEmptyCart)
}
