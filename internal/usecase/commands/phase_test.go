//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/shared"
	"limited-drop-api/tests/common/builder"
	commandsmock "limited-drop-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPhaseCommands_Trigger(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		trigger     string
		role        user.Role
		product     func(b *builder.ProductBuilder)
		setupMock   func(m *txMocks, p *product.Product)
		expectErr   error
		changed     bool
		phase       string
		topics      []string
		transitions []string
	}{
		{
			name:    "waitlist closes into originals and notifies the queue",
			trigger: commands.TriggerWaitlistToOriginals,
			role:    user.RoleCustomer,
			product: func(b *builder.ProductBuilder) {
				b.WithPhase(product.PhaseWaitlist).WithWaitlistEnd(checkoutNow.Add(-time.Minute))
			},
			setupMock: func(m *txMocks, p *product.Product) {
				m.products.EXPECT().TransitionPhase(gomock.Any(), gomock.Any(), p.ID(), product.PhaseWaitlist, product.PhaseOriginals).Return(true, nil)
				m.reads.EXPECT().PaidOrderCount(gomock.Any(), p.ID(), product.PhaseOriginals).Return(0, nil)
				m.waitlist.EXPECT().NotifyActive(gomock.Any(), gomock.Any(), p.ID(), checkoutNow).Return([]shared.NotifiedEntry{
					{ID: uuid.New(), UserID: uuid.New(), Position: 1},
					{ID: uuid.New(), UserID: uuid.New(), Position: 2},
				}, nil)
			},
			changed:     true,
			phase:       "originals",
			topics:      []string{commands.TopicWaitlistOpened},
			transitions: []string{"waitlist->originals"},
		},
		{
			name:    "open window blocks non-admin callers",
			trigger: commands.TriggerWaitlistToOriginals,
			role:    user.RoleCustomer,
			product: func(b *builder.ProductBuilder) {
				b.WithPhase(product.PhaseWaitlist).WithWaitlistEnd(checkoutNow.Add(time.Hour))
			},
			setupMock: func(m *txMocks, p *product.Product) {},
			expectErr: errs.ErrWaitlistWindowOpen,
		},
		{
			name:    "admin opens early and production starts on paid orders",
			trigger: commands.TriggerWaitlistToOriginals,
			role:    user.RoleAdmin,
			product: func(b *builder.ProductBuilder) { b.WithPhase(product.PhaseWaitlist) },
			setupMock: func(m *txMocks, p *product.Product) {
				m.products.EXPECT().TransitionPhase(gomock.Any(), gomock.Any(), p.ID(), product.PhaseWaitlist, product.PhaseOriginals).Return(true, nil)
				m.reads.EXPECT().PaidOrderCount(gomock.Any(), p.ID(), product.PhaseOriginals).Return(3, nil)
				m.products.EXPECT().StartProduction(gomock.Any(), gomock.Any(), p.ID(), checkoutNow).Return(true, nil)
				m.waitlist.EXPECT().NotifyActive(gomock.Any(), gomock.Any(), p.ID(), checkoutNow).Return(nil, nil)
			},
			changed:     true,
			phase:       "originals",
			transitions: []string{"waitlist->originals"},
		},
		{
			name:      "already originals is a no-op",
			trigger:   commands.TriggerWaitlistToOriginals,
			role:      user.RoleAdmin,
			setupMock: func(m *txMocks, p *product.Product) {},
			phase:     "originals",
		},
		{
			name:    "cap reached ends originals",
			trigger: commands.TriggerOriginalsCapReached,
			role:    user.RoleAdmin,
			product: func(b *builder.ProductBuilder) { b.WithCap(product.PhaseOriginals, 2).WithAllocated(2) },
			setupMock: func(m *txMocks, p *product.Product) {
				m.products.EXPECT().TransitionPhase(gomock.Any(), gomock.Any(), p.ID(), product.PhaseOriginals, product.PhaseEnded).Return(true, nil)
				m.products.EXPECT().StartProduction(gomock.Any(), gomock.Any(), p.ID(), checkoutNow).Return(true, nil)
			},
			changed:     true,
			phase:       "ended",
			transitions: []string{"originals->ended"},
		},
		{
			name:      "cap not reached leaves the phase",
			trigger:   commands.TriggerOriginalsCapReached,
			role:      user.RoleAdmin,
			product:   func(b *builder.ProductBuilder) { b.WithCap(product.PhaseOriginals, 2).WithAllocated(1) },
			setupMock: func(m *txMocks, p *product.Product) {},
			phase:     "originals",
		},
		{
			name:      "ended product is idempotent",
			trigger:   commands.TriggerOriginalsCapReached,
			role:      user.RoleAdmin,
			product:   func(b *builder.ProductBuilder) { b.WithPhase(product.PhaseEnded) },
			setupMock: func(m *txMocks, p *product.Product) {},
			phase:     "ended",
		},
		{
			name:    "concurrent transition loses the compare-and-set",
			trigger: commands.TriggerOriginalsCapReached,
			role:    user.RoleAdmin,
			product: func(b *builder.ProductBuilder) { b.WithCap(product.PhaseOriginals, 1).WithAllocated(1) },
			setupMock: func(m *txMocks, p *product.Product) {
				m.products.EXPECT().TransitionPhase(gomock.Any(), gomock.Any(), p.ID(), product.PhaseOriginals, product.PhaseEnded).Return(false, nil)
			},
			expectErr: errs.ErrPhaseChanged,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			topics := m.expectJobs()
			metrics := newRecordingMetrics()

			pb := builder.NewProductBuilder()
			if tc.product != nil {
				pb.With(tc.product)
			}
			p := pb.Build()
			m.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
			tc.setupMock(m, p)

			uc := commands.NewPhaseUseCase(m.uow, clock.NewMockClock(checkoutNow), metrics, nil)
			res, err := uc.Trigger(ctx, p.ID(), tc.trigger, tc.role)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.changed, res.Changed)
			assert.Equal(t, tc.phase, res.Phase)
			assert.Equal(t, tc.topics, *topics)
			assert.Equal(t, tc.transitions, metrics.transitions)
		})
	}
}

func TestPhaseCommands_TriggerEchoThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	echoMock := commandsmock.NewMockEchoCommands(ctrl)
	productID := uuid.New()

	echoMock.EXPECT().ProcessEscrow(gomock.Any(), productID).Return(&commands.EscrowResult{
		ProductID: productID, Action: commands.EscrowActionProductionStarted, Processed: 2, OrdersCreated: 2, Phase: "ended",
	}, nil)

	uc := commands.NewPhaseUseCase(newTxMocks(t).uow, clock.NewMockClock(checkoutNow), newRecordingMetrics(), echoMock)
	res, err := uc.Trigger(context.Background(), productID, commands.TriggerEchoThresholdMet, user.RoleAdmin)

	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 2, res.Escrow.OrdersCreated)
}

func TestPhaseCommands_UnknownTrigger(t *testing.T) {
	uc := commands.NewPhaseUseCase(newTxMocks(t).uow, clock.NewMockClock(checkoutNow), newRecordingMetrics(), nil)
	_, err := uc.Trigger(context.Background(), uuid.New(), "launch_now", user.RoleAdmin)
	assert.ErrorIs(t, err, errs.ErrUnknownTrigger)
}

func TestPhaseCommands_SetPhase(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		from      product.Phase
		to        string
		setupMock func(m *txMocks, p *product.Product)
		expectErr error
	}{
		{
			name: "originals to echo",
			from: product.PhaseOriginals,
			to:   "echo",
			setupMock: func(m *txMocks, p *product.Product) {
				m.products.EXPECT().TransitionPhase(gomock.Any(), gomock.Any(), p.ID(), product.PhaseOriginals, product.PhaseEcho).Return(true, nil)
			},
		},
		{
			name: "admin override to ended",
			from: product.PhasePress,
			to:   "ended",
			setupMock: func(m *txMocks, p *product.Product) {
				m.products.EXPECT().TransitionPhase(gomock.Any(), gomock.Any(), p.ID(), product.PhasePress, product.PhaseEnded).Return(true, nil)
			},
		},
		{
			name:      "ended is terminal",
			from:      product.PhaseEnded,
			to:        "originals",
			setupMock: func(m *txMocks, p *product.Product) {},
			expectErr: errs.ErrInvalidPhaseTransition,
		},
		{
			name:      "backwards move rejected",
			from:      product.PhaseEcho,
			to:        "waitlist",
			setupMock: func(m *txMocks, p *product.Product) {},
			expectErr: errs.ErrInvalidPhaseTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			p := builder.NewProductBuilder().WithPhase(tc.from).Build()
			m.products.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), p.ID()).Return(p, nil)
			tc.setupMock(m, p)

			uc := commands.NewPhaseUseCase(m.uow, clock.NewMockClock(checkoutNow), newRecordingMetrics(), nil)
			res, err := uc.SetPhase(ctx, p.ID(), tc.to)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, res.Phase)
		})
	}

	t.Run("unknown phase name", func(t *testing.T) {
		uc := commands.NewPhaseUseCase(newTxMocks(t).uow, clock.NewMockClock(checkoutNow), newRecordingMetrics(), nil)
		_, err := uc.SetPhase(ctx, uuid.New(), "sold_out")
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}
