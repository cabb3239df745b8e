//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/commands"
	"limited-drop-api/internal/usecase/shared"
	"limited-drop-api/tests/common/builder"
	sharedmock "limited-drop-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCartCommands_AddItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name      string
		phase     product.Phase
		qty       int
		setupMock func(m *txMocks, pb *builder.ProductBuilder)
		expectErr error
	}{
		{
			name:  "originals item stored with price snapshot",
			phase: product.PhaseOriginals,
			qty:   2,
			setupMock: func(m *txMocks, pb *builder.ProductBuilder) {
				u, _ := builder.NewUserBuilder().BuildDomain()
				m.reads.EXPECT().UserByID(gomock.Any(), userID).Return(u, nil)
				m.cart.EXPECT().Upsert(gomock.Any(), gomock.Any(), shared.CartItemParams{
					UserID:        userID,
					ProductID:     pb.ID,
					VariantRef:    pb.Variant(0).ID.String(),
					Quantity:      2,
					PriceSnapshot: 45000,
				}).Return(uuid.New(), nil)
			},
		},
		{
			name:      "echo products are not sold through the cart",
			phase:     product.PhaseEcho,
			qty:       1,
			setupMock: func(m *txMocks, pb *builder.ProductBuilder) {},
			expectErr: errs.ErrPhaseNotPurchasable,
		},
		{
			name:      "more than available",
			phase:     product.PhaseOriginals,
			qty:       6,
			setupMock: func(m *txMocks, pb *builder.ProductBuilder) {},
			expectErr: errs.ErrInsufficientStock,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			pb := builder.NewProductBuilder().WithPhase(tc.phase)
			m.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.Build(), nil)
			tc.setupMock(m, pb)

			uc := commands.NewCartUseCase(m.uow, clock.NewMockClock(checkoutNow))
			_, err := uc.AddItem(ctx, commands.AddCartItemRequest{ProductID: pb.ID, VariantRef: "indigo-aso-oke", Quantity: tc.qty}, userID)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCartCommands_RemoveItem(t *testing.T) {
	m := newTxMocks(t)
	userID, itemID := uuid.New(), uuid.New()
	m.cart.EXPECT().Delete(gomock.Any(), gomock.Any(), userID, itemID).Return(false, nil)

	err := commands.NewCartUseCase(m.uow, clock.NewMockClock(checkoutNow)).RemoveItem(context.Background(), itemID, userID)
	assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
}

func TestOwnerTagCommands_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("phone digits used first", func(t *testing.T) {
		m := newTxMocks(t)
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		m.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
		m.users.EXPECT().AssignOwnerTag(gomock.Any(), gomock.Any(), u.ID(), gomock.Any()).Return(true, nil)

		tag, err := commands.NewOwnerTagUseCase(m.uow).Assign(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, "ADB-23-78", tag)
	})

	t.Run("collision retries with random digits", func(t *testing.T) {
		m := newTxMocks(t)
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		m.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)
		gomock.InOrder(
			m.users.EXPECT().AssignOwnerTag(gomock.Any(), gomock.Any(), u.ID(), gomock.Any()).
				Return(false, infra.WrapRepoErr("dup", &pgconn.PgError{Code: "23505"})),
			m.users.EXPECT().AssignOwnerTag(gomock.Any(), gomock.Any(), u.ID(), gomock.Any()).Return(true, nil),
		)

		tag, err := commands.NewOwnerTagUseCase(m.uow).Assign(ctx, u.ID())
		require.NoError(t, err)
		assert.Regexp(t, `^ADB-\d{2}-\d{2}$`, tag)
	})

	t.Run("already tagged", func(t *testing.T) {
		m := newTxMocks(t)
		u, err := builder.NewUserBuilder().WithOwnerTag("ADB-23-78").BuildDomain()
		require.NoError(t, err)
		m.reads.EXPECT().UserByID(gomock.Any(), u.ID()).Return(u, nil)

		_, err = commands.NewOwnerTagUseCase(m.uow).Assign(ctx, u.ID())
		assert.ErrorIs(t, err, errs.ErrOwnerTagAssigned)
	})
}

func TestSettingsCommands_UpdateContact(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the normalized number and drops the cache entry", func(t *testing.T) {
		m := newTxMocks(t)
		cache := sharedmock.NewMockSettingsCache(gomock.NewController(t))
		m.settings.EXPECT().Upsert(gomock.Any(), gomock.Any(), "whatsapp_number", "+2348099999999").Return(nil)
		cache.EXPECT().Invalidate(gomock.Any(), "whatsapp_number").Return(errors.New("redis down"))

		number, err := commands.NewSettingsUseCase(m.uow, cache).UpdateContact(ctx, "+234 809 999 9999")
		require.NoError(t, err)
		assert.Equal(t, "+2348099999999", number)
	})

	t.Run("rejects non E.164 numbers", func(t *testing.T) {
		m := newTxMocks(t)
		cache := sharedmock.NewMockSettingsCache(gomock.NewController(t))
		_, err := commands.NewSettingsUseCase(m.uow, cache).UpdateContact(ctx, "0809")
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestRelayCommands_RelayOutbox(t *testing.T) {
	ctx := context.Background()
	m := newTxMocks(t)
	publisher := sharedmock.NewMockEventPublisher(gomock.NewController(t))

	ok := shared.NotificationJob{ID: uuid.New(), Topic: commands.TopicCoaRequested, Payload: []byte(`{}`)}
	retry := shared.NotificationJob{ID: uuid.New(), Topic: commands.TopicWaitlistOpened, Payload: []byte(`{}`), Attempts: 1}
	last := shared.NotificationJob{ID: uuid.New(), Topic: commands.TopicEscrowRefunded, Payload: []byte(`{}`), Attempts: 4}

	m.notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), checkoutNow, int32(50)).
		Return([]shared.NotificationJob{ok, retry, last}, nil)
	publisher.EXPECT().Publish(gomock.Any(), ok.Topic, ok.ID.String(), ok.Payload).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), retry.Topic, retry.ID.String(), retry.Payload).Return(errors.New("broker down"))
	publisher.EXPECT().Publish(gomock.Any(), last.Topic, last.ID.String(), last.Payload).Return(errors.New("broker down"))

	statuses := map[uuid.UUID]string{}
	m.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status string, _ *string) error {
			statuses[id] = status
			return nil
		}).Times(3)

	res, err := commands.NewRelayUseCase(m.uow, clock.NewMockClock(checkoutNow), publisher, 50).RelayOutbox(ctx)

	require.NoError(t, err)
	assert.Equal(t, &commands.RelayResult{Claimed: 3, Sent: 1, Failed: 2}, res)
	assert.Equal(t, map[uuid.UUID]string{ok.ID: "sent", retry.ID: "queued", last.ID: "failed"}, statuses)
}
