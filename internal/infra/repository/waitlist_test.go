//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/infra/repository"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	"limited-drop-api/internal/usecase/shared"
	repositorymock "limited-drop-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWaitlistRepository_NextPositionAndCreate(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()
	joinedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success: position taken from counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWaitlistWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWaitlistRepository(mockQueries, mockDB)

		mockQueries.EXPECT().NextQueuePosition(ctx, mockDB, sqlc.NextQueuePositionParams{
			ProductID:  productID,
			VariantKey: "default",
		}).Return(int32(4), nil)

		entryID := uuid.New()
		mockQueries.EXPECT().CreateWaitlistEntry(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateWaitlistEntryParams) (sqlc.CreateWaitlistEntryRow, error) {
				assert.Equal(t, int32(4), arg.Position)
				assert.False(t, arg.VariantID.Valid)
				return sqlc.CreateWaitlistEntryRow{ID: entryID, JoinedAt: pgconv.TimeToPgtype(joinedAt)}, nil
			})

		pos, err := repo.NextPosition(ctx, mockDB, productID, "default")
		require.NoError(t, err)
		assert.Equal(t, 4, pos)

		rec, err := repo.Create(ctx, mockDB, shared.WaitlistEntryParams{
			UserID:     userID,
			ProductID:  productID,
			VariantKey: "default",
			Position:   pos,
		})
		require.NoError(t, err)
		assert.Equal(t, &shared.WaitlistEntryRecord{ID: entryID, Position: 4, JoinedAt: joinedAt}, rec)
	})

	t.Run("error: duplicate entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockWaitlistWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewWaitlistRepository(mockQueries, mockDB)

		dup := &pgconn.PgError{Code: "23505", ConstraintName: "waitlist_entries_user_product_key"}
		mockQueries.EXPECT().CreateWaitlistEntry(ctx, mockDB, gomock.Any()).Return(sqlc.CreateWaitlistEntryRow{}, dup)

		rec, err := repo.Create(ctx, mockDB, shared.WaitlistEntryParams{UserID: userID, ProductID: productID, VariantKey: "default", Position: 5})
		require.Error(t, err)
		assert.Nil(t, rec)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "waitlist_entries_user_product_key", infra.ConstraintOf(err))
	})
}
