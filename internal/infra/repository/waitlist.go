package repository

import (
	"context"
	"time"

	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type WaitlistWriteQueries interface {
	NextQueuePosition(ctx context.Context, db sqlc.DBTX, arg sqlc.NextQueuePositionParams) (int32, error)
	CreateWaitlistEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateWaitlistEntryParams) (sqlc.CreateWaitlistEntryRow, error)
	NotifyActiveWaitlistEntries(ctx context.Context, db sqlc.DBTX, arg sqlc.NotifyActiveWaitlistEntriesParams) ([]sqlc.NotifyActiveWaitlistEntriesRow, error)
}

type WaitlistRepository struct {
	queries WaitlistWriteQueries
	db      sqlc.DBTX
}

func NewWaitlistRepository(queries WaitlistWriteQueries, db sqlc.DBTX) *WaitlistRepository {
	return &WaitlistRepository{
		queries: queries,
		db:      db,
	}
}

// NextPosition bumps the per-queue counter. The row lock it takes serializes
// concurrent joiners of the same queue until the transaction ends.
func (r *WaitlistRepository) NextPosition(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, variantKey string) (int, error) {
	pos, err := r.queries.NextQueuePosition(ctx, tx, sqlc.NextQueuePositionParams{
		ProductID:  productID,
		VariantKey: variantKey,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to assign waitlist position", err)
	}
	return int(pos), nil
}

func (r *WaitlistRepository) Create(ctx context.Context, tx sqlc.DBTX, params shared.WaitlistEntryParams) (*shared.WaitlistEntryRecord, error) {
	row, err := r.queries.CreateWaitlistEntry(ctx, tx, sqlc.CreateWaitlistEntryParams{
		UserID:     params.UserID,
		ProductID:  params.ProductID,
		VariantID:  pgconv.UUIDPtrToPgtype(params.VariantID),
		VariantKey: params.VariantKey,
		Position:   int32(params.Position), // #nosec G115 -- counter values stay small
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create waitlist entry", err)
	}

	return &shared.WaitlistEntryRecord{
		ID:       row.ID,
		Position: params.Position,
		JoinedAt: pgconv.TimeFromPgtype(row.JoinedAt),
	}, nil
}

func (r *WaitlistRepository) NotifyActive(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, at time.Time) ([]shared.NotifiedEntry, error) {
	rows, err := r.queries.NotifyActiveWaitlistEntries(ctx, tx, sqlc.NotifyActiveWaitlistEntriesParams{
		ProductID:  productID,
		NotifiedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to notify waitlist entries", err)
	}

	result := make([]shared.NotifiedEntry, len(rows))
	for i, row := range rows {
		result[i] = shared.NotifiedEntry{
			ID:         row.ID,
			UserID:     row.UserID,
			VariantKey: row.VariantKey,
			Position:   int(row.Position),
		}
	}
	return result, nil
}
