package readstore

import (
	"context"
	"time"

	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EchoReadQueries interface {
	GetEchoEscrowSummary(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.GetEchoEscrowSummaryRow, error)
	ListMaturedEscrowProducts(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]uuid.UUID, error)
}

type EchoReadStore struct {
	queries EchoReadQueries
	db      sqlc.DBTX
}

func NewEchoReadStore(queries EchoReadQueries, db sqlc.DBTX) *EchoReadStore {
	return &EchoReadStore{
		queries: queries,
		db:      db,
	}
}

// EscrowSummary returns the escrowed request count and the creation time of
// the earliest one, nil when there is none.
func (r *EchoReadStore) EscrowSummary(ctx context.Context, productID uuid.UUID) (int, *time.Time, error) {
	row, err := r.queries.GetEchoEscrowSummary(ctx, r.db, productID)
	if err != nil {
		return 0, nil, infra.WrapRepoErr("failed to get echo escrow summary", err)
	}
	return int(row.EscrowedCount), pgconv.TimePtrFromPgtype(row.EarliestCreatedAt), nil
}

// MaturedProducts lists echo-phase products holding escrow whose release date
// has passed.
func (r *EchoReadStore) MaturedProducts(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListMaturedEscrowProducts(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list matured escrow products", err)
	}
	return ids, nil
}
