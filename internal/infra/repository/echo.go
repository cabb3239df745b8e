package repository

import (
	"context"
	"time"

	"limited-drop-api/internal/domain/echo"
	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type EchoWriteQueries interface {
	CreateEchoRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEchoRequestParams) (uuid.UUID, error)
	GetEchoRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.EchoRequests, error)
	ConfirmEchoEscrow(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmEchoEscrowParams) (int64, error)
	LockMaturedEchoRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.LockMaturedEchoRequestsParams) ([]sqlc.EchoRequests, error)
	MarkEchoRequestReleased(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEchoRequestReleasedParams) error
	MarkEchoRequestsRefunded(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (int64, error)
}

type EchoRepository struct {
	queries EchoWriteQueries
	db      sqlc.DBTX
}

func NewEchoRepository(queries EchoWriteQueries, db sqlc.DBTX) *EchoRepository {
	return &EchoRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EchoRepository) Create(ctx context.Context, tx sqlc.DBTX, params shared.EchoRequestParams) (uuid.UUID, error) {
	id, err := r.queries.CreateEchoRequest(ctx, tx, sqlc.CreateEchoRequestParams{
		UserID:            pgconv.UUIDPtrToPgtype(params.UserID),
		ProductID:         params.ProductID,
		VariantID:         pgconv.UUIDPtrToPgtype(params.VariantID),
		VariantKey:        params.VariantKey,
		RequesterKey:      params.RequesterKey,
		ContactEmail:      pgconv.StringPtrToPgtype(params.ContactEmail),
		ContactPhone:      pgconv.StringPtrToPgtype(params.ContactPhone),
		Amount:            params.Amount,
		PaymentStatus:     string(params.PaymentStatus),
		PaymentIntentID:   pgconv.StringPtrToPgtype(params.PaymentIntentID),
		EscrowReleaseDate: pgconv.TimeToPgtype(params.ReleaseDate),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create echo request", err)
	}
	return id, nil
}

func (r *EchoRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.EchoRequestSnapshot, error) {
	row, err := r.queries.GetEchoRequestForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock echo request", err)
	}
	snap := echoRowToSnapshot(row)
	return &snap, nil
}

func (r *EchoRepository) ConfirmEscrow(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paymentIntentID string) (bool, error) {
	n, err := r.queries.ConfirmEchoEscrow(ctx, tx, sqlc.ConfirmEchoEscrowParams{
		ID:              id,
		PaymentIntentID: pgconv.StringToPgtype(paymentIntentID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to confirm echo escrow", err)
	}
	return n == 1, nil
}

// LockMatured snapshots the escrowed requests whose window has closed and
// holds their row locks until commit.
func (r *EchoRepository) LockMatured(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, now time.Time) ([]shared.EchoRequestSnapshot, error) {
	rows, err := r.queries.LockMaturedEchoRequests(ctx, tx, sqlc.LockMaturedEchoRequestsParams{
		ProductID: productID,
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock matured echo requests", err)
	}

	result := make([]shared.EchoRequestSnapshot, len(rows))
	for i, row := range rows {
		result[i] = echoRowToSnapshot(row)
	}
	return result, nil
}

func (r *EchoRepository) MarkReleased(ctx context.Context, tx sqlc.DBTX, id, orderID uuid.UUID) error {
	err := r.queries.MarkEchoRequestReleased(ctx, tx, sqlc.MarkEchoRequestReleasedParams{
		ID:      id,
		OrderID: pgconv.UUIDToPgtype(orderID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark echo request released", err)
	}
	return nil
}

func (r *EchoRepository) MarkRefunded(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.MarkEchoRequestsRefunded(ctx, tx, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark echo requests refunded", err)
	}
	return n, nil
}

func echoRowToSnapshot(row sqlc.EchoRequests) shared.EchoRequestSnapshot {
	return shared.EchoRequestSnapshot{
		ID:              row.ID,
		UserID:          pgconv.UUIDPtrFromPgtype(row.UserID),
		ProductID:       row.ProductID,
		VariantID:       pgconv.UUIDPtrFromPgtype(row.VariantID),
		ContactEmail:    pgconv.StringPtrFromPgtype(row.ContactEmail),
		Amount:          row.Amount,
		PaymentStatus:   echo.PaymentStatus(row.PaymentStatus),
		PaymentIntentID: pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		ReleaseDate:     pgconv.TimeFromPgtype(row.EscrowReleaseDate),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
