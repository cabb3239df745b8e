package repository

import (
	"context"
	"time"

	"limited-drop-api/internal/domain/press"
	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/pkg/pgconv"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PressWriteQueries interface {
	CreatePressRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePressRequestParams) (uuid.UUID, error)
	GetPressRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PressRequests, error)
	GetPressRequestByPaymentLinkForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPressRequestByPaymentLinkForUpdateParams) (sqlc.PressRequests, error)
	DecidePressRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.DecidePressRequestParams) (int64, error)
	CompletePressRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CompletePressRequestParams) (int64, error)
}

type PressRepository struct {
	queries PressWriteQueries
	db      sqlc.DBTX
}

func NewPressRepository(queries PressWriteQueries, db sqlc.DBTX) *PressRepository {
	return &PressRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PressRepository) Create(ctx context.Context, tx sqlc.DBTX, params shared.PressRequestParams) (uuid.UUID, error) {
	id, err := r.queries.CreatePressRequest(ctx, tx, sqlc.CreatePressRequestParams{
		UserID:            params.UserID,
		ProductID:         params.ProductID,
		VariantID:         pgconv.UUIDPtrToPgtype(params.VariantID),
		VariantKey:        params.VariantKey,
		RequestType:       string(params.RequestType),
		InfluencerDetails: params.InfluencerDetails,
		Amount:            params.Amount,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create press request", err)
	}
	return id, nil
}

func (r *PressRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*shared.PressRequestSnapshot, error) {
	row, err := r.queries.GetPressRequestForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock press request", err)
	}
	return pressRowToSnapshot(row), nil
}

func (r *PressRepository) FindByPaymentLinkForUpdate(ctx context.Context, tx sqlc.DBTX, paymentLinkID string, userID uuid.UUID) (*shared.PressRequestSnapshot, error) {
	row, err := r.queries.GetPressRequestByPaymentLinkForUpdate(ctx, tx, sqlc.GetPressRequestByPaymentLinkForUpdateParams{
		PaymentLinkID: pgconv.StringToPgtype(paymentLinkID),
		UserID:        userID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock press request by payment link", err)
	}
	return pressRowToSnapshot(row), nil
}

func (r *PressRepository) Decide(
	ctx context.Context,
	tx sqlc.DBTX,
	id uuid.UUID,
	outcome press.Outcome,
	approver uuid.UUID,
	at time.Time,
	reason *string,
) (bool, error) {
	params := sqlc.DecidePressRequestParams{
		ID:              id,
		Status:          string(outcome.Status),
		ApprovedBy:      pgtype.UUID{Valid: false},
		ApprovalDate:    pgtype.Timestamptz{Valid: false},
		RejectionReason: pgconv.StringPtrToPgtype(reason),
		PaymentLinkID:   pgconv.StringPtrToPgtype(outcome.PaymentLinkID),
	}
	if outcome.Status != press.StatusRejected {
		params.ApprovedBy = pgconv.UUIDToPgtype(approver)
		params.ApprovalDate = pgconv.TimeToPgtype(at)
		params.RejectionReason = pgtype.Text{Valid: false}
	}

	n, err := r.queries.DecidePressRequest(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decide press request", err)
	}
	return n == 1, nil
}

func (r *PressRepository) Complete(ctx context.Context, tx sqlc.DBTX, id, orderID uuid.UUID) (bool, error) {
	n, err := r.queries.CompletePressRequest(ctx, tx, sqlc.CompletePressRequestParams{
		ID:      id,
		OrderID: pgconv.UUIDToPgtype(orderID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete press request", err)
	}
	return n == 1, nil
}

func pressRowToSnapshot(row sqlc.PressRequests) *shared.PressRequestSnapshot {
	return &shared.PressRequestSnapshot{
		ID:            row.ID,
		UserID:        row.UserID,
		ProductID:     row.ProductID,
		VariantID:     pgconv.UUIDPtrFromPgtype(row.VariantID),
		RequestType:   press.RequestType(row.RequestType),
		Amount:        row.Amount,
		Status:        press.Status(row.Status),
		PaymentLinkID: pgconv.StringPtrFromPgtype(row.PaymentLinkID),
	}
}
