package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReservationMissing = errs.New("reserved stock missing for order line")

type ConfirmPaymentRequest struct {
	OrderID         uuid.UUID
	PaymentStatus   string
	PaymentIntentID *string
}

type PaymentResult struct {
	OrderID       uuid.UUID
	Status        string
	PaymentStatus string
	// Replayed is true when the order already carried this outcome.
	Replayed bool
}

type SweepResult struct {
	Scanned   int
	Cancelled int
	// ExpiredKeys counts idempotency keys removed in the same run.
	ExpiredKeys int64
}

type SweepConfig struct {
	ReservationTTL time.Duration
	Batch          int32
}

type OrderCommands interface {
	ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (*PaymentResult, error)
	CancelOrder(ctx context.Context, orderID, actorID uuid.UUID, actorRole user.Role) error
	SweepExpired(ctx context.Context) (*SweepResult, error)
	MarkCertificateIssued(ctx context.Context, orderID uuid.UUID) error
}

type orderUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   SweepConfig
}

func NewOrderUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg SweepConfig) OrderCommands {
	if cfg.ReservationTTL <= 0 {
		cfg.ReservationTTL = 30 * time.Minute
	}
	if cfg.Batch <= 0 {
		cfg.Batch = 200
	}
	return &orderUseCaseImpl{uow: uow, clock: clk, cfg: cfg}
}

func (uc *orderUseCaseImpl) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (*PaymentResult, error) {
	incoming, err := order.ParsePaymentStatus(req.PaymentStatus)
	if err != nil || (incoming != order.PaymentPaid && incoming != order.PaymentFailed) {
		return nil, validationErr(order.ErrInvalidPaymentStatus)
	}

	var result *PaymentResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Orders().FindForUpdate(ctx, tx.DB(), req.OrderID)
		if err != nil {
			return lookupErr(err, errs.ErrOrderNotFound)
		}

		settlement, err := order.Settle(snap.Status, snap.PaymentStatus, incoming)
		if err != nil {
			if errors.Is(err, order.ErrOrderNotPending) {
				return errs.Mark(err, errs.ErrOrderNotPending)
			}
			return validationErr(err)
		}

		switch settlement {
		case order.SettleNoop:
			result = &PaymentResult{
				OrderID:       snap.ID,
				Status:        snap.Status.String(),
				PaymentStatus: snap.PaymentStatus.String(),
				Replayed:      true,
			}
			return nil

		case order.SettleCommit:
			for _, it := range snap.Items {
				if it.VariantID == nil {
					continue
				}
				ok, err := tx.Products().CommitStock(ctx, tx.DB(), *it.VariantID, it.Quantity)
				if err != nil {
					return dbErr(err)
				}
				if !ok {
					return errs.Mark(errReservationMissing, errs.ErrTransactionFailed)
				}
			}
			intent := req.PaymentIntentID
			if intent == nil {
				intent = snap.PaymentIntentID
			}
			if err := uc.setState(ctx, tx, snap.ID, order.StatusConfirmed, order.PaymentPaid, intent); err != nil {
				return err
			}
			result = &PaymentResult{OrderID: snap.ID, Status: order.StatusConfirmed.String(), PaymentStatus: order.PaymentPaid.String()}
			return nil

		default:
			if err := releaseOrder(ctx, tx, snap); err != nil {
				return err
			}
			if err := uc.setState(ctx, tx, snap.ID, order.StatusCancelled, order.PaymentFailed, snap.PaymentIntentID); err != nil {
				return err
			}
			result = &PaymentResult{OrderID: snap.ID, Status: order.StatusCancelled.String(), PaymentStatus: order.PaymentFailed.String()}
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *orderUseCaseImpl) CancelOrder(ctx context.Context, orderID, actorID uuid.UUID, actorRole user.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return lookupErr(err, errs.ErrOrderNotFound)
		}
		if !actorRole.IsAdmin() && (snap.UserID == nil || *snap.UserID != actorID) {
			return errs.ErrForbidden
		}
		return uc.cancel(ctx, tx, snap)
	})
}

// SweepExpired cancels pending orders older than the reservation TTL, one
// transaction per order so a single failure does not block the batch.
func (uc *orderUseCaseImpl) SweepExpired(ctx context.Context) (*SweepResult, error) {
	cutoff := uc.clock.Now().Add(-uc.cfg.ReservationTTL)

	var ids []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Orders().ListStalePending(ctx, tx.DB(), cutoff, uc.cfg.Batch)
		return dbErr(err)
	})
	if err != nil {
		return nil, err
	}

	res := &SweepResult{Scanned: len(ids)}
	for _, id := range ids {
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			snap, err := tx.Orders().FindForUpdate(ctx, tx.DB(), id)
			if err != nil {
				return lookupErr(err, errs.ErrOrderNotFound)
			}
			// Paid or cancelled since it was listed.
			if !order.CanCancel(snap.Status, snap.PaymentStatus) {
				return nil
			}
			if err := uc.cancel(ctx, tx, snap); err != nil {
				return err
			}
			res.Cancelled++
			return nil
		})
		if err != nil {
			slog.Error("failed to cancel expired order", "order_id", id.String(), "error", err.Error())
		}
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx)
		res.ExpiredKeys = n
		return dbErr(err)
	})
	if err != nil {
		slog.Warn("failed to delete expired idempotency keys", "error", err.Error())
	}

	return res, nil
}

func (uc *orderUseCaseImpl) cancel(ctx context.Context, tx shared.Tx, snap *shared.OrderSnapshot) error {
	if !order.CanCancel(snap.Status, snap.PaymentStatus) {
		return errs.ErrOrderNotPending
	}
	if err := releaseOrder(ctx, tx, snap); err != nil {
		return err
	}
	return uc.setState(ctx, tx, snap.ID, order.StatusCancelled, snap.PaymentStatus, snap.PaymentIntentID)
}

func (uc *orderUseCaseImpl) setState(ctx context.Context, tx shared.Tx, id uuid.UUID, status order.Status, payment order.PaymentStatus, intent *string) error {
	ok, err := tx.Orders().UpdatePaymentState(ctx, tx.DB(), id, order.StatusPending, status, payment, intent)
	if err != nil {
		return dbErr(err)
	}
	if !ok {
		return errs.ErrOrderNotPending
	}
	return nil
}

// releaseOrder frees the stock reservations of a pending order and hands its
// cap slots back while the product is still in the order's phase.
func releaseOrder(ctx context.Context, tx shared.Tx, snap *shared.OrderSnapshot) error {
	perProduct := map[uuid.UUID]int{}
	var productIDs []uuid.UUID

	for _, it := range snap.Items {
		if it.VariantID != nil {
			ok, err := tx.Products().ReleaseStock(ctx, tx.DB(), *it.VariantID, it.Quantity)
			if err != nil {
				return dbErr(err)
			}
			if !ok {
				slog.Warn("no reserved stock to release",
					"order_id", snap.ID.String(),
					"variant_id", it.VariantID.String(),
					"quantity", it.Quantity)
			}
		}
		if _, seen := perProduct[it.ProductID]; !seen {
			productIDs = append(productIDs, it.ProductID)
		}
		perProduct[it.ProductID] += it.Quantity
	}

	for _, pid := range productIDs {
		if _, err := tx.Products().ReleaseSlots(ctx, tx.DB(), pid, snap.Phase, perProduct[pid]); err != nil {
			return dbErr(err)
		}
	}
	return nil
}

// MarkCertificateIssued flags the order coa_generated after its certificate
// has been served.
func (uc *orderUseCaseImpl) MarkCertificateIssued(ctx context.Context, orderID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Orders().MarkCoaGenerated(ctx, tx.DB(), orderID); err != nil {
			return dbErr(err)
		}
		return nil
	})
}
