package commands

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/press"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitPressRequest struct {
	ProductID         uuid.UUID
	VariantRef        string
	RequestType       string
	InfluencerDetails json.RawMessage
}

type PressSubmission struct {
	RequestID uuid.UUID
	Amount    int64
	Status    string
}

type PressDecision struct {
	RequestID     uuid.UUID
	Status        string
	PaymentLinkID *string
	OrderID       *uuid.UUID
}

type PressPayment struct {
	OrderID     uuid.UUID
	OrderNumber string
	Total       int64
}

type PressCommands interface {
	Submit(ctx context.Context, req SubmitPressRequest, userID uuid.UUID) (*PressSubmission, error)
	Decide(ctx context.Context, requestID uuid.UUID, decision string, approverID uuid.UUID, reason *string) (*PressDecision, error)
	Pay(ctx context.Context, paymentLinkID, paymentIntentID string, userID uuid.UUID) (*PressPayment, error)
}

type pressUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics shared.AllocationMetrics
}

func NewPressUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics shared.AllocationMetrics) PressCommands {
	return &pressUseCaseImpl{uow: uow, clock: clk, metrics: metrics}
}

func (uc *pressUseCaseImpl) Submit(ctx context.Context, req SubmitPressRequest, userID uuid.UUID) (*PressSubmission, error) {
	reqType, err := press.ParseRequestType(req.RequestType)
	if err != nil {
		return nil, validationErr(err)
	}
	details := req.InfluencerDetails
	if len(details) == 0 {
		details = json.RawMessage("{}")
	}

	var res *PressSubmission
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProductByID(ctx, req.ProductID)
		if err != nil {
			return lookupErr(err, errs.ErrProductNotFound)
		}
		if p.Phase() != product.PhasePress {
			return errs.Wrapf(errs.ErrWrongPhase, "product is in %s", p.Phase())
		}

		variantID, variantKey, err := resolveOptionalVariant(p, req.VariantRef)
		if err != nil {
			return err
		}

		amount := press.Amount(p.BasePrice(), reqType, p.PressSurchargePercent())
		id, err := tx.Press().Create(ctx, tx.DB(), shared.PressRequestParams{
			UserID:            userID,
			ProductID:         p.ID(),
			VariantID:         variantID,
			VariantKey:        variantKey,
			RequestType:       reqType,
			InfluencerDetails: details,
			Amount:            amount,
		})
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(err, errs.ErrDuplicatePressRequest)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, errs.ErrUserNotFound)
			}
			return dbErr(err)
		}

		res = &PressSubmission{RequestID: id, Amount: amount, Status: string(press.StatusPending)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Decide approves or rejects a pending request. Approval takes one slot of
// the press cap; influencer approvals become a zero-total paid order at once.
func (uc *pressUseCaseImpl) Decide(ctx context.Context, requestID uuid.UUID, decision string, approverID uuid.UUID, reason *string) (*PressDecision, error) {
	d, err := press.ParseDecision(decision)
	if err != nil {
		return nil, validationErr(err)
	}

	var (
		res   *PressDecision
		ended bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ended = false
		now := uc.clock.Now()

		r, err := tx.Press().FindForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			return lookupErr(err, errs.ErrPressRequestNotFound)
		}

		outcome, err := press.Decide(r.Status, d, r.ID, r.RequestType, r.Amount, now)
		if err != nil {
			if errors.Is(err, press.ErrAlreadyDecided) {
				return errs.Mark(err, errs.ErrPressNotPending)
			}
			return validationErr(err)
		}

		res = &PressDecision{RequestID: r.ID, Status: string(outcome.Status), PaymentLinkID: outcome.PaymentLinkID}

		if d == press.DecisionReject {
			return uc.record(ctx, tx, r.ID, outcome, approverID, now, reason)
		}

		p, err := tx.Products().FindForUpdate(ctx, tx.DB(), r.ProductID)
		if err != nil {
			return lookupErr(err, errs.ErrProductNotFound)
		}
		if p.Phase() != product.PhasePress {
			return errs.Wrapf(errs.ErrWrongPhase, "product is in %s", p.Phase())
		}

		capacity := p.Cap(product.PhasePress)
		alloc, err := tx.Products().AllocateSlots(ctx, tx.DB(), p.ID(), product.PhasePress, 1, capacity)
		if err != nil {
			return dbErr(err)
		}
		if !alloc.Allocated {
			return errs.SalesCapReached(capacity - p.AllocatedCount())
		}
		if alloc.Phase == product.PhaseEnded {
			ended = true
			if _, err := tx.Products().StartProduction(ctx, tx.DB(), p.ID(), now); err != nil {
				return dbErr(err)
			}
		}

		if !outcome.Complete {
			if err := uc.record(ctx, tx, r.ID, outcome, approverID, now, nil); err != nil {
				return err
			}
			return dbErr(enqueue(ctx, tx, TopicPressApproved, map[string]any{
				"requestId":     r.ID,
				"userId":        r.UserID,
				"productId":     r.ProductID,
				"amount":        r.Amount,
				"paymentLinkId": outcome.PaymentLinkID,
			}, now))
		}

		// Record the approval before completing so the approver is kept.
		approved := press.Outcome{Status: press.StatusApproved}
		if err := uc.record(ctx, tx, r.ID, approved, approverID, now, nil); err != nil {
			return err
		}
		o, err := uc.completeWithOrder(ctx, tx, r, nil, now)
		if err != nil {
			return err
		}
		id := o.ID()
		res.OrderID = &id
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ended {
		uc.metrics.PhaseTransition(product.PhasePress.String(), product.PhaseEnded.String())
	}
	return res, nil
}

func (uc *pressUseCaseImpl) Pay(ctx context.Context, paymentLinkID, paymentIntentID string, userID uuid.UUID) (*PressPayment, error) {
	if strings.TrimSpace(paymentLinkID) == "" {
		return nil, validationErr(errs.New("payment link id is required"))
	}
	intent := strings.TrimSpace(paymentIntentID)
	if intent == "" {
		return nil, validationErr(errs.New("payment intent id is required"))
	}

	var res *PressPayment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Press().FindByPaymentLinkForUpdate(ctx, tx.DB(), paymentLinkID, userID)
		if err != nil {
			return lookupErr(err, errs.ErrPressNotPayable)
		}
		if r.Status != press.StatusApproved {
			return errs.ErrPressNotPayable
		}

		o, err := uc.completeWithOrder(ctx, tx, r, &intent, uc.clock.Now())
		if err != nil {
			return err
		}
		res = &PressPayment{OrderID: o.ID(), OrderNumber: o.Number(), Total: o.Total()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *pressUseCaseImpl) record(ctx context.Context, tx shared.Tx, id uuid.UUID, outcome press.Outcome, approverID uuid.UUID, at time.Time, reason *string) error {
	ok, err := tx.Press().Decide(ctx, tx.DB(), id, outcome, approverID, at, reason)
	if err != nil {
		return dbErr(err)
	}
	if !ok {
		return errs.ErrPressNotPending
	}
	return nil
}

// completeWithOrder writes the paid PRE order for the request and closes it.
func (uc *pressUseCaseImpl) completeWithOrder(ctx context.Context, tx shared.Tx, r *shared.PressRequestSnapshot, intent *string, now time.Time) (*order.Order, error) {
	userID := r.UserID
	o, err := order.New(order.NewParams{
		Number: order.NewNumber(order.PrefixPress, now),
		UserID: &userID,
		Phase:  product.PhasePress,
		Items: []order.Item{{
			ProductID: r.ProductID,
			VariantID: r.VariantID,
			Quantity:  1,
			UnitPrice: r.Amount,
		}},
		Status:          order.StatusConfirmed,
		PaymentStatus:   order.PaymentPaid,
		PaymentIntentID: intent,
		Now:             now,
	})
	if err != nil {
		return nil, validationErr(err)
	}
	if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
		return nil, dbErr(err)
	}

	ok, err := tx.Press().Complete(ctx, tx.DB(), r.ID, o.ID())
	if err != nil {
		return nil, dbErr(err)
	}
	if !ok {
		return nil, errs.ErrPressNotPayable
	}

	if err := enqueue(ctx, tx, TopicCoaRequested, map[string]any{
		"orderId":     o.ID(),
		"orderNumber": o.Number(),
		"userId":      userID,
	}, now); err != nil {
		return nil, dbErr(err)
	}
	return o, nil
}
