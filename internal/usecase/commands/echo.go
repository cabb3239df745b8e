package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"limited-drop-api/internal/domain/echo"
	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/pricing"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitEchoRequest struct {
	ProductID       uuid.UUID
	VariantRef      string
	Email           string
	Phone           string
	PaymentIntentID *string
}

type EchoSubmission struct {
	RequestID     uuid.UUID
	Amount        int64
	PaymentStatus string
	ReleaseDate   time.Time
}

type EscrowAction string

const (
	EscrowActionNone              EscrowAction = "none"
	EscrowActionProductionStarted EscrowAction = EscrowAction(echo.ActionProductionStarted)
	EscrowActionRefundsProcessed  EscrowAction = EscrowAction(echo.ActionRefundsProcessed)
)

type EscrowResult struct {
	ProductID     uuid.UUID
	Action        EscrowAction
	Processed     int
	OrdersCreated int
	Phase         string
}

type EchoCommands interface {
	SubmitRequest(ctx context.Context, req SubmitEchoRequest, userID *uuid.UUID) (*EchoSubmission, error)
	ConfirmEscrow(ctx context.Context, requestID uuid.UUID, paymentIntentID string) error
	ProcessEscrow(ctx context.Context, productID uuid.UUID) (*EscrowResult, error)
}

type echoUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	metrics  shared.AllocationMetrics
	payments shared.RefundGateway
}

func NewEchoUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics shared.AllocationMetrics, payments shared.RefundGateway) EchoCommands {
	return &echoUseCaseImpl{uow: uow, clock: clk, metrics: metrics, payments: payments}
}

func (uc *echoUseCaseImpl) SubmitRequest(ctx context.Context, req SubmitEchoRequest, userID *uuid.UUID) (*EchoSubmission, error) {
	requester, err := echo.RequesterKey(userID, req.Email)
	if err != nil {
		return nil, validationErr(err)
	}

	var contactEmail, contactPhone *string
	if userID == nil {
		e, err := user.NewEmail(req.Email)
		if err != nil {
			return nil, validationErr(err)
		}
		email := e.Normalized()
		contactEmail = &email
		if strings.TrimSpace(req.Phone) != "" {
			// Guest contact is validated the same way as a waitlist join.
			contact, err := waitlistContact(req.Email, req.Phone)
			if err != nil {
				return nil, err
			}
			contactPhone = &contact.Phone
		}
	}

	var res *EchoSubmission
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		p, err := tx.Reads().ProductByID(ctx, req.ProductID)
		if err != nil {
			return lookupErr(err, errs.ErrProductNotFound)
		}
		if p.Phase() != product.PhaseEcho {
			return errs.Wrapf(errs.ErrWrongPhase, "product is in %s", p.Phase())
		}

		variantID, variantKey, err := resolveOptionalVariant(p, req.VariantRef)
		if err != nil {
			return err
		}

		quote := pricing.Compute(p.BasePrice(), product.PhaseEcho, pricing.UserAttributes{}, p.LaunchDate(), now, pricing.Options{})
		status := echo.InitialStatus(req.PaymentIntentID)
		release := echo.ReleaseDate(now, p.EchoWindowDays())

		id, err := tx.Echo().Create(ctx, tx.DB(), shared.EchoRequestParams{
			UserID:          userID,
			ProductID:       p.ID(),
			VariantID:       variantID,
			VariantKey:      variantKey,
			RequesterKey:    requester,
			ContactEmail:    contactEmail,
			ContactPhone:    contactPhone,
			Amount:          quote.FinalPrice,
			PaymentStatus:   status,
			PaymentIntentID: req.PaymentIntentID,
			ReleaseDate:     release,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateEchoRequest)
			}
			return dbErr(err)
		}

		res = &EchoSubmission{
			RequestID:     id,
			Amount:        quote.FinalPrice,
			PaymentStatus: string(status),
			ReleaseDate:   release,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *echoUseCaseImpl) ConfirmEscrow(ctx context.Context, requestID uuid.UUID, paymentIntentID string) error {
	if strings.TrimSpace(paymentIntentID) == "" {
		return validationErr(errs.New("payment intent id is required"))
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Echo().FindForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			return lookupErr(err, errs.ErrEchoRequestNotFound)
		}

		switch r.PaymentStatus {
		case echo.PaymentPending:
		case echo.PaymentEscrowed:
			if r.PaymentIntentID != nil && *r.PaymentIntentID == paymentIntentID {
				return nil
			}
			return errs.Mark(echo.ErrNotPending, errs.ErrEchoNotPending)
		default:
			return errs.Mark(echo.ErrNotPending, errs.ErrEchoNotPending)
		}

		ok, err := tx.Echo().ConfirmEscrow(ctx, tx.DB(), requestID, paymentIntentID)
		if err != nil {
			return dbErr(err)
		}
		if !ok {
			return errs.Mark(echo.ErrNotPending, errs.ErrEchoNotPending)
		}
		return nil
	})
}

type pendingRefund struct {
	requestID uuid.UUID
	intentID  string
	amount    int64
}

// ProcessEscrow applies one decision to every matured escrowed request of the
// product. Refunds are sent to the gateway only after the transaction commits.
func (uc *echoUseCaseImpl) ProcessEscrow(ctx context.Context, productID uuid.UUID) (*EscrowResult, error) {
	var (
		res     *EscrowResult
		refunds []pendingRefund
		from    product.Phase
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = &EscrowResult{ProductID: productID, Action: EscrowActionNone}
		refunds = nil
		now := uc.clock.Now()

		p, err := tx.Products().FindForUpdate(ctx, tx.DB(), productID)
		if err != nil {
			return lookupErr(err, errs.ErrProductNotFound)
		}
		from = p.Phase()
		res.Phase = from.String()

		matured, err := tx.Echo().LockMatured(ctx, tx.DB(), productID, now)
		if err != nil {
			return dbErr(err)
		}
		if len(matured) == 0 {
			return nil
		}
		res.Processed = len(matured)

		action := echo.Decide(len(matured), p.EchoMinRequests(), p.Phase() == product.PhaseEnded)
		res.Action = EscrowAction(action)

		if action == echo.ActionProductionStarted {
			created, err := uc.release(ctx, tx, p, matured, now)
			if err != nil {
				return err
			}
			res.OrdersCreated = created
			if err := transition(ctx, tx, productID, p.Phase(), product.PhaseEnded); err != nil {
				return err
			}
			res.Phase = product.PhaseEnded.String()
			return nil
		}

		// a refund batch leaves the phase open for later requests
		refunds, err = uc.refund(ctx, tx, p, matured, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	if res.Action != EscrowActionNone {
		uc.metrics.EscrowProcessed(string(res.Action), res.Processed)
		if res.Action == EscrowActionProductionStarted {
			uc.metrics.PhaseTransition(from.String(), product.PhaseEnded.String())
		}
	}

	for _, r := range refunds {
		if err := uc.payments.Refund(ctx, r.intentID, r.amount); err != nil {
			slog.Error("escrow refund failed",
				"request_id", r.requestID.String(),
				"payment_intent_id", r.intentID,
				"error", err.Error())
		}
	}

	return res, nil
}

func (uc *echoUseCaseImpl) release(ctx context.Context, tx shared.Tx, p *product.Product, matured []shared.EchoRequestSnapshot, now time.Time) (int, error) {
	for _, r := range matured {
		o, err := order.New(order.NewParams{
			Number: order.NewNumber(order.PrefixEcho, now),
			UserID: r.UserID,
			Phase:  product.PhaseEcho,
			Items: []order.Item{{
				ProductID: r.ProductID,
				VariantID: r.VariantID,
				Quantity:  1,
				UnitPrice: r.Amount,
			}},
			Status:          order.StatusConfirmed,
			PaymentStatus:   order.PaymentPaid,
			PaymentIntentID: r.PaymentIntentID,
			Now:             now,
		})
		if err != nil {
			return 0, validationErr(err)
		}
		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			return 0, dbErr(err)
		}
		if err := tx.Echo().MarkReleased(ctx, tx.DB(), r.ID, o.ID()); err != nil {
			return 0, dbErr(err)
		}
		if err := enqueue(ctx, tx, TopicCoaRequested, map[string]any{
			"orderId":     o.ID(),
			"orderNumber": o.Number(),
			"userId":      r.UserID,
		}, now); err != nil {
			return 0, dbErr(err)
		}
	}

	if _, err := tx.Products().StartProduction(ctx, tx.DB(), p.ID(), now); err != nil {
		return 0, dbErr(err)
	}
	if err := tx.Products().SetAllocatedCount(ctx, tx.DB(), p.ID(), len(matured)); err != nil {
		return 0, dbErr(err)
	}
	return len(matured), nil
}

func (uc *echoUseCaseImpl) refund(ctx context.Context, tx shared.Tx, p *product.Product, matured []shared.EchoRequestSnapshot, now time.Time) ([]pendingRefund, error) {
	ids := make([]uuid.UUID, len(matured))
	for i, r := range matured {
		ids[i] = r.ID
	}
	if _, err := tx.Echo().MarkRefunded(ctx, tx.DB(), ids); err != nil {
		return nil, dbErr(err)
	}

	var refunds []pendingRefund
	for _, r := range matured {
		if err := enqueue(ctx, tx, TopicEscrowRefunded, map[string]any{
			"requestId":       r.ID,
			"productId":       p.ID(),
			"userId":          r.UserID,
			"contactEmail":    r.ContactEmail,
			"amount":          r.Amount,
			"paymentIntentId": r.PaymentIntentID,
		}, now); err != nil {
			return nil, dbErr(err)
		}
		if r.PaymentIntentID != nil {
			refunds = append(refunds, pendingRefund{requestID: r.ID, intentID: *r.PaymentIntentID, amount: r.Amount})
		}
	}
	return refunds, nil
}

// resolveOptionalVariant returns nil and the product-wide key for an empty ref.
func resolveOptionalVariant(p *product.Product, ref string) (*uuid.UUID, string, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, "", nil
	}
	v, err := p.FindVariant(ref)
	if err != nil {
		if errors.Is(err, product.ErrVariantNotFound) {
			return nil, "", errs.Mark(err, errs.ErrVariantNotFound)
		}
		return nil, "", validationErr(err)
	}
	id := v.ID
	return &id, id.String(), nil
}
