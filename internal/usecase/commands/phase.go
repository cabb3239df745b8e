package commands

import (
	"context"

	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Named phase triggers.
const (
	TriggerWaitlistToOriginals = "waitlist_to_originals"
	TriggerOriginalsCapReached = "originals_cap_reached"
	TriggerEchoThresholdMet    = "echo_threshold_met"
)

type TriggerResult struct {
	ProductID uuid.UUID
	Trigger   string
	Phase     string
	Changed   bool
	Message   string
	// Escrow is set for echo_threshold_met.
	Escrow *EscrowResult
}

type PhaseCommands interface {
	Trigger(ctx context.Context, productID uuid.UUID, trigger string, actorRole user.Role) (*TriggerResult, error)
	SetPhase(ctx context.Context, productID uuid.UUID, to string) (*TriggerResult, error)
}

type phaseUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics shared.AllocationMetrics
	echo    EchoCommands
}

func NewPhaseUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics shared.AllocationMetrics, echo EchoCommands) PhaseCommands {
	return &phaseUseCaseImpl{uow: uow, clock: clk, metrics: metrics, echo: echo}
}

func (uc *phaseUseCaseImpl) Trigger(ctx context.Context, productID uuid.UUID, trigger string, actorRole user.Role) (*TriggerResult, error) {
	switch trigger {
	case TriggerWaitlistToOriginals:
		return uc.waitlistToOriginals(ctx, productID, actorRole.IsAdmin())
	case TriggerOriginalsCapReached:
		return uc.originalsCapReached(ctx, productID)
	case TriggerEchoThresholdMet:
		res, err := uc.echo.ProcessEscrow(ctx, productID)
		if err != nil {
			return nil, err
		}
		return &TriggerResult{
			ProductID: productID,
			Trigger:   trigger,
			Phase:     res.Phase,
			Changed:   res.Action != EscrowActionNone,
			Message:   string(res.Action),
			Escrow:    res,
		}, nil
	default:
		return nil, errs.Wrapf(errs.ErrUnknownTrigger, "trigger %q", trigger)
	}
}

func (uc *phaseUseCaseImpl) waitlistToOriginals(ctx context.Context, productID uuid.UUID, force bool) (*TriggerResult, error) {
	res := &TriggerResult{ProductID: productID, Trigger: TriggerWaitlistToOriginals}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		p, err := tx.Products().FindForUpdate(ctx, tx.DB(), productID)
		if err != nil {
			return lookupErr(err, errs.ErrProductNotFound)
		}

		switch p.Phase() {
		case product.PhaseOriginals:
			res.Phase = p.Phase().String()
			res.Message = "already in originals"
			return nil
		case product.PhaseWaitlist:
		default:
			return errs.Wrapf(errs.ErrWrongPhase, "product is in %s", p.Phase())
		}

		if !force && !p.WaitlistClosed(now) {
			return errs.ErrWaitlistWindowOpen
		}

		if err := uc.openOriginals(ctx, tx, p); err != nil {
			return err
		}
		res.Phase = product.PhaseOriginals.String()
		res.Changed = true
		res.Message = "originals opened"
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res.Changed {
		uc.metrics.PhaseTransition(product.PhaseWaitlist.String(), product.PhaseOriginals.String())
	}
	return res, nil
}

func (uc *phaseUseCaseImpl) originalsCapReached(ctx context.Context, productID uuid.UUID) (*TriggerResult, error) {
	res := &TriggerResult{ProductID: productID, Trigger: TriggerOriginalsCapReached}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().FindForUpdate(ctx, tx.DB(), productID)
		if err != nil {
			return lookupErr(err, errs.ErrProductNotFound)
		}
		res.Phase = p.Phase().String()

		switch p.Phase() {
		case product.PhaseEnded:
			res.Message = "already ended"
			return nil
		case product.PhaseOriginals:
		default:
			return errs.Wrapf(errs.ErrWrongPhase, "product is in %s", p.Phase())
		}

		if p.AllocatedCount() < p.Cap(product.PhaseOriginals) {
			res.Message = "sales cap not reached"
			return nil
		}

		if err := transition(ctx, tx, productID, product.PhaseOriginals, product.PhaseEnded); err != nil {
			return err
		}
		if _, err := tx.Products().StartProduction(ctx, tx.DB(), productID, uc.clock.Now()); err != nil {
			return dbErr(err)
		}
		res.Phase = product.PhaseEnded.String()
		res.Changed = true
		res.Message = "production started"
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res.Changed {
		uc.metrics.PhaseTransition(product.PhaseOriginals.String(), product.PhaseEnded.String())
	}
	return res, nil
}

func (uc *phaseUseCaseImpl) SetPhase(ctx context.Context, productID uuid.UUID, to string) (*TriggerResult, error) {
	target, err := product.ParsePhase(to)
	if err != nil {
		return nil, validationErr(err)
	}

	var from product.Phase
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().FindForUpdate(ctx, tx.DB(), productID)
		if err != nil {
			return lookupErr(err, errs.ErrProductNotFound)
		}
		from = p.Phase()

		if err := product.ValidateTransition(from, target); err != nil {
			return errs.Mark(err, errs.ErrInvalidPhaseTransition)
		}
		if from == product.PhaseWaitlist && target == product.PhaseOriginals {
			return uc.openOriginals(ctx, tx, p)
		}
		return transition(ctx, tx, productID, from, target)
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.PhaseTransition(from.String(), target.String())
	return &TriggerResult{
		ProductID: productID,
		Phase:     target.String(),
		Changed:   true,
		Message:   from.String() + " -> " + target.String(),
	}, nil
}

// openOriginals moves a waitlist product to originals and notifies the queue.
func (uc *phaseUseCaseImpl) openOriginals(ctx context.Context, tx shared.Tx, p *product.Product) error {
	now := uc.clock.Now()
	if err := transition(ctx, tx, p.ID(), product.PhaseWaitlist, product.PhaseOriginals); err != nil {
		return err
	}

	paid, err := tx.Reads().PaidOrderCount(ctx, p.ID(), product.PhaseOriginals)
	if err != nil {
		return dbErr(err)
	}
	if paid > 0 {
		if _, err := tx.Products().StartProduction(ctx, tx.DB(), p.ID(), now); err != nil {
			return dbErr(err)
		}
	}

	notified, err := tx.Waitlist().NotifyActive(ctx, tx.DB(), p.ID(), now)
	if err != nil {
		return dbErr(err)
	}
	if len(notified) == 0 {
		return nil
	}

	entries := make([]map[string]any, len(notified))
	for i, n := range notified {
		entries[i] = map[string]any{
			"entryId":    n.ID,
			"userId":     n.UserID,
			"variantKey": n.VariantKey,
			"position":   n.Position,
		}
	}
	return dbErr(enqueue(ctx, tx, TopicWaitlistOpened, map[string]any{
		"productId": p.ID(),
		"entries":   entries,
	}, now))
}

// transition is a compare-and-set on the current phase.
func transition(ctx context.Context, tx shared.Tx, productID uuid.UUID, from, to product.Phase) error {
	ok, err := tx.Products().TransitionPhase(ctx, tx.DB(), productID, from, to)
	if err != nil {
		return dbErr(err)
	}
	if !ok {
		return errs.ErrPhaseChanged
	}
	return nil
}
