package commands

import (
	"context"
	"time"

	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/domain/waitlist"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type JoinWaitlistRequest struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Email     string
	Phone     string
}

type WaitlistJoinResult struct {
	EntryID  uuid.UUID
	Position int
	JoinedAt time.Time
}

type WaitlistCommands interface {
	Join(ctx context.Context, req JoinWaitlistRequest, userID *uuid.UUID) (*WaitlistJoinResult, error)
}

type waitlistUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics shared.AllocationMetrics
}

func NewWaitlistUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics shared.AllocationMetrics) WaitlistCommands {
	return &waitlistUseCaseImpl{uow: uow, clock: clk, metrics: metrics}
}

// Join appends the user to the product queue. The counter bump and the entry
// insert share one transaction, so a rejected duplicate leaves no gap.
func (uc *waitlistUseCaseImpl) Join(ctx context.Context, req JoinWaitlistRequest, userID *uuid.UUID) (*WaitlistJoinResult, error) {
	var guest *waitlist.GuestContact
	if userID == nil {
		contact, err := waitlistContact(req.Email, req.Phone)
		if err != nil {
			return nil, err
		}
		guest = &contact
	}

	var res *WaitlistJoinResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProductByID(ctx, req.ProductID)
		if err != nil {
			return lookupErr(err, errs.ErrProductNotFound)
		}
		if p.Phase() != product.PhaseWaitlist {
			return errs.Wrapf(errs.ErrWrongPhase, "product is in %s", p.Phase())
		}
		if req.VariantID != nil {
			if _, err := p.FindVariant(req.VariantID.String()); err != nil {
				return errs.Mark(err, errs.ErrVariantNotFound)
			}
		}

		owner := uuid.Nil
		if userID != nil {
			owner = *userID
		} else {
			owner, err = tx.Users().UpsertGuest(ctx, tx.DB(), guest.Email, guest.Phone)
			if err != nil {
				return dbErr(err)
			}
		}

		key := waitlist.VariantKey(req.VariantID)
		position, err := tx.Waitlist().NextPosition(ctx, tx.DB(), p.ID(), key)
		if err != nil {
			return dbErr(err)
		}

		entry, err := tx.Waitlist().Create(ctx, tx.DB(), shared.WaitlistEntryParams{
			UserID:     owner,
			ProductID:  p.ID(),
			VariantID:  req.VariantID,
			VariantKey: key,
			Position:   position,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAlreadyOnWaitlist)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrUserNotFound)
			}
			return dbErr(err)
		}

		res = &WaitlistJoinResult{EntryID: entry.ID, Position: entry.Position, JoinedAt: entry.JoinedAt}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.WaitlistJoined()
	return res, nil
}

func waitlistContact(email, phone string) (waitlist.GuestContact, error) {
	contact, err := waitlist.NewGuestContact(email, phone)
	if err != nil {
		return waitlist.GuestContact{}, validationErr(err)
	}
	return contact, nil
}
