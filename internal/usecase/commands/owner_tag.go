package commands

import (
	"context"
	"log/slog"

	"limited-drop-api/internal/domain/user"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const ownerTagAttempts = 5

type OwnerTagCommands interface {
	Assign(ctx context.Context, userID uuid.UUID) (string, error)
}

type ownerTagUseCaseImpl struct {
	uow    shared.UnitOfWork
	digits user.DigitSource
}

func NewOwnerTagUseCase(uow shared.UnitOfWork) OwnerTagCommands {
	return &ownerTagUseCaseImpl{uow: uow, digits: user.RandomDigits}
}

// Assign derives the tag from the user's name and phone. A collision falls
// back to random digits, each attempt in its own transaction.
func (uc *ownerTagUseCaseImpl) Assign(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := uc.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		return "", lookupErr(err, errs.ErrUserNotFound)
	}
	if u.OwnerTag() != nil {
		return "", errs.ErrOwnerTagAssigned
	}

	phone := ""
	if u.Phone() != nil {
		phone = *u.Phone()
	}

	for attempt := 0; attempt < ownerTagAttempts; attempt++ {
		tag, err := user.GenerateOwnerTag(u.FirstName(), u.LastName(), phone, uc.digits)
		if err != nil {
			return "", validationErr(err)
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.Users().AssignOwnerTag(ctx, tx.DB(), userID, tag)
			if err != nil {
				return err
			}
			if !ok {
				return errs.ErrOwnerTagAssigned
			}
			return nil
		})
		switch {
		case err == nil:
			return tag.String(), nil
		case infra.IsKind(err, infra.KindDuplicateKey):
			slog.Info("owner tag collision, retrying", "tag", tag.String(), "attempt", attempt+1)
			phone = ""
		default:
			if infra.IsKind(err, infra.KindDBFailure) {
				return "", dbErr(err)
			}
			return "", err
		}
	}
	return "", errs.ErrOwnerTagTaken
}
