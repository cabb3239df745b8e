package commands

import (
	"context"
	"encoding/json"
	"time"

	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"
)

// Outbox topics relayed to the broker.
const (
	TopicCoaRequested   = "coa.requested"
	TopicWaitlistOpened = "waitlist.opened"
	TopicEscrowRefunded = "escrow.refunded"
	TopicPressApproved  = "press.approved"
)

const jobKindEvent = "event"

func enqueue(ctx context.Context, tx shared.Tx, topic string, payload any, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal outbox payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), jobKindEvent, topic, body, at)
}

// lookupErr turns a repository NOT_FOUND into sentinel and marks anything
// else as a database failure.
func lookupErr(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return dbErr(err)
}

func dbErr(err error) error {
	if err == nil {
		return nil
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func validationErr(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}
