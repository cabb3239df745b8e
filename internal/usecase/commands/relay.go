package commands

import (
	"context"
	"log/slog"

	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/usecase/shared"
)

const (
	jobStatusQueued = "queued"
	jobStatusSent   = "sent"
	jobStatusFailed = "failed"

	maxJobAttempts = 5
)

type RelayResult struct {
	Claimed int
	Sent    int
	Failed  int
}

type RelayCommands interface {
	RelayOutbox(ctx context.Context) (*RelayResult, error)
}

type relayUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher shared.EventPublisher
	batch     int32
}

func NewRelayUseCase(uow shared.UnitOfWork, clk clock.Clock, publisher shared.EventPublisher, batch int32) RelayCommands {
	if batch <= 0 {
		batch = 100
	}
	return &relayUseCaseImpl{uow: uow, clock: clk, publisher: publisher, batch: batch}
}

// RelayOutbox publishes due jobs. Rows stay locked until their status is
// written, so concurrent relays skip each other's batch. A failed publish is
// requeued until it has used up its attempts.
func (uc *relayUseCaseImpl) RelayOutbox(ctx context.Context) (*RelayResult, error) {
	var res *RelayResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = &RelayResult{}

		jobs, err := tx.Notifications().ClaimQueued(ctx, tx.DB(), uc.clock.Now(), uc.batch)
		if err != nil {
			return dbErr(err)
		}
		res.Claimed = len(jobs)

		for _, job := range jobs {
			status := jobStatusSent
			var lastErr *string

			if err := uc.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload); err != nil {
				msg := err.Error()
				lastErr = &msg
				status = jobStatusQueued
				if job.Attempts+1 >= maxJobAttempts {
					status = jobStatusFailed
				}
				res.Failed++
				slog.Warn("outbox publish failed",
					"job_id", job.ID.String(),
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"error", msg)
			} else {
				res.Sent++
			}

			if err := tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, status, lastErr); err != nil {
				return dbErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
