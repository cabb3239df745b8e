// Command cron runs one maintenance job and exits. It is meant to be invoked
// by an external scheduler:
//
//	cron sweep    cancel pending orders past RESERVATION_TTL
//	cron escrow   release or refund matured echo escrow
//	cron relay    publish queued outbox jobs to kafka
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"limited-drop-api/cmd/bootstrap"
	"limited-drop-api/internal/infra/readstore"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/usecase/commands"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const jobTimeout = 5 * time.Minute

type job func(ctx context.Context) error

type maturedEscrow interface {
	MaturedProducts(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

var jobs = map[string]any{
	"sweep":  sweepJob,
	"escrow": escrowJob,
	"relay":  relayJob,
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	ctor, ok := jobs[os.Args[1]]
	if !ok {
		usage()
	}

	var run job
	app := fx.New(
		bootstrap.InfraModule,
		fx.Provide(
			fx.Annotate(
				readstore.NewEchoReadStore,
				fx.As(new(maturedEscrow)),
			),
			ctor,
		),
		fx.Populate(&run),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		slog.Error("ジョブの初期化に失敗しました", "job", os.Args[1], "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}

	err := run(ctx)

	if stopErr := app.Stop(context.Background()); stopErr != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", stopErr)
	}
	if err != nil {
		slog.Error("ジョブが失敗しました", "job", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cron sweep|escrow|relay")
	os.Exit(2)
}

func sweepJob(orders commands.OrderCommands, logger *slog.Logger) job {
	return func(ctx context.Context) error {
		res, err := orders.SweepExpired(ctx)
		if err != nil {
			return err
		}
		logger.Info("reservation sweep finished",
			"scanned", res.Scanned,
			"cancelled", res.Cancelled,
			"expired_idempotency_keys", res.ExpiredKeys)
		return nil
	}
}

// escrowJob keeps going past a failing product so one bad row does not block
// the rest; the first error is still reported.
func escrowJob(echo commands.EchoCommands, matured maturedEscrow, clk clock.Clock, logger *slog.Logger) job {
	return func(ctx context.Context) error {
		ids, err := matured.MaturedProducts(ctx, clk.Now())
		if err != nil {
			return err
		}
		var firstErr error
		for _, id := range ids {
			res, err := echo.ProcessEscrow(ctx, id)
			if err != nil {
				logger.Error("escrow processing failed", "product_id", id, "error", err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			logger.Info("escrow processed",
				"product_id", id,
				"action", string(res.Action),
				"processed", res.Processed,
				"orders_created", res.OrdersCreated)
		}
		return firstErr
	}
}

func relayJob(relay commands.RelayCommands, logger *slog.Logger) job {
	return func(ctx context.Context) error {
		res, err := relay.RelayOutbox(ctx)
		if err != nil {
			return err
		}
		logger.Info("outbox relay finished", "claimed", res.Claimed, "sent", res.Sent, "failed", res.Failed)
		return nil
	}
}
