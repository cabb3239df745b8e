package queries

import (
	"context"
	"time"

	"limited-drop-api/internal/domain/echo"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// Echo status values.
const (
	EchoStatusCollecting   = "collecting"
	EchoStatusThresholdMet = "threshold_met"
	EchoStatusClosed       = "closed"
)

type EchoReadStore interface {
	EscrowSummary(ctx context.Context, productID uuid.UUID) (int, *time.Time, error)
}

type EchoQueries interface {
	Status(ctx context.Context, productID uuid.UUID) (*EchoStatusView, error)
}

type echoQueriesImpl struct {
	products ProductReadStore
	echo     EchoReadStore
	clock    clock.Clock
}

func NewEchoQueries(products ProductReadStore, echo EchoReadStore, clk clock.Clock) EchoQueries {
	return &echoQueriesImpl{products: products, echo: echo, clock: clk}
}

func (q *echoQueriesImpl) Status(ctx context.Context, productID uuid.UUID) (*EchoStatusView, error) {
	p, err := q.products.FindByID(ctx, productID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrProductNotFound)
	}

	escrowed, earliest, err := q.echo.EscrowSummary(ctx, productID)
	if err != nil {
		return nil, err
	}

	s := echo.Summarize(escrowed, p.EchoMinRequests(), p.EchoWindowDays(), earliest, q.clock.Now())

	view := &EchoStatusView{
		ProductID:     productID,
		EscrowedCount: s.EscrowedCount,
		MinRequests:   s.MinRequests,
		ThresholdMet:  s.ThresholdMet,
		WindowDays:    s.WindowDays,
		Status:        EchoStatusCollecting,
	}
	if s.TimeRemaining != nil {
		ms := s.TimeRemaining.Milliseconds()
		view.TimeRemainingMs = &ms
	}
	switch {
	case p.Phase() != product.PhaseEcho:
		view.Status = EchoStatusClosed
	case s.ThresholdMet:
		view.Status = EchoStatusThresholdMet
	}
	return view, nil
}
