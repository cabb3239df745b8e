//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"limited-drop-api/internal/infra"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"
	"limited-drop-api/internal/usecase/shared"
	sharedmock "limited-drop-api/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

// txMocks wires a mocked unit of work whose Within runs fn once against the
// mocked repositories.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	products      *sharedmock.MockProductRepository
	orders        *sharedmock.MockOrderRepository
	waitlist      *sharedmock.MockWaitlistRepository
	echo          *sharedmock.MockEchoRepository
	press         *sharedmock.MockPressRepository
	users         *sharedmock.MockUserRepository
	cart          *sharedmock.MockCartRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	settings      *sharedmock.MockSettingsRepository
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		products:      sharedmock.NewMockProductRepository(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		waitlist:      sharedmock.NewMockWaitlistRepository(ctrl),
		echo:          sharedmock.NewMockEchoRepository(ctrl),
		press:         sharedmock.NewMockPressRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		cart:          sharedmock.NewMockCartRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		settings:      sharedmock.NewMockSettingsRepository(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Products().Return(m.products).AnyTimes()
	m.tx.EXPECT().Orders().Return(m.orders).AnyTimes()
	m.tx.EXPECT().Waitlist().Return(m.waitlist).AnyTimes()
	m.tx.EXPECT().Echo().Return(m.echo).AnyTimes()
	m.tx.EXPECT().Press().Return(m.press).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Cart().Return(m.cart).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Settings().Return(m.settings).AnyTimes()

	return m
}

// expectJobs accepts any number of outbox jobs and records their topics.
func (m *txMocks) expectJobs() *[]string {
	var topics []string
	m.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "event", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ string, topic string, _ []byte, _ time.Time) error {
			topics = append(topics, topic)
			return nil
		}).AnyTimes()
	return &topics
}

type recordingMetrics struct {
	mu          sync.Mutex
	outcomes    []string
	transitions []string
	escrow      map[string]int
	joins       int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{escrow: map[string]int{}}
}

func (r *recordingMetrics) CheckoutOutcome(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, result)
}

func (r *recordingMetrics) PhaseTransition(from, to string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, from+"->"+to)
}

func (r *recordingMetrics) EscrowProcessed(action string, requests int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.escrow[action] += requests
}

func (r *recordingMetrics) WaitlistJoined() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.joins++
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows)
}
