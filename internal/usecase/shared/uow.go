package shared

import (
	"context"
	"time"

	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/press"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/domain/user"
	sqlc "limited-drop-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Products() ProductRepository
	Orders() OrderRepository
	Waitlist() WaitlistRepository
	Echo() EchoRepository
	Press() PressRepository
	Users() UserRepository
	Cart() CartRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Settings() SettingsRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	VariantByID(ctx context.Context, id uuid.UUID) (*product.Variant, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	CartItems(ctx context.Context, userID uuid.UUID) ([]CartItemSnapshot, error)
	PaidOrderCount(ctx context.Context, productID uuid.UUID, phase product.Phase) (int, error)
}

// ProductRepository is the variant/stock ledger plus the phase counters.
// Every mutation is a single conditional UPDATE; false means the guard failed.
type ProductRepository interface {
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*product.Product, error)
	ReserveStock(ctx context.Context, tx sqlc.DBTX, variantID uuid.UUID, qty int) (bool, error)
	CommitStock(ctx context.Context, tx sqlc.DBTX, variantID uuid.UUID, qty int) (bool, error)
	ReleaseStock(ctx context.Context, tx sqlc.DBTX, variantID uuid.UUID, qty int) (bool, error)
	AllocateSlots(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, phase product.Phase, qty, cap int) (AllocationResult, error)
	ReleaseSlots(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, phase product.Phase, qty int) (bool, error)
	TransitionPhase(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, from, to product.Phase) (bool, error)
	StartProduction(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, at time.Time) (bool, error)
	SetAllocatedCount(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, count int) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*OrderSnapshot, error)
	UpdatePaymentState(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, expected, status order.Status, payment order.PaymentStatus, paymentIntentID *string) (bool, error)
	ListStalePending(ctx context.Context, tx sqlc.DBTX, createdBefore time.Time, limit int32) ([]uuid.UUID, error)
	MarkCoaGenerated(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type WaitlistRepository interface {
	NextPosition(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, variantKey string) (int, error)
	Create(ctx context.Context, tx sqlc.DBTX, params WaitlistEntryParams) (*WaitlistEntryRecord, error)
	NotifyActive(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, at time.Time) ([]NotifiedEntry, error)
}

type EchoRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, params EchoRequestParams) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*EchoRequestSnapshot, error)
	ConfirmEscrow(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, paymentIntentID string) (bool, error)
	LockMatured(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID, now time.Time) ([]EchoRequestSnapshot, error)
	MarkReleased(ctx context.Context, tx sqlc.DBTX, id, orderID uuid.UUID) error
	MarkRefunded(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error)
}

type PressRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, params PressRequestParams) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*PressRequestSnapshot, error)
	FindByPaymentLinkForUpdate(ctx context.Context, tx sqlc.DBTX, paymentLinkID string, userID uuid.UUID) (*PressRequestSnapshot, error)
	Decide(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, outcome press.Outcome, approver uuid.UUID, at time.Time, reason *string) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, id, orderID uuid.UUID) (bool, error)
}

type UserRepository interface {
	UpsertGuest(ctx context.Context, tx sqlc.DBTX, email user.Email, phone string) (uuid.UUID, error)
	AssignOwnerTag(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, tag user.OwnerTag) (bool, error)
}

type CartRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, item CartItemParams) (uuid.UUID, error)
	Delete(ctx context.Context, tx sqlc.DBTX, userID, itemID uuid.UUID) (bool, error)
	Clear(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID, orderID uuid.UUID) error
	ClaimExpiredIdempotencyKey(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimQueued(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}

type SettingsRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, key, value string) error
}
