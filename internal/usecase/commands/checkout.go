package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"limited-drop-api/internal/domain/order"
	"limited-drop-api/internal/domain/pricing"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/infra"
	"limited-drop-api/internal/pkg/clock"
	"limited-drop-api/internal/pkg/errs"
	"limited-drop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	idempotencyProcessing = "processing"
	idempotencyCompleted  = "completed"
	checkoutEndpoint      = "POST /api/checkout"
)

type CheckoutItem struct {
	ProductID  uuid.UUID `json:"product_id"`
	VariantRef string    `json:"variant_ref"`
	Quantity   int       `json:"quantity"`
}

type CreateOrderRequest struct {
	Items    []CheckoutItem `json:"items"`
	FromCart bool           `json:"from_cart"`
}

type CreateOrderResult struct {
	OrderID         uuid.UUID
	OrderNumber     string
	Total           int64
	PaymentRequired bool
	IsReplayed      bool
}

type CheckoutConfig struct {
	TaxFlat        int64
	ShippingFlat   int64
	IdempotencyTTL time.Duration
}

type CheckoutCommands interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest, userID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateOrderResult, error)
}

type checkoutUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics shared.AllocationMetrics
	cfg     CheckoutConfig
}

func NewCheckoutUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics shared.AllocationMetrics, cfg CheckoutConfig) CheckoutCommands {
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = 24 * time.Hour
	}
	return &checkoutUseCaseImpl{
		uow:     uow,
		clock:   clk,
		metrics: metrics,
		cfg:     cfg,
	}
}

// line is one variant of one product, quantities merged.
type line struct {
	product *product.Product
	variant product.Variant
	qty     int
}

func (uc *checkoutUseCaseImpl) CreateOrder(ctx context.Context, req CreateOrderRequest, userID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateOrderResult, error) {
	if !req.FromCart && len(req.Items) == 0 {
		return nil, validationErr(order.ErrEmptyOrder)
	}

	requestHash := hashRequest(req)

	var result *CreateOrderResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		now := uc.clock.Now()

		if idempotencyKey != nil {
			replay, err := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, userID, requestHash, now)
			if err != nil {
				return err
			}
			if replay != nil {
				result = replay
				return nil
			}
		}

		created, err := uc.allocate(ctx, tx, req, userID, now)
		if err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, userID, created.OrderID); err != nil {
				return dbErr(err)
			}
		}
		result = created
		return nil
	})

	uc.metrics.CheckoutOutcome(checkoutOutcome(result, err))
	if err != nil {
		return nil, err
	}
	return result, nil
}

// claimIdempotencyKey returns the stored result when the key already
// completed, or nil when this request now owns the key.
func (uc *checkoutUseCaseImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string, now time.Time) (*CreateOrderResult, error) {
	expiresAt := now.Add(uc.cfg.IdempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, checkoutEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, dbErr(err)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, dbErr(err)
	}

	if !existing.ExpiresAt.After(now) {
		n, err := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, requestHash, expiresAt)
		if err != nil {
			return nil, dbErr(err)
		}
		if n == 0 {
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch existing.Status {
	case idempotencyCompleted:
		if existing.ResultOrderID == nil {
			return nil, errs.New("completed idempotency key has no order")
		}
		snap, err := tx.Orders().FindForUpdate(ctx, tx.DB(), *existing.ResultOrderID)
		if err != nil {
			return nil, lookupErr(err, errs.ErrOrderNotFound)
		}
		return &CreateOrderResult{
			OrderID:         snap.ID,
			OrderNumber:     snap.Number,
			Total:           snap.Total,
			PaymentRequired: snap.PaymentStatus != order.PaymentPaid,
			IsReplayed:      true,
		}, nil
	case idempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (uc *checkoutUseCaseImpl) allocate(ctx context.Context, tx shared.Tx, req CreateOrderRequest, userID uuid.UUID, now time.Time) (*CreateOrderResult, error) {
	items := req.Items
	if req.FromCart {
		cart, err := tx.Reads().CartItems(ctx, userID)
		if err != nil {
			return nil, dbErr(err)
		}
		if len(cart) == 0 {
			return nil, errs.ErrEmptyCart
		}
		items = make([]CheckoutItem, len(cart))
		for i, c := range cart {
			items[i] = CheckoutItem{ProductID: c.ProductID, VariantRef: c.VariantRef, Quantity: c.Quantity}
		}
	}

	buyer, err := tx.Reads().UserByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, errs.ErrUserNotFound)
	}

	lines, err := uc.resolveLines(ctx, tx, items)
	if err != nil {
		return nil, err
	}

	phase := lines[0].product.Phase()
	perProduct := map[uuid.UUID]int{}
	var productOrder []uuid.UUID
	for _, l := range lines {
		if l.product.Phase() != phase {
			return nil, errs.Mark(errs.New("order mixes products from different phases"), errs.ErrPhaseNotPurchasable)
		}
		if l.variant.Available() < l.qty {
			return nil, errs.InsufficientStock(l.variant.Available())
		}
		if _, ok := perProduct[l.product.ID()]; !ok {
			productOrder = append(productOrder, l.product.ID())
		}
		perProduct[l.product.ID()] += l.qty
	}

	products := map[uuid.UUID]*product.Product{}
	for _, l := range lines {
		products[l.product.ID()] = l.product
	}

	for _, pid := range productOrder {
		p := products[pid]
		qty := perProduct[pid]
		capacity := p.Cap(phase)

		alloc, err := tx.Products().AllocateSlots(ctx, tx.DB(), pid, phase, qty, capacity)
		if err != nil {
			return nil, dbErr(err)
		}
		if !alloc.Allocated {
			return nil, uc.allocationFailure(ctx, tx, pid, phase, capacity)
		}
		if alloc.Phase == product.PhaseEnded {
			if _, err := tx.Products().StartProduction(ctx, tx.DB(), pid, now); err != nil {
				return nil, dbErr(err)
			}
			uc.metrics.PhaseTransition(phase.String(), product.PhaseEnded.String())
		}
	}

	orderItems := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		ok, err := tx.Products().ReserveStock(ctx, tx.DB(), l.variant.ID, l.qty)
		if err != nil {
			return nil, dbErr(err)
		}
		if !ok {
			return nil, uc.stockFailure(ctx, tx, l.variant.ID)
		}

		quote := pricing.Compute(l.product.BasePrice(), phase,
			pricing.UserAttributes{PriorityClub: buyer.PriorityClub()},
			l.product.LaunchDate(), now, pricing.Options{})
		if !quote.Purchasable {
			return nil, errs.ErrPhaseNotPurchasable
		}

		variantID := l.variant.ID
		orderItems = append(orderItems, order.Item{
			ProductID: l.product.ID(),
			VariantID: &variantID,
			Quantity:  l.qty,
			UnitPrice: quote.FinalPrice,
		})
	}

	o, err := order.New(order.NewParams{
		Number:  order.NewNumber(order.PrefixCheckout, now),
		UserID:  &userID,
		Phase:   phase,
		Items:   orderItems,
		Charges: order.Charges{Tax: uc.cfg.TaxFlat, Shipping: uc.cfg.ShippingFlat},
		Now:     now,
	})
	if err != nil {
		return nil, validationErr(err)
	}

	if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, dbErr(err)
	}

	if err := enqueue(ctx, tx, TopicCoaRequested, map[string]any{
		"orderId":     o.ID(),
		"orderNumber": o.Number(),
		"userId":      userID,
	}, now); err != nil {
		return nil, dbErr(err)
	}

	if req.FromCart {
		if err := tx.Cart().Clear(ctx, tx.DB(), userID); err != nil {
			return nil, dbErr(err)
		}
	}

	return &CreateOrderResult{
		OrderID:         o.ID(),
		OrderNumber:     o.Number(),
		Total:           o.Total(),
		PaymentRequired: true,
	}, nil
}

func (uc *checkoutUseCaseImpl) resolveLines(ctx context.Context, tx shared.Tx, items []CheckoutItem) ([]line, error) {
	loaded := map[uuid.UUID]*product.Product{}
	index := map[uuid.UUID]int{}
	var lines []line

	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, validationErr(order.ErrInvalidQuantity)
		}

		p, ok := loaded[it.ProductID]
		if !ok {
			var err error
			p, err = tx.Reads().ProductByID(ctx, it.ProductID)
			if err != nil {
				return nil, lookupErr(err, errs.ErrProductNotFound)
			}
			switch ph := p.Phase(); {
			case ph == product.PhaseEnded:
				// sales stopped once the cap filled
				return nil, errs.SalesCapReached(0)
			case !ph.IsCheckoutPhase():
				return nil, errs.ErrPhaseNotPurchasable
			}
			loaded[it.ProductID] = p
		}

		v, err := p.FindVariant(it.VariantRef)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrVariantNotFound)
		}

		if i, seen := index[v.ID]; seen {
			lines[i].qty += it.Quantity
			continue
		}
		index[v.ID] = len(lines)
		lines = append(lines, line{product: p, variant: v, qty: it.Quantity})
	}

	// Stable lock order across concurrent checkouts.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].variant.ID.String() < lines[j].variant.ID.String()
	})
	return lines, nil
}

// allocationFailure re-reads the product to report why the cap update
// matched no row.
func (uc *checkoutUseCaseImpl) allocationFailure(ctx context.Context, tx shared.Tx, productID uuid.UUID, phase product.Phase, capacity int) error {
	current, err := tx.Reads().ProductByID(ctx, productID)
	if err != nil {
		return lookupErr(err, errs.ErrProductNotFound)
	}
	switch {
	case current.Phase() == phase:
		return errs.SalesCapReached(capacity - current.AllocatedCount())
	case current.Phase() == product.PhaseEnded:
		return errs.SalesCapReached(0)
	default:
		return errs.ErrPhaseNotPurchasable
	}
}

func (uc *checkoutUseCaseImpl) stockFailure(ctx context.Context, tx shared.Tx, variantID uuid.UUID) error {
	v, err := tx.Reads().VariantByID(ctx, variantID)
	if err != nil {
		return lookupErr(err, errs.ErrVariantNotFound)
	}
	return errs.InsufficientStock(v.Available())
}

func hashRequest(req CreateOrderRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func checkoutOutcome(res *CreateOrderResult, err error) string {
	switch {
	case err == nil && res != nil && res.IsReplayed:
		return "replayed"
	case err == nil:
		return "success"
	case errors.Is(err, errs.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, errs.ErrSalesCapReached):
		return "sales_cap_reached"
	case errors.Is(err, errs.ErrPhaseNotPurchasable):
		return "phase_not_purchasable"
	case errors.Is(err, errs.ErrIdempotencyInProgress), errors.Is(err, errs.ErrIdempotencyMismatch):
		return "idempotency_conflict"
	default:
		return "error"
	}
}
