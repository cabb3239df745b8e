package order

import "limited-drop-api/internal/pkg/errs"

var ErrOrderNotPending = errs.New("order is not pending")

// Settlement is what a payment outcome does to the order's stock reservations.
type Settlement string

const (
	SettleCommit  Settlement = "commit"
	SettleRelease Settlement = "release"
	SettleNoop    Settlement = "noop"
)

// Settle decides how a payment callback applies to an order. Replaying the
// outcome an order already has is a no-op.
func Settle(status Status, payment PaymentStatus, incoming PaymentStatus) (Settlement, error) {
	switch incoming {
	case PaymentPaid:
		if payment == PaymentPaid {
			return SettleNoop, nil
		}
		if status != StatusPending || payment != PaymentPending {
			return "", ErrOrderNotPending
		}
		return SettleCommit, nil

	case PaymentFailed:
		if payment == PaymentFailed {
			return SettleNoop, nil
		}
		if status != StatusPending || payment != PaymentPending {
			return "", ErrOrderNotPending
		}
		return SettleRelease, nil

	default:
		return "", ErrInvalidPaymentStatus
	}
}

// CanCancel reports whether the owner may still cancel the order.
func CanCancel(status Status, payment PaymentStatus) bool {
	return status == StatusPending && payment == PaymentPending
}
