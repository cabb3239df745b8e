package errs

import (
	"errors"
	"fmt"
)

// AvailabilityError carries the exact remaining quantity with
// ErrInsufficientStock or ErrSalesCapReached.
type AvailabilityError struct {
	Kind      error
	Remaining int
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%s (remaining: %d)", e.Kind.Error(), e.Remaining)
}

func (e *AvailabilityError) Unwrap() error {
	return e.Kind
}

func InsufficientStock(remaining int) error {
	return &AvailabilityError{Kind: ErrInsufficientStock, Remaining: clampRemaining(remaining)}
}

func SalesCapReached(remaining int) error {
	return &AvailabilityError{Kind: ErrSalesCapReached, Remaining: clampRemaining(remaining)}
}

// Remaining extracts the remaining quantity from an availability error chain.
func Remaining(err error) (int, bool) {
	var ae *AvailabilityError
	if errors.As(err, &ae) {
		return ae.Remaining, true
	}
	return 0, false
}

func clampRemaining(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
