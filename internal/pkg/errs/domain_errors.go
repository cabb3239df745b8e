package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Lookup errors
	ErrProductNotFound      = errors.New("product not found")
	ErrVariantNotFound      = errors.New("variant not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrEchoRequestNotFound  = errors.New("echo request not found")
	ErrPressRequestNotFound = errors.New("press request not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrOwnerTagNotFound     = errors.New("owner tag not found")

	// Availability errors (see AvailabilityError)
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSalesCapReached   = errors.New("sales cap reached")

	// Conflict errors
	ErrAlreadyOnWaitlist     = errors.New("already on waitlist for this product")
	ErrDuplicateEchoRequest  = errors.New("echo request already exists for this variant")
	ErrDuplicatePressRequest = errors.New("press request already exists for this variant")
	ErrOwnerTagTaken         = errors.New("owner tag already assigned")
	ErrOwnerTagAssigned      = errors.New("user already has an owner tag")

	// State errors
	ErrPhaseNotPurchasable    = errors.New("product phase does not allow this purchase")
	ErrWrongPhase             = errors.New("product is not in the required phase")
	ErrInvalidPhaseTransition = errors.New("invalid phase transition")
	ErrPhaseChanged           = errors.New("product phase changed concurrently")
	ErrOrderNotPending        = errors.New("order is not pending")
	ErrEchoNotPending         = errors.New("echo request is not pending")
	ErrPressNotPending        = errors.New("press request already processed")
	ErrPressNotPayable        = errors.New("invalid or expired payment link")
	ErrCertificateUnavailable = errors.New("certificate requires a paid order")
	ErrWaitlistWindowOpen     = errors.New("waitlist window is still open")
	ErrUnknownTrigger         = errors.New("unknown phase trigger")
	ErrEmptyCart              = errors.New("cart is empty")

	// Access errors
	ErrForbidden = errors.New("forbidden")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyMismatch    = errors.New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrTransactionFailed       = errors.New("transaction failed, retry the request")
)
