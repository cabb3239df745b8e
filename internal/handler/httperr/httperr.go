package httperr

import (
	"errors"
	"net/http"

	"limited-drop-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type rule struct {
	target error
	status int
}

// Order matters: availability errors carry a remaining count and are checked
// before anything else.
var rules = []rule{
	{errs.ErrDomainValidation, http.StatusBadRequest},
	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest},

	{errs.ErrForbidden, http.StatusForbidden},

	{errs.ErrProductNotFound, http.StatusNotFound},
	{errs.ErrVariantNotFound, http.StatusNotFound},
	{errs.ErrOrderNotFound, http.StatusNotFound},
	{errs.ErrEchoRequestNotFound, http.StatusNotFound},
	{errs.ErrPressRequestNotFound, http.StatusNotFound},
	{errs.ErrUserNotFound, http.StatusNotFound},
	{errs.ErrCartItemNotFound, http.StatusNotFound},
	{errs.ErrOwnerTagNotFound, http.StatusNotFound},

	{errs.ErrAlreadyOnWaitlist, http.StatusConflict},
	{errs.ErrDuplicateEchoRequest, http.StatusConflict},
	{errs.ErrDuplicatePressRequest, http.StatusConflict},
	{errs.ErrOwnerTagTaken, http.StatusConflict},
	{errs.ErrOwnerTagAssigned, http.StatusConflict},
	{errs.ErrIdempotencyInProgress, http.StatusConflict},
	{errs.ErrIdempotencyMismatch, http.StatusConflict},

	{errs.ErrPhaseNotPurchasable, http.StatusUnprocessableEntity},
	{errs.ErrWrongPhase, http.StatusUnprocessableEntity},
	{errs.ErrInvalidPhaseTransition, http.StatusUnprocessableEntity},
	{errs.ErrPhaseChanged, http.StatusUnprocessableEntity},
	{errs.ErrOrderNotPending, http.StatusUnprocessableEntity},
	{errs.ErrEchoNotPending, http.StatusUnprocessableEntity},
	{errs.ErrPressNotPending, http.StatusUnprocessableEntity},
	{errs.ErrPressNotPayable, http.StatusUnprocessableEntity},
	{errs.ErrCertificateUnavailable, http.StatusUnprocessableEntity},
	{errs.ErrWaitlistWindowOpen, http.StatusUnprocessableEntity},
	{errs.ErrUnknownTrigger, http.StatusUnprocessableEntity},
	{errs.ErrEmptyCart, http.StatusUnprocessableEntity},

	{errs.ErrTransactionFailed, http.StatusServiceUnavailable},
}

// Abort maps a usecase error to its status and aborts with the standard
// envelope. Unknown errors become 500 without leaking their message.
func Abort(c *gin.Context, err error) {
	if n, ok := errs.Remaining(err); ok {
		msg := errs.ErrInsufficientStock.Error()
		if errs.Is(err, errs.ErrSalesCapReached) {
			msg = errs.ErrSalesCapReached.Error()
		}
		AbortWithError(c, http.StatusConflict, err, msg, gin.H{"remaining": n})
		return
	}

	for _, r := range rules {
		if errs.Is(err, r.target) {
			msg := r.target.Error()
			if r.status == http.StatusBadRequest {
				msg = validationMessage(err)
			}
			AbortWithError(c, r.status, err, msg, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// validationMessage surfaces the first (innermost) message so callers see
// which field was rejected.
func validationMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
