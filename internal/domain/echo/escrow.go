// Package echo holds the prepaid-escrow rules for echo phase requests.
package echo

import (
	"strings"
	"time"

	"limited-drop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequesterRequired = errs.New("echo request needs a user or contact email")
	ErrNotPending        = errs.New("echo request is not pending")
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentEscrowed PaymentStatus = "escrowed"
	PaymentReleased PaymentStatus = "released"
	PaymentRefunded PaymentStatus = "refunded"
)

type Action string

const (
	ActionProductionStarted Action = "production_started"
	ActionRefundsProcessed  Action = "refunds_processed"
)

// Decide picks the single outcome applied to a whole batch of matured
// requests. Only a release or a filled cap ends a product, and an ended
// product never restarts production. A short batch is refunded without
// closing the phase.
func Decide(qualifying, minRequests int, productEnded bool) Action {
	if productEnded {
		return ActionRefundsProcessed
	}
	if minRequests < 1 {
		minRequests = 1
	}
	if qualifying >= minRequests {
		return ActionProductionStarted
	}
	return ActionRefundsProcessed
}

func ReleaseDate(now time.Time, windowDays int) time.Time {
	return now.AddDate(0, 0, windowDays)
}

// InitialStatus is escrowed when the payment intent is already known.
func InitialStatus(paymentIntentID *string) PaymentStatus {
	if paymentIntentID != nil && strings.TrimSpace(*paymentIntentID) != "" {
		return PaymentEscrowed
	}
	return PaymentPending
}

// RequesterKey identifies one requester per product variant: the user id for
// signed-in users, the lower-cased contact email for guests.
func RequesterKey(userID *uuid.UUID, email string) (string, error) {
	if userID != nil && *userID != uuid.Nil {
		return userID.String(), nil
	}
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return "", ErrRequesterRequired
	}
	return e, nil
}

type Status struct {
	EscrowedCount int
	MinRequests   int
	ThresholdMet  bool
	WindowDays    int
	TimeRemaining *time.Duration
}

// Summarize measures the window from the earliest escrowed request.
func Summarize(escrowed, minRequests, windowDays int, earliest *time.Time, now time.Time) Status {
	s := Status{
		EscrowedCount: escrowed,
		MinRequests:   minRequests,
		ThresholdMet:  escrowed >= minRequests,
		WindowDays:    windowDays,
	}
	if earliest != nil {
		remaining := ReleaseDate(*earliest, windowDays).Sub(now)
		if remaining < 0 {
			remaining = 0
		}
		s.TimeRemaining = &remaining
	}
	return s
}
