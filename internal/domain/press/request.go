package press

import (
	"fmt"
	"time"

	"limited-drop-api/internal/domain/pricing"
	"limited-drop-api/internal/domain/product"
	"limited-drop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequestType = errs.New("invalid press request type")
	ErrInvalidDecision    = errs.New("invalid press decision")
	ErrAlreadyDecided     = errs.New("press request already processed")
)

type RequestType string

const (
	TypeInfluencer RequestType = "influencer"
	TypeRegular    RequestType = "regular"
)

func ParseRequestType(s string) (RequestType, error) {
	switch t := RequestType(s); t {
	case TypeInfluencer, TypeRegular:
		return t, nil
	default:
		return "", ErrInvalidRequestType
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func ParseDecision(s string) (Decision, error) {
	switch d := Decision(s); d {
	case DecisionApprove, DecisionReject:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}

// Amount is zero for influencers and base price plus surcharge otherwise.
func Amount(basePrice int64, t RequestType, surchargePercent int) int64 {
	q := pricing.Compute(basePrice, product.PhasePress,
		pricing.UserAttributes{Influencer: t == TypeInfluencer},
		nil, time.Time{}, pricing.Options{SurchargePercent: &surchargePercent})
	if t == TypeInfluencer {
		return 0
	}
	return q.FinalPrice
}

// Outcome describes what approving or rejecting a pending request does.
type Outcome struct {
	Status        Status
	PaymentLinkID *string
	// Complete means the request converts straight into a paid order with no
	// payment step (influencers, zero amount).
	Complete bool
}

func Decide(current Status, d Decision, requestID uuid.UUID, t RequestType, amount int64, now time.Time) (Outcome, error) {
	if current != StatusPending {
		return Outcome{}, ErrAlreadyDecided
	}
	switch d {
	case DecisionReject:
		return Outcome{Status: StatusRejected}, nil
	case DecisionApprove:
		if t == TypeRegular && amount > 0 {
			link := PaymentLinkID(requestID, now)
			return Outcome{Status: StatusApproved, PaymentLinkID: &link}, nil
		}
		return Outcome{Status: StatusCompleted, Complete: true}, nil
	default:
		return Outcome{}, ErrInvalidDecision
	}
}

func PaymentLinkID(requestID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("press_%s_%d", requestID, now.Unix())
}
